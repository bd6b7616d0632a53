package repository

import (
	"sync"

	"github.com/cinebook/movie-booking/internal/model"
)

// SeatInventory is the authoritative seat-status map for a single show.
// The label set is fixed at creation (the full A1–H12 grid) and never
// changes size; only statuses mutate, and only through TryCommit.
//
// A RWMutex serializes commits against each other and against readers,
// so a commit is observed by every caller either fully applied or not
// at all. Each show owns exactly one SeatInventory; no locking spans
// shows.
type SeatInventory struct {
	mu    sync.RWMutex
	seats map[SeatLabel]model.SeatStatus
}

// NewSeatInventory builds an inventory with every seat in the layout
// marked available.
func NewSeatInventory() *SeatInventory {
	seats := make(map[SeatLabel]model.SeatStatus, LayoutSeats)
	for r := byte(0); r < LayoutRows; r++ {
		for c := 1; c <= LayoutCols; c++ {
			seats[SeatLabel{Row: 'A' + r, Col: c}] = model.SeatAvailable
		}
	}
	return &SeatInventory{seats: seats}
}

// Status looks up the current status of one seat. A label that does not
// parse against the layout, or parses to a position outside it, fails
// with ErrSeatNotFound.
func (inv *SeatInventory) Status(raw string) (model.SeatStatus, error) {
	label, err := ParseSeatLabel(raw)
	if err != nil {
		return "", err
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	st, ok := inv.seats[label]
	if !ok {
		return "", &SeatError{Label: raw, Err: ErrSeatNotFound}
	}
	return st, nil
}

// Snapshot returns a point-in-time copy of the full seat map keyed by
// wire-form labels. The copy is detached: mutating it has no effect on
// the inventory, which keeps booking state out of callers' reach.
func (inv *SeatInventory) Snapshot() map[string]model.SeatStatus {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make(map[string]model.SeatStatus, len(inv.seats))
	for label, st := range inv.seats {
		out[label.String()] = st
	}
	return out
}

// AvailableCount reports how many seats are currently available.
func (inv *SeatInventory) AvailableCount() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	n := 0
	for _, st := range inv.seats {
		if st == model.SeatAvailable {
			n++
		}
	}
	return n
}

// TryCommit atomically books a batch of seats. Every requested label
// must parse, exist and be available; the first offence rejects the
// whole batch with no mutation. On success all seats flip to booked as
// one indivisible step and the parsed labels are returned in request
// order.
//
// An empty selection and duplicate labels within one request are both
// ErrInvalidRequest: a zero-seat booking is meaningless, and duplicates
// would double-count in pricing.
func (inv *SeatInventory) TryCommit(raws []string) ([]SeatLabel, error) {
	if len(raws) == 0 {
		return nil, ErrInvalidRequest
	}
	labels := make([]SeatLabel, 0, len(raws))
	seen := make(map[SeatLabel]struct{}, len(raws))
	for _, raw := range raws {
		label, err := ParseSeatLabel(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[label]; dup {
			return nil, &SeatError{Label: raw, Err: ErrInvalidRequest}
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	// validate the whole batch before touching anything
	for _, label := range labels {
		st, ok := inv.seats[label]
		if !ok {
			return nil, &SeatError{Label: label.String(), Err: ErrSeatNotFound}
		}
		if st == model.SeatBooked {
			return nil, &SeatError{Label: label.String(), Err: ErrSeatAlreadyBooked}
		}
	}
	for _, label := range labels {
		inv.seats[label] = model.SeatBooked
	}
	return labels, nil
}

// Package repository owns the in-memory data layer: the movie catalog,
// the show registry and the per-show seat inventories. This file defines
// error values that are reused across the package. These sentinel values
// allow higher layers such as handlers to distinguish between different
// failure scenarios with errors.Is, for example translating
// ErrSeatAlreadyBooked into an HTTP 409 while ErrSeatNotFound becomes a
// 404.
package repository

import (
	"errors"
	"fmt"
)

// ErrMovieNotFound is returned when a movie identifier is not part of
// the catalog. Handlers should translate this into an HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrShowNotFound is returned when a show identifier is not registered.
// Handlers should translate this into an HTTP 404 response.
var ErrShowNotFound = errors.New("show not found")

// ErrSeatNotFound is returned when a seat label is malformed or falls
// outside the show's fixed layout. Malformed labels are deliberately
// reported as not-found rather than silently ignored.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatAlreadyBooked is returned when a requested seat has already
// been committed by an earlier booking. This is legitimate contention,
// not a fault: the caller should re-query the seat map and pick again.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrInvalidRequest is returned for requests that are malformed in
// shape: an empty seat selection or one containing duplicate labels.
// Retrying without changing the input cannot succeed.
var ErrInvalidRequest = errors.New("invalid request")

// SeatError wraps one of the sentinel errors above together with the
// seat label that triggered it, so callers can report the offending
// seat without parsing the message. Unwrap makes it transparent to
// errors.Is checks against the sentinels.
type SeatError struct {
	Label string // the label as supplied by the caller
	Err   error  // one of the sentinel errors in this file
}

func (e *SeatError) Error() string {
	switch {
	case errors.Is(e.Err, ErrSeatAlreadyBooked):
		return fmt.Sprintf("seat %s is already booked", e.Label)
	case errors.Is(e.Err, ErrSeatNotFound):
		return fmt.Sprintf("invalid seat: %s", e.Label)
	case errors.Is(e.Err, ErrInvalidRequest):
		return fmt.Sprintf("duplicate seat: %s", e.Label)
	}
	return fmt.Sprintf("seat %s: %v", e.Label, e.Err)
}

func (e *SeatError) Unwrap() error { return e.Err }

// Package booking implements the transactional booking engine: the one
// entry point that turns a (show id, seat labels) request into a
// committed booking or a rejection.
package booking

import (
	"context"
	"fmt"

	"github.com/cinebook/movie-booking/internal/model"
	"github.com/cinebook/movie-booking/internal/repository"
)

// Engine validates and commits bookings against the show registry's
// seat inventories. It holds no mutable state of its own beyond the id
// sequence, so any number of callers may book concurrently; each show's
// inventory serializes its own commits.
type Engine struct {
	movies *repository.MovieRepo
	shows  *repository.ShowRepo
	ids    *IDGenerator
}

// NewEngine constructs an Engine over the given catalog and registry.
// Both dependencies must be non-nil.
func NewEngine(movies *repository.MovieRepo, shows *repository.ShowRepo) *Engine {
	if movies == nil || shows == nil {
		panic("nil repository passed to NewEngine")
	}
	return &Engine{movies: movies, shows: shows, ids: NewIDGenerator()}
}

// Book commits a booking for the given seats on the given show.
//
// The contract, in order: an unknown show id fails with
// repository.ErrShowNotFound; an empty or duplicate-bearing seat
// selection fails with repository.ErrInvalidRequest; a label outside
// the layout fails with repository.ErrSeatNotFound and a taken seat
// with repository.ErrSeatAlreadyBooked, each carrying the first
// offending label. Failures never leave partial seat state behind;
// the inventory commit is all-or-nothing. On success the booking
// carries a process-unique id, the seats in request order, and
// total = show price × seat count.
//
// Seat contention is a business fact, not a transient fault, so no
// failure is retried here.
func (e *Engine) Book(ctx context.Context, showID string, seatLabels []string) (model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, err
	}
	show, err := e.shows.GetByID(showID)
	if err != nil {
		return model.Booking{}, err
	}
	// resolve the catalog entry before touching seat state: a registered
	// show with no catalog entry is corrupt seed data, and the failure
	// must not leave a commit behind
	movie, err := e.movies.GetByID(show.MovieID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("show %s references movie %s: %w", show.ID, show.MovieID, err)
	}
	if len(seatLabels) == 0 {
		return model.Booking{}, repository.ErrInvalidRequest
	}
	inv, err := e.shows.Inventory(showID)
	if err != nil {
		return model.Booking{}, err
	}
	committed, err := inv.TryCommit(seatLabels)
	if err != nil {
		return model.Booking{}, err
	}

	seats := make([]string, len(committed))
	for i, label := range committed {
		seats[i] = label.String()
	}
	return model.Booking{
		ID:          e.ids.Next(),
		ShowID:      show.ID,
		MovieTitle:  movie.Title,
		ShowTime:    show.Time,
		Screen:      show.Screen,
		Seats:       seats,
		TotalAmount: show.Price * uint32(len(seats)),
	}, nil
}

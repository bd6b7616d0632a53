package repository

import "github.com/cinebook/movie-booking/internal/model"

// ShowRepo is the show registry. It resolves a show identifier to its
// metadata and owned seat inventory, and a movie identifier to the
// ordered list of its shows. Registration happens only during seeding;
// after that the registry itself is read-only and the inventories are
// the only mutable state it hands out.
type ShowRepo struct {
	shows       map[string]model.Show
	byMovie     map[string][]model.Show
	inventories map[string]*SeatInventory
}

// NewShowRepo creates an empty registry.
func NewShowRepo() *ShowRepo {
	return &ShowRepo{
		shows:       make(map[string]model.Show),
		byMovie:     make(map[string][]model.Show),
		inventories: make(map[string]*SeatInventory),
	}
}

// Add registers a show together with its seat inventory. Shows are
// listed per movie in registration order. Registering the same show id
// twice replaces the metadata but keeps the first inventory, so seat
// state can never be silently reset; seeding never does this.
func (r *ShowRepo) Add(s model.Show, inv *SeatInventory) {
	if _, exists := r.shows[s.ID]; !exists {
		r.byMovie[s.MovieID] = append(r.byMovie[s.MovieID], s)
		r.inventories[s.ID] = inv
	}
	r.shows[s.ID] = s
}

// GetByID resolves a show identifier, failing with ErrShowNotFound for
// unknown ids.
func (r *ShowRepo) GetByID(showID string) (model.Show, error) {
	s, ok := r.shows[showID]
	if !ok {
		return model.Show{}, ErrShowNotFound
	}
	return s, nil
}

// ListByMovie returns the shows scheduled for a movie in registration
// order. A movie with no shows yields an empty slice; that is not an
// error.
func (r *ShowRepo) ListByMovie(movieID string) []model.Show {
	shows := r.byMovie[movieID]
	out := make([]model.Show, len(shows))
	copy(out, shows)
	return out
}

// MovieIDForShow resolves the owning movie of a show.
func (r *ShowRepo) MovieIDForShow(showID string) (string, error) {
	s, ok := r.shows[showID]
	if !ok {
		return "", ErrShowNotFound
	}
	return s.MovieID, nil
}

// Inventory returns the seat inventory owned by a show. The same
// *SeatInventory is returned for the lifetime of the process; it guards
// its own state, so handing it out is safe for concurrent use.
func (r *ShowRepo) Inventory(showID string) (*SeatInventory, error) {
	inv, ok := r.inventories[showID]
	if !ok {
		return nil, ErrShowNotFound
	}
	return inv, nil
}

package repository

import "github.com/cinebook/movie-booking/internal/model"

// MovieRepo is the read-only movie catalog. Movies are loaded once at
// construction and never change, so no locking is needed; all accessors
// hand out copies.
type MovieRepo struct {
	movies []model.Movie
	byID   map[string]model.Movie
}

// NewMovieRepo builds a catalog from the given movies, preserving their
// order for listing.
func NewMovieRepo(movies []model.Movie) *MovieRepo {
	r := &MovieRepo{
		movies: make([]model.Movie, len(movies)),
		byID:   make(map[string]model.Movie, len(movies)),
	}
	copy(r.movies, movies)
	for _, m := range r.movies {
		r.byID[m.ID] = m
	}
	return r
}

// ListAll returns every movie in catalog order.
func (r *MovieRepo) ListAll() []model.Movie {
	out := make([]model.Movie, len(r.movies))
	copy(out, r.movies)
	return out
}

// GetByID returns the movie with the given identifier, or
// ErrMovieNotFound if the id is not part of the catalog.
func (r *MovieRepo) GetByID(id string) (model.Movie, error) {
	m, ok := r.byID[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, nil
}

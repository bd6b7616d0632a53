package repository

import (
	"log"

	"github.com/cinebook/movie-booking/internal/model"
)

// Demo catalog. The data set is fixed: six movies with three to four
// shows each. Shows marked preBooked start with a handful of seats
// already taken so the seat grid doesn't render fully green on a fresh
// process.

var seedMovies = []model.Movie{
	{ID: "1", Title: "Inception", Genre: "Sci-Fi", Rating: 8.8, Poster: "/posters/inception.jpg",
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Duration:    "2h 28min", ReleaseYear: 2010},
	{ID: "2", Title: "Interstellar", Genre: "Sci-Fi", Rating: 8.6, Poster: "/posters/interstellar.jpg",
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		Duration:    "2h 49min", ReleaseYear: 2014},
	{ID: "3", Title: "The Dark Knight", Genre: "Action", Rating: 9.0, Poster: "/posters/dark-knight.jpg",
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Duration:    "2h 32min", ReleaseYear: 2008},
	{ID: "4", Title: "Pulp Fiction", Genre: "Crime", Rating: 8.9, Poster: "/posters/pulp-fiction.jpg",
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		Duration:    "2h 34min", ReleaseYear: 1994},
	{ID: "5", Title: "The Matrix", Genre: "Sci-Fi", Rating: 8.7, Poster: "/posters/matrix.jpg",
		Description: "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		Duration:    "2h 16min", ReleaseYear: 1999},
	{ID: "6", Title: "Fight Club", Genre: "Drama", Rating: 8.8, Poster: "/posters/fight-club.jpg",
		Description: "An insomniac office worker and a devil-may-care soap maker form an underground fight club that evolves into much more.",
		Duration:    "2h 19min", ReleaseYear: 1999},
}

type seedShow struct {
	show      model.Show
	preBooked bool
}

var seedShows = []seedShow{
	{model.Show{ID: "S1", MovieID: "1", Time: "10:30 AM", Screen: "Screen 1", Price: 150}, true},
	{model.Show{ID: "S2", MovieID: "1", Time: "2:00 PM", Screen: "Screen 2", Price: 200}, false},
	{model.Show{ID: "S3", MovieID: "1", Time: "6:30 PM", Screen: "Screen 1", Price: 250}, true},
	{model.Show{ID: "S4", MovieID: "1", Time: "10:00 PM", Screen: "Screen 3", Price: 200}, false},
	{model.Show{ID: "S5", MovieID: "2", Time: "11:00 AM", Screen: "Screen 2", Price: 150}, false},
	{model.Show{ID: "S6", MovieID: "2", Time: "3:30 PM", Screen: "Screen 1", Price: 200}, true},
	{model.Show{ID: "S7", MovieID: "2", Time: "7:00 PM", Screen: "Screen 3", Price: 250}, false},
	{model.Show{ID: "S8", MovieID: "3", Time: "12:00 PM", Screen: "Screen 1", Price: 200}, true},
	{model.Show{ID: "S9", MovieID: "3", Time: "4:00 PM", Screen: "Screen 2", Price: 200}, false},
	{model.Show{ID: "S10", MovieID: "3", Time: "8:00 PM", Screen: "Screen 1", Price: 300}, true},
	{model.Show{ID: "S11", MovieID: "4", Time: "1:00 PM", Screen: "Screen 3", Price: 150}, false},
	{model.Show{ID: "S12", MovieID: "4", Time: "5:00 PM", Screen: "Screen 2", Price: 200}, true},
	{model.Show{ID: "S13", MovieID: "5", Time: "10:00 AM", Screen: "Screen 1", Price: 150}, false},
	{model.Show{ID: "S14", MovieID: "5", Time: "2:30 PM", Screen: "Screen 3", Price: 200}, true},
	{model.Show{ID: "S15", MovieID: "5", Time: "6:00 PM", Screen: "Screen 2", Price: 250}, false},
	{model.Show{ID: "S16", MovieID: "6", Time: "11:30 AM", Screen: "Screen 2", Price: 150}, true},
	{model.Show{ID: "S17", MovieID: "6", Time: "3:00 PM", Screen: "Screen 1", Price: 200}, false},
	{model.Show{ID: "S18", MovieID: "6", Time: "7:30 PM", Screen: "Screen 3", Price: 250}, true},
}

// preBookedSeats are committed on seeded shows flagged preBooked.
var preBookedSeats = []string{"C5", "C6", "D7", "D8", "E5", "E6", "F3", "F4"}

// Seed builds a fresh catalog and show registry holding the demo data
// set. Every call returns independent state, so tests can seed without
// sharing seat maps.
func Seed() (*MovieRepo, *ShowRepo) {
	movies := NewMovieRepo(seedMovies)
	shows := NewShowRepo()
	for _, s := range seedShows {
		inv := NewSeatInventory()
		if s.preBooked {
			if _, err := inv.TryCommit(preBookedSeats); err != nil {
				// seed data is static; this only fires if the data set is edited badly
				log.Fatalf("seed: pre-booking seats for %s: %v", s.show.ID, err)
			}
		}
		shows.Add(s.show, inv)
	}
	return movies, shows
}

package model

// Show represents one scheduled screening of a movie.  Shows are created
// when the catalog is seeded and their metadata never changes afterwards;
// the only mutable state tied to a show is its seat inventory, which is
// owned by the repository layer.
//
// Fields:
//
//	ID      – unique, stable show identifier (e.g. "S1").
//	MovieID – catalog identifier of the movie being screened.
//	Time    – display time of the screening (e.g. "10:30 AM").
//	Screen  – name of the screen the show plays on.
//	Price   – price per seat in whole currency units; always positive.
type Show struct {
	ID      string `json:"show_id"`
	MovieID string `json:"movie_id"`
	Time    string `json:"time"`
	Screen  string `json:"screen"`
	Price   uint32 `json:"price"`
}

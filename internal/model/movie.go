package model

// Movie is a catalog entry.  Movies are loaded once at startup and are
// immutable afterwards; a movie may have zero or more scheduled shows
// which reference it by ID.
//
// Fields:
//
//	ID          – stable catalog identifier.
//	Title       – display title.
//	Genre       – primary genre label (e.g. "Sci-Fi").
//	Rating      – aggregate rating on a 0–10 scale.
//	Poster      – relative path to the poster asset.
//	Description – one-paragraph synopsis.
//	Duration    – human-readable running time (e.g. "2h 28min").
//	ReleaseYear – year of theatrical release.
type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	Poster      string  `json:"poster"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	ReleaseYear int     `json:"release_year"`
}

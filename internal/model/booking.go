package model

// Booking is the result record of a successful commit.  It is ephemeral:
// no booking ledger is kept, so this struct exists only as the response
// payload handed back to the caller (and mirrored into the confirmation
// event published to the broker).
//
// Fields:
//
//	ID          – generated booking identifier, unique within the process.
//	ShowID      – show the seats were booked for.
//	MovieTitle  – title of the movie, resolved via the catalog.
//	ShowTime    – display time of the show.
//	Screen      – screen name of the show.
//	Seats       – committed seat labels, in the order they were requested.
//	TotalAmount – show price multiplied by the number of seats.
type Booking struct {
	ID          string   `json:"booking_id"`
	ShowID      string   `json:"show_id"`
	MovieTitle  string   `json:"movie_title"`
	ShowTime    string   `json:"show_time"`
	Screen      string   `json:"screen"`
	Seats       []string `json:"seats"`
	TotalAmount uint32   `json:"total_amount"`
}

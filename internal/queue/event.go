// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking commits. It carries
// enough for downstream consumers to log or notify without reaching back
// into the in-memory state of the server that produced it.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	ShowID      string   `json:"show_id"`
	MovieTitle  string   `json:"movie_title"`
	ShowTime    string   `json:"show_time"`
	Screen      string   `json:"screen"`
	SeatLabels  []string `json:"seats"`
	TotalAmount uint32   `json:"total_amount"`
	ConfirmedAt string   `json:"confirmed_at"`
}

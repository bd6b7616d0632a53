package model

// SeatStatus is the availability state of a single seat within one
// show's inventory.  A seat only ever moves Available → Booked; there is
// no cancellation, so the transition is one-way for the lifetime of the
// process.
type SeatStatus string

const (
	// SeatAvailable means the seat can still be claimed by a booking.
	SeatAvailable SeatStatus = "available"
	// SeatBooked means a committed booking owns the seat.
	SeatBooked SeatStatus = "booked"
)

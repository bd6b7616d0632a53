package repository

import "strconv"

// The seat grid has a fixed shape in this deployment: 8 rows labelled
// A through H, 12 seats per row. Every show uses the same layout, so a
// label is valid for one show exactly when it is valid for all of them.
const (
	LayoutRows = 8  // rows A..H
	LayoutCols = 12 // seats 1..12 within a row
	// LayoutSeats is the total number of seats in one show's inventory.
	LayoutSeats = LayoutRows * LayoutCols
)

// SeatLabel is a validated seat position. It is constructed only through
// ParseSeatLabel, so holding a SeatLabel is proof the position exists in
// the layout; free-form strings never travel past the boundary.
type SeatLabel struct {
	Row byte // 'A'..'H'
	Col int  // 1..12
}

// String renders the label in its wire form, e.g. "C5".
func (l SeatLabel) String() string {
	return string(l.Row) + strconv.Itoa(l.Col)
}

// ParseSeatLabel validates a raw seat label against the layout grammar:
// one uppercase row letter in A–H followed by a column number 1–12
// with no leading zero. Anything else fails with a SeatError wrapping
// ErrSeatNotFound: a malformed label names a seat that does not exist.
func ParseSeatLabel(raw string) (SeatLabel, error) {
	if len(raw) < 2 || len(raw) > 3 {
		return SeatLabel{}, &SeatError{Label: raw, Err: ErrSeatNotFound}
	}
	row := raw[0]
	if row < 'A' || row >= 'A'+LayoutRows {
		return SeatLabel{}, &SeatError{Label: raw, Err: ErrSeatNotFound}
	}
	digits := raw[1:]
	if digits[0] == '0' {
		return SeatLabel{}, &SeatError{Label: raw, Err: ErrSeatNotFound}
	}
	col := 0
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return SeatLabel{}, &SeatError{Label: raw, Err: ErrSeatNotFound}
		}
		col = col*10 + int(digits[i]-'0')
	}
	if col < 1 || col > LayoutCols {
		return SeatLabel{}, &SeatError{Label: raw, Err: ErrSeatNotFound}
	}
	return SeatLabel{Row: row, Col: col}, nil
}

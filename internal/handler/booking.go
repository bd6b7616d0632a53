package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-booking/internal/booking"
	"github.com/cinebook/movie-booking/internal/queue"
	"github.com/cinebook/movie-booking/internal/repository"
	queue_publisher "github.com/cinebook/movie-booking/internal/service"
)

// BookingHandler exposes the booking engine over HTTP. The engine does
// all validation and commitment; this layer only binds the request,
// maps engine errors onto status codes and fires the confirmation
// event.
type BookingHandler struct {
	Engine *booking.Engine
	// PublishEvents controls whether confirmations are sent to the
	// broker. Disabled in tests.
	PublishEvents bool
}

// NewBookingHandler constructs a BookingHandler that publishes events.
func NewBookingHandler(engine *booking.Engine) *BookingHandler {
	if engine == nil {
		panic("nil engine passed to NewBookingHandler")
	}
	return &BookingHandler{Engine: engine, PublishEvents: true}
}

// bookingRequest is the body of POST /v1/bookings.
type bookingRequest struct {
	ShowID string   `json:"show_id"`
	Seats  []string `json:"seats"`
}

// CreateBooking handles POST /v1/bookings. Failure bodies carry a
// machine-checkable kind in "error", a human-readable "message", and,
// when a specific seat is at fault, that seat's label in "seat".
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "invalid_request",
			"message": "invalid request body",
		})
	}
	if body.ShowID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "invalid_request",
			"message": "show_id and seats are required",
		})
	}

	result, err := h.Engine.Book(c.Request().Context(), body.ShowID, body.Seats)
	if err != nil {
		return bookingError(c, err)
	}

	if h.PublishEvents {
		ev := queue.BookingConfirmedEvent{
			BookingID:   result.ID,
			ShowID:      result.ShowID,
			MovieTitle:  result.MovieTitle,
			ShowTime:    result.ShowTime,
			Screen:      result.Screen,
			SeatLabels:  result.Seats,
			TotalAmount: result.TotalAmount,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		// fire-and-forget: the commit stands whether or not the broker is up
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, result)
}

// bookingError maps engine failures onto the wire taxonomy. A SeatError
// contributes the offending seat label to the body.
func bookingError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	kind := "internal_error"
	switch {
	case errors.Is(err, repository.ErrInvalidRequest):
		status, kind = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, repository.ErrShowNotFound):
		status, kind = http.StatusNotFound, "show_not_found"
	case errors.Is(err, repository.ErrSeatNotFound):
		status, kind = http.StatusNotFound, "seat_not_found"
	case errors.Is(err, repository.ErrSeatAlreadyBooked):
		status, kind = http.StatusConflict, "seat_already_booked"
	}
	resp := echo.Map{"error": kind, "message": err.Error()}
	var seatErr *repository.SeatError
	if errors.As(err, &seatErr) {
		resp["seat"] = seatErr.Label
	}
	return c.JSON(status, resp)
}

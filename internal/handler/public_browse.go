// Package handler exposes the HTTP surface of the service. This file
// defines the read-only browse handlers: movie listings, per-movie show
// listings and per-show seat maps. These are pure projections: they
// only ever hand out copies of booking state, never a live reference
// into an inventory.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-booking/internal/model"
	"github.com/cinebook/movie-booking/internal/repository"
)

// PublicHandler aggregates the repositories needed for browsing.
type PublicHandler struct {
	MovieRepo *repository.MovieRepo // read-only movie catalog
	ShowRepo  *repository.ShowRepo  // show registry and seat inventories
}

// ShowSummary is a show in list responses, annotated with how many
// seats are still available at the time of the request.
type ShowSummary struct {
	ShowID         string `json:"show_id"`
	Time           string `json:"time"`
	Screen         string `json:"screen"`
	Price          uint32 `json:"price"`
	AvailableSeats int    `json:"available_seats"`
}

// SeatMapResponse is the full seat snapshot of one show together with
// the schedule metadata a seat picker needs to render.
type SeatMapResponse struct {
	ShowID string                      `json:"show_id"`
	Time   string                      `json:"time"`
	Screen string                      `json:"screen"`
	Price  uint32                      `json:"price"`
	Seats  map[string]model.SeatStatus `json:"seats"`
}

// GetMovies handles GET /v1/movies. It returns every catalog entry in
// catalog order inside an "items" envelope.
func (h *PublicHandler) GetMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.MovieRepo.ListAll()})
}

// GetMovie handles GET /v1/movies/:id.
func (h *PublicHandler) GetMovie(c echo.Context) error {
	movie, err := h.MovieRepo.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie_not_found", "message": "movie not found"})
	}
	return c.JSON(http.StatusOK, movie)
}

// GetShowsByMovie handles GET /v1/movies/:id/shows. It validates the
// movie exists, then lists its shows in schedule order. A movie with no
// scheduled shows yields an empty items array, not an error.
func (h *PublicHandler) GetShowsByMovie(c echo.Context) error {
	movieID := c.Param("id")
	if _, err := h.MovieRepo.GetByID(movieID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie_not_found", "message": "movie not found"})
	}
	shows := h.ShowRepo.ListByMovie(movieID)
	out := make([]ShowSummary, 0, len(shows))
	for _, s := range shows {
		available := 0
		if inv, err := h.ShowRepo.Inventory(s.ID); err == nil {
			available = inv.AvailableCount()
		}
		out = append(out, ShowSummary{
			ShowID:         s.ID,
			Time:           s.Time,
			Screen:         s.Screen,
			Price:          s.Price,
			AvailableSeats: available,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetShowSeats handles GET /v1/shows/:id/seats. The seat map is a
// point-in-time snapshot: it never tears across an in-flight commit,
// and mutating the response cannot touch booking state.
func (h *PublicHandler) GetShowSeats(c echo.Context) error {
	showID := c.Param("id")
	show, err := h.ShowRepo.GetByID(showID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show_not_found", "message": "show not found"})
	}
	inv, err := h.ShowRepo.Inventory(showID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show_not_found", "message": "show not found"})
	}
	return c.JSON(http.StatusOK, SeatMapResponse{
		ShowID: show.ID,
		Time:   show.Time,
		Screen: show.Screen,
		Price:  show.Price,
		Seats:  inv.Snapshot(),
	})
}

// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-booking/internal/handler"
)

// RegisterRoutes registers routes that belong to no feature group.
// Currently it exposes only a health check, which load balancers and
// monitoring systems use to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBrowse registers the read-only browse endpoints under /v1.
// cacheMW is applied to the pure-catalog routes only: movies never
// change after seeding, so caching them is free, while show listings
// and seat maps carry live availability and must always be computed
// fresh. Pass nil to disable caching entirely.
func RegisterBrowse(e *echo.Echo, p *handler.PublicHandler, cacheMW echo.MiddlewareFunc) {
	catalog := []echo.MiddlewareFunc{}
	if cacheMW != nil {
		catalog = append(catalog, cacheMW)
	}
	e.GET("/v1/movies", p.GetMovies, catalog...)
	e.GET("/v1/movies/:id", p.GetMovie, catalog...)
	e.GET("/v1/movies/:id/shows", p.GetShowsByMovie)
	e.GET("/v1/shows/:id/seats", p.GetShowSeats)
}

// RegisterBooking registers the booking endpoint under /v1.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	e.POST("/v1/bookings", b.CreateBooking)
}

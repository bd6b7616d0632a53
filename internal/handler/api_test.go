package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/movie-booking/internal/booking"
	"github.com/cinebook/movie-booking/internal/handler"
	"github.com/cinebook/movie-booking/internal/repository"
	"github.com/cinebook/movie-booking/internal/router"
)

// newTestServer wires a fresh seeded API with event publishing off.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	movies, shows := repository.Seed()
	engine := booking.NewEngine(movies, shows)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterBrowse(e, &handler.PublicHandler{MovieRepo: movies, ShowRepo: shows}, nil)
	router.RegisterBooking(e, &handler.BookingHandler{Engine: engine})
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGetMovies(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/v1/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 6)
	assert.Equal(t, "Inception", resp.Items[0].Title)
	assert.Equal(t, "Fight Club", resp.Items[5].Title)
}

func TestGetMovie(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/movies/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var movie struct {
		Title       string `json:"title"`
		ReleaseYear int    `json:"release_year"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movie))
	assert.Equal(t, "Interstellar", movie.Title)
	assert.Equal(t, 2014, movie.ReleaseYear)

	rec = doJSON(e, http.MethodGet, "/v1/movies/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "movie_not_found")
}

func TestGetShowsByMovie(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/movies/1/shows", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []struct {
			ShowID         string `json:"show_id"`
			Time           string `json:"time"`
			Screen         string `json:"screen"`
			Price          uint32 `json:"price"`
			AvailableSeats int    `json:"available_seats"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 4)
	assert.Equal(t, "S1", resp.Items[0].ShowID)
	// S1 carries the eight demo pre-booked seats
	assert.Equal(t, repository.LayoutSeats-8, resp.Items[0].AvailableSeats)
	// S2 is untouched
	assert.Equal(t, "S2", resp.Items[1].ShowID)
	assert.Equal(t, repository.LayoutSeats, resp.Items[1].AvailableSeats)

	rec = doJSON(e, http.MethodGet, "/v1/movies/99/shows", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShowSeats(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/shows/S1/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		ShowID string            `json:"show_id"`
		Time   string            `json:"time"`
		Screen string            `json:"screen"`
		Price  uint32            `json:"price"`
		Seats  map[string]string `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "S1", resp.ShowID)
	assert.Equal(t, "10:30 AM", resp.Time)
	assert.Equal(t, uint32(150), resp.Price)
	require.Len(t, resp.Seats, repository.LayoutSeats)
	assert.Equal(t, "booked", resp.Seats["C5"])
	assert.Equal(t, "available", resp.Seats["A1"])

	rec = doJSON(e, http.MethodGet, "/v1/shows/unknown-show/seats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "show_not_found")
}

func TestCreateBooking_Success(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/bookings", `{"show_id":"S2","seats":["A1","A2"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		BookingID   string   `json:"booking_id"`
		ShowID      string   `json:"show_id"`
		MovieTitle  string   `json:"movie_title"`
		ShowTime    string   `json:"show_time"`
		Screen      string   `json:"screen"`
		Seats       []string `json:"seats"`
		TotalAmount uint32   `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.BookingID, "BKG"))
	assert.Equal(t, "S2", resp.ShowID)
	assert.Equal(t, "Inception", resp.MovieTitle)
	assert.Equal(t, []string{"A1", "A2"}, resp.Seats)
	assert.Equal(t, uint32(400), resp.TotalAmount)

	// the booked seats show up in the next seat map read
	rec = doJSON(e, http.MethodGet, "/v1/shows/S2/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A1":"booked"`)
}

func TestCreateBooking_Failures(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		code     int
		kind     string
		seat     string
		contains string
	}{
		{
			name: "already booked seat",
			body: `{"show_id":"S1","seats":["C5"]}`,
			code: http.StatusConflict,
			kind: "seat_already_booked",
			seat: "C5", contains: "C5",
		},
		{
			name: "seat outside layout",
			body: `{"show_id":"S1","seats":["Z9"]}`,
			code: http.StatusNotFound,
			kind: "seat_not_found",
			seat: "Z9", contains: "Z9",
		},
		{
			name: "empty seat selection",
			body: `{"show_id":"S1","seats":[]}`,
			code: http.StatusBadRequest,
			kind: "invalid_request",
		},
		{
			name: "duplicate seats",
			body: `{"show_id":"S1","seats":["A1","A1"]}`,
			code: http.StatusBadRequest,
			kind: "invalid_request",
		},
		{
			name: "unknown show",
			body: `{"show_id":"unknown-show","seats":["A1"]}`,
			code: http.StatusNotFound,
			kind: "show_not_found",
		},
		{
			name: "missing show_id",
			body: `{"seats":["A1"]}`,
			code: http.StatusBadRequest,
			kind: "invalid_request",
		},
		{
			name: "malformed body",
			body: `{not json`,
			code: http.StatusBadRequest,
			kind: "invalid_request",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/v1/bookings", tc.body)
			assert.Equal(t, tc.code, rec.Code)

			var resp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
				Seat    string `json:"seat"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.kind, resp.Error)
			assert.NotEmpty(t, resp.Message)
			if tc.seat != "" {
				assert.Equal(t, tc.seat, resp.Seat)
			}
			if tc.contains != "" {
				assert.Contains(t, resp.Message, tc.contains)
			}
		})
	}

	// a failed booking leaves the seat map untouched
	rec := doJSON(e, http.MethodGet, "/v1/shows/S1/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A1":"available"`)
}

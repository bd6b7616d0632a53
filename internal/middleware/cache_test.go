package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/movie-booking/internal/config"
)

// testCacheConfig mirrors the loader defaults without reading the
// environment, so stray CACHE_* variables cannot skew assertions.
func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}
}

// catalogCtx builds an echo context as the router leaves it after
// matching the parameterized catalog route.
func catalogCtx(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues(strings.TrimPrefix(req.URL.Path, "/v1/movies/"))
	return c
}

func TestCacheKey_DistinctMovieIDsGetDistinctKeys(t *testing.T) {
	cfg := testCacheConfig()

	key1 := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1"))
	key2 := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/2"))
	key99 := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/99"))

	// same route pattern, different ids: one movie's response must never
	// be replayed for another (or for an unknown id that should 404)
	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, key1, key99)
	assert.NotEqual(t, key2, key99)
}

func TestCacheKey_StableForSameRequest(t *testing.T) {
	cfg := testCacheConfig()

	first := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1"))
	second := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1"))
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, cfg.Prefix+":"))
}

func TestCacheKey_QueryContributesOnlyInRouteQueryStrategy(t *testing.T) {
	cfg := testCacheConfig() // default strategy route_query
	plain := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1"))
	withQuery := cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1?fields=title"))
	assert.NotEqual(t, plain, withQuery)

	cfg.KeyStrategy = "route"
	plain = cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1"))
	withQuery = cacheKeyFrom(cfg, catalogCtx(t, "/v1/movies/1?fields=title"))
	assert.Equal(t, plain, withQuery)
}

func TestNewRedisCache_NilClientIsPassthrough(t *testing.T) {
	cfg := testCacheConfig()
	mw := NewRedisCache(cfg, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"), "passthrough must not claim cache involvement")
}

func TestNewRedisCache_DisabledIsPassthrough(t *testing.T) {
	cfg := testCacheConfig()
	cfg.Enabled = false
	mw := NewRedisCache(cfg, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestPayloadCodec_RoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"items":[]}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, body, gotBody)

	// truncated payloads are rejected, not misread
	_, _, _, ok = decodePayload(payload[:4])
	assert.False(t, ok)
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.NotEmpty(t, RequestIDFromContext(c))
		return nil
	})
	require.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "caller-id", RequestIDFromContext(c))
		return nil
	})
	require.NoError(t, handler(c))
	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-ID"))
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimit(0, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), first)))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), second)))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

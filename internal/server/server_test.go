package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-blast/internal/config"
)

func serverConfig() *config.Config {
	return &config.Config{
		Env:                "dev",
		HTTPPort:           "8080",
		RequestTimeout:     5 * time.Second,
		ScrapeRatePerSec:   1000,
		CooldownMaxSeconds: 0,
	}
}

func TestHealthz(t *testing.T) {
	s := New(serverConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	s := New(serverConfig())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, http.StatusText(http.StatusNotFound), resp.Message)
}

func TestErrorHandlerHidesDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	errorHandler(errors.New("cookie=secret upstream detail"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotContains(t, resp.Message, "secret")
	assert.Equal(t, "something went wrong, please try again later", resp.Message)
}

// Package server exposes the recruiter lookup pipeline as a small JSON
// API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jonathan/recruiter-blast/internal/config"
)

// Server owns the echo instance and its route wiring.
type Server struct {
	cfg *config.Config
	e   *echo.Echo
}

// New wires routes, middleware, and the error boundary.
func New(cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(RequestID())
	e.Use(RequestLogging())
	e.Use(echomw.Recover())

	h := NewHandler(cfg)
	e.GET("/healthz", h.Health)

	api := e.Group("/api", RateLimit(cfg.ScrapeRatePerSec, 2))
	api.POST("/lookup", h.Lookup)
	api.POST("/job", h.Job)
	api.POST("/emails", h.Emails)

	return &Server{cfg: cfg, e: e}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	addr := ":" + s.cfg.HTTPPort
	slog.Info("starting server", "addr", addr)

	if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// errorHandler is the single boundary for errors escaping a handler.
// Full detail goes to the log; the caller gets one generic message so
// upstream URLs and credentials never leak into responses.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	slog.Error("request failed",
		"request_id", RequestIDFromContext(c),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", status,
		"error", err,
	)

	message := "something went wrong, please try again later"
	if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		message = http.StatusText(status)
	}
	if err := Error(c, status, message); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

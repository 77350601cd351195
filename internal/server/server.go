// =============================
// File: internal/server/server.go
// =============================
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server wraps the echo HTTP server serving the admin REST surface.
type Server struct {
	e    *echo.Echo
	addr string
}

// NewServer wires routes and middleware for the admin API.
func NewServer(addr string, h *Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.HTTPErrorHandler = jsonErrorHandler()

	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	e.GET("/healthz", h.Health)

	admin := e.Group("/api/admin")
	admin.GET("/settings", h.GetSettings)
	admin.PATCH("/settings", h.PatchSettings)
	admin.GET("/state", h.GetProgramState)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Code: http.StatusNotFound})
	})

	return &Server{e: e, addr: addr}
}

// Start begins serving; blocks until shutdown or listen failure.
func (s *Server) Start() error {
	return s.e.Start(s.addr)
}

// Shutdown drains in-flight requests with a bounded grace period.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.e.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo { return s.e }

// jsonErrorHandler keeps every error response in the uniform JSON shape,
// including echo's own 404/405 errors.
func jsonErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			_ = c.JSON(he.Code, ErrorResponse{Error: http.StatusText(he.Code), Code: he.Code})
			return
		}
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  http.StatusInternalServerError,
		})
	}
}

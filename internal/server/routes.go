package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Account CRUD
	s.echo.POST("/users", s.handleRegister)
	s.echo.GET("/users/:id", s.handleShow)
	s.echo.PUT("/users/:id", s.handleUpdate)
	s.echo.DELETE("/users/:id", s.handleDelete)

	// Auth
	s.echo.POST("/login", s.handleLogin)
	s.echo.POST("/logout", s.handleLogout, s.requireAuth)
	s.echo.GET("/me", s.handleMe, s.requireAuth)
}

package ui

import (
	"github.com/go-chi/chi/v5/middleware"

	uimw "winery/ui/middleware"
)

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(uimw.AccessLog(s.log))
	s.router.Use(middleware.Recoverer)
}

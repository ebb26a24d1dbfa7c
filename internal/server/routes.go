package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the HTTP handler for the page, its static assets and the API.
func (s *ServerContext) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.HandleIndex)
	r.Get("/debug", s.HandleDebug)
	r.Get("/static/*", s.HandleStatic)

	r.Route("/api", func(r chi.Router) {
		r.Get("/names", s.HandleNames)
		r.Get("/match", s.HandleMatch)
	})

	return r
}

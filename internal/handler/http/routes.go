package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer-token auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/entries", h.listEntries)
		r.Post("/api/entries", h.createEntry)
		r.Put("/api/entries/{id}", h.updateEntry)
		r.Delete("/api/entries/{id}", h.deleteEntry)
	})

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
	})

	// routes guarded by the session middleware
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Post("/users/logout", h.logout)

		r.Route("/passwords", func(r chi.Router) {
			r.Get("/", h.listCredentials)
			r.Post("/", h.createCredential)
			r.Get("/{id}", h.getCredential)
			r.Patch("/{id}", h.updateCredential)
			r.Delete("/{id}", h.deleteCredential)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	return router
}

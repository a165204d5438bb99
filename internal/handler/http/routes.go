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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
	})

	// every roster and analytics route sits behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/students", h.listStudents)
		r.Post("/students", h.createStudent)
		r.Put("/students/{id}", h.updateStudent)
		r.Delete("/students/{id}", h.deleteStudent)

		r.Get("/analytics", h.getAnalytics)
	})

	return router
}

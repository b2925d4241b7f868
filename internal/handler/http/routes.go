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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getAppVersion)
	})

	// routes behind the identity middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/transactions/add", h.addTransaction)
		r.Get("/api/transactions/get", h.listTransactions)
		r.Delete("/api/transactions/delete/{id}", h.deleteTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

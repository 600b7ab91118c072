package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes and middleware into a chi router.
//
// Trace and access-log middleware run for every request. Registration and
// login are public; everything under the item collections and /api/stats
// requires a valid bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/credentials", func(r chi.Router) {
			r.Post("/", createRecord(h.services.Credentials))
			r.Get("/", listRecords(h.services.Credentials))
			r.Patch("/{recordID}", updateRecord(h.services.Credentials))
			r.Delete("/{recordID}", deleteRecord(h.services.Credentials))
		})

		r.Route("/api/cards", func(r chi.Router) {
			r.Post("/", createRecord(h.services.Cards))
			r.Get("/", listRecords(h.services.Cards))
			r.Patch("/{recordID}", updateRecord(h.services.Cards))
			r.Delete("/{recordID}", deleteRecord(h.services.Cards))
		})

		r.Route("/api/bank-details", func(r chi.Router) {
			r.Post("/", createRecord(h.services.BankDetails))
			r.Get("/", listRecords(h.services.BankDetails))
			r.Patch("/{recordID}", updateRecord(h.services.BankDetails))
			r.Delete("/{recordID}", deleteRecord(h.services.BankDetails))
		})

		r.Route("/api/documents", func(r chi.Router) {
			r.Post("/", createRecord(h.services.Documents))
			r.Get("/", listRecords(h.services.Documents))
			r.Patch("/{recordID}", updateRecord(h.services.Documents))
			r.Delete("/{recordID}", deleteRecord(h.services.Documents))
		})

		r.Get("/api/stats", h.stats)
	})

	return router
}

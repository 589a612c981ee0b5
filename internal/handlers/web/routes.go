package web

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the router for the participant and admin API
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/api/register", h.handleRegister)
	r.Get("/api/result", h.handleResult)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Delete("/login", h.handleLogout)

		// Everything else requires an authenticated admin session
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/assign", h.handleGetAssignment)
			r.Post("/assign", h.handleCommitAssignment)
			r.Delete("/assign", h.handleResetAssignment)

			r.Get("/publish", h.handleGetPublishState)
			r.Post("/publish", h.handleSetPublished)

			r.Get("/teams", h.handleListTeams)
			r.Put("/teams", h.handleUpdateTeam)

			r.Get("/players", h.handleListPlayers)
			r.Delete("/players", h.handleDeletePlayer)
		})
	})

	return r
}

package services

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the services endpoints (typically under "/api/services").
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeOverview)
	r.Mount("/savings", h.Savings.Routes(gate))
	r.Mount("/loans", h.Loans.Routes(gate))
	r.Mount("/facilities", h.Facilities.Routes(gate))

	return r
}

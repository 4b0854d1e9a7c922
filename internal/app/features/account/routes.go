package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the account endpoints (typically under "/api/auth").
// gate guards the profile routes; throttle, when non-nil, wraps register
// and login.
func Routes(h *Handler, gate, throttle func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		if throttle != nil {
			pr.Use(throttle)
		}
		pr.Post("/register", h.HandleRegister)
		pr.Post("/login", h.HandleLogin)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(gate)
		pr.Get("/me", h.ServeMe)
		pr.Put("/me", h.HandleUpdateMe)
	})

	return r
}

package notices

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the notice endpoints (typically under "/api/notices").
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Group(func(pr chi.Router) {
		pr.Use(gate)
		pr.Get("/all", h.ServeAll)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	r.Get("/{id}", h.ServeByID)

	return r
}

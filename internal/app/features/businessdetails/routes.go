package businessdetails

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the business detail endpoints (typically under
// "/api/business-details"). Reads are public except /mine.
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Group(func(pr chi.Router) {
		pr.Use(gate)
		pr.Get("/mine", h.ServeMine)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	r.Get("/{id}", h.ServeByID)

	return r
}

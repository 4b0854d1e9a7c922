package businesses

import "github.com/go-chi/chi/v5"

// Routes mounts the directory endpoints (typically under "/api/businesses").
// None of them require a token.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/directory", h.ServeDirectory)
	r.Get("/search", h.ServeSearch)
	r.Get("/categories", h.ServeCategories)
	r.Get("/slug/{slug}", h.ServeBySlug)
	r.Get("/{id}", h.ServeByID)

	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}

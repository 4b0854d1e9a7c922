package about

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the About endpoints (typically under "/api/about"). Reads
// are public; every mutation goes through gate.
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeAbout)

	r.Group(func(pr chi.Router) {
		pr.Use(gate)

		pr.Put("/", h.HandleUpdate)
		pr.Put("/section/{section}", h.HandleUpdateSection)

		pr.Post("/values", h.HandleAddValue)
		pr.Put("/values/{id}", h.HandleUpdateValue)
		pr.Delete("/values/{id}", h.HandleDeleteValue)

		pr.Post("/milestones", h.HandleAddMilestone)
		pr.Put("/milestones/{id}", h.HandleUpdateMilestone)
		pr.Delete("/milestones/{id}", h.HandleDeleteMilestone)

		pr.Post("/community-impacts", h.HandleAddImpact)
		pr.Put("/community-impacts/{id}", h.HandleUpdateImpact)
		pr.Delete("/community-impacts/{id}", h.HandleDeleteImpact)

		// The story takes no item id.
		pr.Post("/images/{section}", h.HandleAddImage)
		pr.Post("/images/{section}/{id}", h.HandleAddImage)
		pr.Delete("/images/{section}/{imageIndex}", h.HandleRemoveImage)
		pr.Delete("/images/{section}/{id}/{imageIndex}", h.HandleRemoveImage)
	})

	return r
}

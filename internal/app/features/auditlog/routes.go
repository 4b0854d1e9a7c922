package auditlog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the audit trail (typically under "/api/audit"). Every
// route requires a signed-in member.
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)
	r.Get("/", h.ServeMine)
	return r
}

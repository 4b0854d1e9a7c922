package businesses

import (
	"context"
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// GET /api/businesses/{id}
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.store.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "", b)
}

// GET /api/businesses/slug/{slug}
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.store.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "", b)
}

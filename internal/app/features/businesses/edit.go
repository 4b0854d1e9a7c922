package businesses

import (
	"context"
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// POST /api/businesses
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.store.Create(ctx, in.model())
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("business created", zap.String("id", b.ID.Hex()), zap.String("slug", b.Slug))
	respond.Created(w, "Business created successfully", b)
}

// PUT /api/businesses/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	var in updateInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.store.Update(ctx, id, in.update())
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "Business updated successfully", b)
}

// DELETE /api/businesses/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.store.Delete(ctx, id); err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	h.Log.Info("business deleted", zap.String("id", id.Hex()))
	respond.OK(w, "Business deleted successfully", nil)
}

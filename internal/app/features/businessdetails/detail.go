package businessdetails

import (
	"context"
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.uber.org/zap"
)

// GET /api/business-details
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.store.ListActive(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.List(w, list)
}

// GET /api/business-details/mine
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.store.ListByOwner(ctx, u.ID)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.List(w, list)
}

// GET /api/business-details/{id}
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.store.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "", d)
}

// HandleCreate stores a profile owned by the caller.
// POST /api/business-details
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	var in detailInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.store.Create(ctx, models.BusinessDetail{
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		OpeningHours: in.OpeningHours,
		Services:     in.Services,
		Images:       in.Images,
		Status:       in.Status,
		OwnerID:      u.ID,
	})
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("business detail created", zap.String("id", d.ID.Hex()), zap.String("owner", u.ID.Hex()))
	respond.Created(w, "Business details created successfully", d)
}

// PUT /api/business-details/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	var in detailPatch
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.store.Update(ctx, id, u.ID, in.update())
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "Business details updated successfully", d)
}

// DELETE /api/business-details/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.store.Delete(ctx, id, u.ID); err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "Business details deleted successfully", nil)
}

package notices

import (
	"context"
	"net/http"
	"strconv"

	noticestore "github.com/dalemusser/coophub/internal/app/store/notices"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// filterFrom reads ?type=, ?status= and ?important=.
func filterFrom(r *http.Request) (noticestore.Filter, error) {
	f := noticestore.Filter{
		Type:   query.Get(r, "type"),
		Status: query.Get(r, "status"),
	}
	if v := query.Get(r, "important"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, apperr.BadRequest("Invalid important filter")
		}
		f.Important = &b
	}
	return f, nil
}

// ServeList returns published notices, important first then newest.
// GET /api/notices
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f, err := filterFrom(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.store.ListPublished(ctx, f)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.List(w, list)
}

// ServeAll returns notices in every status.
// GET /api/notices/all
func (h *Handler) ServeAll(w http.ResponseWriter, r *http.Request) {
	f, err := filterFrom(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.store.List(ctx, f)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.List(w, list)
}

// GET /api/notices/{id}
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.store.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "", n)
}

// HandleCreate stores a notice. The author defaults to the caller's
// business name.
// POST /api/notices
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in noticeInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	n := in.model()
	if n.Content == "" {
		respond.Error(w, r, h.Log, apperr.Validation("Validation failed",
			apperr.FieldError{Field: "content", Message: "content is required"}))
		return
	}
	if u, ok := auth.CurrentUser(r); ok && n.Author == "" {
		n.Author = u.BusinessName
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.store.Create(ctx, n)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("notice created", zap.String("id", n.ID.Hex()), zap.String("status", n.Status))
	respond.Created(w, "Notice created successfully", n)
}

// PUT /api/notices/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	var in noticePatch
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.store.Update(ctx, id, in.update())
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, msgNotFound))
		return
	}
	respond.OK(w, "Notice updated successfully", n)
}

// DELETE /api/notices/{id}
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
	respond.OK(w, "Notice deleted successfully", nil)
}

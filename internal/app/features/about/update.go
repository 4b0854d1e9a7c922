package about

import (
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/aboutpage"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate replaces every section present in the body.
// PUT /api/about
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p aboutpage.Patch
	if err := inputval.DecodeJSON(w, r, &p); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.mutate(w, r, http.StatusOK, "About page updated successfully", func(page *models.AboutPage) (any, error) {
		aboutpage.ApplyPatch(page, p)
		return nil, nil
	})
}

// HandleUpdateSection merges the body into one named section.
// PUT /api/about/section/{section}
func (h *Handler) HandleUpdateSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")
	if !aboutpage.IsSection(name) {
		respond.Error(w, r, h.Log, aboutpage.ErrInvalidSection)
		return
	}
	raw, err := inputval.DecodeRaw(w, r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.mutate(w, r, http.StatusOK, name+" section updated successfully", func(page *models.AboutPage) (any, error) {
		return nil, aboutpage.UpdateSection(page, name, raw)
	})
}

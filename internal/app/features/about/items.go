package about

import (
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/aboutpage"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// POST /api/about/values
func (h *Handler) HandleAddValue(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.ValueInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, "Value added successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.AddValue(p, in), nil
	})
}

// PUT /api/about/values/{id}
func (h *Handler) HandleUpdateValue(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.ValuePatch
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Value updated successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.UpdateValue(p, id, in)
	})
}

// DELETE /api/about/values/{id}
func (h *Handler) HandleDeleteValue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Value deleted successfully", func(p *models.AboutPage) (any, error) {
		if err := aboutpage.DeleteValue(p, id); err != nil {
			return nil, err
		}
		return p.Values, nil
	})
}

// POST /api/about/milestones
func (h *Handler) HandleAddMilestone(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.MilestoneInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, "Milestone added successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.AddMilestone(p, in), nil
	})
}

// PUT /api/about/milestones/{id}
func (h *Handler) HandleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.MilestonePatch
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Milestone updated successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.UpdateMilestone(p, id, in)
	})
}

// DELETE /api/about/milestones/{id}
func (h *Handler) HandleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Milestone deleted successfully", func(p *models.AboutPage) (any, error) {
		if err := aboutpage.DeleteMilestone(p, id); err != nil {
			return nil, err
		}
		return p.Milestones, nil
	})
}

// POST /api/about/community-impacts
func (h *Handler) HandleAddImpact(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.ImpactInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, "Community impact added successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.AddImpact(p, in), nil
	})
}

// PUT /api/about/community-impacts/{id}
func (h *Handler) HandleUpdateImpact(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.ImpactPatch
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Community impact updated successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.UpdateImpact(p, id, in)
	})
}

// DELETE /api/about/community-impacts/{id}
func (h *Handler) HandleDeleteImpact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Community impact deleted successfully", func(p *models.AboutPage) (any, error) {
		if err := aboutpage.DeleteImpact(p, id); err != nil {
			return nil, err
		}
		return p.CommunityImpacts, nil
	})
}

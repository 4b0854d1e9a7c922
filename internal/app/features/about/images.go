package about

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/coophub/internal/app/system/aboutpage"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// HandleAddImage attaches an image URL to the story or to one item.
// POST /api/about/images/{section}[/{id}]
func (h *Handler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	var in aboutpage.ImageInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	section, id := chi.URLParam(r, "section"), chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Image added successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.AddImage(p, section, id, in.URL)
	})
}

// HandleRemoveImage detaches the image at imageIndex.
// DELETE /api/about/images/{section}[/{id}]/{imageIndex}
func (h *Handler) HandleRemoveImage(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "imageIndex"))
	if err != nil {
		respond.Error(w, r, h.Log, aboutpage.ErrInvalidImageIndex)
		return
	}
	section, id := chi.URLParam(r, "section"), chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, "Image removed successfully", func(p *models.AboutPage) (any, error) {
		return aboutpage.RemoveImage(p, section, id, idx)
	})
}

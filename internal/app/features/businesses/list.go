package businesses

import (
	"context"
	"net/http"

	businessstore "github.com/dalemusser/coophub/internal/app/store/businesses"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// filterFrom reads the directory query parameters. "q" and "search" are
// synonyms.
func filterFrom(r *http.Request) businessstore.Filter {
	q := query.Get(r, "q")
	if q == "" {
		q = query.Get(r, "search")
	}
	return businessstore.Filter{
		Query:    q,
		Category: query.Get(r, "category"),
		Location: query.Get(r, "location"),
		Status:   query.Get(r, "status"),
	}
}

// ServeList returns every business in any status, newest first.
// GET /api/businesses
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.store.List(ctx, filterFrom(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.List(w, list)
}

// ServeDirectory returns active businesses without contact details.
// GET /api/businesses/directory
func (h *Handler) ServeDirectory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f := filterFrom(r)
	f.PublicOnly = true
	list, err := h.store.List(ctx, f)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	out := make([]models.DirectoryEntry, len(list))
	for i, b := range list {
		out[i] = b.Public()
	}
	respond.List(w, out)
}

// ServeSearch returns one page of active businesses.
// GET /api/businesses/search?q=&category=&location=&page=&limit=
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f := filterFrom(r)
	f.PublicOnly = true
	pg, err := h.store.Search(ctx, f, paging.Parse(r, h.MaxLimit))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "", paging.Map(pg, models.Business.Public))
}

// ServeCategories lists the directory categories.
// GET /api/businesses/categories
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	respond.List(w, models.BusinessCategories)
}

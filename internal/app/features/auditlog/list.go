package auditlog

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/coophub/internal/app/store/audit"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

var validCategories = map[string]bool{"": true, audit.CategoryAuth: true, audit.CategoryContent: true}

// parseTime accepts RFC 3339 timestamps or plain dates (YYYY-MM-DD).
func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.BadRequest("Invalid date: " + s)
}

// ServeMine lists audit events where the caller is the subject or the actor.
// GET /api/audit?category=&eventType=&resource=&since=&until=&page=&limit=
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}

	f := audit.QueryFilter{
		Party:     &u.ID,
		Category:  query.Get(r, "category"),
		EventType: query.Get(r, "eventType"),
		Resource:  query.Get(r, "resource"),
	}
	if !validCategories[f.Category] {
		respond.Error(w, r, h.Log, apperr.BadRequest("Invalid category"))
		return
	}
	var err error
	if f.Since, err = parseTime(query.Get(r, "since")); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if f.Until, err = parseTime(query.Get(r, "until")); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pg, err := h.events.Query(ctx, f, paging.Parse(r, h.MaxLimit))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "", pg)
}

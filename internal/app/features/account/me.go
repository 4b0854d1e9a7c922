package account

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/ratelimit"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
)

var clientIP = ratelimit.ClientIP

// ServeMe returns the signed-in member.
// GET /api/auth/me
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	respond.OK(w, "", u)
}

type profileInput struct {
	BusinessName *string `json:"businessName" validate:"omitempty,min=1,max=120"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
}

// HandleUpdateMe edits the signed-in member's profile.
// PUT /api/auth/me
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusForbidden, auth.MsgForbidden)
		return
	}
	var in profileInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.users.UpdateProfile(ctx, u.ID, userstore.ProfileUpdate{
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
	})
	if err != nil {
		respond.Error(w, r, h.Log, respond.NotFoundOr(err, "User not found"))
		return
	}
	var changed []string
	if in.BusinessName != nil {
		changed = append(changed, "businessName")
	}
	if in.Phone != nil {
		changed = append(changed, "phone")
	}
	h.Audit.ProfileUpdated(ctx, r, u.ID, changed...)
	respond.OK(w, "Profile updated", updated)
}

package account

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type registerInput struct {
	BusinessName   string `json:"businessName" validate:"required,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Password       string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
	MembershipType string `json:"membershipType" validate:"omitempty,oneof=regular premium"`
}

// HandleRegister creates a member account and signs it in.
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.users.Create(ctx, userstore.NewUser{
		BusinessName:   in.BusinessName,
		Email:          in.Email,
		Phone:          in.Phone,
		Password:       in.Password,
		MembershipType: in.MembershipType,
	})
	if err != nil {
		h.Metrics.RecordAuth("register", "failure")
		h.Audit.RegisterFailed(ctx, r, in.Email, err.Error())
		respond.Error(w, r, h.Log, err)
		return
	}

	sess, err := h.issue(&u)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Metrics.RecordAuth("register", "success")
	h.Audit.Registered(ctx, r, u.ID, u.Email)
	h.Log.Info("member registered", zap.String("user_id", u.ID.Hex()))
	respond.Created(w, "User registered successfully", sess)
}

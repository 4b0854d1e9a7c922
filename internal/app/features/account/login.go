package account

import (
	"context"
	"net/http"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies credentials and returns a fresh token.
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := inputval.DecodeJSON(w, r, &in); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	if h.Limiter != nil {
		if ok, msg := h.Limiter.Check(r, in.Email); !ok {
			h.Metrics.RecordAuth("login", "throttled")
			h.Audit.LoginRateLimited(r.Context(), r, in.Email, msg)
			respond.Error(w, r, h.Log, apperr.TooManyRequests(msg))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.users.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		if apperr.Is(err, apperr.KindBadRequest) {
			h.Metrics.RecordAuth("login", "failure")
			h.Audit.LoginFailed(ctx, r, in.Email)
			h.Log.Debug("login rejected", zap.String("ip", clientIP(r)))
		}
		respond.Error(w, r, h.Log, err)
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetEmail(in.Email)
	}

	sess, err := h.issue(u)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Metrics.RecordAuth("login", "success")
	h.Audit.LoginSuccess(ctx, r, u.ID, u.Email)
	respond.OK(w, "Login successful", sess)
}

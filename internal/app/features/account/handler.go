// internal/app/features/account/handler.go
package account

import (
	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/auditlog"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/metrics"
	"github.com/dalemusser/coophub/internal/app/system/ratelimit"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves registration, login and the caller's own profile.
type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	Tokens  *auth.Tokens
	Metrics *metrics.Metrics         // optional
	Limiter *ratelimit.LoginLimiter // optional
	Audit   *auditlog.Logger        // optional

	users *userstore.Store
}

// NewHandler constructs an account Handler. m, limiter and audit may be nil.
func NewHandler(db *mongo.Database, tokens *auth.Tokens, m *metrics.Metrics, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		Tokens:  tokens,
		Metrics: m,
		Limiter: limiter,
		Audit:   audit,
		users:   userstore.New(db),
	}
}

// session is the body returned by register and login.
type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) issue(u *models.User) (session, error) {
	tok, err := h.Tokens.Issue(u.ID.Hex())
	if err != nil {
		return session{}, err
	}
	return session{Token: tok, User: u}, nil
}

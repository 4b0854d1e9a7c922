// Package auth is the bearer-token gate in front of protected routes.
//
// Protect verifies the token and attaches the referenced user to the
// request context. RequireUser rejects requests that reach it with no user
// attached. There are no roles: any signed-in member may use any protected
// route.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
	MsgForbidden   = "Not authorized"
)

// UserLoader loads the user a token refers to.
type UserLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type ctxKey struct{}

// WithUser returns ctx carrying u.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// CurrentUser returns the user attached by Protect.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(ctxKey{}).(*models.User)
	return u, ok && u != nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Protect verifies the bearer token and attaches its user. A token whose
// user no longer exists passes through with no user attached, leaving the
// decision to RequireUser.
func Protect(tokens *Tokens, users UserLoader, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := BearerToken(r)
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, MsgNoToken)
				return
			}
			sub, err := tokens.Parse(raw)
			if err != nil {
				log.Debug("bearer token rejected", zap.Error(err), zap.String("path", r.URL.Path))
				respond.Fail(w, http.StatusUnauthorized, MsgTokenFailed)
				return
			}
			id, err := primitive.ObjectIDFromHex(sub)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, MsgTokenFailed)
				return
			}

			u, err := users.GetByID(r.Context(), id)
			switch {
			case err == nil:
				r = r.WithContext(WithUser(r.Context(), u))
			case errors.Is(err, mongo.ErrNoDocuments):
				log.Warn("token subject not found", zap.String("user_id", sub))
			default:
				respond.Error(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser answers 403 when no user is attached.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			respond.Fail(w, http.StatusForbidden, MsgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Gate is Protect followed by RequireUser, the usual pair on mutating
// routes.
func Gate(tokens *Tokens, users UserLoader, log *zap.Logger) func(http.Handler) http.Handler {
	protect := Protect(tokens, users, log)
	return func(next http.Handler) http.Handler {
		return protect(RequireUser(next))
	}
}

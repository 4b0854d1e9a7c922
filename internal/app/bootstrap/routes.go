// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/coophub/internal/app/features/about"
	"github.com/dalemusser/coophub/internal/app/features/account"
	auditfeature "github.com/dalemusser/coophub/internal/app/features/auditlog"
	"github.com/dalemusser/coophub/internal/app/features/businessdetails"
	"github.com/dalemusser/coophub/internal/app/features/businesses"
	errorsfeature "github.com/dalemusser/coophub/internal/app/features/errors"
	"github.com/dalemusser/coophub/internal/app/features/health"
	"github.com/dalemusser/coophub/internal/app/features/notices"
	"github.com/dalemusser/coophub/internal/app/features/services"
	"github.com/dalemusser/coophub/internal/app/features/team"
	"github.com/dalemusser/coophub/internal/app/store/audit"
	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/auditlog"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/metrics"
	"github.com/dalemusser/coophub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler.
//
// Public surface:
//   - /health and /metrics
//   - /api/* for every resource
//
// Mutating resource routes sit behind the bearer-token gate.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger)
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) (*chi.Mux, error) {
	tokens, err := auth.NewTokens(appCfg.JWTSecret, appCfg.JWTExpiry, appCfg.JWTIssuer)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if appCfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(m.Instrument)

	// Set before any Mount so sub-routers inherit them.
	eh := errorsfeature.NewHandler(logger)
	r.NotFound(eh.NotFound)
	r.MethodNotAllowed(eh.MethodNotAllowed)

	r.Handle("/metrics", m.Handler())
	r.Mount("/health", health.Routes(health.NewHandler(deps.MongoClient, logger)))

	db := deps.MongoDatabase
	gate := auth.Gate(tokens, userstore.New(db), logger)

	auditLog := auditlog.New(audit.New(db), logger, auditlog.Config{
		Auth:    appCfg.AuditAuth,
		Content: appCfg.AuditContent,
	})
	// audited records content changes once the caller is known.
	audited := func(next http.Handler) http.Handler {
		return gate(auditLog.Content(next))
	}

	authLimiter := ratelimit.New(appCfg.AuthRateLimit, time.Minute)
	loginLimiter := ratelimit.NewLoginLimiter(appCfg.AuthRateLimit, appCfg.LoginEmailLimit)
	bg := backgroundCtx()
	go authLimiter.Run(bg)
	go loginLimiter.Run(bg)

	r.Route("/api", func(api chi.Router) {
		accountHandler := account.NewHandler(db, tokens, m, loginLimiter, auditLog, logger)
		api.Mount("/auth", account.Routes(accountHandler, gate, ratelimit.Middleware(authLimiter, logger)))
		api.Mount("/audit", auditfeature.Routes(auditfeature.NewHandler(db, appCfg.SearchMaxLimit, logger), gate))

		api.Mount("/about", about.Routes(about.NewHandler(db, logger), audited))
		api.Mount("/business-details", businessdetails.Routes(businessdetails.NewHandler(db, logger), audited))
		api.Mount("/notices", notices.Routes(notices.NewHandler(db, logger), audited))
		api.Mount("/team", team.Routes(db, logger, audited))
		api.Mount("/services", services.Routes(services.NewHandler(db, logger), audited))

		// Directory writes are open; they are still audited, without an actor.
		api.Group(func(g chi.Router) {
			g.Use(auditLog.Content)
			g.Mount("/businesses", businesses.Routes(businesses.NewHandler(db, appCfg.SearchMaxLimit, logger)))
		})
	})

	logger.Info("routes built",
		zap.Strings("allowed_origins", appCfg.AllowedOrigins),
		zap.Int("search_max_limit", appCfg.SearchMaxLimit))
	return r, nil
}

// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/auditlog"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// devJWTSecret is the default signing key. It is refused in production.
const devJWTSecret = "dev-only-change-me-please-0123456789ABCDEF"

// minProdSecretLen is the shortest JWT secret accepted in production.
const minProdSecretLen = 32

// appConfigKeys defines the configuration keys for CoopHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: COOPHUB_MONGO_URI, COOPHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "coophub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "jwt_secret", Default: devJWTSecret, Desc: "JWT signing key (must be strong in production)"},
	{Name: "jwt_expiry", Default: "720h", Desc: "JWT lifetime (e.g., 720h, 24h)"},
	{Name: "jwt_issuer", Default: "coophub", Desc: "JWT issuer claim"},

	{Name: "allowed_origins", Default: "http://localhost:3000", Desc: "Comma-separated CORS origins for the frontend"},
	{Name: "trust_proxy", Default: false, Desc: "Trust X-Forwarded-For/X-Real-IP (only behind a reverse proxy)"},

	{Name: "search_max_limit", Default: 50, Desc: "Maximum page size for directory search"},
	{Name: "auth_rate_limit", Default: 20, Desc: "Register/login requests per minute per client IP"},
	{Name: "login_email_limit", Default: 10, Desc: "Login attempts per five minutes per email"},

	{Name: "audit_auth", Default: "all", Desc: "Audit destination for auth events: all, db, log, off"},
	{Name: "audit_content", Default: "all", Desc: "Audit destination for content changes: all, db, log, off"},
	{Name: "audit_retention", Default: "2160h", Desc: "How long audit events are kept (0 = forever)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges, with precedence
// flags > env > files > defaults, reading WAFFLE_* for core settings and
// COOPHUB_* for the keys above.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COOPHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		JWTExpiry: appValues.Duration("jwt_expiry", 720*time.Hour),
		JWTIssuer: appValues.String("jwt_issuer"),

		AllowedOrigins: parseOrigins(appValues.String("allowed_origins")),
		TrustProxy:     appValues.Bool("trust_proxy"),

		SearchMaxLimit:  appValues.Int("search_max_limit"),
		AuthRateLimit:   appValues.Int("auth_rate_limit"),
		LoginEmailLimit: appValues.Int("login_email_limit"),

		AuditAuth:    strings.ToLower(strings.TrimSpace(appValues.String("audit_auth"))),
		AuditContent: strings.ToLower(strings.TrimSpace(appValues.String("audit_content"))),

		AuditRetention: appValues.Duration("audit_retention", 90*24*time.Hour),
	}

	return coreCfg, appCfg, nil
}

// parseOrigins splits a comma-separated origin list, dropping blanks and
// trailing slashes.
func parseOrigins(s string) []string {
	out := normalize.List(strings.Split(s, ","))
	for i, o := range out {
		out[i] = strings.TrimRight(o, "/")
	}
	return out
}

// validAuditDest accepts the auditlog destinations; blank means "all".
func validAuditDest(v string) bool {
	switch v {
	case "", auditlog.DestAll, auditlog.DestDB, auditlog.DestLog, auditlog.DestOff:
		return true
	}
	return false
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is checked before any connection attempt. In production
// the default or a short JWT secret aborts startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if appCfg.JWTExpiry <= 0 {
		return fmt.Errorf("jwt_expiry must be positive, got %s", appCfg.JWTExpiry)
	}
	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.JWTSecret == devJWTSecret || len(appCfg.JWTSecret) < minProdSecretLen {
			return fmt.Errorf("jwt_secret must be set to a strong value (at least %d characters) in production", minProdSecretLen)
		}
		if len(appCfg.AllowedOrigins) == 0 {
			logger.Warn("no allowed_origins configured; browser clients will be rejected by CORS")
		}
	}

	if appCfg.AuthRateLimit <= 0 || appCfg.LoginEmailLimit <= 0 {
		return fmt.Errorf("auth_rate_limit and login_email_limit must be positive")
	}
	if appCfg.AuditRetention < 0 {
		return fmt.Errorf("audit_retention must not be negative, got %s", appCfg.AuditRetention)
	}
	for key, v := range map[string]string{"audit_auth": appCfg.AuditAuth, "audit_content": appCfg.AuditContent} {
		if !validAuditDest(v) {
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", key, v)
		}
	}
	return nil
}

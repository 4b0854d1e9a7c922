// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (COOPHUB_*), configuration
// files, or command-line flags (loaded in LoadConfig). Framework-level
// settings such as ports, TLS and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer tokens
	JWTSecret string        // HMAC signing key (must be strong in production)
	JWTExpiry time.Duration // token lifetime
	JWTIssuer string        // "iss" claim; blank disables the issuer check

	// AllowedOrigins is the CORS allow-list for the browser frontend.
	AllowedOrigins []string

	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable it only behind a reverse proxy that sets those headers.
	TrustProxy bool

	// SearchMaxLimit caps the page size of directory searches.
	SearchMaxLimit int

	// AuthRateLimit is the number of register/login requests allowed per
	// client IP per minute. LoginEmailLimit is the number of login attempts
	// per email per five minutes.
	AuthRateLimit   int
	LoginEmailLimit int

	// Audit destinations per category: "all", "db", "log" or "off".
	AuditAuth    string
	AuditContent string

	// AuditRetention is how long audit events are kept; 0 keeps them forever.
	AuditRetention time.Duration
}

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// teacher-dashboard server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing parameters and
	// the administrator credentials accepted by the login endpoint.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups the security-sensitive settings injected into the services at
// construction time. Nothing here is ever read from ambient globals.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Required; the server refuses to start without it.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match are rejected during parsing.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long a newly issued JWT remains valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminUsername is the single account name accepted by the login
	// endpoint. Required.
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPasswordHash is the bcrypt hash of the administrator password.
	// Required; the plaintext password never appears in configuration.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database settings.
type DB struct {
	// DSN is the SQLite data source name (a file path).
	DSN string `env:"DSN"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server binds to.
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds the time spent reading an entire request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds the time from the end of the request header read
	// to the end of the response write.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

// Defaults applied by validate for fields left empty by every source.
const (
	DefaultHTTPAddress   = "localhost:3001"
	DefaultDSN           = "students.db"
	DefaultTokenIssuer   = "teacher-dashboard"
	DefaultTokenDuration = 24 * time.Hour
	DefaultReadTimeout   = 15 * time.Second
	DefaultWriteTimeout  = 15 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

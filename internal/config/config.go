package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// secure-desk application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: cryptographic key material,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Aggregator holds item-count aggregation settings.
	Aggregator Aggregator `envPrefix:"AGGREGATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control field
// encryption, password hashing, and token lifecycle.
type App struct {
	// MasterSecret is the secret the per-field encryption key is derived
	// from. Must be kept confidential; losing it makes every stored
	// sensitive field unreadable.
	// Env: APP_MASTER_SECRET
	MasterSecret string `env:"MASTER_SECRET"`

	// KeySalt is the salt mixed into the key derivation. Changing it
	// rotates the derived key, so it must stay stable for the lifetime
	// of a vault.
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`

	// PasswordHashKey is the secret key used when hashing account
	// passwords with HMAC-SHA256. Must be kept confidential.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// DB holds the record store backend settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the record store backend.
type DB struct {
	// Driver selects the backend engine: "postgres", "sqlite" or
	// "memory".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the selected driver: a PostgreSQL
	// URI, a SQLite file path, or a JSON file path (or ":memory:") for
	// the memory backend.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Aggregator holds item-count aggregation settings.
type Aggregator struct {
	// PollInterval is how often counts are recomputed when the backend
	// cannot push change notifications.
	// Env: AGGREGATOR_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Supported values for [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// defaultConfig carries the built-in fallbacks merged in last, so any value
// set through env, flags or JSON wins.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "secure-desk",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "secure-desk.db",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Aggregator: Aggregator{
			PollInterval: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

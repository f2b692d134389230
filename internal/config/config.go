// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverMemory   = "memory"
)

// Mail drivers.
const (
	MailDriverSMTP   = "smtp"
	MailDriverResend = "resend"
	MailDriverLog    = "log"
)

// StructuredConfig is the top-level configuration container for the
// mystery-message server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and hashing parameters, log level and version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the user/message store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Mail configures delivery of verification codes.
	Mail Mail `envPrefix:"MAIL_"`

	// Verification configures one-time codes.
	Verification Verification `envPrefix:"VERIFICATION_"`

	// Suggestions configures the message-starter provider chain.
	Suggestions Suggestions `envPrefix:"SUGGESTIONS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values controlling tokens and hashing.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost for stored secrets.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	// Driver is one of "postgres", "sqlite" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string: a PostgreSQL URL for "postgres",
	// a file path or "file:" URI for "sqlite".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Mail configures the verification email sender.
type Mail struct {
	// Driver is one of "smtp", "resend" or "log".
	// Env: MAIL_DRIVER
	Driver string `env:"DRIVER"`

	// From is the sender address, optionally with a display name.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	SMTP   SMTP   `envPrefix:"SMTP_"`
	Resend Resend `envPrefix:"RESEND_"`
}

// SMTP holds settings for the SMTP driver.
type SMTP struct {
	Host     string `env:"HOST" json:"host"`
	Port     int    `env:"PORT" json:"port"`
	Username string `env:"USERNAME" json:"username"`
	Password string `env:"PASSWORD" json:"password"`

	// TLSPolicy is "mandatory", "opportunistic" or "none".
	TLSPolicy string `env:"TLS_POLICY" json:"tls_policy"`
}

// Resend holds settings for the Resend HTTP API driver.
type Resend struct {
	APIKey  string `env:"API_KEY" json:"api_key"`
	BaseURL string `env:"BASE_URL" json:"base_url"`
}

// Verification configures one-time codes.
type Verification struct {
	// CodeTTL is how long an issued code stays valid.
	// Env: VERIFICATION_CODE_TTL
	CodeTTL time.Duration `env:"CODE_TTL"`
}

// Suggestions configures the provider chain.
type Suggestions struct {
	// ProviderTimeout bounds each provider attempt.
	// Env: SUGGESTIONS_PROVIDER_TIMEOUT
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT"`

	OpenAI OpenAI `envPrefix:"OPENAI_"`
	Gemini Gemini `envPrefix:"GEMINI_"`
}

// OpenAI configures the chat completions provider.
// The provider is disabled when APIKey is empty.
type OpenAI struct {
	APIKey  string `env:"API_KEY" json:"api_key"`
	Model   string `env:"MODEL" json:"model"`
	BaseURL string `env:"BASE_URL" json:"base_url"`
}

// Gemini configures the generateContent provider.
// The provider is disabled when APIKey is empty.
type Gemini struct {
	APIKey string `env:"API_KEY" json:"api_key"`

	// Models are tried in order until one responds.
	Models  []string `env:"MODELS" json:"models"`
	BaseURL string   `env:"BASE_URL" json:"base_url"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// defaults, an optional JSON file, the environment and command-line flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv("DOTENV_PATH")).
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

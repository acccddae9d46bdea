package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Storage drivers understood by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver                 string `mapstructure:"driver"                     validate:"required,oneof=postgres memory"`
	URL                    string `mapstructure:"url"                        validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"             validate:"gte=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"             validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"  validate:"gte=0"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// Password schemes understood by AuthConfig.PasswordScheme.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// AuthConfig contains credential storage and token settings.
type AuthConfig struct {
	PasswordScheme string `mapstructure:"password_scheme" validate:"required,oneof=plain bcrypt"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"     validate:"gte=4,lte=31"`
	// JWTSecret is optional. Tokens are only issued when it is set.
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// TokensEnabled reports whether a signing secret is configured.
func (c AuthConfig) TokensEnabled() bool {
	return c.JWTSecret != ""
}

// RateLimitConfig controls the per-client request limiter.
// A RequestsPerSecond of zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst"               validate:"gte=0"`
}

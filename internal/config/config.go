package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Recipe    RecipeConfig    `yaml:"recipe"`
	Journal   JournalConfig   `yaml:"journal"`
	Nutrition NutritionConfig `yaml:"nutrition"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout bounds every statement server-side; zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"bodyfuel"`
}

// AuthConfig holds access-token settings. Tokens are minted by the sign-in
// system; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"bodyfuel"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// StorageConfig holds S3-compatible blob storage settings for recipe images.
type StorageConfig struct {
	Bucket          string        `yaml:"bucket"            env:"STORAGE_BUCKET"            env-default:"bodyfuel-images"`
	Region          string        `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Endpoint        string        `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"false"`
	UploadTTL       time.Duration `yaml:"upload_ttl"        env:"STORAGE_UPLOAD_TTL"        env-default:"30s"`
	KeyPrefix       string        `yaml:"key_prefix"        env:"STORAGE_KEY_PREFIX"        env-default:"recipes/"`
}

// RecipeConfig holds recipe listing settings.
type RecipeConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"RECIPE_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"RECIPE_MAX_PAGE_SIZE"     env-default:"100"`
}

// JournalConfig holds meal journal settings.
type JournalConfig struct {
	// Timezone decides calendar days for callers that do not send one.
	Timezone string `yaml:"timezone" env:"JOURNAL_TIMEZONE" env-default:"UTC"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// NutritionConfig holds the day-over-day comparison settings.
type NutritionConfig struct {
	// FavorableIncreaseRaw lists the macros for which going up is good news.
	FavorableIncreaseRaw string `yaml:"favorable_increase" env:"NUTRITION_FAVORABLE_INCREASE" env-default:"protein"`

	// FavorableIncrease is parsed from FavorableIncreaseRaw during validation.
	FavorableIncrease []string `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"           env:"RATE_LIMIT_ENABLED"           env-default:"true"`
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// PageSize returns requested clamped to (0, MaxPageSize], using
// DefaultPageSize when requested is zero.
func (r RecipeConfig) PageSize(requested int) int {
	switch {
	case requested <= 0:
		return r.DefaultPageSize
	case requested > r.MaxPageSize:
		return r.MaxPageSize
	default:
		return requested
	}
}

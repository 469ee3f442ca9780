package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Inspection InspectionConfig `yaml:"inspection"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
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
	DSN                string        `yaml:"dsn"                  env:"DATABASE_DSN"                  env-required:"true"`
	MaxConns           int32         `yaml:"max_conns"            env:"DATABASE_MAX_CONNS"            env-default:"20"`
	MinConns           int32         `yaml:"min_conns"            env:"DATABASE_MIN_CONNS"            env-default:"2"`
	MaxConnLifetime    time.Duration `yaml:"max_conn_lifetime"    env:"DATABASE_MAX_CONN_LIFETIME"    env-default:"1h"`
	MaxConnIdleTime    time.Duration `yaml:"max_conn_idle_time"   env:"DATABASE_MAX_CONN_IDLE_TIME"   env-default:"30m"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"500ms"`
	MigrateOnStart     bool          `yaml:"migrate_on_start"     env:"DATABASE_MIGRATE_ON_START"     env-default:"false"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"peritagem"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	PasswordCost   int           `yaml:"password_cost"    env:"AUTH_PASSWORD_COST"    env-default:"12"`

	// LoginRatePerMinute caps login attempts per client IP.
	LoginRatePerMinute int `yaml:"login_rate_per_minute" env:"AUTH_LOGIN_RATE_PER_MINUTE" env-default:"10"`
}

// InspectionConfig holds listing limits for inspection queries.
type InspectionConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"INSPECTION_DEFAULT_PAGE_SIZE" env-default:"50"`
	MaxPageSize     int `yaml:"max_page_size"     env:"INSPECTION_MAX_PAGE_SIZE"     env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// TelemetryConfig controls OpenTelemetry providers.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"TELEMETRY_ENABLED"         env-default:"false"`
	ServiceName    string        `yaml:"service_name"    env:"TELEMETRY_SERVICE_NAME"    env-default:"peritagem-backend"`
	ExportInterval time.Duration `yaml:"export_interval" env:"TELEMETRY_EXPORT_INTERVAL" env-default:"30s"`
}

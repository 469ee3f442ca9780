package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if c.Inspection.DefaultPageSize <= 0 {
		return fmt.Errorf("inspection.default_page_size must be > 0 (got %d)", c.Inspection.DefaultPageSize)
	}
	if c.Inspection.MaxPageSize < c.Inspection.DefaultPageSize {
		return fmt.Errorf("inspection.max_page_size (%d) must be >= default_page_size (%d)",
			c.Inspection.MaxPageSize, c.Inspection.DefaultPageSize)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		return fmt.Errorf("telemetry.service_name is required when telemetry is enabled")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %s)", a.AccessTokenTTL)
	}
	if a.PasswordCost < bcrypt.MinCost || a.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("password_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordCost)
	}
	if a.LoginRatePerMinute <= 0 {
		return fmt.Errorf("login_rate_per_minute must be > 0 (got %d)", a.LoginRatePerMinute)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RememberMeTTL < c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.remember_me_ttl must be >= access_token_ttl (got %v)", c.Auth.RememberMeTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return fmt.Errorf("auth.admin_email and auth.admin_password must be set together")
	}

	if err := c.Clients.validate(); err != nil {
		return fmt.Errorf("clients: %w", err)
	}

	if c.RateLimit.AccountPerMinute <= 0 {
		return fmt.Errorf("rate_limit.account_per_minute must be > 0 (got %d)", c.RateLimit.AccountPerMinute)
	}

	return nil
}

func (c *ClientsConfig) validate() error {
	c.PhoneRegion = strings.ToUpper(strings.TrimSpace(c.PhoneRegion))
	if phonenumbers.GetCountryCodeForRegion(c.PhoneRegion) == 0 {
		return fmt.Errorf("phone_region %q is not a known region", c.PhoneRegion)
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d)", c.MaxPageSize)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history_size must be > 0 (got %d)", c.HistorySize)
	}
	return nil
}

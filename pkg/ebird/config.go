package ebird

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds eBird API connection parameters.
type Config struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
	// BackDays is how many days back the recent-observations endpoint
	// should look (eBird caps this at 30).
	BackDays int `toml:"back_days"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BaseURL  string
	APIKey   string
	Timeout  string
	BackDays string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.BackDays != 0 {
		c.BackDays = overlay.BackDays
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.ebird.org/v2"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.BackDays == 0 {
		c.BackDays = 14
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.BackDays != "" {
		if v := os.Getenv(env.BackDays); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.BackDays = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key required")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.BackDays < 1 || c.BackDays > 30 {
		return fmt.Errorf("back_days must be between 1 and 30: %d", c.BackDays)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/database"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/ebird"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvModuGISEnv             = "MODUGIS_ENV"
	EnvModuGISShutdownTimeout = "MODUGIS_SHUTDOWN_TIMEOUT"
	EnvModuGISVersion         = "MODUGIS_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "MODUGIS_DB_HOST",
	Port:            "MODUGIS_DB_PORT",
	Name:            "MODUGIS_DB_NAME",
	User:            "MODUGIS_DB_USER",
	Password:        "MODUGIS_DB_PASSWORD",
	SSLMode:         "MODUGIS_DB_SSL_MODE",
	MaxOpenConns:    "MODUGIS_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "MODUGIS_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "MODUGIS_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "MODUGIS_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "MODUGIS_STORAGE_CONTAINER_NAME",
	ConnectionString: "MODUGIS_STORAGE_CONNECTION_STRING",
}

var ebirdEnv = &ebird.Env{
	BaseURL:  "MODUGIS_EBIRD_BASE_URL",
	APIKey:   "MODUGIS_EBIRD_API_KEY",
	Timeout:  "MODUGIS_EBIRD_TIMEOUT",
	BackDays: "MODUGIS_EBIRD_BACK_DAYS",
}

// Config is the root configuration for the MODU GIS service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	Ebird           ebird.Config    `toml:"ebird"`
	Ingest          IngestConfig    `toml:"ingest"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the MODUGIS_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvModuGISEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Ebird.Merge(&overlay.Ebird)
	c.Ingest.Merge(&overlay.Ingest)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Ebird.Finalize(ebirdEnv); err != nil {
		return fmt.Errorf("ebird: %w", err)
	}
	if err := c.Ingest.Finalize(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvModuGISShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvModuGISVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvModuGISEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

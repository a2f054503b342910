package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/JosephJoshua/posad/internal/notifier"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level application config plus resolved notifier tiers.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Notifier  NotifierConfig  `koanf:"notifier"`
	Messaging MessagingConfig `koanf:"messaging"`
	Log       LogConfig       `koanf:"log"`

	// Tiers is populated by Load from notifier.tiers_file.
	Tiers []notifier.Tier `koanf:"-"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | test | release
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Type            string `koanf:"type"`
	DSN             string `koanf:"dsn"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime string `koanf:"conn_max_lifetime"`
	AutoMigrate     bool   `koanf:"auto_migrate"`
}

func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

type AuthConfig struct {
	Secret string `koanf:"secret"`
	Issuer string `koanf:"issuer"`
}

type DashboardConfig struct {
	Timezone string `koanf:"timezone"`
}

// Location resolves the configured timezone. "Local" and "" mean the host zone.
func (c DashboardConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

type NotifierConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Interval  string `koanf:"interval"`   // parsed and validated on startup
	TiersFile string `koanf:"tiers_file"` // empty uses the built-in tiers
	Link      string `koanf:"link"`
}

func (c NotifierConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
}

type MessagingConfig struct {
	Driver        string  `koanf:"driver"` // log | redis
	RedisURL      string  `koanf:"redis_url"`
	Stream        string  `koanf:"stream"`
	MaxLen        int64   `koanf:"max_len"`
	RatePerSecond float64 `koanf:"rate_per_second"` // 0 disables rate limiting
	Burst         int     `koanf:"burst"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	switch c.Server.Mode {
	case "debug", "test", "release":
	default:
		return fmt.Errorf("invalid server.mode %q (must be debug, test or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	if c.Database.Type != "" && c.Database.Type != "postgres" {
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}
	if c.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database.conn_max_lifetime %q: %w", c.Database.ConnMaxLifetime, err)
		}
	}

	if strings.TrimSpace(c.Auth.Secret) == "" {
		return fmt.Errorf("auth.secret is required")
	}

	if _, err := c.Dashboard.Location(); err != nil {
		return fmt.Errorf("invalid dashboard.timezone %q: %w", c.Dashboard.Timezone, err)
	}

	interval, err := time.ParseDuration(c.Notifier.Interval)
	if err != nil {
		return fmt.Errorf("invalid notifier.interval %q: %w", c.Notifier.Interval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("notifier.interval must be > 0")
	}

	switch c.Messaging.Driver {
	case "log":
	case "redis":
		if strings.TrimSpace(c.Messaging.RedisURL) == "" {
			return fmt.Errorf("messaging.redis_url is required for the redis driver")
		}
		if strings.TrimSpace(c.Messaging.Stream) == "" {
			return fmt.Errorf("messaging.stream is required for the redis driver")
		}
	default:
		return fmt.Errorf("unsupported messaging.driver %q", c.Messaging.Driver)
	}
	if c.Messaging.RatePerSecond < 0 {
		return fmt.Errorf("messaging.rate_per_second must be >= 0")
	}
	if c.Messaging.MaxLen < 0 {
		return fmt.Errorf("messaging.max_len must be >= 0")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be text or json)", c.Log.Format)
	}

	return nil
}

// Load parses config from file + env, validates it, then loads the notifier tiers.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                8080,
		"server.host":                "0.0.0.0",
		"server.max_body_size_mb":    1,
		"server.mode":                "release",
		"database.type":              "postgres",
		"database.dsn":               "postgres://localhost:5432/posad?sslmode=disable",
		"database.max_open_conns":    25,
		"database.max_idle_conns":    25,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,
		"auth.secret":                "",
		"auth.issuer":                "",
		"dashboard.timezone":         "Local",
		"notifier.enabled":           true,
		"notifier.interval":          "24h",
		"notifier.tiers_file":        "",
		"notifier.link":              "/products-bought",
		"messaging.driver":           "log",
		"messaging.redis_url":        "redis://localhost:6379/0",
		"messaging.stream":           "posad:notifications",
		"messaging.max_len":          100000,
		"messaging.rate_per_second":  0,
		"messaging.burst":            1,
		"log.level":                  "info",
		"log.format":                 "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("POSAD_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "POSAD_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tiers, err := notifier.LoadTiers(cfg.Notifier.TiersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifier tiers: %w", err)
	}
	cfg.Tiers = tiers

	return &cfg, nil
}

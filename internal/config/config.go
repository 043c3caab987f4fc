package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Port        string
	ContentPath string
	DBPath      string
	LogLevel    string
	GinMode     string

	// AdminToken guards /admin; admin routes are not mounted when empty.
	AdminToken string
	// HashSalt keeps visitor hashes stable across restarts when set.
	HashSalt           string
	AnalyticsEnabled   bool
	AnalyticsRetention time.Duration

	RotateInterval time.Duration
	ContactDelay   time.Duration
	ContactEvery   time.Duration
	ContactBurst   int
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

var envKeys = map[string]string{
	"port":                "PORT",
	"content_path":        "CONTENT_PATH",
	"db_path":             "DB_PATH",
	"log_level":           "LOG_LEVEL",
	"gin_mode":            "GIN_MODE",
	"admin_token":         "ADMIN_TOKEN",
	"hash_salt":           "HASH_SALT",
	"analytics_enabled":   "ANALYTICS_ENABLED",
	"analytics_retention": "ANALYTICS_RETENTION",
	"rotate_interval":     "ROTATE_INTERVAL",
	"contact_delay":       "CONTACT_DELAY",
	"contact_rate":        "CONTACT_RATE",
	"contact_burst":       "CONTACT_BURST",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("content_path", "")
	v.SetDefault("db_path", "data/portfolio.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("analytics_enabled", true)
	v.SetDefault("analytics_retention", "8760h")
	v.SetDefault("rotate_interval", "3s")
	v.SetDefault("contact_delay", "2s")
	v.SetDefault("contact_rate", "1m")
	v.SetDefault("contact_burst", 3)
}

// Load reads configuration from the environment and, when file is not
// empty, from a YAML/TOML/JSON config file. Environment values win.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:               v.GetString("port"),
		ContentPath:        v.GetString("content_path"),
		DBPath:             v.GetString("db_path"),
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		GinMode:            v.GetString("gin_mode"),
		AdminToken:         v.GetString("admin_token"),
		HashSalt:           v.GetString("hash_salt"),
		AnalyticsEnabled:   v.GetBool("analytics_enabled"),
		AnalyticsRetention: v.GetDuration("analytics_retention"),
		RotateInterval:     v.GetDuration("rotate_interval"),
		ContactDelay:       v.GetDuration("contact_delay"),
		ContactEvery:       v.GetDuration("contact_rate"),
		ContactBurst:       v.GetInt("contact_burst"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: port is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown gin mode %q", c.GinMode)
	}
	if c.RotateInterval <= 0 {
		return fmt.Errorf("config: rotate_interval must be positive")
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("config: contact_delay must not be negative")
	}
	if c.AnalyticsEnabled && c.DBPath == "" {
		return fmt.Errorf("config: db_path is required when analytics is enabled")
	}
	return nil
}

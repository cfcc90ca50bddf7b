package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - OnlineCheckInterval: how often the client probes API reachability.
//   - DatabaseDSN: sqlite DSN of the local session database.
//   - LogLevel: debug, info, warn, or error.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabaseDSN         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000"
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabaseDSN = "portal.db"
	c.LogLevel = "info"
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

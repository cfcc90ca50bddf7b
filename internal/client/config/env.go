package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over .env entries (godotenv never overrides existing values).
//
// Recognized variables:
//
//	SERVER_ENDPOINT_ADDR   base URL of the backend API
//	ONLINE_CHECK_INTERVAL  duration string, e.g. "30s"
//	DATABASE_DSN           sqlite DSN of the session database
//	LOG_LEVEL              debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ServerEndpointAddr = getEnv("SERVER_ENDPOINT_ADDR", cfg.ServerEndpointAddr)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("ONLINE_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OnlineCheckInterval = d
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

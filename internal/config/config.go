package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	DatabaseURL      string
	CORSOrigin       string
	WriteLimitMax    int
	WriteLimitWindow time.Duration
}

// Load reads configuration from the environment. Every value has a working
// default so a bare `go run ./cmd/api` starts against a local sqlite file.
func Load() *Config {
	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      getenv("DATABASE_URL", "expenses.db"),
		CORSOrigin:       getenv("CORS_ORIGIN", "*"),
		WriteLimitMax:    60,
		WriteLimitWindow: time.Minute,
	}

	if v := os.Getenv("RATE_LIMIT_WRITE_MAX"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.WriteLimitMax = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_WRITE_WINDOW_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.WriteLimitWindow = time.Duration(parsed) * time.Second
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

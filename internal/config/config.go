// Package config holds server-level settings loaded from the environment.
// LLM provider settings live in internal/llm and are loaded separately.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// Mode selects logging and router behavior: "dev" or "prod".
	Mode string

	// SessionTimeout is how long an idle session survives before it is
	// treated as expired.
	SessionTimeout time.Duration

	// SilenceThreshold is the minimum reported silence duration (seconds)
	// that triggers an encouragement nudge.
	SilenceThreshold int

	// AllowedOrigins is the CORS allow-list. "*" allows everything.
	AllowedOrigins []string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Addr:             ":8000",
		Mode:             "dev",
		SessionTimeout:   30 * time.Minute,
		SilenceThreshold: 12,
		AllowedOrigins:   []string{"*"},
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if a := os.Getenv("LEARNO_ADDR"); a != "" {
		cfg.Addr = a
	}
	if m := os.Getenv("LEARNO_MODE"); m != "" {
		cfg.Mode = m
	}
	if secs := envInt("LEARNO_SESSION_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.SessionTimeout = time.Duration(secs) * time.Second
	}
	if secs := envInt("LEARNO_SILENCE_THRESHOLD_SECONDS", 0); secs > 0 {
		cfg.SilenceThreshold = secs
	}
	if o := os.Getenv("LEARNO_ALLOWED_ORIGINS"); o != "" {
		cfg.AllowedOrigins = splitOrigins(o)
	}

	return cfg
}

// envInt reads an integer environment variable, returning def on absence
// or parse failure.
func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

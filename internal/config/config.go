// Package config loads application configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the core runtime settings. Every field has a default so
// the server boots with no environment at all; Redis and the message
// broker are optional collaborators configured in their own loaders.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads the core configuration from the environment, applying
// defaults for anything unset.
func Load() Config {
	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: getenv("APP_PORT", "8080"),
	}
}

// Shared env helpers used by the cache, rate-limit and redis loaders.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

// Package config loads CLI defaults from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds defaults for the header analyzer CLI
type Config struct {
	Scheme   string        // Scheme for the replayed request
	Timeout  time.Duration // Network timeout for the replayed request
	ProxyURL string        // Upstream SOCKS5 proxy, "" for direct
	Insecure bool          // Skip TLS certificate verification
}

// Load reads an optional .env file and then the environment.
// Unset variables fall back to defaults; flags override these values later.
func Load() *Config {
	// A missing .env file is not an error
	_ = godotenv.Load()

	return &Config{
		Scheme:   getenv("HEADERTOOLS_SCHEME", "https"),
		Timeout:  getenvDuration("HEADERTOOLS_TIMEOUT", 30*time.Second),
		ProxyURL: getenv("HEADERTOOLS_PROXY", ""),
		Insecure: getenvBool("HEADERTOOLS_INSECURE", false),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// Package config loads the simulation's tunable parameters from the
// environment, grounded on
// subculture-collective-reddit-cluster-map/backend/internal/config:
// a cached Load() that reads env vars once, with typed GetEnvAs*
// helpers and spec-matching defaults.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the host needs to run a simulation that
// isn't specific to one scenario file.
type Config struct {
	// G is the gravitational constant.
	G float64
	// Epsilon is the softening length.
	Epsilon float64
	// Theta is the Barnes-Hut opening-angle threshold.
	Theta float64
	// LogLevel is passed to bhlog.Init.
	LogLevel string
	// MetricsAddr, if non-empty, is the address cmd/barneshut serves
	// Prometheus metrics on.
	MetricsAddr string
}

var cached *Config

// Load reads env vars once and caches the result. Call ResetForTest
// between test cases that set different environment variables.
func Load() *Config {
	if cached != nil {
		return cached
	}
	cached = &Config{
		G:           getEnvAsFloat("BH_G", 6.674e-11),
		Epsilon:     getEnvAsFloat("BH_EPSILON", 3.0e4),
		Theta:       getEnvAsFloat("BH_THETA", 0.5),
		LogLevel:    strOrDefault("BH_LOG_LEVEL", "info"),
		MetricsAddr: os.Getenv("BH_METRICS_ADDR"),
	}
	return cached
}

// ResetForTest clears the cached Config; for use in tests only.
func ResetForTest() { cached = nil }

func getEnvAsFloat(name string, defaultVal float64) float64 {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return defaultVal
}

func strOrDefault(name, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return defaultVal
}

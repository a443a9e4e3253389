package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel slog.Level

	// Rate limiting, per client IP
	RateLimitRPS   float64
	RateLimitBurst int

	// Take the client IP from X-Forwarded-For / X-Real-IP. Only safe behind
	// a proxy that overwrites those headers.
	TrustProxyHeaders bool

	// Optional access gate for non-public paths
	DemoKey string
}

// LoadConfig reads the environment, loading a .env file first when one exists.
// Every malformed or out-of-range variable is reported in the returned error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	level, err := parseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	collect(err)
	shutdownTimeout, err := getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second)
	collect(err)
	rps, err := getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10)
	collect(err)
	burst, err := getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20)
	collect(err)
	trustProxy, err := getEnvAsBoolOrDefault("TRUST_PROXY_HEADERS", false)
	collect(err)

	cfg := Config{
		Port:              getEnvOrDefault("GOPORT", "8000"),
		Env:               getEnvOrDefault("ENV", "development"),
		ShutdownTimeout:   shutdownTimeout,
		LogLevel:          level,
		RateLimitRPS:      rps,
		RateLimitBurst:    burst,
		TrustProxyHeaders: trustProxy,
		DemoKey:           os.Getenv("DEMO_KEY"),
	}

	if cfg.RateLimitRPS <= 0 {
		collect(fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS))
	}
	if cfg.RateLimitBurst <= 0 {
		collect(fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", cfg.RateLimitBurst))
	}
	if cfg.ShutdownTimeout <= 0 {
		collect(fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not an integer", key, val)
	}
	return n, nil
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", key, val)
	}
	return f, nil
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: not a boolean", key, val)
	}
	return b, nil
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return d, nil
}

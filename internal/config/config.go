package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the full runtime configuration of the engine
type Config struct {
	Server    ServerConfig
	LedgerAPI LedgerAPIConfig
	View      ViewConfig
}

// ServerConfig configures the HTTP facade
type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

// LedgerAPIConfig configures the remote ledger service client
type LedgerAPIConfig struct {
	BaseURL             string
	AccessToken         string
	RequestTimeout      time.Duration
	RateLimitPerSecond  int
	RateLimitBurst      int
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

// ViewConfig configures view presentation defaults
type ViewConfig struct {
	PageSize int
}

// Load reads the configuration from environment variables with sane defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:        getEnv("ENVIRONMENT", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			RateLimitPerSecond: getIntEnv("SERVER_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("SERVER_RATE_LIMIT_BURST", 40),
		},
		LedgerAPI: LedgerAPIConfig{
			BaseURL:             getEnv("LEDGER_API_BASE_URL", "http://localhost:8000/api"),
			AccessToken:         getEnv("LEDGER_ACCESS_TOKEN", ""),
			RequestTimeout:      getDurationEnv("LEDGER_REQUEST_TIMEOUT", 15*time.Second),
			RateLimitPerSecond:  getIntEnv("LEDGER_RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:      getIntEnv("LEDGER_RATE_LIMIT_BURST", 20),
			BreakerMaxFailures:  getIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("LEDGER_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		View: ViewConfig{
			PageSize: getIntEnv("VIEW_PAGE_SIZE", 10),
		},
	}
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

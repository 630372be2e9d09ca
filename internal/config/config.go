package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv       string
	HTTPPort     int
	DataDir      string
	CatalogPath  string
	RedisAddr    string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8000"))
	if err != nil {
		port = 8000
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "false"))
	if err != nil {
		cacheEnabled = false
	}

	ttlSeconds, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "3600"))
	if err != nil || ttlSeconds <= 0 {
		ttlSeconds = 3600
	}

	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		HTTPPort:     port,
		DataDir:      getEnv("DATA_DIR", "./data"),
		CatalogPath:  getEnv("CATALOG_PATH", "./data/preguntas.csv"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheEnabled: cacheEnabled,
		CacheTTL:     time.Duration(ttlSeconds) * time.Second,
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

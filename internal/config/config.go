// Package config loads service configuration from an optional YAML file
// with environment-variable overrides. Every setting has a usable default
// so the service starts with no configuration at all.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	APIPort  string `yaml:"api_port"`
	LogLevel string `yaml:"log_level"`

	StorageBackend string `yaml:"storage_backend"` // s3 | localfs

	S3Endpoint  string `yaml:"s3_endpoint"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`
	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`
	S3UseSSL    bool   `yaml:"s3_use_ssl"`

	LocalStoragePath string `yaml:"local_storage_path"`
	SpoolDir         string `yaml:"spool_dir"`

	Categories []string `yaml:"categories"`

	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	RateLimitRPS          int `yaml:"rate_limit_rps"`
	RateLimitBurst        int `yaml:"rate_limit_burst"`
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`
	BackpressureWaitMS    int `yaml:"backpressure_wait_ms"`
}

func defaults() Config {
	return Config{
		APIPort:  "8080",
		LogLevel: "info",

		StorageBackend: "localfs",

		S3Endpoint: "localhost:9000",
		S3Bucket:   "documents",
		S3Region:   "us-east-1",

		LocalStoragePath: "./data/storage",
		SpoolDir:         os.TempDir(),

		Categories: []string{"finance", "legal", "technical", "marketing", "personal"},

		MaxUploadBytes: 32 << 20,

		RateLimitRPS:          0,
		RateLimitBurst:        0,
		MaxConcurrentRequests: 64,
		BackpressureWaitMS:    200,
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE if set, then environment overrides.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.APIPort = envString("API_PORT", cfg.APIPort)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	cfg.StorageBackend = envString("STORAGE_BACKEND", cfg.StorageBackend)

	cfg.S3Endpoint = envString("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3AccessKey = envString("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = envString("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Bucket = envString("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = envString("S3_REGION", cfg.S3Region)
	cfg.S3UseSSL = envBool("S3_USE_SSL", cfg.S3UseSSL)

	cfg.LocalStoragePath = envString("LOCAL_STORAGE_PATH", cfg.LocalStoragePath)
	cfg.SpoolDir = envString("SPOOL_DIR", cfg.SpoolDir)

	if v := os.Getenv("CATALOG_CATEGORIES"); v != "" {
		cfg.Categories = splitCategories(v)
	}

	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	cfg.RateLimitRPS = envInt("API_RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = envInt("API_RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.MaxConcurrentRequests = envInt("API_MAX_CONCURRENT_REQUESTS", cfg.MaxConcurrentRequests)
	cfg.BackpressureWaitMS = envInt("API_BACKPRESSURE_WAIT_MS", cfg.BackpressureWaitMS)

	if len(cfg.Categories) == 0 {
		return Config{}, fmt.Errorf("category list must not be empty")
	}

	return cfg, nil
}

func splitCategories(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the reel service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"reel-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"REEL_API_PORT" envDefault:"8190"`
	LogLevel        string        `env:"REEL_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"REEL_LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DatabaseURL string `env:"DB_POSTGRESQL_DSN,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Storage Backend Selection
	StorageBackend string `env:"REEL_STORAGE_BACKEND" envDefault:"s3"` // Options: "s3" or "local"

	// Local Storage Configuration
	LocalStoragePath    string `env:"REEL_LOCAL_STORAGE_PATH"`
	LocalStorageBaseURL string `env:"REEL_LOCAL_STORAGE_BASE_URL"`

	// S3 Storage Configuration
	S3Endpoint       string `env:"REEL_S3_ENDPOINT"`
	S3PublicEndpoint string `env:"REEL_S3_PUBLIC_ENDPOINT"`
	S3Region         string `env:"REEL_S3_REGION" envDefault:"us-west-2"`
	S3Bucket         string `env:"REEL_S3_BUCKET" envDefault:"reel"`
	S3AccessKeyID    string `env:"REEL_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"REEL_S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle   bool   `env:"REEL_S3_USE_PATH_STYLE" envDefault:"true"`

	// Upload Configuration
	MaxUploadBytes int64 `env:"REEL_MAX_UPLOAD_BYTES" envDefault:"104857600"` // 100 MiB; reels are video

	// Domains allowed to serve stored media in rendered previews.
	AllowedMediaDomains []string `env:"REEL_ALLOWED_MEDIA_DOMAINS" envSeparator:","`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.S3Bucket = strings.TrimSpace(cfg.S3Bucket)
	cfg.S3AccessKeyID = strings.TrimSpace(cfg.S3AccessKeyID)
	cfg.S3SecretKey = strings.TrimSpace(cfg.S3SecretKey)
	cfg.S3Endpoint = strings.TrimSpace(cfg.S3Endpoint)
	cfg.S3PublicEndpoint = strings.TrimSpace(cfg.S3PublicEndpoint)
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 100 * 1024 * 1024
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsLocalStorage returns true if the local filesystem backend is configured.
func (c *Config) IsLocalStorage() bool {
	return strings.ToLower(strings.TrimSpace(c.StorageBackend)) == "local"
}

// IsS3Storage returns true if the S3 backend is configured.
func (c *Config) IsS3Storage() bool {
	backend := strings.ToLower(strings.TrimSpace(c.StorageBackend))
	return backend == "" || backend == "s3"
}

// IsAllowedMediaHost reports whether host may appear in rendered media previews.
// An empty allowlist permits everything.
func (c *Config) IsAllowedMediaHost(host string) bool {
	if len(c.AllowedMediaDomains) == 0 {
		return true
	}
	host = strings.ToLower(strings.TrimSpace(host))
	for _, domain := range c.AllowedMediaDomains {
		if host == strings.ToLower(strings.TrimSpace(domain)) {
			return true
		}
	}
	return false
}

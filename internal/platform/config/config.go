// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, storage) via constructors.
  - Zero Hidden State: The public base URL used for asset links is handed to
    handlers explicitly, never read from a global.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds all runtime configuration for the GStone API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// BaseURL is the public origin prepended to relative asset paths
	// (e.g. "https://api.gstone.az"). No trailing slash.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Relational Database (PostgreSQL)
	DatabaseURL      string `env:"DATABASE_URL,required"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"25"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	// When empty, the migrations embedded in the binary are applied.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Store (Redis) for refresh sessions
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Upload storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"local"`
	UploadDir     string `env:"UPLOAD_DIR"     envDefault:"./uploads"`

	// Object Storage (AWS S3 / MinIO / R2)
	S3Bucket          string `env:"S3_BUCKET"`
	S3Region          string `env:"S3_REGION"     envDefault:"us-east-1"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
	S3PublicURL       string `env:"S3_PUBLIC_URL"`

	// Outbound mail for contact form notifications. Empty host disables SMTP.
	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         int    `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername     string `env:"SMTP_USERNAME"`
	SMTPPassword     string `env:"SMTP_PASSWORD"`
	SMTPFrom         string `env:"SMTP_FROM"`
	ContactRecipient string `env:"CONTACT_RECIPIENT"`

	// Cross-Origin Resource Sharing (comma separated exact origins)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// First administrator, created at startup when absent.
	AdminEmail    string `env:"ADMIN_BOOTSTRAP_EMAIL"`
	AdminUsername string `env:"ADMIN_BOOTSTRAP_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// validate checks cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageLocal:
	case StorageS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.AdminEmail != "" && len(c.AdminPassword) < 8 {
		return fmt.Errorf("config: ADMIN_BOOTSTRAP_PASSWORD must be at least 8 characters")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SMTPEnabled reports whether contact notifications are delivered by email.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.ContactRecipient != ""
}

// Origins returns the allowed CORS origins.
func (c *Config) Origins() []string {
	return c.AllowedOrigins
}

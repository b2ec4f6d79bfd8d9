// Copyright (c) 2026 Folio. All rights reserved.

/*
Package config maps environment variables onto a typed [Config].

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Storage drivers:

  - postgres: Postgres repositories, migrations applied at startup.
  - memory:   empty in-memory repositories (development, tests).
  - files:    in-memory repositories seeded from a legacy data directory.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
	StorageFiles    = "files"
)

// Media drivers.
const (
	MediaFS = "fs"
	MediaS3 = "s3"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5784"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageDriver selects the content repositories.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// APIKey gates every mutating endpoint. Empty means writes fail with 500.
	APIKey string `env:"API_KEY"`

	// DataDir is the root for filesystem media.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// LegacyDir is the legacy JSON tree used by the files driver and the importer.
	LegacyDir string `env:"LEGACY_DIR" envDefault:"./data"`

	// Media storage
	MediaDriver       string `env:"MEDIA_DRIVER"        envDefault:"fs"`
	MediaPublicPrefix string `env:"MEDIA_PUBLIC_PREFIX" envDefault:"/api/v1"`
	UploadMaxBytes    int64  `env:"UPLOAD_MAX_BYTES"    envDefault:"10485760"`

	// Object Storage (S3-compatible)
	S3Bucket          string `env:"S3_BUCKET"`
	S3Region          string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3PathStyle       bool   `env:"S3_PATH_STYLE" envDefault:"true"`

	// FlagsPath points at a YAML flag table. Empty uses the built-in table.
	FlagsPath string `env:"FLAGS_PATH"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`

	// Subdomens is exposed verbatim by GET /config.
	Subdomens bool `env:"SUBDOMENS" envDefault:"false"`

	// Logging
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB"  envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS"  envDefault:"5"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces driver-specific requirements.
func (c *Config) Validate() error {
	var errs []error

	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	c.MediaDriver = strings.ToLower(strings.TrimSpace(c.MediaDriver))

	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case StorageMemory:
	case StorageFiles:
		if c.LegacyDir == "" {
			errs = append(errs, errors.New("LEGACY_DIR is required for the files driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}

	switch c.MediaDriver {
	case MediaFS:
		if c.DataDir == "" {
			errs = append(errs, errors.New("DATA_DIR is required for the fs media driver"))
		}
	case MediaS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 media driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MEDIA_DRIVER %q", c.MediaDriver))
	}

	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
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

// Copyright (c) 2026 Folio. All rights reserved.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5784", cfg.ServerPort)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, config.MediaFS, cfg.MediaDriver)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name:    "unknown_storage",
			cfg:     config.Config{StorageDriver: "sqlite", MediaDriver: "fs", DataDir: "d", UploadMaxBytes: 1},
			wantErr: "STORAGE_DRIVER",
		},
		{
			name:    "s3_needs_bucket",
			cfg:     config.Config{StorageDriver: "memory", MediaDriver: "S3", UploadMaxBytes: 1},
			wantErr: "S3_BUCKET",
		},
		{
			name:    "non_positive_limit",
			cfg:     config.Config{StorageDriver: "memory", MediaDriver: "fs", DataDir: "d"},
			wantErr: "UPLOAD_MAX_BYTES",
		},
		{
			name: "valid_files_driver",
			cfg:  config.Config{StorageDriver: " Files ", LegacyDir: "legacy", MediaDriver: "fs", DataDir: "d", UploadMaxBytes: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/gstone")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
}

/*
TestLoad_Defaults verifies defaults and base URL normalization.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("BASE_URL", "https://api.gstone.az/")
	t.Setenv("ALLOWED_ORIGINS", "https://gstone.az,https://admin.gstone.az")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://api.gstone.az", cfg.BaseURL)
	assert.Equal(t, config.StorageLocal, cfg.StorageDriver)
	assert.Equal(t, []string{"https://gstone.az", "https://admin.gstone.az"}, cfg.Origins())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.SMTPEnabled())
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_StorageValidation verifies the S3 driver needs a bucket.
*/
func TestLoad_StorageValidation(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		bucket  string
		wantErr bool
	}{
		{"local", "local", "", false},
		{"s3 with bucket", "s3", "media", false},
		{"s3 without bucket", "s3", "", true},
		{"unknown driver", "ftp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("STORAGE_DRIVER", tt.driver)
			t.Setenv("S3_BUCKET", tt.bucket)

			_, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_AdminBootstrapPassword(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_BOOTSTRAP_EMAIL", "admin@gstone.az")
	t.Setenv("ADMIN_BOOTSTRAP_PASSWORD", "short")

	_, err := config.Load()
	assert.Error(t, err)
}

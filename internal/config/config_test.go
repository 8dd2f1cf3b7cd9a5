package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "TABLE_PREFIX", "UPLOAD_DIR", "UPLOAD_URL_PREFIX", "MAX_UPLOAD_BYTES", "FLASH_BACKEND", "FLASH_TTL", "FORM_DISTRICT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "dev_", cfg.TablePrefix)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "/uploads", cfg.UploadURLPrefix)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, FlashBackendCookie, cfg.FlashBackend)
	assert.Equal(t, 5*time.Minute, cfg.FlashTTL)
	assert.Equal(t, "quan-7", cfg.FormDistrict)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("UPLOAD_URL_PREFIX", "static/files/")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("FLASH_TTL", "30s")
	t.Setenv("FLASH_BACKEND", "redis")

	cfg := Load()

	assert.Equal(t, "prod_", cfg.TablePrefix)
	assert.Equal(t, "/static/files", cfg.UploadURLPrefix)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.FlashTTL)
	assert.Equal(t, FlashBackendRedis, cfg.FlashBackend)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("FLASH_TTL", "soon")

	cfg := Load()

	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 5*time.Minute, cfg.FlashTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "empty upload dir", mutate: func(c *Config) { c.UploadDir = "" }, wantErr: true},
		{name: "zero upload cap", mutate: func(c *Config) { c.MaxUploadBytes = 0 }, wantErr: true},
		{name: "unknown flash backend", mutate: func(c *Config) { c.FlashBackend = "memcached" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:           "8080",
				UploadDir:      "uploads",
				MaxUploadBytes: 1,
				FlashBackend:   FlashBackendCookie,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetupLogFile_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"admin-2024-01-01T00-00-00.log", "admin-2024-01-02T00-00-00.log", "admin-2024-01-03T00-00-00.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	f, err := SetupLogFile(dir, 2)
	require.NoError(t, err)
	defer f.Close()

	files, err := filepath.Glob(filepath.Join(dir, "admin-*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NotContains(t, files, filepath.Join(dir, "admin-2024-01-01T00-00-00.log"))
	assert.Contains(t, files, f.Name())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultPasswordMinLength, cfg.PasswordStrength.MinLength)
	assert.Equal(t, defaultMaxImageSize, cfg.Catalog.MaxImageSize)
	assert.Equal(t, "simulated", cfg.Payment.Mode)
	assert.NotNil(t, cfg.Admin)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
http:
  port: 4000
admin:
  email: admin@example.com
  password: from-file
auth:
  tokenTtl: 1h
catalog:
  sizes: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront-test.yaml"), []byte(yamlContent), 0o600))

	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "4100")
	t.Setenv("CATALOG_SIZES", "S,M,L")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("storefront-test", rel)
	require.NoError(t, err)

	assert.Equal(t, 4100, cfg.HTTP.Port)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"S", "M", "L"}, cfg.Catalog.Sizes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}

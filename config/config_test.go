package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.CSRF)
	assert.True(t, cfg.CSRF.Enabled)
	require.NotNil(t, cfg.Customers)
	assert.False(t, cfg.Customers.EnforceDeleteGuard)
	assert.True(t, cfg.Customers.Grid.MaskErrors)
	assert.Equal(t, defaultGridMaxPageSize, cfg.Customers.Grid.MaxPageSize)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{AccessTokenTTL: time.Hour},
		Customers: &CustomersConfig{EnforceDeleteGuard: true, Grid: GridConfig{MaxPageSize: 20}},
		Metrics:   &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.True(t, cfg.Customers.EnforceDeleteGuard)
	assert.False(t, cfg.Customers.Grid.MaskErrors)
	assert.Equal(t, 20, cfg.Customers.Grid.MaxPageSize)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: traiteur
customers:
  enforceDeleteGuard: false
  grid:
    maskErrors: true
    maxPageSize: 50
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("CUSTOMERS_GRID_MASKERRORS", "false")
	t.Setenv("CUSTOMERS_ENFORCEDELETEGUARD", "true")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "traiteur", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Customers)
	assert.True(t, cfg.Customers.EnforceDeleteGuard)
	assert.False(t, cfg.Customers.Grid.MaskErrors)
	assert.Equal(t, 50, cfg.Customers.Grid.MaxPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

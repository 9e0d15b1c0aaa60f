package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enhancer "github.com/promptforge/enhancer"
	"github.com/promptforge/enhancer/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "enhancer.yaml")

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
provider: openai
api_key: apikey
model: themodel
base_url: https://example.com/v1
`)

	cfg, err := config.Load(path)

	assert.Nil(t, err)
	assert.Equal(t, enhancer.Config{
		Provider: "openai",
		ApiKey:   "apikey",
		Model:    "themodel",
		BaseUrl:  "https://example.com/v1",
	}, cfg)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
provider: openai
api_key: apikey
model: themodel
`)

	t.Setenv("ENHANCER_MODEL", "overridden")

	cfg, err := config.Load(path)

	assert.Nil(t, err)
	assert.Equal(t, "overridden", cfg.Model)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestLoadFromEnvironmentOnly(t *testing.T) {
	t.Setenv("ENHANCER_PROVIDER", "aistudio")
	t.Setenv("ENHANCER_API_KEY", "apikey")

	cfg, err := config.Load("")

	assert.Nil(t, err)
	assert.Equal(t, "aistudio", cfg.Provider)
	assert.Equal(t, "apikey", cfg.ApiKey)
}

func TestLoadEmptyConfiguration(t *testing.T) {
	_, err := config.Load("")

	assert.ErrorIs(t, err, enhancer.ErrNoConfiguration)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
templatesDir: /srv/marketplace/templates
output: /srv/marketplace/registry.yaml
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/srv/marketplace/templates", cfg.TemplatesDir)
		assert.Equal(t, "/srv/marketplace/registry.yaml", cfg.Output)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.TemplatesDir)
		assert.Empty(t, cfg.Output)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("PSM_TEMPLATES_DIR", "/env/templates")
		t.Setenv("PSM_OUTPUT", "/env/registry.yaml")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/templates", cfg.TemplatesDir)
		assert.Equal(t, "/env/registry.yaml", cfg.Output)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("PSM_TEMPLATES_DIR", "/env/templates")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		content := "templatesDir: /file/templates\noutput: /file/registry.yaml\n"
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/templates", cfg.TemplatesDir)
		assert.Equal(t, "/file/registry.yaml", cfg.Output)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("templatesDir: [broken\n"), 0o644))

		loader := NewLoader()
		_, err := loader.Load(configFile)

		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nonexistent.yaml")

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()

		assert.Equal(t, "templates", cfg.TemplatesDir)
		assert.Equal(t, "registry.yaml", cfg.Output)
	})

	t.Run("keeps set fields", func(t *testing.T) {
		cfg := (&Config{TemplatesDir: "/custom"}).WithDefaults()

		assert.Equal(t, "/custom", cfg.TemplatesDir)
		assert.Equal(t, "registry.yaml", cfg.Output)
	})
}

func TestConfigFileExists(t *testing.T) {
	t.Run("true for existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("output: x.yaml\n"), 0o644))

		exists, err := ConfigFileExists(configFile)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("false for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()

		exists, err := ConfigFileExists(filepath.Join(tmpDir, "nope.yaml"))

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

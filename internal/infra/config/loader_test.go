package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_MissingFileYieldsDefaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.False(t, cfg.Storage.Backup)
	assert.Empty(t, cfg.Log.Level)
}

func TestLoader_Load_FileOverridesDefaults(t *testing.T) {
	confDir := t.TempDir()
	content := `
[storage]
backend = "yaml"
dir = "/tmp/udo-data"
backup = true

[log]
level = "debug"
`
	err := os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := NewLoaderWithDir(confDir).Load()
	require.NoError(t, err)

	assert.Equal(t, BackendYAML, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/udo-data", cfg.Storage.Dir)
	assert.True(t, cfg.Storage.Backup)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	confDir := t.TempDir()
	content := `
[log]
level = "warn"
`
	err := os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := NewLoaderWithDir(confDir).Load()
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend, "unset sections keep defaults")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_UnknownBackendRejected(t *testing.T) {
	confDir := t.TempDir()
	content := `
[storage]
backend = "sqlite"
`
	err := os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	_, err = NewLoaderWithDir(confDir).Load()

	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestConfig_DataDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Dir = "/explicit/path"
	dir, err := cfg.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit/path", dir)

	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	dir, err = NewDefaultConfig().DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/data", "udo"), dir)
}

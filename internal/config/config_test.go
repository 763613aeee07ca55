package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// when
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// then
	assert.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Host)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "schichtlog.db", cfg.Database.Path)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_FromFile(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("host: \":9000\"\nfrontend:\n  enabled: false\ndb:\n  driver: postgres\n  name: logbook\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// when
	cfg, err := Load(path)

	// then
	assert.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Host)
	assert.False(t, cfg.Frontend.Enabled)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "logbook", cfg.Database.Name)
	// untouched defaults survive
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  driver: sqlite\n"), 0o644))
	t.Setenv("SCHICHTLOG_DB_DRIVER", "postgres")
	t.Setenv("SCHICHTLOG_DB_PASS", "secret")

	// when
	cfg, err := Load(path)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "secret", cfg.Database.Pass)
}

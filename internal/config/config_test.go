package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtmp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_ReturnsDefaults_When_NoConfigFileExists(t *testing.T) {
	chtmp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	cfg := Load()

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MergesLocalFileOverDefaults(t *testing.T) {
	dir := chtmp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	body := "storage:\n  backend: sqlite\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jtrack.yaml"), []byte(body), 0o600))

	cfg := Load()

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Dir, "unset fields keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FallsBackToXDGConfig_When_LocalMissing(t *testing.T) {
	chtmp(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	confDir := filepath.Join(xdg, "jtrack")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	body := "storage:\n  dir: /tmp/jtrack-data\n"
	require.NoError(t, os.WriteFile(filepath.Join(confDir, ".jtrack.yaml"), []byte(body), 0o600))

	cfg := Load()

	assert.Equal(t, "/tmp/jtrack-data", cfg.Storage.Dir)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
}

func TestLoad_DegradesToDefaults_When_FileMalformed(t *testing.T) {
	dir := chtmp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jtrack.yaml"), []byte("{nope"), 0o600))

	cfg := Load()
	assert.Equal(t, Default(), cfg)
}

func TestDataDir_PrefersConfiguredDir(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.Dir = "/data/jtrack"

	dir, err := cfg.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/data/jtrack", dir)
}

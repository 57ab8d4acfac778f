package shared_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_desk/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := shared.Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "reports", cfg.ReportDir)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_env: dev\ndata_dir: /tmp/docs\n"), 0o644))

	cfg, err := shared.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "/tmp/docs", cfg.DataDir)
	assert.Equal(t, "reports", cfg.ReportDir)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/docs\n"), 0o644))
	t.Setenv("HOTELDESK_DATA_DIR", "/var/docs")

	cfg, err := shared.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/docs", cfg.DataDir)
}

func TestLoad_ExpandsPlaceholders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ${DOCS_ROOT}/store\n"), 0o644))
	t.Setenv("DOCS_ROOT", "/srv")

	cfg, err := shared.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/store", cfg.DataDir)
}

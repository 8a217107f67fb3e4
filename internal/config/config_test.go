package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mouse-blink/twins/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultThreshold, cfg.Analysis.Threshold)
	assert.Equal(t, runtime.NumCPU(), cfg.Analysis.Workers)
	assert.Equal(t, ".py", cfg.Corpus.Extension)
	assert.Equal(t, ".twins-reports", cfg.Reports.Dir)
	assert.Equal(t, []string{"csv", "xlsx", "txt"}, cfg.Reports.Formats)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	content := `analysis:
  threshold: 75.5
  workers: 3
corpus:
  classes: ["10A", "10B"]
reports:
  dir: out
  formats: [csv]
logging:
  level: debug
  pretty: false
storage:
  endpoint: minio:9000
  use_ssl: true
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.InDelta(t, 75.5, cfg.Analysis.Threshold, 1e-9)
	assert.Equal(t, 3, cfg.Analysis.Workers)
	assert.Equal(t, []string{"10A", "10B"}, cfg.Corpus.Classes)
	assert.Equal(t, "out", cfg.Reports.Dir)
	assert.Equal(t, []string{"csv"}, cfg.Reports.Formats)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
	assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TWINS_ANALYSIS_THRESHOLD", "80")
	t.Setenv("TWINS_REPORTS_DIR", "env-reports")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 80.0, cfg.Analysis.Threshold, 1e-9)
	assert.Equal(t, "env-reports", cfg.Reports.Dir)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.True(t, cfg.BackupEnabled())
	assert.Equal(t, "./data/backups", cfg.Backup.Dir)
	assert.Equal(t, "{original}_{timestamp}.json", cfg.Backup.NameFormat)
	assert.Equal(t, 5, cfg.Insights.TopProducts)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data_file: ./fixtures/purchases.json
log_level: debug
seed: 42
backup:
  enabled: false
  dir: ./snapshots
  name_format: "{original}_{uuid}.json"
  retention_days: 7
insights:
  xlsx_output: ./out/wrapped.xlsx
  top_products: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./fixtures/purchases.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.BackupEnabled())
	assert.Equal(t, "./snapshots", cfg.Backup.Dir)
	assert.Equal(t, 7, cfg.Backup.RetentionDays)
	assert.Equal(t, "./out/wrapped.xlsx", cfg.Insights.XLSXOutput)
	assert.Equal(t, 10, cfg.Insights.TopProducts)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "log level", body: "log_level: chatty\n"},
		{name: "retention", body: "backup:\n  retention_days: -1\n"},
		{name: "top products", body: "insights:\n  top_products: 500\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "data_file: [unterminated\n"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

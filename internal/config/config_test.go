package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/Mireles-OConnor/CLI-project/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contactbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "contacts.txt", cfg.File)
	assert.Equal(t, "production", cfg.Log.Env)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 3, cfg.Save.Attempts)
	assert.Empty(t, cfg.Metrics.Textfile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathAndMissingFileReturnDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
file: /var/lib/contactbook/contacts.txt
log:
  env: debug
save:
  attempts: 5
  initial_interval: 10ms
  max_interval: 1s
metrics:
  textfile: /var/lib/node_exporter/contactbook.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/var/lib/contactbook/contacts.txt", cfg.File)
	assert.Equal(t, "debug", cfg.Log.Env)
	assert.Equal(t, "stderr", cfg.Log.Output, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Save.Attempts)
	assert.Equal(t, 10*time.Millisecond, cfg.Save.InitialInterval)
	assert.Equal(t, time.Second, cfg.Save.MaxInterval)
	assert.Equal(t, "/var/lib/node_exporter/contactbook.prom", cfg.Metrics.Textfile)

	p := cfg.RetryPolicy()
	assert.Equal(t, 5, p.Attempts)
	assert.Equal(t, 10*time.Millisecond, p.InitialInterval)
	assert.Equal(t, time.Second, p.MaxInterval)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "file: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_UnreadablePath(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = ""
	cfg.Log.Env = "staging"
	cfg.Save.Attempts = 0
	cfg.Save.MaxInterval = cfg.Save.InitialInterval / 2

	err := cfg.Validate()
	require.Error(t, err)

	ve, ok := ferrors.AsValidation(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"File", "Log.Env", "Save.Attempts", "Save.MaxInterval"}, fields)
}

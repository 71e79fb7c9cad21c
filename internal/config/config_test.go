package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir and clears
// HWINFO_* variables so tests do not pick up the developer's setup.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"LANG", "BORDER", "COMMAND_TIMEOUT", "LOG_LEVEL", "DIAGNOSTICS"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
lang: en
border: rounded
command_timeout: 2s
log_level: debug
diagnostics: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "rounded", cfg.Border)
	assert.Equal(t, 2*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Diagnostics)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "lang: en\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, Defaults().Border, cfg.Border)
	assert.Equal(t, Defaults().CommandTimeout, cfg.CommandTimeout)
}

func TestLoad_UserConfigDir(t *testing.T) {
	isolate(t)

	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hwinfo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hwinfo", "config.yaml"), []byte("border: markdown\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Border)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "lang: en\ncommand_timeout: 2s\n")

	t.Setenv("HWINFO_LANG", "fr")
	t.Setenv("HWINFO_COMMAND_TIMEOUT", "750ms")
	t.Setenv("HWINFO_DIAGNOSTICS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.Lang)
	assert.Equal(t, 750*time.Millisecond, cfg.CommandTimeout)
	assert.True(t, cfg.Diagnostics)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"language", "lang: de\n", "invalid lang"},
		{"border", "border: double\n", "invalid border"},
		{"timeout", "command_timeout: 0s\n", "invalid command_timeout"},
		{"bare number timeout", "command_timeout: 5\n", "invalid command_timeout"},
		{"timeout below minimum", "command_timeout: 50ms\n", "invalid command_timeout"},
		{"log level", "log_level: loud\n", "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_BareNumberTimeoutIsNanoseconds(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "command_timeout: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Nanosecond, cfg.CommandTimeout)
	assert.ErrorContains(t, cfg.Validate(), "must be at least 100ms")
}

func TestLoad_InvalidEnvLeftForLaterOverride(t *testing.T) {
	isolate(t)
	t.Setenv("HWINFO_LANG", "de")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Lang)
	require.Error(t, cfg.Validate())

	cfg.Lang = "en"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MinimumTimeout(t *testing.T) {
	cfg := Defaults()
	cfg.CommandTimeout = MinCommandTimeout
	assert.NoError(t, cfg.Validate())

	cfg.CommandTimeout = MinCommandTimeout - time.Nanosecond
	assert.Error(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseLevel("")
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())

	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.LogLevel = "bogus"
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
}

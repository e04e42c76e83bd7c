package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the ASCIIART_* variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLocale, EnvLogLevel, EnvLogFile} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Equal(t, "@%#*+=-:. ", cfg.Render.Charset)
	assert.Equal(t, 1.0, cfg.Render.Contrast)
	assert.Equal(t, 0.5, cfg.Render.VerticalScale)
	assert.Equal(t, 2000, cfg.Toast.VisibleMs)
	assert.Equal(t, 250, cfg.Toast.FadeMs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.NoWatch)
}

func TestLoadConfigNoFiles(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	data := `{
		"version": 2,
		"locale": "ja",
		"render": {"width": 120, "invert": true},
		"toast": {"fadeMs": 500}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, 120, cfg.Render.Width)
	assert.True(t, cfg.Render.Invert)
	assert.Equal(t, "@%#*+=-:. ", cfg.Render.Charset, "missing fields use defaults")
	assert.Equal(t, 2000, cfg.Toast.VisibleMs)
	assert.Equal(t, 500, cfg.Toast.FadeMs)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644))

	_, err := LoadConfig(dir)

	assert.Error(t, err)
}

func TestLoadConfigEnvPriority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"locale": "en"}`), 0644))

	t.Setenv(EnvLocale, "ja")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Locale, "environment beats the config file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ASCIIART_LOCALE=ja\nASCIIART_LOG_FILE=/tmp/asciiart.log\n"), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, "/tmp/asciiart.log", cfg.Log.File)
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := DefaultConfig()
	cfg.Render.Width = 100
	require.NoError(t, SaveConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(CurrentVersion), raw["version"])

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 100, loaded.Render.Width)
}

func TestMergeWithDefaultsEmptyConfig(t *testing.T) {
	cfg := MergeWithDefaults(&Config{})

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestRenderConfig_Options(t *testing.T) {
	r := RenderConfig{Width: 1000, Charset: "ab", Invert: true, Contrast: 0.1, VerticalScale: 0.7}

	opts := r.Options()

	assert.Equal(t, 240, opts.Width, "width clamps to max")
	assert.Equal(t, "ab", opts.Charset)
	assert.True(t, opts.Invert)
	assert.Equal(t, 0.3, opts.Contrast, "contrast clamps to min")
	assert.Equal(t, 0.7, opts.VerticalScale)
}

func TestToastConfig_Durations(t *testing.T) {
	tc := DefaultConfig().Toast

	assert.Equal(t, 2*time.Second, tc.Visible())
	assert.Equal(t, 250*time.Millisecond, tc.Fade())
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogConfig{Level: tt.level}.SlogLevel())
		})
	}
}

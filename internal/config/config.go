package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riordanpawley/asciiart/internal/domain"
)

// FileName is the project config file
const FileName = ".asciiart.json"

// Environment overrides
const (
	EnvLocale   = "ASCIIART_LOCALE"
	EnvLogLevel = "ASCIIART_LOG_LEVEL"
	EnvLogFile  = "ASCIIART_LOG_FILE"
)

// Config represents the full asciiart configuration
type Config struct {
	Locale  string       `json:"locale"`
	Render  RenderConfig `json:"render"`
	Toast   ToastConfig  `json:"toast"`
	Log     LogConfig    `json:"log"`
	NoWatch bool         `json:"noWatch"`
}

// RenderConfig contains the initial conversion settings
type RenderConfig struct {
	Width         int     `json:"width"`
	Charset       string  `json:"charset"`
	Invert        bool    `json:"invert"`
	Contrast      float64 `json:"contrast"`
	VerticalScale float64 `json:"verticalScale"`
}

// ToastConfig contains toast timing settings
type ToastConfig struct {
	VisibleMs int `json:"visibleMs"`
	FadeMs    int `json:"fadeMs"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	opts := domain.DefaultOptions()

	return &Config{
		Locale: "en",
		Render: RenderConfig{
			Width:         opts.Width,
			Charset:       opts.Charset,
			Invert:        opts.Invert,
			Contrast:      opts.Contrast,
			VerticalScale: opts.VerticalScale,
		},
		Toast: ToastConfig{
			VisibleMs: 2000,
			FadeMs:    250,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. Environment (ASCIIART_*), including values from a .env file
// 2. .asciiart.json in project root (with version migration support)
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	// .env never overrides variables that are already set
	envPath := filepath.Join(projectPath, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := DefaultConfig()

	cfgPath := filepath.Join(projectPath, FileName)
	if data, err := os.ReadFile(cfgPath); err == nil {
		parsed, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		cfg = MergeWithDefaults(parsed)
	}

	ApplyEnv(cfg)
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}

	// Merge Render config
	if cfg.Render.Width == 0 {
		cfg.Render.Width = defaults.Render.Width
	}
	if cfg.Render.Charset == "" {
		cfg.Render.Charset = defaults.Render.Charset
	}
	if cfg.Render.Contrast == 0 {
		cfg.Render.Contrast = defaults.Render.Contrast
	}
	if cfg.Render.VerticalScale == 0 {
		cfg.Render.VerticalScale = defaults.Render.VerticalScale
	}

	// Merge Toast config
	if cfg.Toast.VisibleMs == 0 {
		cfg.Toast.VisibleMs = defaults.Toast.VisibleMs
	}
	if cfg.Toast.FadeMs == 0 {
		cfg.Toast.FadeMs = defaults.Toast.FadeMs
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// ApplyEnv overrides config values from ASCIIART_* environment variables
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
}

// Options returns the render settings clamped to the control ranges
func (r RenderConfig) Options() domain.Options {
	return domain.Options{
		Width:         int(domain.WidthRange.Clamp(float64(r.Width))),
		Charset:       r.Charset,
		Invert:        r.Invert,
		Contrast:      domain.ContrastRange.Clamp(r.Contrast),
		VerticalScale: domain.VerticalScaleRange.Clamp(r.VerticalScale),
	}
}

// Visible returns how long a toast stays shown
func (t ToastConfig) Visible() time.Duration {
	return time.Duration(t.VisibleMs) * time.Millisecond
}

// Fade returns how long a toast takes to fade out
func (t ToastConfig) Fade() time.Duration {
	return time.Duration(t.FadeMs) * time.Millisecond
}

// SlogLevel parses the configured level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 2

// migrateFunc upgrades raw config data by exactly one version
type migrateFunc func(data map[string]any) error

// migrations maps a schema version to the step that upgrades it
var migrations = map[int]migrateFunc{
	// Unversioned files only gain the version field
	0: func(data map[string]any) error { return nil },

	// Flat "toastDurationMs" became "toast.visibleMs"
	1: func(data map[string]any) error {
		old, ok := data["toastDurationMs"]
		if !ok {
			return nil
		}
		delete(data, "toastDurationMs")

		toast, _ := data["toast"].(map[string]any)
		if toast == nil {
			toast = make(map[string]any)
			data["toast"] = toast
		}
		if _, set := toast["visibleMs"]; !set {
			toast["visibleMs"] = old
		}
		return nil
	},
}

// ParseVersionedConfig decodes .asciiart.json, upgrading older schemas first.
// Both the flat form and {"version": n, "config": {...}} are accepted.
func ParseVersionedConfig(data []byte) (*Config, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	version := 0
	if v, ok := raw["version"].(float64); ok {
		version = int(v)
	}
	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	// Migrations apply to the settings themselves, wherever they sit
	body := raw
	if nested, ok := raw["config"].(map[string]any); ok {
		body = nested
	}

	body, err := ApplyMigrations(body, version)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate config: %w", err)
	}

	return decodeConfig(body)
}

// ApplyMigrations runs every step from fromVersion up to CurrentVersion
func ApplyMigrations(data map[string]any, fromVersion int) (map[string]any, error) {
	for v := fromVersion; v < CurrentVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration path from version %d to %d", v, CurrentVersion)
		}
		if err := migrate(data); err != nil {
			return nil, fmt.Errorf("migration %d -> %d failed: %w", v, v+1, err)
		}
		data["version"] = v + 1
	}
	return data, nil
}

func decodeConfig(raw map[string]any) (*Config, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// MarshalVersionedConfig serializes a config as a flat object with a version field
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	buf, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, err
	}
	out["version"] = CurrentVersion
	return json.MarshalIndent(out, "", "  ")
}

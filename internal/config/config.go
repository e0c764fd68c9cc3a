// Package config handles the optional quitcard tool configuration.
//
// This is tool configuration (where the database lives, whether to color
// output), not user settings: company name, theme and targets live in the
// database and are managed through the settings service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat quitcard configuration.
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"` // overrides ~/.quitcard/quitcard.db
	NoColor      bool   `json:"no_color,omitempty"`
}

// configPath returns ~/.quitcard/config.json.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".quitcard", "config.json"), nil
}

// LoadConfig reads the configuration file. A missing file is not an error:
// it returns zero-value defaults.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes the configuration file, creating ~/.quitcard if needed.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

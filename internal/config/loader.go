package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"n8n-mcp/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/n8n-mcp"
	configFileName = "config.yaml"
)

// DefaultConfigPath returns $HOME/.config/n8n-mcp/config.yaml, or an empty
// string when the home directory cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir, configFileName)
}

// LoadConfig reads the YAML file at configPath on top of the defaults.
// An empty configPath means DefaultConfigPath. A missing file is not an error.
func LoadConfig(configPath string) (Config, error) {
	config := GetDefaultConfig()

	if configPath == "" {
		configPath = DefaultConfigPath()
		if configPath == "" {
			logging.Debug("ConfigLoader", "No home directory, using defaults")
			return config, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config file found at %s, using defaults", configPath)
			return config, nil
		}
		logging.Error("ConfigLoader", err, "Error reading config from %s", configPath)
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configPath, err)
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", configPath)
	return config, nil
}

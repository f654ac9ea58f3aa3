package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LFroesch/burrow/internal/logger"
)

// Config holds all burrow configuration
type Config struct {
	ShowHidden      bool   `json:"show_hidden"`
	HiddenPrefix    string `json:"hidden_prefix"`
	Editor          string `json:"editor"`
	ParentPaneWidth int    `json:"parent_pane_width"`
	StatusTimeoutMs int    `json:"status_timeout_ms"`
}

const (
	defaultParentPaneWidth = 25
	defaultStatusTimeoutMs = 2000
)

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		ShowHidden:      false,
		HiddenPrefix:    ".",
		Editor:          "",
		ParentPaneWidth: defaultParentPaneWidth,
		StatusTimeoutMs: defaultStatusTimeoutMs,
	}
}

// Load reads config from ~/.config/burrow/burrow-config.json
func Load() *Config {
	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		return Default()
	}

	defaultConfig := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Save default config and return it
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	// Missing keys keep their defaults
	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	config.validate()
	return config
}

func (c *Config) validate() {
	if c.HiddenPrefix == "" {
		logger.Warn("hidden_prefix is empty, using %q", ".")
		c.HiddenPrefix = "."
	}

	if c.ParentPaneWidth <= 0 {
		c.ParentPaneWidth = defaultParentPaneWidth
	} else if c.ParentPaneWidth < 10 {
		logger.Warn("ParentPaneWidth too low (%d), using minimum of 10", c.ParentPaneWidth)
		c.ParentPaneWidth = 10
	} else if c.ParentPaneWidth > 80 {
		logger.Warn("ParentPaneWidth too high (%d), using maximum of 80", c.ParentPaneWidth)
		c.ParentPaneWidth = 80
	}

	if c.StatusTimeoutMs <= 0 {
		c.StatusTimeoutMs = defaultStatusTimeoutMs
	} else if c.StatusTimeoutMs > 60000 {
		logger.Warn("StatusTimeoutMs too high (%d), using maximum of 60000", c.StatusTimeoutMs)
		c.StatusTimeoutMs = 60000
	}
}

// Save writes config to ~/.config/burrow/burrow-config.json
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "burrow", "burrow-config.json"), nil
}

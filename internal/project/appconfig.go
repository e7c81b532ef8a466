package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
)

// DefaultConfigDir returns ~/.advslider, or ./.advslider when the home
// directory cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".advslider")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes config to path as indented JSON, creating parent
// directories as needed.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from path. A missing file yields
// DefaultAppConfig with no error; so does a config without sliders.
func LoadAppConfig(path string, log *logger.Logger) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.With("path", path).Debug("no config file, using defaults")
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}

	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	normalize(&config)
	if len(config.Sliders) == 0 {
		log.With("path", path).Warn("config has no sliders, using demo sliders")
		config.Sliders = model.DefaultPresets()
	}
	return config, nil
}

// normalize fills zero fields that would break the demo.
func normalize(config *model.AppConfig) {
	defaults := model.DefaultAppConfig()
	if config.RecentPresetFiles == nil {
		config.RecentPresetFiles = []string{}
	}
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}
	if config.WindowWidth <= 0 || config.WindowHeight <= 0 {
		config.WindowWidth, config.WindowHeight = defaults.WindowWidth, defaults.WindowHeight
	}
}

// AddRecentPresetFile moves path to the front of the recent list, keeping
// at most limit entries.
func AddRecentPresetFile(config *model.AppConfig, path string, limit int) {
	recent := []string{path}
	for _, p := range config.RecentPresetFiles {
		if p != path && len(recent) < limit {
			recent = append(recent, p)
		}
	}
	config.RecentPresetFiles = recent
}

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/advslider/internal/model"
)

// presetFileVersion is written to every preset file.
const presetFileVersion = 1

// PresetFile is the YAML document holding a list of slider presets.
type PresetFile struct {
	Version int                  `yaml:"version"`
	Sliders []model.SliderPreset `yaml:"sliders"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadPresets reads and validates a YAML preset file. Presets without an
// ID are given one.
func LoadPresets(path string) ([]model.SliderPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(path, 0, err)
	}
	return ParsePresets(path, data)
}

// ParsePresets decodes and validates preset YAML. path is used in errors.
func ParsePresets(path string, data []byte) ([]model.SliderPreset, error) {
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, newParseError(path, extractLine(err), err)
	}
	if file.Version > presetFileVersion {
		return nil, newValidationError("version",
			fmt.Sprintf("unsupported version %d (max %d)", file.Version, presetFileVersion), nil)
	}
	if len(file.Sliders) == 0 {
		return nil, newValidationError("sliders", "at least one slider is required", nil)
	}
	for i := range file.Sliders {
		if file.Sliders[i].ID == "" {
			file.Sliders[i].ID = uuid.New().String()[:8]
		}
	}
	if err := ValidatePresets(file.Sliders); err != nil {
		return nil, err
	}
	return file.Sliders, nil
}

// SavePresets validates presets and writes them to path as YAML.
func SavePresets(path string, presets []model.SliderPreset) error {
	if len(presets) == 0 {
		return errors.New("no presets to save")
	}
	if err := ValidatePresets(presets); err != nil {
		return err
	}
	data, err := yaml.Marshal(PresetFile{Version: presetFileVersion, Sliders: presets})
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
}

package model

// AppConfig holds application-wide preferences and the sliders shown by
// the demo.
type AppConfig struct {
	Theme        string  `json:"theme"`     // "light", "dark", "system"
	LogLevel     string  `json:"log_level"` // zerolog level name
	WindowWidth  float32 `json:"window_width"`
	WindowHeight float32 `json:"window_height"`

	// PresetsFile optionally points at a YAML preset file that replaces
	// Sliders at startup.
	PresetsFile       string         `json:"presets_file"`
	RecentPresetFiles []string       `json:"recent_preset_files"`
	Sliders           []SliderPreset `json:"sliders"`
}

// DefaultAppConfig returns an AppConfig populated with the demo sliders.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:             "system",
		LogLevel:          "info",
		WindowWidth:       420,
		WindowHeight:      260,
		RecentPresetFiles: []string{},
		Sliders:           DefaultPresets(),
	}
}

// DefaultPresets returns the four showcase sliders: a plain integer
// slider, a currency slider, a small negative float range and a styled
// wide range.
func DefaultPresets() []SliderPreset {
	plain := NewSliderPreset("Slider 1")
	plain.Minimum, plain.Maximum = 100, 500
	plain.Value = 375

	currency := NewSliderPreset("Slider 2")
	currency.Minimum, currency.Maximum = -500, 2500
	currency.Value = 100
	currency.Float = true
	currency.Decimals = 2
	currency.Prefix = "~"
	currency.Suffix = " €"
	currency.ThousandsSeparator = ","
	currency.SingleStep = 50
	currency.PageStep = 250
	currency.BorderRadius = 3
	currency.AccentColor = "#F0921F"

	angle := NewSliderPreset("Slider 3")
	angle.Minimum, angle.Maximum = -1, -0.1
	angle.Value = -0.552
	angle.Float = true
	angle.Decimals = 3
	angle.Suffix = "°"
	angle.BorderRadius = 5
	angle.AccentColor = "#A033E8"

	wide := NewSliderPreset("Slider 4")
	wide.Minimum, wide.Maximum = -150, 300
	wide.Value = 12.5
	wide.Float = true
	wide.BorderRadius = 3
	wide.AccentColor = "#666666"
	wide.BorderColor = "#999999"

	return []SliderPreset{plain, currency, angle, wide}
}

package model

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// SliderPreset is the serialisable configuration of one slider. Zero
// values mean "use the slider default", so the boolean options are
// phrased as opt-outs and an empty color or decimal separator keeps the
// stock value.
type SliderPreset struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name" validate:"required"`

	Minimum    float64 `json:"minimum" yaml:"minimum"`
	Maximum    float64 `json:"maximum" yaml:"maximum" validate:"gtfield=Minimum"`
	Value      float64 `json:"value" yaml:"value"`
	Float      bool    `json:"float" yaml:"float"`
	Decimals   int     `json:"decimals" yaml:"decimals" validate:"min=0,max=15"`
	SingleStep float64 `json:"single_step" yaml:"single_step" validate:"min=0"`
	PageStep   float64 `json:"page_step" yaml:"page_step" validate:"min=0"`

	ThousandsSeparator string `json:"thousands_separator" yaml:"thousands_separator"`
	DecimalSeparator   string `json:"decimal_separator" yaml:"decimal_separator"`
	Prefix             string `json:"prefix" yaml:"prefix"`
	Suffix             string `json:"suffix" yaml:"suffix"`
	HideValue          bool   `json:"hide_value" yaml:"hide_value"`

	TextColor       string `json:"text_color" yaml:"text_color" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color" yaml:"background_color" validate:"omitempty,hexcolor"`
	AccentColor     string `json:"accent_color" yaml:"accent_color" validate:"omitempty,hexcolor"`
	BorderColor     string `json:"border_color" yaml:"border_color" validate:"omitempty,hexcolor"`
	BorderRadius    int    `json:"border_radius" yaml:"border_radius" validate:"min=0"`

	FontFamily string  `json:"font_family" yaml:"font_family"`
	FontSize   float64 `json:"font_size" yaml:"font_size" validate:"min=0"`
	FontWeight int     `json:"font_weight" yaml:"font_weight" validate:"omitempty,font_weight"`

	KeyboardDisabled   bool `json:"keyboard_disabled" yaml:"keyboard_disabled"`
	MouseWheelDisabled bool `json:"mouse_wheel_disabled" yaml:"mouse_wheel_disabled"`
}

// NewSliderPreset creates a preset for the default slider with a fresh ID.
func NewSliderPreset(name string) SliderPreset {
	return SliderPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Minimum:  0,
		Maximum:  10,
		Decimals: 1,
	}
}

// NewSlider builds a slider configured from the preset.
func (p SliderPreset) NewSlider() (*Slider, error) {
	s := NewSlider()
	if err := p.ApplyTo(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyTo configures s from the preset. Colors are parsed before anything
// is changed, so a malformed preset leaves s untouched.
func (p SliderPreset) ApplyTo(s *Slider) error {
	textColor, err := presetColor(p.TextColor, DefaultTextColor)
	if err != nil {
		return fmt.Errorf("preset %q: text_color: %w", p.Name, err)
	}
	backgroundColor, err := presetColor(p.BackgroundColor, DefaultBackgroundColor)
	if err != nil {
		return fmt.Errorf("preset %q: background_color: %w", p.Name, err)
	}
	accentColor, err := presetColor(p.AccentColor, DefaultAccentColor)
	if err != nil {
		return fmt.Errorf("preset %q: accent_color: %w", p.Name, err)
	}
	borderColor, err := presetColor(p.BorderColor, DefaultBorderColor)
	if err != nil {
		return fmt.Errorf("preset %q: border_color: %w", p.Name, err)
	}

	s.SetRange(p.Minimum, p.Maximum)
	s.SetFloat(p.Float)
	s.SetDecimals(p.Decimals)
	s.SetSingleStep(p.SingleStep)
	s.SetPageStep(p.PageStep)
	s.SetThousandsSeparator(p.ThousandsSeparator)
	if p.DecimalSeparator != "" {
		s.SetDecimalSeparator(p.DecimalSeparator)
	}
	s.SetPrefix(p.Prefix)
	s.SetSuffix(p.Suffix)
	s.ShowValue(!p.HideValue)
	s.SetTextColor(textColor)
	s.SetBackgroundColor(backgroundColor)
	s.SetAccentColor(accentColor)
	s.SetBorderColor(borderColor)
	s.SetBorderRadius(p.BorderRadius)

	font := DefaultFont()
	if p.FontFamily != "" {
		font.Family = p.FontFamily
	}
	if p.FontSize > 0 {
		font.Size = p.FontSize
	}
	if p.FontWeight > 0 {
		font.Weight = p.FontWeight
	}
	s.SetFont(font)

	s.SetKeyboardInputEnabled(!p.KeyboardDisabled)
	s.SetMouseWheelInputEnabled(!p.MouseWheelDisabled)
	s.SetValue(p.Value)
	return nil
}

// presetColor parses a hex color, keeping fallback for an empty string.
func presetColor(hex string, fallback color.NRGBA) (color.NRGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	return ParseHexColor(hex)
}

// PresetFromSlider captures the current configuration of s.
func PresetFromSlider(id, name string, s *Slider) SliderPreset {
	font := s.Font()
	return SliderPreset{
		ID:                 id,
		Name:               name,
		Minimum:            s.Minimum(),
		Maximum:            s.Maximum(),
		Value:              s.RawValue(),
		Float:              s.IsFloat(),
		Decimals:           s.Decimals(),
		SingleStep:         s.SingleStep(),
		PageStep:           s.PageStep(),
		ThousandsSeparator: s.ThousandsSeparator(),
		DecimalSeparator:   s.DecimalSeparator(),
		Prefix:             s.Prefix(),
		Suffix:             s.Suffix(),
		HideValue:          !s.IsShowingValue(),
		TextColor:          HexColor(s.TextColor()),
		BackgroundColor:    HexColor(s.BackgroundColor()),
		AccentColor:        HexColor(s.AccentColor()),
		BorderColor:        HexColor(s.BorderColor()),
		BorderRadius:       s.BorderRadius(),
		FontFamily:         font.Family,
		FontSize:           font.Size,
		FontWeight:         font.Weight,
		KeyboardDisabled:   !s.IsKeyboardInputEnabled(),
		MouseWheelDisabled: !s.IsMouseWheelInputEnabled(),
	}
}

// Package export writes slider presets to printable and exchange formats:
// PDF sheets, QR-coded preset cards, XLSX tables and DXF drawings.
package export

import (
	"errors"
	"fmt"

	"github.com/piwi3910/advslider/internal/model"
)

// Size in pixels at which every preset is rendered before scaling to the
// target medium.
const (
	frameWidthPx  = 240.0
	frameHeightPx = 18.0
)

var errNoPresets = errors.New("no presets to export")

// renderedPreset is a preset with its slider and one rendered frame.
type renderedPreset struct {
	preset model.SliderPreset
	slider *model.Slider
	frame  model.Frame
}

// renderPresets builds and renders every preset with m. The first
// failure is returned wrapped with the preset name.
func renderPresets(presets []model.SliderPreset, m model.TextMeasurer) ([]renderedPreset, error) {
	if len(presets) == 0 {
		return nil, errNoPresets
	}
	out := make([]renderedPreset, 0, len(presets))
	for _, p := range presets {
		s, err := p.NewSlider()
		if err != nil {
			return nil, err
		}
		frame, _, err := s.Render(frameWidthPx, frameHeightPx, m)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		out = append(out, renderedPreset{preset: p, slider: s, frame: frame})
	}
	return out, nil
}

package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/advslider/internal/model"
)

const samplePresets = `version: 1
sliders:
  - id: budget01
    name: Budget
    minimum: -500
    maximum: 2500
    value: 100
    float: true
    decimals: 2
    thousands_separator: ","
    prefix: "~"
    suffix: " €"
    accent_color: "#F0921F"
    border_radius: 3
  - name: Angle
    minimum: -1
    maximum: -0.1
    value: -0.552
    float: true
    decimals: 3
    suffix: "°"
    font_weight: 400
`

func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets("sample.yaml", []byte(samplePresets))
	require.NoError(t, err)
	require.Len(t, presets, 2)

	assert.Equal(t, "budget01", presets[0].ID)
	assert.Len(t, presets[1].ID, 8, "missing IDs are generated")

	s, err := presets[0].NewSlider()
	require.NoError(t, err)
	assert.Equal(t, "~100.00 €", s.ValueFormatted())

	s, err = presets[1].NewSlider()
	require.NoError(t, err)
	assert.Equal(t, "-0.552°", s.ValueFormatted())
	assert.Equal(t, model.WeightNormal, s.Font().Weight)
}

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.yaml")
	presets := model.DefaultPresets()

	require.NoError(t, SavePresets(path, presets))

	loaded, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, presets, loaded)
}

func TestSavePresetsRejectsEmpty(t *testing.T) {
	err := SavePresets(filepath.Join(t.TempDir(), "p.yaml"), nil)
	require.Error(t, err)
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParsePresetsSyntaxErrorHasLine(t *testing.T) {
	data := []byte("version: 1\nsliders:\n  - name: [unclosed\n")
	_, err := ParsePresets("broken.yaml", data)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "broken.yaml", perr.Path)
	assert.Greater(t, perr.Line, 0)
	assert.Contains(t, err.Error(), "broken.yaml:")
}

func TestParsePresetsValidation(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "inverted range",
			yaml:  "sliders:\n  - name: a\n    minimum: 10\n    maximum: 1\n",
			field: "sliders[0].maximum",
		},
		{
			name:  "missing name",
			yaml:  "sliders:\n  - minimum: 0\n    maximum: 1\n",
			field: "sliders[0].name",
		},
		{
			name:  "negative decimals",
			yaml:  "sliders:\n  - name: a\n    maximum: 1\n    decimals: -1\n",
			field: "sliders[0].decimals",
		},
		{
			name:  "bad color",
			yaml:  "sliders:\n  - name: a\n    maximum: 1\n    accent_color: orange\n",
			field: "sliders[0].accent_color",
		},
		{
			name:  "bad font weight",
			yaml:  "sliders:\n  - name: a\n    maximum: 1\n    font_weight: 450\n",
			field: "sliders[0].font_weight",
		},
		{
			name:  "duplicate id",
			yaml:  "sliders:\n  - {id: x, name: a, maximum: 1}\n  - {id: x, name: b, maximum: 1}\n",
			field: "sliders[1].id",
		},
		{
			name:  "no sliders",
			yaml:  "version: 1\n",
			field: "sliders",
		},
		{
			name:  "future version",
			yaml:  "version: 2\nsliders:\n  - {name: a, maximum: 1}\n",
			field: "version",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets("p.yaml", []byte(tt.yaml))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

// Package tui hosts the configured sliders in a terminal. Each slider row
// is the core Frame rasterised into character cells.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
)

const (
	// headerLines is the title line plus a blank line above the rows.
	headerLines = 2
	// nameWidth is the label column, focus marker included.
	nameWidth = 16

	defaultBarWidth = 40
	minBarWidth     = 10
	maxBarWidth     = 80
)

// CellMeasurer measures text in terminal cells. Every glyph is one row
// tall.
type CellMeasurer struct{}

func (CellMeasurer) MeasureText(text string, _ model.Font) (float64, float64) {
	return float64(cellWidth(text)), 1
}

type row struct {
	name   string
	slider *model.Slider
	line   string // last painted line
	err    error
}

// Model contains the Bubbletea state for the slider terminal.
type Model struct {
	rows     []*row
	focus    int
	barWidth int
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	quitting bool
}

// NewModel builds one row per preset. Presets that fail to build keep a
// default slider and report the error in their row.
func NewModel(presets []model.SliderPreset, log *logger.Logger) Model {
	m := Model{barWidth: defaultBarWidth, keys: defaultKeyMap(), help: help.New(), log: log}
	for _, p := range presets {
		s, err := p.NewSlider()
		if err != nil {
			log.Error(err, "invalid slider preset")
			s = model.NewSlider()
		}
		r := &row{name: p.Name, slider: s, err: err}
		name := p.Name
		s.OnValueChanged(func(v model.Reading) {
			log.Debugf("%s changed to %s", name, v)
		})
		m.rows = append(m.rows, r)
	}
	return m
}

// Init starts the Bubbletea program with mouse reporting.
func (m Model) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Focused returns the index of the focused row.
func (m Model) Focused() int {
	return m.focus
}

// Slider returns the slider in row i.
func (m Model) Slider(i int) *model.Slider {
	return m.rows[i].slider
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Presets captures the current sliders so callers can persist values.
func (m Model) Presets(ids []string) []model.SliderPreset {
	out := make([]model.SliderPreset, len(m.rows))
	for i, r := range m.rows {
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		out[i] = model.PresetFromSlider(id, r.name, r.slider)
	}
	return out
}

// rowAt maps a screen line to a row index, or -1.
func (m Model) rowAt(y int) int {
	i := y - headerLines
	if i < 0 || i >= len(m.rows) {
		return -1
	}
	return i
}

// barX converts a screen column into a slider position. The last cell
// maps to the full bar width so the maximum stays reachable.
func (m Model) barX(x int) float64 {
	cx := min(max(x-nameWidth, 0), m.barWidth-1)
	return float64(cx) * float64(m.barWidth) / float64(m.barWidth-1)
}

func (m Model) dragging() int {
	for i, r := range m.rows {
		if r.slider.Dragging() {
			return i
		}
	}
	return -1
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/advslider/internal/model"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("AdvSlider • %d sliders", len(m.rows))),
		"",
	}
	for i, r := range m.rows {
		sections = append(sections, m.nameCell(i, r.name)+m.paintRow(r))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) nameCell(i int, name string) string {
	runes := []rune(name)
	if len(runes) > nameWidth-3 {
		runes = []rune(strings.TrimRight(string(runes[:nameWidth-4]), " ") + "…")
	}
	if i == m.focus {
		return focusStyle.Width(nameWidth).Render("▸ " + string(runes))
	}
	return nameStyle.Width(nameWidth).Render("  " + string(runes))
}

// paintRow renders r at the current bar width, reusing the previous line
// when the slider reports nothing changed.
func (m Model) paintRow(r *row) string {
	frame, changed, err := r.slider.Render(float64(m.barWidth), 1, CellMeasurer{})
	if err != nil {
		if r.err == nil {
			m.log.Error(err, "slider render failed")
		}
		r.err = err
		r.line = failureStyle.Render(err.Error())
		return r.line
	}
	if !changed && r.err == nil && r.line != "" {
		return r.line
	}
	r.err = nil

	cells, barCells := rasterize(frame, m.barWidth)
	r.line = paint(frame, cells, barCells)
	return r.line
}

// rasterize lays frame out on width cells. It returns the characters of
// the row and how many leading cells the bar fills.
func rasterize(frame model.Frame, width int) ([]rune, int) {
	cells := []rune(strings.Repeat(" ", width))

	barCells := 0
	if frame.Bar != nil {
		barCells = min(frame.MarkerX, width)
	}

	if l := frame.Label; l != nil {
		x := max(int(l.X), 0)
		for _, r := range l.Text {
			if x >= width {
				break
			}
			cells[x] = r
			x++
		}
	}
	return cells, barCells
}

func paint(frame model.Frame, cells []rune, barCells int) string {
	base := lipgloss.NewStyle().Background(hex(frame.Background))
	if frame.Label != nil {
		base = base.Foreground(hex(frame.Label.Color))
	}

	var b strings.Builder
	if barCells > 0 {
		bar := base.Background(hex(frame.Bar.Color))
		b.WriteString(bar.Render(string(cells[:barCells])))
	}
	b.WriteString(base.Render(string(cells[barCells:])))
	return b.String()
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/piwi3910/advslider/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.barWidth = min(max(msg.Width-nameWidth-1, minBarWidth), maxBarWidth)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	}
	if k, ok := m.keys.sliderKey(msg); ok && len(m.rows) > 0 {
		m.rows[m.focus].slider.HandleKey(k)
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.rows[m.focus].slider.CancelDrag()
	m.focus = (m.focus + delta + len(m.rows)) % len(m.rows)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// Terminals often report releases and drags without a button, so an
	// active drag owns every event until it ends.
	if d := m.dragging(); d >= 0 {
		s := m.rows[d].slider
		s.SetSize(float64(m.barWidth), 1)
		switch msg.Action {
		case tea.MouseActionMotion:
			s.HandlePointer(model.PointerMove, model.ButtonPrimary, m.barX(msg.X))
		case tea.MouseActionRelease:
			s.HandlePointer(model.PointerRelease, model.ButtonPrimary, m.barX(msg.X))
		}
		return
	}

	i := m.rowAt(msg.Y)
	if i < 0 {
		return
	}
	s := m.rows[i].slider
	s.SetSize(float64(m.barWidth), 1)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.HandleWheel(1)
	case tea.MouseButtonWheelDown:
		s.HandleWheel(-1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.X >= nameWidth {
			m.focus = i
			s.HandlePointer(model.PointerPress, model.ButtonPrimary, m.barX(msg.X))
		}
	}
}

package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/advslider/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
)

func cellWidth(s string) int {
	return lipgloss.Width(s)
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(model.HexColor(c))
}

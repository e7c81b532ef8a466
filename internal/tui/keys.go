package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/piwi3910/advslider/internal/model"
)

type keyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding
	Next, Prev            key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "step")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "page")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home/end", "limits")),
		End:      key.NewBinding(key.WithKeys("end")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap. Only the first binding of each pair
// carries help text.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.PageUp, k.Home, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// sliderKey maps a key press to the core key it drives.
func (k keyMap) sliderKey(msg tea.KeyMsg) (model.Key, bool) {
	for _, b := range []struct {
		binding key.Binding
		key     model.Key
	}{
		{k.Left, model.KeyLeft},
		{k.Right, model.KeyRight},
		{k.Up, model.KeyUp},
		{k.Down, model.KeyDown},
		{k.PageUp, model.KeyPageUp},
		{k.PageDown, model.KeyPageDown},
		{k.Home, model.KeyHome},
		{k.End, model.KeyEnd},
	} {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return 0, false
}

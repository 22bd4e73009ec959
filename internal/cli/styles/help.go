package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// DemoKeyMap defines keybindings of the interactive demo.
type DemoKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Run     key.Binding
	Surface key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Surface, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run},
		{k.Surface, k.Quit},
	}
}

// DefaultDemoKeyMap returns the default demo keybindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Surface: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp returns a help model styled with the theme.
func NewHelp(t *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = t.HelpKey
	h.Styles.ShortDesc = t.HelpDesc
	h.Styles.FullKey = t.HelpKey
	h.Styles.FullDesc = t.HelpDesc
	return h
}

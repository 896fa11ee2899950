package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

// keyMap binds terminal keys to pad signals. Terminals report presses
// only, so each press is held for a single tick.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "q", "pgup"),
			key.WithHelp("←/q", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "e", "pgdown"),
			key.WithHelp("→/e", "next tab"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Menu: key.NewBinding(
			key.WithKeys("tab", "f1", "home"),
			key.WithHelp("tab", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// signal returns the pad signal for msg, or zero
func (k keyMap) signal(msg tea.KeyMsg) shell.Signal {
	switch {
	case key.Matches(msg, k.Up):
		return shell.SignalUp
	case key.Matches(msg, k.Down):
		return shell.SignalDown
	case key.Matches(msg, k.PrevTab):
		return shell.SignalPrevTab
	case key.Matches(msg, k.NextTab):
		return shell.SignalNextTab
	case key.Matches(msg, k.Confirm):
		return shell.SignalConfirm
	case key.Matches(msg, k.Cancel):
		return shell.SignalCancel
	case key.Matches(msg, k.Menu):
		return shell.SignalMenu
	}
	return 0
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Confirm, k.Cancel, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab},
		{k.Confirm, k.Cancel, k.Menu, k.Quit},
	}
}

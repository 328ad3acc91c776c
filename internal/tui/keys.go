package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the editor screen
type keyMap struct {
	StepUp   key.Binding
	StepDown key.Binding
	Cycle    key.Binding
	Commit   key.Binding
	Revert   key.Binding
	Copy     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepUp, k.StepDown, k.Cycle, k.Commit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StepUp, k.StepDown, k.Cycle},
		{k.Commit, k.Revert, k.Clear},
		{k.Copy, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		StepUp: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑", "step up"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down", "pgdown"),
			key.WithHelp("↓", "step down"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next notation"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Revert: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard edit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clear value"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

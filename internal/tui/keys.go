package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the global bindings. Scene-local keys are matched in scenes.
type keyMap struct {
	Adjust   key.Binding
	Navigate key.Binding
	Reset    key.Binding
	Forecast key.Binding
	Compare  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Adjust:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
		Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset inputs")),
		Forecast: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "forecast")),
		Compare:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare mixes")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Adjust, k.Forecast, k.Compare, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Adjust, k.Reset},
		{k.Forecast, k.Compare, k.Copy},
		{k.Help, k.Back, k.Quit},
	}
}

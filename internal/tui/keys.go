package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application
type KeyMap struct {
	// Input
	Submit key.Binding
	Clear  key.Binding

	// Actions typed at the action prompt. These are shown in the help legend
	// only; the text input receives the letters.
	Fill  key.Binding
	Empty key.Binding
	Pour  key.Binding
	Quit  key.Binding

	Help      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear input"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fill"),
		),
		Empty: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "empty"),
		),
		Pour: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pour"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q/quit", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit, k.Help}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fill, k.Empty, k.Pour, k.Quit},
		{k.Submit, k.Clear, k.Help, k.Interrupt},
	}
}

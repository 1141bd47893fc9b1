package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// TesterKeyMap defines keybindings for the interactive rule tester.
type TesterKeyMap struct {
	Record key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TesterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Record, k.Clear, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k TesterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Record, k.Clear},
		{k.Help, k.Quit},
	}
}

// DefaultTesterKeyMap returns the default tester keybindings.
func DefaultTesterKeyMap() TesterKeyMap {
	return TesterKeyMap{
		Record: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "record"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear log"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.Subtle
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = theme.Subtle
	return h
}

package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlaygroundKeyMap defines keybindings for the docking playground.
type PlaygroundKeyMap struct {
	HostUp    key.Binding
	HostDown  key.Binding
	HostLeft  key.Binding
	HostRight key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Pin       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HostLeft, k.Grow, k.Shrink, k.Pin, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.HostUp, k.HostDown, k.HostLeft, k.HostRight},
		{k.Grow, k.Shrink},
		{k.Pin},
		{k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns the default playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		HostUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "host up"),
		),
		HostDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "host down"),
		),
		HostLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←↓↑→", "move host"),
		),
		HostRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "host right"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow host"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink host"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle pin"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelpModel creates a themed help model.
func NewHelpModel(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

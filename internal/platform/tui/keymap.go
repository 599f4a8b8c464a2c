package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// KeyMap translates Bubble Tea key messages to runner actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Start  key.Binding
	Exit   key.Binding
	Scores key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
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

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Start, k.Exit, k.Scores},
		{k.Help, k.Quit},
	}
}

// Action maps msg to a simulation or host action. Keys that are not
// bound return core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	}
	return core.ActionNone
}

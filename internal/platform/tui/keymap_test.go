package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionExit},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, core.ActionExit},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpCoversGameplayKeys(t *testing.T) {
	km := DefaultKeyMap()
	short := km.ShortHelp()
	if len(short) == 0 {
		t.Fatal("ShortHelp() is empty")
	}
	var n int
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	if n < len(short) {
		t.Errorf("FullHelp() has %d bindings, fewer than ShortHelp() %d", n, len(short))
	}
}

// Package tui hosts a runner session in a Bubble Tea program.
// It maps keys to actions, drives the fixed-rate tick loop and draws
// snapshots into a core.Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval returns the frame period for tickRate ticks per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

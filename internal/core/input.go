package core

import "sort"

// Action is a semantic input intent, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - steer one lane left
	ActionRight        // D, Right arrow - steer one lane right
	ActionJump         // Space, W, Up
	ActionStart        // Enter - start or restart a run
	ActionExit         // Esc, B - leave the game-over screen for the menu
	ActionQuit         // Q, Ctrl+C - host only, never reaches the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionExit:
		return "Exit"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// List returns the triggered actions in ascending order, so a frame can be
// applied and recorded deterministically.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, on := range f.Actions {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

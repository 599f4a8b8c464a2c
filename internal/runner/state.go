// Package runner implements the lane-runner simulation: player kinematics,
// procedural spawning, collision and scoring, and the session state machine
// that wraps them. It is pure logic, stepped once per host frame.
package runner

// State is the session phase. Exactly one is active at a time.
type State int

const (
	StateIntro State = iota
	StateMenu
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "Intro"
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunStats holds the counters shown by the HUD.
type RunStats struct {
	Score          int
	CoinsCollected int
	HighScore      int
}

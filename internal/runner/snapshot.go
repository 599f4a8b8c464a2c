package runner

// Snapshot is a read-only copy of everything a presentation layer needs to
// draw one frame.
type Snapshot struct {
	State     State
	Stats     RunStats
	Player    Player
	Obstacles []Entity
	Coins     []Entity // Uncollected coins only
	Ticks     int

	// IntroProgress is the fraction of the intro dwell already elapsed,
	// in [0, 1].
	IntroProgress float64
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Stats:     s.stats,
		Player:    s.player,
		Obstacles: s.Obstacles(),
		Ticks:     s.ticks,
	}
	for _, c := range s.track.Coins {
		if !c.Collected {
			snap.Coins = append(snap.Coins, c)
		}
	}

	switch {
	case s.state != StateIntro || s.cfg.Session.IntroDwell <= 0:
		snap.IntroProgress = 1
	default:
		snap.IntroProgress = min(1, float64(s.introElapsed)/float64(s.cfg.Session.IntroDwell))
	}
	return snap
}

package tui

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// BurstLifetime is how long a coin burst stays on screen.
const BurstLifetime = 550 * time.Millisecond

// Burst is a drawn effect event.
type Burst struct {
	ID       uint64
	Position core.Vec3
	Age      time.Duration
}

// Progress returns the fraction of the lifetime elapsed, in [0, 1].
func (b Burst) Progress() float64 {
	return core.ClampF(float64(b.Age)/float64(BurstLifetime), 0, 1)
}

// burstSet tracks live bursts. The simulation never reads it.
type burstSet struct {
	live []Burst
}

// add starts a burst for every drained effect event.
func (s *burstSet) add(events []runner.EffectEvent) {
	for _, ev := range events {
		s.live = append(s.live, Burst{ID: ev.ID, Position: ev.Position})
	}
}

// advance ages every burst by dt and drops expired ones.
func (s *burstSet) advance(dt time.Duration) {
	kept := s.live[:0]
	for _, b := range s.live {
		b.Age += dt
		if b.Age < BurstLifetime {
			kept = append(kept, b)
		}
	}
	s.live = kept
}

// clear drops all bursts.
func (s *burstSet) clear() {
	s.live = nil
}

// list returns the live bursts.
func (s *burstSet) list() []Burst {
	return s.live
}

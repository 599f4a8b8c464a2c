package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Player is the runner's pose and motion state.
type Player struct {
	Lane  int     // Discrete target lane, used for collision
	X     float64 // Eased lateral position, presentation only
	Z     float64 // Scroll position, never increases during a run
	Y     float64 // Height above ground, never negative
	VY    float64 // Vertical velocity, positive is up
	Speed float64 // Scroll distance per tick
}

func newPlayer(cfg config.RunnerConfig) Player {
	lane := cfg.Track.MiddleLane()
	return Player{
		Lane:  lane,
		X:     cfg.Track.LaneX(lane),
		Speed: cfg.Physics.BaseSpeed,
	}
}

// Position returns the player's presentation position.
func (p Player) Position() core.Vec3 {
	return core.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Grounded reports whether the player is low enough to start a jump.
// This is a height threshold, not a contact flag: a player descending
// through the gate can jump again before touching down.
func (p Player) Grounded(gate float64) bool {
	return p.Y < gate
}

// steer moves the target lane by delta, clamped to the track.
func (p *Player) steer(delta, lanes int) {
	p.Lane = core.Clamp(p.Lane+delta, 0, lanes-1)
}

// jump applies the jump impulse if the player is near the ground.
func (p *Player) jump(phys config.PhysicsConfig) bool {
	if !p.Grounded(phys.JumpGateHeight) {
		return false
	}
	p.VY = phys.JumpStrength
	return true
}

// integrate advances the player by exactly one tick and reports whether the
// player landed after being airborne.
func (p *Player) integrate(phys config.PhysicsConfig, track config.TrackConfig) (landed bool) {
	airborne := p.Y > 0

	p.Z -= p.Speed
	p.Speed = min(phys.MaxSpeed, p.Speed+phys.Acceleration)

	p.Y += p.VY
	p.VY -= phys.Gravity
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
		landed = airborne
	}

	p.X = core.Lerp(p.X, track.LaneX(p.Lane), phys.LateralEasing)
	return landed
}

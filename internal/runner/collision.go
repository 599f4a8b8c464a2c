package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// pickup describes one coin collected during a collision check.
type pickup struct {
	ID       EntityID
	Position core.Vec3
}

// collisionResult is what one check produced. The session applies it:
// the engine never touches counters or the effect bus itself.
type collisionResult struct {
	Hit     bool
	Pickups []pickup
}

// checkCollisions tests the player against the active entities. Coins that
// qualify are flagged collected in place so they can never be scored twice.
func checkCollisions(p Player, track *Track, cfg config.RunnerConfig) collisionResult {
	var res collisionResult
	playerX := cfg.Track.LaneX(p.Lane)
	col := cfg.Collision

	if p.Y < col.JumpClearance {
		for _, o := range track.Obstacles {
			if within(p.Z, playerX, o, col.Obstacle, cfg.Track) {
				res.Hit = true
				break
			}
		}
	}

	for i := range track.Coins {
		c := &track.Coins[i]
		if c.Collected || !within(p.Z, playerX, *c, col.Coin, cfg.Track) {
			continue
		}
		c.Collected = true
		res.Pickups = append(res.Pickups, pickup{
			ID: c.ID,
			Position: core.Vec3{
				X: cfg.Track.LaneX(c.Lane),
				Y: col.EffectHeight,
				Z: c.Z,
			},
		})
	}

	return res
}

func within(playerZ, playerX float64, e Entity, tol config.Tolerance, track config.TrackConfig) bool {
	return math.Abs(e.Z-playerZ) < tol.Z && math.Abs(playerX-track.LaneX(e.Lane)) < tol.X
}

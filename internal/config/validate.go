package config

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range tuning value. An invalid config is a
// programming error and must be rejected before a session is created.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Track.Lanes >= 1, "track.lanes must be at least 1, got %d", c.Track.Lanes)
	check(c.Track.LaneWidth > 0, "track.lane_width must be positive, got %g", c.Track.LaneWidth)

	p := c.Physics
	check(p.BaseSpeed >= 0, "physics.base_speed must not be negative, got %g", p.BaseSpeed)
	check(p.Acceleration >= 0, "physics.acceleration must not be negative, got %g", p.Acceleration)
	check(p.MaxSpeed >= p.BaseSpeed, "physics.max_speed (%g) must be >= base_speed (%g)", p.MaxSpeed, p.BaseSpeed)
	check(p.JumpStrength > 0, "physics.jump_strength must be positive, got %g", p.JumpStrength)
	check(p.Gravity > 0, "physics.gravity must be positive, got %g", p.Gravity)
	check(p.JumpGateHeight > 0, "physics.jump_gate_height must be positive, got %g", p.JumpGateHeight)
	check(p.LateralEasing > 0 && p.LateralEasing <= 1, "physics.lateral_easing must be in (0, 1], got %g", p.LateralEasing)

	check(c.Spawn.RetentionDistance > 0, "spawn.retention_distance must be positive, got %g", c.Spawn.RetentionDistance)
	errs = append(errs, c.Spawn.Obstacles.validate("spawn.obstacles")...)
	errs = append(errs, c.Spawn.Coins.validate("spawn.coins")...)

	col := c.Collision
	check(col.Obstacle.Z > 0 && col.Obstacle.X > 0, "collision.obstacle tolerances must be positive")
	check(col.Coin.Z > 0 && col.Coin.X > 0, "collision.coin tolerances must be positive")
	check(col.JumpClearance > 0, "collision.jump_clearance must be positive, got %g", col.JumpClearance)

	check(c.Scoring.PerTick >= 0, "scoring.per_tick must not be negative, got %d", c.Scoring.PerTick)
	check(c.Session.IntroDwell >= 0, "session.intro_dwell must not be negative, got %s", c.Session.IntroDwell)

	return errors.Join(errs...)
}

func (t SpawnTrack) validate(section string) []error {
	var errs []error
	if t.TriggerDistance < 0 {
		errs = append(errs, fmt.Errorf("config: %s.trigger_distance must not be negative, got %g", section, t.TriggerDistance))
	}
	if t.AheadOffset <= 0 {
		errs = append(errs, fmt.Errorf("config: %s.ahead_offset must be positive, got %g", section, t.AheadOffset))
	}
	if t.MinGap <= 0 || t.MaxGap < t.MinGap {
		errs = append(errs, fmt.Errorf("config: %s gap range [%g, %g] is invalid", section, t.MinGap, t.MaxGap))
	}
	return errs
}

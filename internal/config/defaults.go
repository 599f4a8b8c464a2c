package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Lanes:     3,
			LaneWidth: 4,
		},
		Physics: PhysicsConfig{
			BaseSpeed:      0.6,
			Acceleration:   0.00015,
			MaxSpeed:       1.8,
			JumpStrength:   0.28,
			Gravity:        0.009,
			JumpGateHeight: 0.1,
			LateralEasing:  0.2,
		},
		Spawn: SpawnConfig{
			RetentionDistance: 20,
			Obstacles: SpawnTrack{
				InitialCursor:   -40,
				TriggerDistance: 20,
				AheadOffset:     130,
				MinGap:          30,
				MaxGap:          55,
			},
			Coins: SpawnTrack{
				InitialCursor:   -20,
				TriggerDistance: 12,
				AheadOffset:     110,
				MinGap:          10,
				MaxGap:          18,
			},
		},
		Collision: CollisionConfig{
			Obstacle:      Tolerance{Z: 1.4, X: 1.1},
			Coin:          Tolerance{Z: 2.5, X: 1.5},
			JumpClearance: 2.5,
			EffectHeight:  1.5,
		},
		Scoring: ScoringConfig{PerTick: 1},
		Session: SessionConfig{IntroDwell: 4 * time.Second},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

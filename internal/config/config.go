// Package config provides YAML-based tuning for the runner simulation,
// embedded defaults and difficulty presets.
package config

import "time"

// RunnerConfig contains every tuning constant of the simulation.
type RunnerConfig struct {
	Track     TrackConfig     `yaml:"track"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Session   SessionConfig   `yaml:"session"`
}

// TrackConfig defines the lane layout.
type TrackConfig struct {
	Lanes     int     `yaml:"lanes"`
	LaneWidth float64 `yaml:"lane_width"` // World units between lane centers
}

// PhysicsConfig defines per-tick player motion. All values are per tick:
// the simulation is frame-coupled.
type PhysicsConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	MaxSpeed       float64 `yaml:"max_speed"`
	JumpStrength   float64 `yaml:"jump_strength"`
	Gravity        float64 `yaml:"gravity"`
	JumpGateHeight float64 `yaml:"jump_gate_height"` // Jumps accepted while y is below this
	LateralEasing  float64 `yaml:"lateral_easing"`   // Fraction of the remaining x gap closed per tick
}

// SpawnConfig defines procedural track generation.
type SpawnConfig struct {
	RetentionDistance float64    `yaml:"retention_distance"`
	Obstacles         SpawnTrack `yaml:"obstacles"`
	Coins             SpawnTrack `yaml:"coins"`
}

// SpawnTrack defines the cursor behavior for one entity kind.
type SpawnTrack struct {
	InitialCursor   float64 `yaml:"initial_cursor"`   // nextSpawnZ at run start
	TriggerDistance float64 `yaml:"trigger_distance"` // How far past the cursor before spawning
	AheadOffset     float64 `yaml:"ahead_offset"`     // Spawn distance in front of the player
	MinGap          float64 `yaml:"min_gap"`
	MaxGap          float64 `yaml:"max_gap"`
}

// CollisionConfig defines hit and pickup tolerances.
type CollisionConfig struct {
	Obstacle      Tolerance `yaml:"obstacle"`
	Coin          Tolerance `yaml:"coin"`
	JumpClearance float64   `yaml:"jump_clearance"` // Heights at or above this clear obstacles
	EffectHeight  float64   `yaml:"effect_height"`  // Y of pickup bursts
}

// Tolerance is a half-extent box on the lateral and scroll axes.
type Tolerance struct {
	Z float64 `yaml:"z"`
	X float64 `yaml:"x"`
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	PerTick int `yaml:"per_tick"`
}

// SessionConfig defines session-level timing.
type SessionConfig struct {
	IntroDwell time.Duration `yaml:"intro_dwell"`
}

// MiddleLane returns the canonical starting lane.
func (t TrackConfig) MiddleLane() int {
	return t.Lanes / 2
}

// LaneX maps a lane index to its world x-coordinate, centered on the
// middle lane.
func (t TrackConfig) LaneX(lane int) float64 {
	return float64(lane-t.MiddleLane()) * t.LaneWidth
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty strings
// yield "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// speedScale returns the multiplier a preset applies to the speed curve.
func speedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

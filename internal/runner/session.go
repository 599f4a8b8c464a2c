package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Session owns all simulation state and is the only entry point for the
// host. It is not safe for concurrent use: the host calls it from a single
// loop, one Tick per rendered frame.
//
// Motion is frame-coupled on purpose. Each Tick advances the player by one
// fixed step whatever the elapsed time; the host ties the tick rate to its
// frame rate. The elapsed time only drives the intro dwell.
type Session struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	store  HighScoreStore

	state        State
	introElapsed time.Duration

	stats   RunStats
	player  Player
	track   Track
	spawner *Spawner
	effects EffectBus
	events  eventQueue

	seed    int64 // base seed, run n uses seed+n
	runs    int
	runSeed int64
	ticks   int // ticks survived in the current run
}

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the base RNG seed.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithHighScores attaches a persistent high score store.
func WithHighScores(store HighScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithLogger sets the session logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession validates cfg, loads the high score once and enters Intro.
func NewSession(cfg config.RunnerConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: invalid config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		state:  StateIntro,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = newSpawner(s.seed)
	s.player = newPlayer(cfg)
	s.stats.HighScore = s.loadHighScore()
	return s, nil
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	score, err := s.store.LoadHighScore()
	if err != nil {
		s.logger.Warn("high score unavailable, starting from zero", "error", err)
		return 0
	}
	if score < 0 {
		s.logger.Warn("ignoring negative high score", "score", score)
		return 0
	}
	return score
}

// Start begins a run from Menu or restarts one from GameOver.
func (s *Session) Start() {
	if s.state != StateMenu && s.state != StateGameOver {
		return
	}

	s.runSeed = s.seed + int64(s.runs)
	s.runs++

	s.stats.Score = 0
	s.stats.CoinsCollected = 0
	s.ticks = 0
	s.player = newPlayer(s.cfg)
	s.track.reset()
	s.effects.Clear()
	s.spawner.reset(s.cfg.Spawn, s.runSeed)

	s.state = StatePlaying
	s.events.push(Event{Type: EventRunStarted})
	s.logger.Debug("run started", "run", s.runs, "seed", s.runSeed)
}

// SteerLeft moves one lane left while Playing.
func (s *Session) SteerLeft() {
	if s.state == StatePlaying {
		s.player.steer(-1, s.cfg.Track.Lanes)
	}
}

// SteerRight moves one lane right while Playing.
func (s *Session) SteerRight() {
	if s.state == StatePlaying {
		s.player.steer(1, s.cfg.Track.Lanes)
	}
}

// Jump requests upward velocity while Playing. It is accepted only below
// the jump gate height; the return value reports acceptance.
func (s *Session) Jump() bool {
	if s.state != StatePlaying {
		return false
	}
	return s.player.jump(s.cfg.Physics)
}

// ExitToMenu leaves GameOver for Menu. Stats stay as they were so the menu
// can still show the last run.
func (s *Session) ExitToMenu() {
	if s.state == StateGameOver {
		s.state = StateMenu
	}
}

// Tick advances the session by one frame. dt only counts toward the intro
// dwell; while Playing every tick is one fixed simulation step.
func (s *Session) Tick(dt time.Duration) {
	switch s.state {
	case StateIntro:
		s.introElapsed += dt
		if s.introElapsed >= s.cfg.Session.IntroDwell {
			s.state = StateMenu
		}
	case StatePlaying:
		s.step()
	}
}

// StepResult is returned by Step after each frame.
type StepResult struct {
	State State
	Stats RunStats
}

// Step applies the frame's input actions in a fixed order and then ticks.
func (s *Session) Step(in core.InputFrame, dt time.Duration) StepResult {
	for _, a := range in.List() {
		s.Apply(a)
	}
	s.Tick(dt)
	return StepResult{State: s.state, Stats: s.stats}
}

// Apply routes a single input action. Host-only actions are ignored.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.SteerLeft()
	case core.ActionRight:
		s.SteerRight()
	case core.ActionJump:
		s.Jump()
	case core.ActionStart:
		s.Start()
	case core.ActionExit:
		s.ExitToMenu()
	}
}

// step is one simulation tick: kinematics, spawning, then collision.
func (s *Session) step() {
	s.ticks++
	if s.player.integrate(s.cfg.Physics, s.cfg.Track) {
		s.events.push(Event{Type: EventLanded})
	}
	s.stats.Score += s.cfg.Scoring.PerTick

	s.spawner.update(s.player.Z, &s.track, s.cfg)

	res := checkCollisions(s.player, &s.track, s.cfg)
	for _, p := range res.Pickups {
		s.stats.CoinsCollected++
		s.effects.Emit(p.Position)
		s.events.push(Event{Type: EventCoinCollected, Position: p.Position})
	}
	if res.Hit {
		s.endRun()
	}
}

// endRun moves to GameOver and persists a new best score.
func (s *Session) endRun() {
	s.state = StateGameOver

	newBest := s.stats.Score > s.stats.HighScore
	if newBest {
		s.stats.HighScore = s.stats.Score
		if s.store != nil {
			if err := s.store.SaveHighScore(s.stats.Score); err != nil {
				s.logger.Warn("could not persist high score", "score", s.stats.Score, "error", err)
			}
		}
	}

	s.events.push(Event{
		Type:    EventRunEnded,
		Score:   s.stats.Score,
		Coins:   s.stats.CoinsCollected,
		Ticks:   s.ticks,
		NewBest: newBest,
	})
	s.logger.Debug("run ended", "score", s.stats.Score, "coins", s.stats.CoinsCollected, "ticks", s.ticks, "best", newBest)
}

// SyncHighScore raises the in-memory best to a value another writer
// persisted after this session loaded it. It reports whether it changed.
func (s *Session) SyncHighScore(stored int) bool {
	if stored <= s.stats.HighScore {
		return false
	}
	s.stats.HighScore = stored
	return true
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Stats returns the current counters.
func (s *Session) Stats() RunStats { return s.stats }

// Player returns the current player pose.
func (s *Session) Player() Player { return s.player }

// Ticks returns the number of ticks survived in the current run.
func (s *Session) Ticks() int { return s.ticks }

// RunSeed returns the seed used by the current (or last) run.
func (s *Session) RunSeed() int64 { return s.runSeed }

// Config returns the session's tuning.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Obstacles returns a copy of the active obstacles.
func (s *Session) Obstacles() []Entity {
	return append([]Entity(nil), s.track.Obstacles...)
}

// Coins returns a copy of the active coins, collected ones included.
func (s *Session) Coins() []Entity {
	return append([]Entity(nil), s.track.Coins...)
}

// DrainEffects returns and clears the effect events emitted since the last
// call.
func (s *Session) DrainEffects() []EffectEvent {
	return s.effects.Drain()
}

// DrainEvents returns and clears pending notifications.
func (s *Session) DrainEvents() []Event {
	return s.events.drain()
}

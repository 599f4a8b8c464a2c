package replay

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Result is the outcome of a re-simulation.
type Result struct {
	Score int
	Coins int
	Ticks int
	Ended bool // an obstacle ended the run

	// Pickups counts CoinCollected notifications and Effects the effect
	// events drained while simulating. Both match Coins.
	Pickups int
	Effects int
}

// Simulate replays rec's frames against a fresh session and returns the
// outcome. It stops at the first obstacle hit or after rec.Ticks ticks.
func Simulate(rec *Recording) (Result, error) {
	cfg := rec.Config
	cfg.Session.IntroDwell = 0

	s, err := runner.NewSession(cfg, runner.WithSeed(rec.Seed))
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	s.Tick(0)
	s.Start()

	var res Result
	next := 0
	for s.State() == runner.StatePlaying && s.Ticks() < rec.Ticks {
		in := core.NewInputFrame()
		for next < len(rec.Frames) && rec.Frames[next].Tick <= s.Ticks() {
			for _, a := range rec.Frames[next].Actions {
				in.Set(a)
			}
			next++
		}
		s.Step(in, 0)

		for _, ev := range s.DrainEvents() {
			if ev.Type == runner.EventCoinCollected {
				res.Pickups++
			}
		}
		res.Effects += len(s.DrainEffects())
	}

	st := s.Stats()
	res.Score = st.Score
	res.Coins = st.CoinsCollected
	res.Ticks = s.Ticks()
	res.Ended = s.State() == runner.StateGameOver
	return res, nil
}

// Verify re-simulates rec and reports ErrMismatch if the outcome differs
// from what was recorded.
func Verify(rec *Recording) (Result, error) {
	res, err := Simulate(rec)
	if err != nil {
		return res, err
	}
	if !res.Ended || res.Score != rec.FinalScore || res.Coins != rec.Coins || res.Ticks != rec.Ticks {
		return res, fmt.Errorf("%w: recorded score=%d coins=%d ticks=%d, simulated score=%d coins=%d ticks=%d",
			ErrMismatch, rec.FinalScore, rec.Coins, rec.Ticks, res.Score, res.Coins, res.Ticks)
	}
	return res, nil
}

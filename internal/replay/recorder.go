package replay

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Recorder follows a session and keeps the most recent finished run.
// Call Capture before each Step and Observe with the drained events after.
type Recorder struct {
	cfg     config.RunnerConfig
	current *Recording
	last    *Recording
}

// NewRecorder returns a recorder for sessions running cfg.
func NewRecorder(cfg config.RunnerConfig) *Recorder {
	return &Recorder{cfg: cfg}
}

// Capture records the gameplay actions of in if s is mid-run. Actions
// arriving outside Playing never affect the simulation and are dropped.
func (r *Recorder) Capture(s *runner.Session, in core.InputFrame) {
	if r.current == nil || s.State() != runner.StatePlaying {
		return
	}

	var actions []core.Action
	for _, a := range in.List() {
		switch a {
		case core.ActionLeft, core.ActionRight, core.ActionJump:
			actions = append(actions, a)
		}
	}
	if len(actions) == 0 {
		return
	}
	r.current.Frames = append(r.current.Frames, Frame{Tick: s.Ticks(), Actions: actions})
}

// Observe reacts to session events: a new run opens a recording and the
// end of a run seals it.
func (r *Recorder) Observe(s *runner.Session, events []runner.Event) {
	for _, ev := range events {
		switch ev.Type {
		case runner.EventRunStarted:
			r.current = New(r.cfg, s.RunSeed())
		case runner.EventRunEnded:
			if r.current == nil {
				continue
			}
			r.current.FinalScore = ev.Score
			r.current.Coins = ev.Coins
			r.current.Ticks = ev.Ticks
			r.last = r.current
			r.current = nil
		}
	}
}

// Last returns the most recent finished run, or nil.
func (r *Recorder) Last() *Recording {
	return r.last
}

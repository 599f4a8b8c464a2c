package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// memoryHistory is an in-memory RunHistory.
type memoryHistory struct {
	runs []storage.RunRecord
}

func (h *memoryHistory) SaveRun(rec storage.RunRecord) (string, error) {
	rec.ID = "run"
	h.runs = append(h.runs, rec)
	return rec.ID, nil
}

func (h *memoryHistory) TopRuns(limit int) ([]storage.RunRecord, error) {
	return h.runs, nil
}

// sharedBest is a high score store that never lowers its value, like the
// sqlite store several SSH sessions write to.
type sharedBest struct {
	score int
}

func (b *sharedBest) LoadHighScore() (int, error) { return b.score, nil }

func (b *sharedBest) SaveHighScore(score int) error {
	b.score = max(b.score, score)
	return nil
}

func testOptions() Options {
	cfg := config.DefaultRunnerConfig()
	cfg.Session.IntroDwell = 0
	return Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99},
		Config:  cfg,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

// playUntilOver starts a run and ticks until it ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if m.Session().State() != runner.StatePlaying {
		t.Fatalf("state = %v, expected Playing", m.Session().State())
	}
	for i := 0; i < 50000 && m.Session().State() == runner.StatePlaying; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.Session().State() != runner.StateGameOver {
		t.Fatal("run never ended")
	}
	return m
}

func TestModelRunSavesHistory(t *testing.T) {
	opts := testOptions()
	hist := &memoryHistory{}
	opts.History = hist
	hs := &runner.MemoryHighScores{}
	opts.HighScores = hs

	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m = playUntilOver(t, m)

	if len(hist.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(hist.runs))
	}
	run := hist.runs[0]
	if run.Score != m.Session().Stats().Score || run.Seed != 99 {
		t.Errorf("saved run = %+v", run)
	}
	if hs.Score != run.Score || !m.newBest {
		t.Errorf("first run should be a new best: store=%d newBest=%v", hs.Score, m.newBest)
	}
}

func TestModelPicksUpSharedHighScore(t *testing.T) {
	opts := testOptions()
	store := &sharedBest{}
	opts.HighScores = store

	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	// Another connection sets a record after this session loaded zero.
	store.score = 1_000_000

	m = playUntilOver(t, m)

	if got := m.Session().Stats().HighScore; got != 1_000_000 {
		t.Errorf("HUD best = %d, expected the shared record", got)
	}
	if m.newBest {
		t.Error("a score below the shared record must not show as a new best")
	}
	if store.score != 1_000_000 {
		t.Errorf("stored best = %d, expected it unchanged", store.score)
	}
}

func TestModelRecordsVerifiableReplay(t *testing.T) {
	opts := testOptions()
	rec := replay.NewRecorder(opts.Config)
	opts.Recorder = rec

	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	for i := 0; i < 50000 && m.Session().State() == runner.StatePlaying; i++ {
		if i%45 == 0 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		}
		if i == 100 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		}
		m = update(t, m, TickMsg{})
	}

	last := rec.Last()
	if last == nil {
		t.Fatal("no recording after game over")
	}
	if len(last.Frames) == 0 {
		t.Error("recording has no input frames")
	}
	if _, err := replay.Verify(last); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}

func TestModelExitAndScoreboard(t *testing.T) {
	opts := testOptions()
	opts.History = &memoryHistory{}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m = playUntilOver(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg{})
	if m.Session().State() != runner.StateMenu {
		t.Fatalf("state = %v, expected Menu", m.Session().State())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard from the menu")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, err := NewModel(testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	before := m.Session().Ticks()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Session().Ticks() != before || m.Session().State() != runner.StatePlaying {
		t.Error("resize should not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	opts := testOptions()
	opts.Config.Track.Lanes = 0
	if _, err := NewModel(opts); err == nil {
		t.Error("NewModel() should fail on an invalid config")
	}
}

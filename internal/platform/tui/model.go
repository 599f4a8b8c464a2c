package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// RunHistory is the optional log of finished runs behind the scoreboard.
// *storage.Store implements it.
type RunHistory interface {
	SaveRun(rec storage.RunRecord) (string, error)
	TopRuns(limit int) ([]storage.RunRecord, error)
}

// Options configures a Model.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     config.RunnerConfig
	HighScores runner.HighScoreStore // nil keeps the best score in memory
	History    RunHistory            // nil disables run history
	Recorder   *replay.Recorder      // nil disables recording
	Logger     *log.Logger
	Player     string // shown in the HUD, set for SSH sessions
}

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	session    *runner.Session
	opts       Options
	screen     *core.Screen
	theme      Theme
	keys       KeyMap
	help       help.Model
	input      core.InputFrame
	bursts     *burstSet
	logger     *log.Logger
	scoreboard *ScoreboardModel
	newBest    bool
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model and its session.
func NewModel(opts Options) (Model, error) {
	defaults := core.DefaultConfig()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessOpts := []runner.Option{
		runner.WithSeed(opts.Runtime.Seed),
		runner.WithLogger(logger),
	}
	if opts.HighScores != nil {
		sessOpts = append(sessOpts, runner.WithHighScores(opts.HighScores))
	}
	session, err := runner.NewSession(opts.Config, sessOpts...)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	w, hgt := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	return Model{
		session: session,
		opts:    opts,
		screen:  core.NewScreen(w, max(hgt-1, 1)),
		theme:   DefaultTheme(),
		keys:    DefaultKeyMap(),
		help:    h,
		input:   core.NewInputFrame(),
		bursts:  &burstSet{},
		logger:  logger,
		width:   w,
		height:  hgt,
	}, nil
}

// Session returns the hosted session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores) && m.session.State() != runner.StatePlaying:
		sb := NewScoreboardModel(m.opts.History, m.width, m.height)
		m.scoreboard = &sb
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// updateScoreboard forwards input to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleResize processes window resize events. The simulation does not
// depend on screen size, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one simulation step with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := tickInterval(m.opts.Runtime.TickRate)

	if m.opts.Recorder != nil {
		m.opts.Recorder.Capture(m.session, m.input)
	}
	m.session.Step(m.input, dt)
	m.input.Clear()

	events := m.session.DrainEvents()
	if m.opts.Recorder != nil {
		m.opts.Recorder.Observe(m.session, events)
	}
	for _, ev := range events {
		m.handleEvent(ev)
	}

	m.bursts.advance(dt)
	m.bursts.add(m.session.DrainEffects())

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleEvent reacts to session notifications.
func (m *Model) handleEvent(ev runner.Event) {
	switch ev.Type {
	case runner.EventRunStarted:
		m.newBest = false
		m.bursts.clear()
	case runner.EventRunEnded:
		m.newBest = ev.NewBest
		m.syncHighScore(ev)
		m.logger.Info("run ended", "player", m.opts.Player, "score", ev.Score, "coins", ev.Coins, "best", m.newBest)
		if m.opts.History == nil {
			return
		}
		rec := storage.RunRecord{
			Score: ev.Score,
			Coins: ev.Coins,
			Ticks: ev.Ticks,
			Seed:  m.session.RunSeed(),
		}
		if _, err := m.opts.History.SaveRun(rec); err != nil {
			m.logger.Warn("could not save run", "error", err)
		}
	}
}

// syncHighScore picks up a record set by another session sharing the
// store, so the HUD never shows a stale best.
func (m *Model) syncHighScore(ev runner.Event) {
	if m.opts.HighScores == nil {
		return
	}
	stored, err := m.opts.HighScores.LoadHighScore()
	if err != nil {
		m.logger.Warn("could not reload high score", "error", err)
		return
	}
	if m.session.SyncHighScore(stored) && stored > ev.Score {
		m.newBest = false
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".lanerunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// render draws the current snapshot into the screen buffer.
func (m Model) render() {
	draw(m.screen, frame{
		snap:    m.session.Snapshot(),
		cfg:     m.session.Config(),
		bursts:  m.bursts.list(),
		newBest: m.newBest,
		player:  m.opts.Player,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.render()
	return m.theme.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}

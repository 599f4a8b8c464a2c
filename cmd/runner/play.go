package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local run.

Controls:
  Left/A, Right/D   - Change lane
  Space/Up/W        - Jump
  Enter             - Start or restart a run
  Esc/B             - Back to menu after game over
  Tab               - Best runs (outside a run)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower speed curve
  normal - Default speed curve
  hard   - Faster speed curve
  fixed  - No acceleration, stays at base speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --record run.replay
  runner play --store file --highscore-file ./best.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the last finished run to this replay file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("runner")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Logger: logger,
	}

	switch flagStore {
	case "sqlite":
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			// Continue without storage - game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", openErr)
			break
		}
		defer store.Close()
		opts.HighScores = store
		opts.History = store
	case "file":
		fs, fsErr := storage.NewFileStore(flagScoreFile)
		if fsErr != nil {
			return fsErr
		}
		opts.HighScores = fs
	default:
		return fmt.Errorf("unknown store %q (want sqlite or file)", flagStore)
	}

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(cfg)
		opts.Recorder = recorder
	}

	final, err := tui.Run(opts)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if recorder != nil {
		rec := recorder.Last()
		if rec == nil {
			fmt.Println("No finished run to record.")
			return nil
		}
		if err := replay.WriteFile(flagRecord, rec); err != nil {
			return err
		}
		fmt.Printf("Recorded run %s (score %d) to %s\n", rec.ID, rec.FinalScore, flagRecord)
	}

	if st := final.Session().Stats(); st.HighScore > 0 {
		fmt.Printf("Best: %d\n", st.HighScore)
	}
	return nil
}

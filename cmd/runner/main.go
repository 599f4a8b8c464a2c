// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play locally
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the best recorded runs
//	runner replay <file>     - Verify a recorded run
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.lanerunner/runs.db)
//	--store <kind>      - High score backend: sqlite or file
//	--log <path>        - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagStore     string
	flagScoreFile string
	flagLogPath   string

	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is a three-lane endless runner. Change lanes to dodge
blocks, jump over them, and collect coins while the track speeds up.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs
  replay   - Verify a recorded run
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard --record last.replay
  runner serve --ssh :2222
  runner replay last.replay`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "High score backend: sqlite, file")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "highscore-file", "~/.lanerunner/highscore", "High score file for --store file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config from --config and --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger returns a file logger for --log, or a discarding one.
// The returned closer must be called on exit.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

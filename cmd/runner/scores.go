package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best runs and the high score.

With --store file only the high score is available.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagStore == "file" {
		fs, err := storage.NewFileStore(flagScoreFile)
		if err != nil {
			return err
		}
		best, err := fs.LoadHighScore()
		if err != nil {
			return err
		}
		fmt.Printf("Best: %d\n", best)
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "Rank", "Score", "Coins", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-20d  %s\n", i+1, r.Score, r.Coins, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.LoadHighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if n, err := store.RunCount(); err == nil {
		fmt.Printf("Runs: %d\n", n)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Re-simulate a run recorded with 'runner play --record' and check that
it reproduces the recorded score.

Examples:
  runner replay last.replay`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", rec.ID)
	fmt.Printf("  recorded  %s\n", rec.RecordedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  seed      %d\n", rec.Seed)
	fmt.Printf("  inputs    %d frames\n", len(rec.Frames))
	fmt.Printf("  outcome   score %d, coins %d, ticks %d\n", rec.FinalScore, rec.Coins, rec.Ticks)

	res, err := replay.Verify(rec)
	if errors.Is(err, replay.ErrMismatch) {
		fmt.Printf("  replayed  score %d, coins %d, ticks %d\n", res.Score, res.Coins, res.Ticks)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Println("OK: replay reproduces the recorded run")
	return nil
}

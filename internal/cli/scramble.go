package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/recorder"
)

var (
	scrambleCount int
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate random scrambles",
	Long: `Generate random scramble sequences.

No two consecutive moves turn the same face or the same axis, so R is
never followed by R' or L. Use --seed for a reproducible sequence and
--save to record each scramble as a session.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "c", 1, "Number of scrambles to generate")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record each scramble as a session")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", scrambleCount)
	}

	scrambler := newScrambler()
	scrambles := make([][]cubie.Move, scrambleCount)
	for i := range scrambles {
		scrambles[i] = scrambler.Scramble(cfg.ScrambleLength)
	}

	out := cmd.OutOrStdout()
	for i, s := range scrambles {
		if scrambleCount > 1 {
			fmt.Fprintf(out, "%d. ", i+1)
		}
		fmt.Fprintln(out, cubie.FormatMoves(s))
	}

	if !scrambleSave {
		return nil
	}
	return saveScrambles(cmd, scrambles)
}

// saveScrambles records each scramble as an ended, unsolved session.
func saveScrambles(cmd *cobra.Command, scrambles [][]cubie.Move) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	tracker := newTracker()
	session := recorder.NewSession(db, stateFile, tracker)
	for _, s := range scrambles {
		tracker.ApplyScramble(s)
		id, err := session.Start("scramble")
		if err != nil {
			return err
		}
		if err := session.End(); err != nil {
			return err
		}
		if verbose {
			log.Printf("saved scramble as session %s", id)
		}
	}

	if cfg.Seed != 0 {
		if err := stateFile.SetLastSeed(cfg.Seed); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d scramble(s) to %s\n", len(scrambles), db.Path())
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
)

var (
	applyFromScramble bool
	applyFacelets     string
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence and show the resulting cube",
	Long: `Apply a move sequence in standard notation (U R F D L B with an optional
2 or ' suffix) to a solved cube and print the resulting net, cubie arrays,
facelet definition, phase and solved status.

The starting cube can instead be a freshly generated scramble
(--from-scramble) or a 54-letter facelet definition (--facelets).`,
	Example: `  cubie apply "R U R' U'"
  cubie apply R U2 F --from-scramble --seed 42
  cubie apply --facelets UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB R`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyFromScramble, "from-scramble", false, "Start from a generated scramble")
	applyCmd.Flags().StringVar(&applyFacelets, "facelets", "", "Start from a facelet definition")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if applyFromScramble && applyFacelets != "" {
		return errors.New("--from-scramble and --facelets cannot be used together")
	}

	moves, err := cubie.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}

	out := cmd.OutOrStdout()
	state := cubie.SolvedState()

	switch {
	case applyFacelets != "":
		state, err = cubie.ParseFacelets(applyFacelets)
		if err != nil {
			return fmt.Errorf("invalid facelets: %w", err)
		}
	case applyFromScramble:
		scramble := newScrambler().Scramble(cfg.ScrambleLength)
		state.Apply(scramble...)
		fmt.Fprintf(out, "Scramble: %s\n", cubie.FormatMoves(scramble))
	}

	state.Apply(moves...)
	printState(out, &state, moves)
	return nil
}

// printState writes the full report for a state reached by moves.
func printState(out io.Writer, state *cubie.State, moves []cubie.Move) {
	fmt.Fprintf(out, "Moves:    %s\n\n", cubie.FormatMoves(moves))
	fmt.Fprint(out, renderNet(state.Facelets(), !cfg.NoColor))
	fmt.Fprintln(out)
	fmt.Fprintln(out, state.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "CP: %v\nCO: %v\nEP: %v\nEO: %v\n\n", state.CP, state.CO, state.EP, state.EO)

	f := state.Facelets()
	fmt.Fprintf(out, "Facelets: %s\n", f.Definition())
	fmt.Fprintf(out, "Phase:    %s\n", state.Phase().DisplayName())
	fmt.Fprintf(out, "Solved:   %s\n", yesNo(state.IsSolved()))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

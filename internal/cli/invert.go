package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
)

var invertSimplify bool

var invertCmd = &cobra.Command{
	Use:   "invert <moves...>",
	Short: "Print the inverse of a move sequence",
	Long: `Print the sequence that undoes the given moves: the moves in reverse
order with each turn direction inverted.`,
	Example: `  cubie invert "R U R' U'"   # U R U' R'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runInvert,
}

func init() {
	invertCmd.Flags().BoolVar(&invertSimplify, "simplify", false, "Merge and cancel adjacent same-face turns first")
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	moves, err := cubie.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}
	if invertSimplify {
		moves = cubie.SimplifyMoves(moves)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cubie.FormatMoves(cubie.InvertMoves(moves)))
	return nil
}

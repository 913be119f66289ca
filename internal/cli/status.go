package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and recorded session counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}
	state := stateFile.State()

	fmt.Fprintln(out, "cubie Status")
	fmt.Fprintln(out, "============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Database:        %s\n", cfg.DBPath)
	fmt.Fprintf(out, "State file:      %s\n", stateFile.Path())
	fmt.Fprintf(out, "Scramble length: %d\n", cfg.ScrambleLength)
	if cfg.Seed != 0 {
		fmt.Fprintf(out, "Seed:            %d\n", cfg.Seed)
	} else {
		fmt.Fprintln(out, "Seed:            random")
	}
	fmt.Fprintln(out)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	total, solved, err := sessions.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sessions: %d (%d solved)\n", total, solved)

	if last, err := sessions.GetLast(); err == nil && last != nil {
		fmt.Fprintf(out, "Last session: %s (%s, %d moves, solved: %s)\n",
			last.SessionID, last.StartedAt.Local().Format("2006-01-02 15:04:05"), last.MoveCount, yesNo(last.Solved))
	}

	if state.ActiveSessionID != "" {
		fmt.Fprintf(out, "Active session: %s (interrupted; not ended)\n", state.ActiveSessionID)
	}
	if state.LastSeed != 0 {
		fmt.Fprintf(out, "Last saved seed: %d\n", state.LastSeed)
	}

	return nil
}

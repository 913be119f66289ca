package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/recorder"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session and replay it",
	Long: `Show a recorded session: its scramble, every recorded turn, and the
cube state recomputed by replaying them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to show")
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent session")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start one with: cubie play --scramble")
		return nil
	}

	fmt.Fprintf(out, "Recent sessions (showing %d):\n\n", len(sessions))
	fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-5s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "Solved", "Notes")
	fmt.Fprintln(out, "------------------------------------  -------------------  ----------  -----  ------  -----")
	for _, s := range sessions {
		duration := "open"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-5d  %-6s  %s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), duration, s.MoveCount, yesNo(s.Solved), notes)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := resolveSessionID(db, args, historyLast)
	if err != nil {
		return err
	}

	replay, err := recorder.Load(db, id)
	if err != nil {
		return err
	}

	printReplay(cmd.OutOrStdout(), replay)
	return nil
}

func printReplay(out io.Writer, r *recorder.Replay) {
	s := r.Session

	fmt.Fprintln(out, "Session Details")
	fmt.Fprintln(out, "===============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:       %s\n", s.SessionID)
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Fprintf(out, "Ended:    %s\n", s.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if s.DurationMs != nil {
		fmt.Fprintf(out, "Duration: %s\n", formatDuration(time.Duration(*s.DurationMs)*time.Millisecond))
	}
	if s.Notes != nil {
		fmt.Fprintf(out, "Notes:    %s\n", *s.Notes)
	}
	fmt.Fprintf(out, "Solved:   %s\n", yesNo(s.Solved))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Scramble: %s\n", cubie.FormatMoves(r.Scramble))
	fmt.Fprintf(out, "Turns:    %d recorded, %d counted\n", len(r.Moves), s.MoveCount)
	for _, m := range r.Moves {
		fmt.Fprintf(out, "  %4d  %8s  %-3s  %s\n", m.MoveIndex+1, formatDuration(time.Duration(m.TsMs)*time.Millisecond), m.Notation, m.Kind)
	}
	fmt.Fprintln(out)

	if turns, err := storage.ToMoves(r.Moves); err == nil && len(turns) > 0 {
		simplified := cubie.SimplifyMoves(turns)
		fmt.Fprintf(out, "Net turns: %s (%d of %d)\n\n", cubie.FormatMoves(simplified), len(simplified), len(turns))
	}

	fmt.Fprint(out, renderNet(r.Final.Facelets(), !cfg.NoColor))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Phase:    %s\n", r.Final.Phase().DisplayName())
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/recorder"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var (
	exportFormat string
	exportOutput string
	exportLast   bool
)

var historyExportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a recorded session",
	Long: `Export a session's scramble and recorded turns in text or JSON format.

Examples:
  cubie history export --last
  cubie history export <session-id> --format json
  cubie history export <session-id> -o session.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryExport,
}

func init() {
	historyExportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the most recent session")
	historyExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	historyExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	historyCmd.AddCommand(historyExportCmd)
}

// sessionExport is the JSON form of an exported session.
type sessionExport struct {
	SessionID  string       `json:"session_id"`
	StartedAt  string       `json:"started_at"`
	EndedAt    string       `json:"ended_at,omitempty"`
	DurationMs *int64       `json:"duration_ms,omitempty"`
	Scramble   string       `json:"scramble"`
	Solved     bool         `json:"solved"`
	MoveCount  int          `json:"move_count"`
	Notes      string       `json:"notes,omitempty"`
	Turns      []turnExport `json:"turns"`
	Facelets   string       `json:"facelets"`
}

type turnExport struct {
	MoveIndex int    `json:"move_index"`
	TsMs      int64  `json:"ts_ms"`
	Face      string `json:"face"`
	Turn      int    `json:"turn"`
	Notation  string `json:"notation"`
	Kind      string `json:"kind"`
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := resolveSessionID(db, args, exportLast)
	if err != nil {
		return err
	}

	replay, err := recorder.Load(db, id)
	if err != nil {
		return err
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "txt":
		output = exportText(replay)
	case "json":
		data, err := json.MarshalIndent(newSessionExport(replay), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)
	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d turns to %s\n", len(replay.Moves), exportOutput)
	return nil
}

// exportText writes the scramble on the first line and the recorded turns
// on the second, so the file can be fed back to "cubie apply".
func exportText(r *recorder.Replay) string {
	notations := make([]string, len(r.Moves))
	for i, m := range r.Moves {
		notations[i] = m.Notation
	}
	return cubie.FormatMoves(r.Scramble) + "\n" + strings.Join(notations, " ")
}

func newSessionExport(r *recorder.Replay) sessionExport {
	s := r.Session
	out := sessionExport{
		SessionID:  s.SessionID,
		StartedAt:  s.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		DurationMs: s.DurationMs,
		Scramble:   cubie.FormatMoves(r.Scramble),
		Solved:     s.Solved,
		MoveCount:  s.MoveCount,
		Turns:      make([]turnExport, 0, len(r.Moves)),
	}
	if s.EndedAt != nil {
		out.EndedAt = s.EndedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if s.Notes != nil {
		out.Notes = *s.Notes
	}
	for _, m := range r.Moves {
		out.Turns = append(out.Turns, turnExport{
			MoveIndex: m.MoveIndex,
			TsMs:      m.TsMs,
			Face:      m.Face,
			Turn:      m.Turn,
			Notation:  m.Notation,
			Kind:      string(m.Kind),
		})
	}
	f := r.Final.Facelets()
	out.Facelets = f.Definition()
	return out
}

// resolveSessionID picks the session named in args, or the latest one when
// last is set. Exactly one of the two must be given.
func resolveSessionID(db *storage.DB, args []string, last bool) (string, error) {
	if last == (len(args) == 1) {
		return "", errors.New("give a session id or --last")
	}
	if !last {
		return args[0], nil
	}

	s, err := storage.NewSessionRepository(db).GetLast()
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", errors.New("no sessions recorded yet")
	}
	return s.SessionID, nil
}

package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/recorder"
)

var (
	playScramble bool
	playResume   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the cube interactively in the terminal",
	Long: `Start an interactive TUI showing the cube net, the current scramble and
the moves made so far.

Keyboard shortcuts:
  u r f d l b   - Turn a face clockwise
  U R F D L B   - Turn a face counter-clockwise
  2             - Make the next turn a half turn
  z / y         - Undo / redo
  s             - New scramble
  x             - Reset to solved
  q / Ctrl+C    - Quit

Each scramble's turns are recorded as a session once the first move is made.
Use --resume to continue a session that was left open.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playScramble, "scramble", false, "Start from a fresh scramble")
	playCmd.Flags().BoolVar(&playResume, "resume", false, "Continue the session that was not ended")
	playCmd.MarkFlagsMutuallyExclusive("scramble", "resume")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("82")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// maxShownMoves bounds the move list in the panel.
const maxShownMoves = 20

type playModel struct {
	tracker *cubie.Tracker
	session *recorder.Session // nil when not recording
	colour  bool

	half     bool // next turn is a half turn
	status   string
	err      error
	width    int
	quitting bool
}

func newPlayModel(tracker *cubie.Tracker, session *recorder.Session, colour bool) *playModel {
	m := &playModel{
		tracker: tracker,
		session: session,
		colour:  colour,
	}
	tracker.OnPhaseChange(func(p cubie.Phase) {
		m.status = "Reached: " + p.DisplayName()
	})
	tracker.OnSolved(func() {
		m.status = fmt.Sprintf("Solved in %d moves", len(m.tracker.Moves()))
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		m.status = ""
		key := msg.String()

		switch key {
		case "q", "ctrl+c", "esc":
			m.endSession()
			m.quitting = true
			return m, tea.Quit

		case "2":
			m.half = !m.half

		case "z":
			m.undo()

		case "y":
			m.redo()

		case "s":
			m.endSession()
			m.tracker.Scramble()
			m.half = false
			m.status = "Scrambled"

		case "x":
			m.endSession()
			m.tracker.Reset()
			m.half = false
			m.status = "Reset"

		default:
			if mv, ok := keyMove(key, m.half); ok {
				m.half = false
				m.turn(mv)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// keyMove maps a face key to a move: lower case turns clockwise, upper case
// counter-clockwise, and half overrides both with a half turn.
func keyMove(key string, half bool) (cubie.Move, bool) {
	if len(key) != 1 {
		return cubie.Move{}, false
	}
	c := key[0]
	turn := cubie.CW
	if c >= 'A' && c <= 'Z' {
		turn = cubie.CCW
		c += 'a' - 'A'
	}
	if half {
		turn = cubie.Double
	}

	i := strings.IndexByte("urfdlb", c)
	if i < 0 {
		return cubie.Move{}, false
	}
	return cubie.Move{Face: cubie.Faces[i], Turn: turn}, true
}

func (m *playModel) turn(mv cubie.Move) {
	if m.session == nil {
		m.tracker.ApplyMove(mv)
		return
	}
	if m.session.State() != recorder.StateRecording {
		if _, err := m.session.Start("play"); err != nil {
			m.err = err
		}
	}
	if err := m.session.Turn(mv); err != nil {
		m.err = err
	}
}

func (m *playModel) undo() {
	var err error
	if m.session == nil {
		_, err = m.tracker.Undo()
	} else {
		_, err = m.session.Undo()
	}
	m.reportHistoryError(err, cubie.ErrNothingToUndo, "Nothing to undo")
}

func (m *playModel) redo() {
	var err error
	if m.session == nil {
		_, err = m.tracker.Redo()
	} else {
		_, err = m.session.Redo()
	}
	m.reportHistoryError(err, cubie.ErrNothingToRedo, "Nothing to redo")
}

func (m *playModel) reportHistoryError(err, empty error, msg string) {
	switch {
	case err == nil:
	case errors.Is(err, empty):
		m.status = msg
	default:
		m.err = err
	}
}

// endSession closes the recording session, if one is open.
func (m *playModel) endSession() {
	if m.session == nil || m.session.State() != recorder.StateRecording {
		return
	}
	if err := m.session.End(); err != nil {
		m.err = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubie"))
	if m.tracker.SolvedByUser() {
		b.WriteString("  ")
		b.WriteString(solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n\n")

	net := renderNet(m.tracker.Facelets(), m.colour)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, net, "  ", m.panel()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: urfdlb=turn  URFDLB=reverse  2=half  z=undo  y=redo  s=scramble  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// panel renders the scramble, moves and phase beside the net.
func (m *playModel) panel() string {
	var b strings.Builder

	scramble := cubie.FormatMoves(m.tracker.ScrambleMoves())
	if scramble == "" {
		scramble = "-"
	}
	b.WriteString("Scramble: ")
	b.WriteString(wrapMoves(scramble, 40))
	b.WriteString("\n")

	moves := m.tracker.Moves()
	count := len(moves)
	b.WriteString("Moves:    ")
	if count > maxShownMoves {
		b.WriteString("... ")
		moves = moves[count-maxShownMoves:]
	}
	b.WriteString(moveStyle.Render(cubie.FormatMoves(moves)))
	b.WriteString(statusStyle.Render(fmt.Sprintf(" (%d)", count)))
	b.WriteString("\n\n")

	b.WriteString("Phase: ")
	b.WriteString(phaseStyle.Render(m.tracker.Phase().DisplayName()))
	b.WriteString("\n")
	b.WriteString("Best:  ")
	b.WriteString(statusStyle.Render(m.tracker.HighestPhase().DisplayName()))
	b.WriteString("\n")

	if m.half {
		b.WriteString(phaseStyle.Render("Next turn: half"))
		b.WriteString("\n")
	}
	if m.session != nil && m.session.State() == recorder.StateRecording {
		id := m.session.SessionID()
		b.WriteString(statusStyle.Render("Recording " + id[:8]))
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// wrapMoves breaks a notation string into lines of at most width runes,
// splitting between moves.
func wrapMoves(s string, width int) string {
	var lines []string
	var line strings.Builder
	for _, tok := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(tok) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(tok)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n          ")
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	if err := preparePlay(cmd, stateFile, session, tracker); err != nil {
		return err
	}

	model := newPlayModel(tracker, session, !cfg.NoColor)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// preparePlay sets up the tracker before the TUI starts, either by resuming
// the open session or by scrambling when asked.
func preparePlay(cmd *cobra.Command, stateFile *recorder.StateFile, session *recorder.Session, tracker *cubie.Tracker) error {
	if playResume {
		id := stateFile.ActiveSessionID()
		if id == "" {
			return recorder.ErrNoSession
		}
		if err := session.Resume(id); err != nil {
			return err
		}
		if verbose {
			log.Printf("resumed session %s at move %d", id, session.MoveCount())
		}
		return nil
	}

	if stateFile.HasActiveSession() {
		fmt.Fprintf(cmd.OutOrStdout(), "Previous session %s was not ended (use --resume)\n", stateFile.ActiveSessionID())
	}
	if playScramble {
		tracker.Scramble()
	}
	if cfg.Seed != 0 {
		return stateFile.SetLastSeed(cfg.Seed)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/recorder"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var historyReplayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session in the terminal",
	Long: `Replay a recorded session turn by turn, starting from its scramble.
Turns are played back with their recorded timing.

Usage:
  cubie history replay --last             # Replay the latest session
  cubie history replay <id> --speed 2.0   # Replay at 2x speed
  cubie history replay <id> --step        # Step through turns manually`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
	replayLast  bool
)

// maxReplayGap caps the pause between two replayed turns.
const maxReplayGap = 3 * time.Second

func init() {
	historyReplayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	historyReplayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through turns manually")
	historyReplayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	historyCmd.AddCommand(historyReplayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	if replaySpeed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", replaySpeed)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := resolveSessionID(db, args, replayLast)
	if err != nil {
		return err
	}
	replay, err := recorder.Load(db, id)
	if err != nil {
		return err
	}

	model, err := newReplayModel(replay, replaySpeed, replayStep, !cfg.NoColor)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	replay *recorder.Replay
	turns  []cubie.Move
	start  cubie.State // after the scramble
	state  cubie.State
	index  int // turns applied so far

	speed    float64
	stepMode bool
	paused   bool
	colour   bool
	gen      int // drops ticks scheduled before a pause or reset
	quitting bool
}

type replayTickMsg struct{ gen int }

func newReplayModel(r *recorder.Replay, speed float64, stepMode, colour bool) (*replayModel, error) {
	turns, err := storage.ToMoves(r.Moves)
	if err != nil {
		return nil, err
	}

	start := cubie.SolvedState()
	start.Apply(r.Scramble...)

	return &replayModel{
		replay:   r,
		turns:    turns,
		start:    start,
		state:    start,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
		colour:   colour,
	}, nil
}

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.scheduleNext()
}

// scheduleNext waits for the recorded gap before the next turn.
func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.turns) {
		return nil
	}

	var gap time.Duration
	if m.index > 0 {
		gap = time.Duration(m.replay.Moves[m.index].TsMs-m.replay.Moves[m.index-1].TsMs) * time.Millisecond
	}
	gap = min(gap, maxReplayGap)
	delay := time.Duration(float64(gap) / m.speed)

	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayTickMsg{gen: gen}
	})
}

func (m *replayModel) forward() {
	if m.index < len(m.turns) {
		m.state.Apply(m.turns[m.index])
		m.index++
	}
}

func (m *replayModel) back() {
	if m.index > 0 {
		m.index--
		m.state.Apply(m.turns[m.index].Inverse())
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			if m.paused {
				m.forward()
				return m, nil
			}
			m.paused = true
			m.gen++

		case "b", "left":
			m.paused = true
			m.gen++
			m.back()

		case "p":
			m.paused = !m.paused
			m.gen++
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "r":
			m.state = m.start
			m.index = 0
			m.gen++
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-":
			m.speed = max(m.speed/2, 0.25)
		}

	case replayTickMsg:
		if msg.gen == m.gen && !m.paused {
			m.forward()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubie replay"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.replay.Session.SessionID))
	if m.state.IsSolved() && m.index > 0 {
		b.WriteString("  ")
		b.WriteString(solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Turn %d/%d", m.index, len(m.turns))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	status := statusStyle.Render(progress) + fmt.Sprintf(" (%.2gx speed)", m.speed)
	if m.index > 0 {
		last := m.replay.Moves[m.index-1]
		status += fmt.Sprintf("\nTime: %s", formatDuration(time.Duration(last.TsMs)*time.Millisecond))
	}

	var panel strings.Builder
	panel.WriteString(status)
	panel.WriteString("\n\n")
	panel.WriteString("Scramble: ")
	panel.WriteString(wrapMoves(cubie.FormatMoves(m.replay.Scramble), 40))
	panel.WriteString("\n")
	panel.WriteString("Played:   ")
	played := m.turns[:m.index]
	if len(played) > maxShownMoves {
		panel.WriteString("... ")
		played = played[len(played)-maxShownMoves:]
	}
	panel.WriteString(moveStyle.Render(cubie.FormatMoves(played)))
	panel.WriteString("\n")
	panel.WriteString("Phase:    ")
	panel.WriteString(phaseStyle.Render(m.state.Phase().DisplayName()))

	net := renderNet(m.state.Facelets(), m.colour)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, net, "  ", panelStyle.Render(panel.String())))
	b.WriteString("\n\n")

	help := "SPACE/n=next  b=back  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next turn  b=back  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

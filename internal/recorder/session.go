package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var (
	ErrSessionActive   = errors.New("session already in progress")
	ErrNoSession       = errors.New("no session in progress")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session already ended")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records the turns applied through a Tracker. Every turn that
// changes the cube is stored, undo and redo included, so replaying the
// scramble followed by the stored turns reproduces the final state.
type Session struct {
	tracker   *cubie.Tracker
	stateFile *StateFile

	sessions *storage.SessionRepository
	moves    *storage.MoveRepository

	mu        sync.Mutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int
}

// NewSession creates a session recorder for tracker. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile, tracker *cubie.Tracker) *Session {
	return &Session{
		tracker:   tracker,
		stateFile: stateFile,
		sessions:  storage.NewSessionRepository(db),
		moves:     storage.NewMoveRepository(db),
		state:     StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SessionID returns the current or most recently ended session ID.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// MoveCount returns the number of turns recorded in this session.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveIndex
}

// Start opens a new session for the tracker's current scramble.
func (s *Session) Start(notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrSessionActive
	}

	scramble := cubie.FormatMoves(s.tracker.ScrambleMoves())
	id, err := s.sessions.Create(scramble, notes)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.sessionID = id
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(id); err != nil {
			return id, err
		}
	}

	return id, nil
}

// Resume reopens a session that was never ended. The tracker is rebuilt
// from the stored scramble and turns, undo and redo included, and
// recording continues after the last stored index.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return ErrSessionActive
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if sess.Ended() {
		return fmt.Errorf("%w: %s", ErrSessionEnded, sessionID)
	}

	scramble, err := cubie.ParseMoves(sess.ScrambleText)
	if err != nil {
		return fmt.Errorf("session %s scramble: %w", sessionID, err)
	}
	records, err := s.moves.GetBySession(sessionID)
	if err != nil {
		return err
	}

	s.tracker.ApplyScramble(scramble)
	for _, r := range records {
		m, err := r.Move()
		if err != nil {
			return fmt.Errorf("session %s: %w", sessionID, err)
		}
		if err := s.rebuild(m, r.Kind); err != nil {
			return fmt.Errorf("session %s move %d: %w", sessionID, r.MoveIndex, err)
		}
	}

	next, err := s.moves.GetNextIndex(sessionID)
	if err != nil {
		return err
	}
	var elapsed time.Duration
	if n := len(records); n > 0 {
		elapsed = time.Duration(records[n-1].TsMs) * time.Millisecond
	}

	s.sessionID = sessionID
	s.startTime = time.Now().Add(-elapsed)
	s.moveIndex = next
	s.state = StateRecording

	if s.stateFile != nil {
		return s.stateFile.SetActiveSession(sessionID)
	}
	return nil
}

// rebuild replays one stored turn through the tracker so its undo and redo
// stacks match the recorded session.
func (s *Session) rebuild(m cubie.Move, kind storage.MoveKind) error {
	switch kind {
	case storage.KindUndo:
		undone, err := s.tracker.Undo()
		if err != nil {
			return err
		}
		if undone.Inverse() != m {
			return fmt.Errorf("undo of %s stored as %s", undone, m)
		}
	case storage.KindRedo:
		redone, err := s.tracker.Redo()
		if err != nil {
			return err
		}
		if redone != m {
			return fmt.Errorf("redo of %s stored as %s", redone, m)
		}
	default:
		s.tracker.ApplyMove(m)
	}
	return nil
}

// Turn applies a user move to the tracker and records it.
func (s *Session) Turn(m cubie.Move) error {
	s.tracker.ApplyMove(m)
	return s.Record(m, storage.KindTurn)
}

// Undo reverts the last user move and records the inverse turn.
func (s *Session) Undo() (cubie.Move, error) {
	m, err := s.tracker.Undo()
	if err != nil {
		return m, err
	}
	return m, s.Record(m.Inverse(), storage.KindUndo)
}

// Redo re-applies the last undone move and records it.
func (s *Session) Redo() (cubie.Move, error) {
	m, err := s.tracker.Redo()
	if err != nil {
		return m, err
	}
	return m, s.Record(m, storage.KindRedo)
}

// Record stores a turn that has already been applied to the cube.
// It is a no-op when no session is recording.
func (s *Session) Record(m cubie.Move, kind storage.MoveKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.moves.Create(s.sessionID, s.moveIndex, tsMs, m, kind); err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	s.moveIndex++
	return nil
}

// End closes the session, storing whether the user solved the cube.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSession
	}

	if err := s.sessions.End(s.sessionID, s.tracker.SolvedByUser(), len(s.tracker.Moves())); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.FinishSession(s.sessionID); err != nil {
			return err
		}
	}

	return nil
}

// Replay is a stored session with its state recomputed from notation.
type Replay struct {
	Session  storage.Session
	Scramble []cubie.Move
	Moves    []storage.MoveRecord
	Final    cubie.State
}

// Load reads a session and replays its scramble and recorded turns.
func Load(db *storage.DB, sessionID string) (*Replay, error) {
	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	scramble, err := cubie.ParseMoves(sess.ScrambleText)
	if err != nil {
		return nil, fmt.Errorf("session %s scramble: %w", sessionID, err)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := storage.ToMoves(records)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	final := cubie.SolvedState()
	final.Apply(scramble...)
	final.Apply(turns...)

	return &Replay{
		Session:  *sess,
		Scramble: scramble,
		Moves:    records,
		Final:    final,
	}, nil
}

package recorder

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *cubie.Tracker, *storage.DB, *StateFile) {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "cubie.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("NewStateFile: %v", err)
	}

	tracker := cubie.NewTracker(cubie.WithScrambler(cubie.NewScrambler(cubie.WithSeed(7))))
	return NewSession(db, sf, tracker), tracker, db, sf
}

func TestSessionRecordsAndReplays(t *testing.T) {
	s, tracker, db, sf := newTestSession(t)
	tracker.Scramble()

	id, err := s.Start("")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateRecording || sf.ActiveSessionID() != id {
		t.Fatalf("state = %v, active = %q", s.State(), sf.ActiveSessionID())
	}
	if _, err := s.Start(""); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second Start = %v, want ErrSessionActive", err)
	}

	for _, m := range []cubie.Move{cubie.R, cubie.U, cubie.F2} {
		if err := s.Turn(m); err != nil {
			t.Fatalf("Turn: %v", err)
		}
	}
	if m, err := s.Undo(); err != nil || m != cubie.F2 {
		t.Fatalf("Undo = %v, %v", m, err)
	}
	if m, err := s.Redo(); err != nil || m != cubie.F2 {
		t.Fatalf("Redo = %v, %v", m, err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if s.MoveCount() != 6 {
		t.Errorf("MoveCount = %d, want 6", s.MoveCount())
	}

	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if sf.HasActiveSession() || sf.LastSessionID() != id {
		t.Errorf("state file after End: %+v", sf.State())
	}
	if err := s.End(); !errors.Is(err, ErrNoSession) {
		t.Errorf("second End = %v, want ErrNoSession", err)
	}

	replay, err := Load(db, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(replay.Scramble, tracker.ScrambleMoves()) {
		t.Errorf("scramble = %v, want %v", replay.Scramble, tracker.ScrambleMoves())
	}
	want := tracker.State()
	if !replay.Final.Equal(&want) {
		t.Errorf("replayed state differs:\n%s\nwant\n%s", replay.Final.String(), want.String())
	}
	if replay.Session.MoveCount != 2 || replay.Session.Solved {
		t.Errorf("session = %+v", replay.Session)
	}
	kinds := []storage.MoveKind{storage.KindTurn, storage.KindTurn, storage.KindTurn, storage.KindUndo, storage.KindRedo, storage.KindUndo}
	for i, r := range replay.Moves {
		if r.Kind != kinds[i] {
			t.Errorf("move %d kind = %s, want %s", i, r.Kind, kinds[i])
		}
	}
}

func TestSessionSolvedByUser(t *testing.T) {
	s, tracker, db, _ := newTestSession(t)
	tracker.ApplyScramble(cubie.SexyMove)

	id, err := s.Start("sexy")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, m := range cubie.InvertMoves(cubie.SexyMove) {
		if err := s.Turn(m); err != nil {
			t.Fatalf("Turn: %v", err)
		}
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	replay, err := Load(db, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !replay.Session.Solved || !replay.Final.IsSolved() {
		t.Errorf("expected solved session, got %+v", replay.Session)
	}
}

func TestSessionResume(t *testing.T) {
	s, tracker, db, sf := newTestSession(t)
	tracker.Scramble()

	id, err := s.Start("")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, m := range []cubie.Move{cubie.R, cubie.U, cubie.F2, cubie.L} {
		if err := s.Turn(m); err != nil {
			t.Fatalf("Turn: %v", err)
		}
	}
	for range 2 {
		if _, err := s.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
	}
	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}

	// A new process picks the open session up from the state file.
	fresh := cubie.NewTracker()
	resumed := NewSession(db, sf, fresh)
	if err := resumed.Resume(sf.ActiveSessionID()); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resumed.State() != StateRecording || resumed.SessionID() != id {
		t.Fatalf("state = %v, id = %q", resumed.State(), resumed.SessionID())
	}
	if resumed.MoveCount() != 7 {
		t.Errorf("MoveCount = %d, want 7", resumed.MoveCount())
	}
	want := tracker.State()
	got := fresh.State()
	if !got.Equal(&want) {
		t.Errorf("resumed state differs:\n%s\nwant\n%s", got.String(), want.String())
	}
	if !slices.Equal(fresh.Moves(), tracker.Moves()) || !slices.Equal(fresh.ScrambleMoves(), tracker.ScrambleMoves()) {
		t.Errorf("moves = %v, want %v", fresh.Moves(), tracker.Moves())
	}

	// The second undone move is still on the redo stack.
	if m, err := resumed.Redo(); err != nil || m != cubie.L {
		t.Fatalf("Redo after resume = %v, %v; want L", m, err)
	}
	if err := resumed.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	replay, err := Load(db, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(replay.Moves) != 8 || replay.Moves[7].MoveIndex != 7 {
		t.Errorf("stored %d moves after resume", len(replay.Moves))
	}
	final := fresh.State()
	if !replay.Final.Equal(&final) || replay.Session.MoveCount != 4 {
		t.Errorf("replay after resume: move count %d", replay.Session.MoveCount)
	}

	if err := NewSession(db, nil, cubie.NewTracker()).Resume(id); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Resume of ended session = %v, want ErrSessionEnded", err)
	}
	if err := NewSession(db, nil, cubie.NewTracker()).Resume("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Resume of missing session = %v, want ErrSessionNotFound", err)
	}
}

func TestRecordWithoutSessionIsNoop(t *testing.T) {
	s, tracker, _, _ := newTestSession(t)
	if err := s.Turn(cubie.R); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if s.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0", s.MoveCount())
	}
	if len(tracker.Moves()) != 1 {
		t.Errorf("tracker should still apply the move")
	}
	if _, err := s.Redo(); !errors.Is(err, cubie.ErrNothingToRedo) {
		t.Errorf("Redo = %v, want ErrNothingToRedo", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, _, db, _ := newTestSession(t)
	if _, err := Load(db, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Load = %v, want ErrSessionNotFound", err)
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	sf, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("NewStateFile on missing file: %v", err)
	}
	if err := sf.SetDBPath("/tmp/cubie.db"); err != nil {
		t.Fatalf("SetDBPath: %v", err)
	}
	if err := sf.SetLastSeed(99); err != nil {
		t.Fatalf("SetLastSeed: %v", err)
	}
	if err := sf.SetActiveSession("abc"); err != nil {
		t.Fatalf("SetActiveSession: %v", err)
	}

	loaded, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	st := loaded.State()
	if st.DBPath != "/tmp/cubie.db" || st.LastSeed != 99 || st.ActiveSessionID != "abc" {
		t.Errorf("reloaded state = %+v", st)
	}
	if st.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

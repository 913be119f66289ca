package cubie

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    Move
		wantErr bool
	}{
		{"R", R, false},
		{"R2", Move{Face: FaceR, Turn: Double}, false},
		{"R'", RPrime, false},
		{"u", U, false},
		{"f2", F2, false},
		{"b'", BPrime, false},
		{"  D'  ", DPrime, false},
		{"\tL\n", L, false},
		{"", Move{}, true},
		{"   ", Move{}, true},
		{"x", Move{}, true},
		{"M", Move{}, true},
		{"R3", Move{}, true},
		{"R2'", Move{}, true},
		{"R'2", Move{}, true},
		{"R`", Move{}, true},
		{"Rw", Move{}, true},
		{"R ", R, false},
		{"R U", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNotation) {
					t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", tt.input, err)
				}
				if got != (Move{}) {
					t.Errorf("ParseMove(%q) returned partial move %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "R"},
		{R2, "R2"},
		{RPrime, "R'"},
		{U, "U"},
		{FPrime, "F'"},
		{D2, "D2"},
		{L, "L"},
		{BPrime, "B'"},
	}

	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNotationRoundTrip_AllMoves(t *testing.T) {
	if len(AllMoves) != 18 {
		t.Fatalf("AllMoves has %d moves, want 18", len(AllMoves))
	}
	seen := make(map[string]bool)
	for _, m := range AllMoves {
		token := m.Notation()
		if seen[token] {
			t.Errorf("duplicate notation %q", token)
		}
		seen[token] = true

		got, err := ParseMove(token)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", token, err)
			continue
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %+v, want %+v", token, got, m)
		}
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		move Move
		want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{U, UPrime},
		{FPrime, F},
		{B2, B2},
	}

	for _, tt := range tests {
		if got := tt.move.Inverse(); got != tt.want {
			t.Errorf("%s.Inverse() = %s, want %s", tt.move, got, tt.want)
		}
	}

	for _, m := range AllMoves {
		if m.Inverse().Inverse() != m {
			t.Errorf("%s inverted twice should be itself", m)
		}
		if m.Inverse().Face != m.Face {
			t.Errorf("%s inverse changed the face", m)
		}
	}
}

func TestNewMove(t *testing.T) {
	m, err := NewMove(FaceL, CCW)
	if err != nil {
		t.Fatalf("NewMove: %v", err)
	}
	if m != LPrime {
		t.Errorf("NewMove(L, CCW) = %s, want L'", m)
	}

	for _, bad := range []struct {
		face Face
		turn Turn
	}{
		{Face(6), CW},
		{FaceU, Turn(0)},
		{FaceU, Turn(4)},
	} {
		if _, err := NewMove(bad.face, bad.turn); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("NewMove(%d, %d) error = %v, want ErrInvalidMove", bad.face, bad.turn, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("  R U  R' U'\nF2 ")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{R, U, RPrime, UPrime, F2}
	if FormatMoves(moves) != FormatMoves(want) {
		t.Errorf("ParseMoves = %s, want %s", FormatMoves(moves), FormatMoves(want))
	}

	empty, err := ParseMoves("   ")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseMoves(blank) = %v, %v; want empty, nil", empty, err)
	}

	_, err = ParseMoves("R U x2 F")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("ParseMoves error = %v, want ErrInvalidNotation", err)
	}
	if !strings.Contains(err.Error(), `"x2"`) || !strings.Contains(err.Error(), "token 3") {
		t.Errorf("error should name the token and its position: %v", err)
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
	if got := FormatMoves(TPerm); got != "R U R' U' R' F R2 U' R' U' R U R' F'" {
		t.Errorf("FormatMoves(TPerm) = %q", got)
	}
}

func TestInvertMoves(t *testing.T) {
	inv := InvertMoves(SexyMove)
	if got := FormatMoves(inv); got != "U R U' R'" {
		t.Errorf("InvertMoves(R U R' U') = %q, want \"U R U' R'\"", got)
	}

	scramble := NewScrambler(WithSeed(3)).Scramble(25)
	s := SolvedState()
	ApplyMoves(&s, scramble)
	ApplyMoves(&s, InvertMoves(scramble))
	if !s.IsSolved() {
		t.Error("scramble followed by its inverse should be solved")
	}
}

func TestFaceAxis(t *testing.T) {
	pairs := [][2]Face{{FaceU, FaceD}, {FaceR, FaceL}, {FaceF, FaceB}}
	for _, p := range pairs {
		if p[0].Axis() != p[1].Axis() {
			t.Errorf("%s and %s should share an axis", p[0], p[1])
		}
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%s and %s should be opposite", p[0], p[1])
		}
	}
	if FaceU.Axis() == FaceR.Axis() || FaceR.Axis() == FaceF.Axis() || FaceU.Axis() == FaceF.Axis() {
		t.Error("adjacent faces should not share an axis")
	}
	if got := Face(9).String(); got != "?" {
		t.Errorf("invalid face String() = %q, want ?", got)
	}
}

func TestInvalidMoveNotation(t *testing.T) {
	bad, err := ParseMove("R3")
	if err == nil {
		t.Fatal("expected an error for R3")
	}
	tests := []Move{bad, {}, {Face: FaceR, Turn: 4}, {Face: Face(7), Turn: CW}}
	for _, m := range tests {
		if got := m.String(); got != "?" {
			t.Errorf("Move%+v.String() = %q, want ?", m, got)
		}
	}
	if got := FormatMoves([]Move{R, {}, U}); got != "R ? U" {
		t.Errorf("FormatMoves with an invalid move = %q", got)
	}
}

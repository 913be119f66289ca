package cubie

import (
	"errors"
	"strings"
	"testing"
)

const solvedDefinition = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestFacelets_Solved(t *testing.T) {
	s := SolvedState()
	f := s.Facelets()
	if got := f.Definition(); got != solvedDefinition {
		t.Errorf("Definition() = %s, want %s", got, solvedDefinition)
	}
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			if f[face][i] != Color(face) {
				t.Errorf("face %s position %d = %s", Face(face), i, f[face][i])
			}
		}
	}
}

func TestFacelets_KnownDefinitions(t *testing.T) {
	tests := []struct {
		moves string
		want  string
	}{
		{"U", "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB"},
		{"R", "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"},
		{"F", "UUUUUULLLURRURRURRFFFFFFFFFRRRDDDDDDLLDLLDLLDBBBBBBBBB"},
		{"R U R' U'", "UULUUFUUFRRUBRRURRFFDFFUFFFDDRDDDDDDBLLLLLLLLBRRBBBBBB"},
		{"F B2 L' D R U2", "RLFFUFFDFDDDFRRFLLLBLDFRRRRBBUUDBUDBUUULLLBBDRFBUBUDRL"},
		{FormatMoves(Superflip), "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"},
	}

	for _, tt := range tests {
		t.Run(tt.moves, func(t *testing.T) {
			moves, err := ParseMoves(tt.moves)
			if err != nil {
				t.Fatalf("ParseMoves: %v", err)
			}
			s := SolvedState()
			ApplyMoves(&s, moves)
			f := s.Facelets()
			if got := f.Definition(); got != tt.want {
				t.Errorf("Definition() = %s, want %s", got, tt.want)
				t.Log("\n" + f.String())
			}
		})
	}
}

func TestFacelets_EveryColorNineTimes(t *testing.T) {
	s := scrambledState(t, 21)
	f := s.Facelets()

	var counts [6]int
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			counts[f[face][i]]++
		}
	}
	for c, n := range counts {
		if n != 9 {
			t.Errorf("color %s appears %d times, want 9", Color(c), n)
		}
	}
}

func TestFacelets_String(t *testing.T) {
	s := SolvedState()
	f := s.Facelets()
	lines := strings.Split(strings.TrimRight(f.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	if lines[0] != "      W W W " {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[3] != "O O O G G G R R R B B B " {
		t.Errorf("middle line = %q", lines[3])
	}
	if lines[8] != "      Y Y Y " {
		t.Errorf("last line = %q", lines[8])
	}
}

func TestParseFacelets_RoundTrip(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := scrambledState(t, seed)
		f := s.Facelets()

		got, err := ParseFacelets(f.Definition())
		if err != nil {
			t.Fatalf("seed %d: ParseFacelets: %v", seed, err)
		}
		if !got.Equal(&s) {
			t.Errorf("seed %d: round trip mismatch:\ngot  %s\nwant %s", seed, got.String(), s.String())
		}
	}

	got, err := ParseFacelets(strings.ToLower(solvedDefinition))
	if err != nil || !got.IsSolved() {
		t.Errorf("lower-case solved definition: %v, solved=%v", err, got.IsSolved())
	}
}

func TestParseFacelets_Errors(t *testing.T) {
	swapped := []byte(solvedDefinition)
	swapped[0], swapped[9] = swapped[9], swapped[0] // U1 <-> R1

	// Yellow on top of the URF slot: no piece is yellow, red and green.
	wrongFloor := []byte(solvedDefinition)
	wrongFloor[8], wrongFloor[29] = wrongFloor[29], wrongFloor[8] // U9 <-> D3

	badCenter := []byte(solvedDefinition)
	badCenter[4], badCenter[13] = 'R', 'U'

	tests := []struct {
		name string
		def  string
	}{
		{"empty", ""},
		{"short", solvedDefinition[:53]},
		{"long", solvedDefinition + "U"},
		{"unknown letter", "X" + solvedDefinition[1:]},
		{"non-ascii", "é" + solvedDefinition[2:]},
		{"bad center", string(badCenter)},
		{"impossible corner", string(swapped)},
		{"corner with wrong U/D colour", string(wrongFloor)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFacelets(tt.def); !errors.Is(err, ErrInvalidState) {
				t.Errorf("ParseFacelets error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestParseFacelets_DoesNotCheckReachability(t *testing.T) {
	// A single twisted corner: well-formed, but no face turns produce it.
	s := SolvedState()
	s.CO[URF] = 1
	f := s.Facelets()

	got, err := ParseFacelets(f.Definition())
	if err != nil {
		t.Fatalf("ParseFacelets: %v", err)
	}
	if got.CO[URF] != 1 || got.Twist() != 1 {
		t.Errorf("expected a single twisted URF corner, got %s", got.String())
	}
}

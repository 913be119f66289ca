package cubie

import (
	"fmt"
	"strings"
)

// Color represents a sticker color. Each color is the solved color of the
// face with the same index, so Color(f) is the center color of face f.
type Color uint8

const (
	White  Color = Color(FaceU) // Up face when solved
	Red    Color = Color(FaceR) // Right face when solved
	Green  Color = Color(FaceF) // Front face when solved
	Yellow Color = Color(FaceD) // Down face when solved
	Orange Color = Color(FaceL) // Left face when solved
	Blue   Color = Color(FaceB) // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face returns the face whose center has this color.
func (c Color) Face() Face {
	return Face(c)
}

// Facelets is the sticker view of a cube, Facelets[face][position] = color.
// Faces are in U R F D L B order and each face is indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// seen from outside the cube: U with B at the top, D with F at the top,
// and the four side faces with U at the top.
type Facelets [6][9]Color

// Sticker positions of every corner and edge slot, listed in the same face
// order as CornerSlotFaces and EdgeSlotFaces.
var (
	cornerFacelet = [NumCorners][3]uint8{
		{8, 0, 2}, {6, 0, 2}, {0, 0, 2}, {2, 0, 2},
		{2, 8, 6}, {0, 8, 6}, {6, 8, 6}, {8, 8, 6},
	}
	edgeFacelet = [NumEdges][2]uint8{
		{5, 1}, {7, 1}, {3, 1}, {1, 1},
		{5, 7}, {1, 7}, {3, 7}, {7, 7},
		{5, 3}, {3, 5}, {5, 3}, {3, 5},
	}
)

// Facelets projects the state onto stickers. A corner with twist o shows
// color n of its piece on slot face (n+o) mod 3; a flipped edge swaps its
// two colors.
func (s *State) Facelets() Facelets {
	var f Facelets
	for face := 0; face < 6; face++ {
		f[face][4] = Color(face)
	}

	for i := 0; i < NumCorners; i++ {
		piece, ori := s.CP[i], int(s.CO[i])
		for n := 0; n < 3; n++ {
			k := (n + ori) % 3
			f[CornerSlotFaces[i][k]][cornerFacelet[i][k]] = CornerColors[piece][n]
		}
	}

	for i := 0; i < NumEdges; i++ {
		piece, ori := s.EP[i], int(s.EO[i])
		for n := 0; n < 2; n++ {
			k := (n + ori) % 2
			f[EdgeSlotFaces[i][k]][edgeFacelet[i][k]] = EdgeColors[piece][n]
		}
	}

	return f
}

// Definition returns the 54-letter facelet string, face letters in
// U R F D L B order. The solved cube is "UUUUUUUUURRRRRRRRRFFF...".
func (f *Facelets) Definition() string {
	var b strings.Builder
	b.Grow(54)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			b.WriteString(f[face][i].Face().String())
		}
	}
	return b.String()
}

// String returns the unfolded net of the cube.
func (f *Facelets) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += f[FaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				result += f[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += f[FaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// ParseFacelets builds a state from a 54-letter facelet definition as
// returned by Definition. Letters are case-insensitive.
//
// Every piece must be identifiable from its colors and appear exactly once.
// Twist, flip and parity are not checked, so the result may be a state no
// sequence of face turns reaches.
func ParseFacelets(def string) (State, error) {
	def = strings.TrimSpace(def)
	if len(def) != 54 {
		return State{}, fmt.Errorf("%w: facelet definition has %d letters, want 54", ErrInvalidState, len(def))
	}

	var f Facelets
	for i := 0; i < 54; i++ {
		c := def[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		idx := strings.IndexByte(faceLetters, c)
		if idx < 0 {
			return State{}, fmt.Errorf("%w: unknown facelet letter %q at %d", ErrInvalidState, def[i], i)
		}
		f[i/9][i%9] = Color(idx)
	}
	for face := 0; face < 6; face++ {
		if f[face][4] != Color(face) {
			return State{}, fmt.Errorf("%w: center of %s is %s", ErrInvalidState, Face(face), f[face][4].Face())
		}
	}

	var s State

	for i := 0; i < NumCorners; i++ {
		// The U or D sticker marks the twist.
		ori := -1
		for k := 0; k < 3; k++ {
			c := f[CornerSlotFaces[i][k]][cornerFacelet[i][k]]
			if c == White || c == Yellow {
				ori = k
				break
			}
		}
		if ori < 0 {
			return State{}, fmt.Errorf("%w: corner slot %s has no U or D sticker", ErrInvalidState, Corner(i))
		}
		c0 := f[CornerSlotFaces[i][ori]][cornerFacelet[i][ori]]
		k1, k2 := (ori+1)%3, (ori+2)%3
		c1 := f[CornerSlotFaces[i][k1]][cornerFacelet[i][k1]]
		c2 := f[CornerSlotFaces[i][k2]][cornerFacelet[i][k2]]

		found := false
		for j := 0; j < NumCorners; j++ {
			if CornerColors[j][0] == c0 && CornerColors[j][1] == c1 && CornerColors[j][2] == c2 {
				s.CP[i] = uint8(j)
				s.CO[i] = uint8(ori)
				found = true
				break
			}
		}
		if !found {
			return State{}, fmt.Errorf("%w: corner slot %s holds no known piece", ErrInvalidState, Corner(i))
		}
	}

	for i := 0; i < NumEdges; i++ {
		c0 := f[EdgeSlotFaces[i][0]][edgeFacelet[i][0]]
		c1 := f[EdgeSlotFaces[i][1]][edgeFacelet[i][1]]

		found := false
		for j := 0; j < NumEdges; j++ {
			if EdgeColors[j][0] == c0 && EdgeColors[j][1] == c1 {
				s.EP[i], s.EO[i] = uint8(j), 0
				found = true
				break
			}
			if EdgeColors[j][0] == c1 && EdgeColors[j][1] == c0 {
				s.EP[i], s.EO[i] = uint8(j), 1
				found = true
				break
			}
		}
		if !found {
			return State{}, fmt.Errorf("%w: edge slot %s holds no known piece", ErrInvalidState, Edge(i))
		}
	}

	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

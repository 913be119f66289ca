package cubie

import (
	"iter"
	"math/rand/v2"
	"sync"
)

// DefaultScrambleLength is the number of moves in a scramble when no length
// is given.
const DefaultScrambleLength = 25

// Default turn weights: mostly quarter turns, as a person scrambling would.
const (
	defaultWeightCW     = 0.72
	defaultWeightDouble = 0.14
	defaultWeightCCW    = 0.14
)

// Scrambler generates random move sequences in which no move shares a face
// or an axis with the move before it, so sequences like "R L" or "U D U"
// never appear.
//
// A Scrambler is not safe for concurrent use.
type Scrambler struct {
	rng *rand.Rand

	// Cut points for the turn draw: CW below cutCW, Double below cutDouble,
	// CCW above.
	cutCW     float64
	cutDouble float64
}

// ScrambleOption configures a Scrambler.
type ScrambleOption func(*Scrambler)

// WithSource draws randomness from src.
func WithSource(src rand.Source) ScrambleOption {
	return func(s *Scrambler) {
		s.rng = rand.New(src)
	}
}

// WithSeed makes the Scrambler deterministic: the same seed always yields
// the same scrambles.
func WithSeed(seed uint64) ScrambleOption {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithTurnWeights sets the relative likelihood of clockwise, half and
// counter-clockwise turns. Weights are normalised; negative weights or an
// all-zero set leave the defaults (0.72, 0.14, 0.14) in place.
func WithTurnWeights(cw, double, ccw float64) ScrambleOption {
	return func(s *Scrambler) {
		sum := cw + double + ccw
		if cw < 0 || double < 0 || ccw < 0 || sum <= 0 {
			return
		}
		s.cutCW = cw / sum
		s.cutDouble = (cw + double) / sum
	}
}

// NewScrambler creates a Scrambler. Without options it uses a randomly
// seeded source and the default turn weights.
func NewScrambler(opts ...ScrambleOption) *Scrambler {
	s := &Scrambler{
		cutCW:     defaultWeightCW,
		cutDouble: defaultWeightCW + defaultWeightDouble,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Scramble returns length random moves. A length of zero or less yields
// DefaultScrambleLength moves.
func (s *Scrambler) Scramble(length int) []Move {
	if length <= 0 {
		length = DefaultScrambleLength
	}
	moves := make([]Move, 0, length)
	for m := range s.Seq(length) {
		moves = append(moves, m)
	}
	return moves
}

// Seq yields length random moves, drawing each one as it is consumed. The
// sequence can be ranged over once; ranging again draws new moves.
func (s *Scrambler) Seq(length int) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		var last Move
		for i := 0; i < length; i++ {
			m := s.next(last, i > 0)
			if !yield(m) {
				return
			}
			last = m
		}
	}
}

// next draws a move that differs in face and axis from prev.
func (s *Scrambler) next(prev Move, hasPrev bool) Move {
	face := Faces[s.rng.IntN(len(Faces))]
	for hasPrev && (face == prev.Face || face.Axis() == prev.Face.Axis()) {
		face = Faces[s.rng.IntN(len(Faces))]
	}

	r := s.rng.Float64()
	turn := CCW
	if r < s.cutCW {
		turn = CW
	} else if r < s.cutDouble {
		turn = Double
	}

	return Move{Face: face, Turn: turn}
}

var (
	defaultScramblerMu sync.Mutex
	defaultScrambler   = NewScrambler()
)

// RandomScramble returns length random moves from a shared, randomly seeded
// Scrambler. It is safe for concurrent use. A length of zero or less yields
// DefaultScrambleLength moves.
func RandomScramble(length int) []Move {
	defaultScramblerMu.Lock()
	defer defaultScramblerMu.Unlock()
	return defaultScrambler.Scramble(length)
}

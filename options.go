package cubie

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	scrambleLength int
	scrambler      *Scrambler
	moveHistory    bool
	phaseDetection bool
}

func defaultConfig() *config {
	return &config{
		scrambleLength: DefaultScrambleLength,
		moveHistory:    true,
		phaseDetection: true,
	}
}

// WithScrambleLength sets the number of moves Tracker.Scramble generates.
// Values of zero or less keep DefaultScrambleLength.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithScrambler sets the generator Tracker.Scramble draws from.
// Pass a seeded Scrambler for reproducible scrambles.
func WithScrambler(s *Scrambler) Option {
	return func(c *config) {
		c.scrambler = s
	}
}

// WithMoveHistory enables or disables undo/redo history.
// When enabled (default), every user move can be undone and redone.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithPhaseDetection enables or disables automatic phase detection.
// When enabled (default), the OnPhaseChange callback fires when phases complete.
func WithPhaseDetection(enabled bool) Option {
	return func(c *config) {
		c.phaseDetection = enabled
	}
}

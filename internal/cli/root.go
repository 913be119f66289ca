// Package cli implements the command-line interface for cubie.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/config"
	"github.com/SeamusWaldron/cubie/internal/recorder"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags. Zero values mean "not set" and leave the environment
	// configuration in place.
	dbPath    string
	statePath string
	seed      uint64
	length    int
	verbose   bool
	noColor   bool

	// cfg is the effective configuration, resolved before every command.
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubie",
	Short: "3x3 puzzle cube engine",
	Long: `cubie - A cubie-level engine for the 3x3 twisty puzzle.

Generate scrambles, apply move sequences in standard notation, invert
algorithms, and play the cube interactively in the terminal. Played
sessions are recorded to a local SQLite database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: $CUBIE_DB or ~/.cubie/cubie.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: $CUBIE_STATE_FILE or ~/.cubie/state.json)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Scramble seed for reproducible scrambles (default: $CUBIE_SEED, 0 = random)")
	rootCmd.PersistentFlags().IntVarP(&length, "length", "n", 0, "Scramble length (default: $CUBIE_SCRAMBLE_LENGTH or 25)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Render the cube net without colour")
}

// loadConfig parses the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if statePath != "" {
		c.StateFile = statePath
	}
	if seed != 0 {
		c.Seed = seed
	}
	if length != 0 {
		c.ScrambleLength = length
	}
	if noColor {
		c.NoColor = true
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if verbose {
		log.Printf("db=%s state=%s length=%d seed=%d", cfg.DBPath, cfg.StateFile, cfg.ScrambleLength, cfg.Seed)
	}
	return nil
}

// newScrambler returns a scrambler seeded from the configuration, or a
// randomly seeded one when no seed is set.
func newScrambler() *cubie.Scrambler {
	if cfg.Seed != 0 {
		return cubie.NewScrambler(cubie.WithSeed(cfg.Seed))
	}
	return cubie.NewScrambler()
}

// newTracker returns a tracker using the configured scrambler and length.
func newTracker() *cubie.Tracker {
	return cubie.NewTracker(
		cubie.WithScrambler(newScrambler()),
		cubie.WithScrambleLength(cfg.ScrambleLength),
	)
}

func openDB() (*storage.DB, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if verbose {
		log.Printf("opened database %s", db.Path())
	}
	return db, nil
}

func openStateFile() (*recorder.StateFile, error) {
	sf, err := recorder.NewStateFile(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if sf.DBPath() != cfg.DBPath {
		if err := sf.SetDBPath(cfg.DBPath); err != nil {
			return nil, err
		}
	}
	return sf, nil
}

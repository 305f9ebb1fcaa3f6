// Package ladder implements the core of a ladder lottery (Amidakuji): a set
// of parallel vertical lines connected by horizontal rungs at discrete
// levels. Tracing each line top to bottom and swapping at every rung crossed
// yields a random bijection between top and bottom endpoints.
//
// The package has three pure operations:
//   - [Generate] produces a rung [Layout] from a [Config] and a random [Source]
//   - [Simulate] derives the induced [Permutation] from a Layout
//   - [NormalizeNames] prepares player/outcome name lists for display
//
// All operations are side-effect free. A Layout is created once per
// generation and never mutated; Simulate and the renderers consume it
// read-only, so derived values stay valid until the caller regenerates.
package ladder

import (
	"slices"

	"github.com/yosukei/amida/pkg/errors"
)

// Default configuration values, matching the classic interactive setup.
const (
	DefaultPlayers     = 4
	DefaultLevels      = 10
	DefaultProbability = 0.35
)

// Config describes the shape of a ladder to generate.
type Config struct {
	// Players is the number of vertical lines (top/bottom endpoints).
	// Must be at least 2.
	Players int `json:"players" toml:"players"`

	// Levels is the number of horizontal rows at which rungs may appear.
	// Must be at least 1.
	Levels int `json:"levels" toml:"levels"`

	// Probability is the chance, per eligible gap, that a rung is placed
	// during the left-to-right generation scan. Must be in [0, 1].
	Probability float64 `json:"probability" toml:"probability"`
}

// DefaultConfig returns a Config with the default player count, level count
// and rung probability.
func DefaultConfig() Config {
	return Config{
		Players:     DefaultPlayers,
		Levels:      DefaultLevels,
		Probability: DefaultProbability,
	}
}

// Validate checks that the configuration is within the supported ranges.
// It returns an error with code [errors.ErrCodeInvalidConfig] describing the
// first violation found, or nil if the configuration is valid.
func (c Config) Validate() error {
	if c.Players < 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "players must be at least 2, got %d", c.Players)
	}
	if c.Levels < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "levels must be at least 1, got %d", c.Levels)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "probability must be in [0, 1], got %g", c.Probability)
	}
	return nil
}

// Layout is the rung layout of a generated ladder.
//
// Rungs[c][i] reports whether a rung connects vertical lines i and i+1 at
// level c. Every level has exactly Players()-1 gap positions. Within a level
// no two adjacent gaps both hold a rung, so rungs never overlap; Generate
// guarantees this by construction.
//
// A Layout is immutable after generation. Regenerating produces a new
// independent value; permutations and diagrams derived from the old one must
// not be reused.
type Layout struct {
	Rungs [][]bool `json:"rungs"`
}

// Levels returns the number of levels in the layout.
func (l Layout) Levels() int {
	return len(l.Rungs)
}

// Players returns the number of vertical lines, derived from the gap count
// of the first level. An empty layout has zero players.
func (l Layout) Players() int {
	if len(l.Rungs) == 0 {
		return 0
	}
	return len(l.Rungs[0]) + 1
}

// Validate checks structural soundness of a layout that did not come from
// Generate (e.g. one decoded from JSON): every level must have the same
// non-zero gap count, and no level may hold rungs in adjacent gaps.
func (l Layout) Validate() error {
	if len(l.Rungs) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has no levels")
	}
	gaps := len(l.Rungs[0])
	if gaps < 1 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has no gap positions (players < 2)")
	}
	for c, level := range l.Rungs {
		if len(level) != gaps {
			return errors.New(errors.ErrCodeInvalidLayout,
				"level %d has %d gaps, want %d", c, len(level), gaps)
		}
		for i := 1; i < len(level); i++ {
			if level[i] && level[i-1] {
				return errors.New(errors.ErrCodeInvalidLayout,
					"level %d has adjacent rungs at gaps %d and %d", c, i-1, i)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the layout. Useful when a caller needs to
// hold a layout beyond the lifetime of the buffer it was decoded into.
func (l Layout) Clone() Layout {
	rungs := make([][]bool, len(l.Rungs))
	for c, level := range l.Rungs {
		rungs[c] = slices.Clone(level)
	}
	return Layout{Rungs: rungs}
}

// Package manifest loads game configuration files.
//
// A game file is a small TOML document describing one ladder lottery:
//
//	players = "Alice, Bob, Carol"
//	outcomes = "Coffee, Tea, Nothing"
//	levels = 12
//	probability = 0.4
//	seed = 7
//
// Name lists may be given as comma-separated strings or as TOML arrays.
// Every field is optional; missing fields fall back to the defaults of
// [Default]. Short name lists are padded with numbered placeholders, so a
// file listing two players for a four-player game still yields four labels.
package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yosukei/amida/pkg/errors"
	"github.com/yosukei/amida/pkg/ladder"
)

// Default values applied when a game file omits a field.
const (
	DefaultPlayers       = 4
	DefaultLevels        = 10
	DefaultProbability   = 0.35
	DefaultPlayerPrefix  = "P"
	DefaultOutcomePrefix = "Prize "
)

// Manifest is a fully resolved game description: validated configuration
// plus normalized name lists of exactly Config.Players entries each.
type Manifest struct {
	Config   ladder.Config
	Players  []string
	Outcomes []string

	// Seed pins the random source when non-zero. Zero means "fresh
	// randomness on every draw".
	Seed uint64
}

// Source returns the random source the manifest asks for: a seeded one when
// Seed is set, otherwise the default crypto-seeded source.
func (m *Manifest) Source() ladder.Source {
	if m.Seed != 0 {
		return ladder.SeededSource(m.Seed)
	}
	return ladder.DefaultSource()
}

// file mirrors the TOML document. Name fields accept both a comma string
// and an array, so they unmarshal into any and get coerced afterwards.
// Probability is a pointer so an explicit 0.0 (a rungless ladder) stays
// distinguishable from an absent field.
type file struct {
	Players     any      `toml:"players"`
	Outcomes    any      `toml:"outcomes"`
	Count       int      `toml:"count"`
	Levels      int      `toml:"levels"`
	Probability *float64 `toml:"probability"`
	Seed        uint64   `toml:"seed"`
}

// Default returns the manifest used when no game file is given:
// four players labelled A–D, ten levels, rung probability 0.35.
func Default() *Manifest {
	cfg := ladder.DefaultConfig()
	return &Manifest{
		Config:   cfg,
		Players:  ladder.NormalizeNames("A, B, C, D", cfg.Players, DefaultPlayerPrefix),
		Outcomes: ladder.NormalizeNames("", cfg.Players, DefaultOutcomePrefix),
	}
}

// Load reads and resolves a game file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read game file")
	}
	return Parse(data)
}

// Parse resolves a TOML game document.
func Parse(data []byte) (*Manifest, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse game file")
	}

	players, err := nameField(f.Players, "players")
	if err != nil {
		return nil, err
	}
	outcomes, err := nameField(f.Outcomes, "outcomes")
	if err != nil {
		return nil, err
	}

	cfg := ladder.Config{
		Players:     f.Count,
		Levels:      f.Levels,
		Probability: DefaultProbability,
	}
	if f.Probability != nil {
		cfg.Probability = *f.Probability
	}
	if cfg.Players == 0 {
		// Infer the player count from the longer name list, falling back
		// to the default.
		cfg.Players = max(countNames(players), countNames(outcomes))
		if cfg.Players == 0 {
			cfg.Players = DefaultPlayers
		}
	}
	if cfg.Levels == 0 {
		cfg.Levels = DefaultLevels
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Manifest{
		Config:   cfg,
		Players:  ladder.NormalizeNames(players, cfg.Players, DefaultPlayerPrefix),
		Outcomes: ladder.NormalizeNames(outcomes, cfg.Players, DefaultOutcomePrefix),
		Seed:     f.Seed,
	}, nil
}

// nameField coerces a TOML value to a comma-separated name string.
// Accepts a plain string or an array of strings.
func nameField(v any, field string) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return "", errors.New(errors.ErrCodeInvalidNames, "%s: array entries must be strings", field)
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidNames, "%s: expected string or array of strings", field)
	}
}

func countNames(raw string) int {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	n := 0
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

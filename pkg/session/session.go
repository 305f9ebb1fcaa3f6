// Package session holds the current game of a running amida shell.
//
// A ladder is generated once and then consulted repeatedly: re-rendered
// with different styles, traced player by player, re-read for its mapping.
// The core stays stateless, so whatever shell surrounds it (CLI or HTTP)
// needs a place to keep "the current ladder" until the user explicitly
// regenerates. This package provides that place, with implementations for
// different backends:
//   - memory: In-memory storage for development/testing and single-process serving
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//
// # Architecture
//
// A [Game] records the configuration, the generated rung layout, and the
// normalized name lists. The rungs are stored verbatim: the mapping and the
// diagram are cheap pure functions of them, so derived artifacts are
// recomputed on demand rather than stored — a regenerated game can never
// serve a stale mapping.
//
// The [Store] interface supports Get/Set/Delete plus Cleanup of expired
// games. Games expire after a TTL so abandoned ladders don't accumulate.
//
// # Usage
//
//	game := session.New(cfg, layout, players, outcomes, session.DefaultTTL)
//	store.Set(ctx, game)
//
//	game, err := store.Get(ctx, id)
//	if err != nil { ... }
//	if game == nil {
//	    // Not found or expired
//	}
package session

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/yosukei/amida/pkg/ladder"
)

// Game stores one generated ladder and the configuration that produced it.
type Game struct {
	ID        string        `json:"id"`
	Config    ladder.Config `json:"config"`
	Rungs     [][]bool      `json:"rungs"`
	Players   []string      `json:"players"`
	Outcomes  []string      `json:"outcomes"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// IsExpired returns true if the game has expired.
func (g *Game) IsExpired() bool {
	return time.Now().After(g.ExpiresAt)
}

// Layout returns the stored rung layout as a ladder.Layout value.
func (g *Game) Layout() ladder.Layout {
	return ladder.Layout{Rungs: g.Rungs}
}

// Mapping recomputes the player→outcome permutation from the stored rungs.
// It is derived on demand so it can never go stale after regeneration.
func (g *Game) Mapping() ladder.Permutation {
	return ladder.Simulate(g.Layout())
}

// Clone returns an independent copy of the game. Stores that share memory
// with their callers hand out clones, so a handler mutating its game (a
// regeneration, say) never races another request reading the same record.
func (g *Game) Clone() *Game {
	clone := *g
	clone.Rungs = g.Layout().Clone().Rungs
	clone.Players = slices.Clone(g.Players)
	clone.Outcomes = slices.Clone(g.Outcomes)
	return &clone
}

// Store is the interface for game storage backends.
type Store interface {
	// Get retrieves a game by ID.
	// Returns nil, nil if the game doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Game, error)

	// Set stores a game.
	Set(ctx context.Context, game *Game) error

	// Delete removes a game.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired games (may be a no-op for backends with
	// native expiry, like Redis).
	Cleanup(ctx context.Context) error
}

// DefaultTTL is the default game lifetime.
const DefaultTTL = 24 * time.Hour

// New creates a game record for a freshly generated ladder.
// The ID is a random UUID.
func New(cfg ladder.Config, l ladder.Layout, players, outcomes []string, ttl time.Duration) *Game {
	now := time.Now()
	return &Game{
		ID:        uuid.NewString(),
		Config:    cfg,
		Rungs:     l.Rungs,
		Players:   players,
		Outcomes:  outcomes,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

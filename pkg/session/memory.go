package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory game store for development, testing, and
// single-process serving. Games are cloned on the way in and out, so the
// store never shares memory with its callers and concurrent requests can
// read and regenerate the same game without coordination.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewMemoryStore creates a new in-memory game store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*Game)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Game, error) {
	s.mu.RLock()
	game, ok := s.games[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if game.IsExpired() {
		s.mu.Lock()
		delete(s.games, id)
		s.mu.Unlock()
		return nil, nil
	}
	return game.Clone(), nil
}

func (s *MemoryStore) Set(ctx context.Context, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, game := range s.games {
		if now.After(game.ExpiresAt) {
			delete(s.games, id)
		}
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is a file-based game store for CLI use.
// Games are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based game store.
// If baseDir is empty, defaults to ~/.config/amida/games/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "amida", "games")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create game dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) gamePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.gamePath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read game file: %w", err)
	}

	var game Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("parse game: %w", err)
	}

	if game.IsExpired() {
		os.Remove(path)
		return nil, nil
	}
	return &game, nil
}

func (s *FileStore) Set(ctx context.Context, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	path := s.gamePath(game.ID)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write game file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.gamePath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove game file: %w", err)
	}
	return nil
}

func (s *FileStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read game dir: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var game Game
		if err := json.Unmarshal(data, &game); err != nil {
			continue
		}
		if now.After(game.ExpiresAt) {
			os.Remove(path)
		}
	}
	return nil
}

// Path returns the base directory for game files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)

// =============================================================================
// CLI convenience wrapper
// =============================================================================

const currentGameID = "current"

// CurrentStore wraps FileStore to track the single "current" game of a CLI
// user: `amida draw` saves here, `amida play` reads from here.
type CurrentStore struct {
	store *FileStore
}

// NewCurrentStore creates a store for the CLI's current game.
func NewCurrentStore() (*CurrentStore, error) {
	store, err := NewFileStore("")
	if err != nil {
		return nil, err
	}
	return &CurrentStore{store: store}, nil
}

// Current retrieves the current game, or nil if none has been drawn.
func (c *CurrentStore) Current(ctx context.Context) (*Game, error) {
	return c.store.Get(ctx, currentGameID)
}

// Save stores a game as the current one, replacing any previous game.
func (c *CurrentStore) Save(ctx context.Context, game *Game) error {
	game.ID = currentGameID
	return c.store.Set(ctx, game)
}

// Clear removes the current game.
func (c *CurrentStore) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, currentGameID)
}

// Path returns the current game's file path.
func (c *CurrentStore) Path() string {
	return c.store.gamePath(currentGameID)
}

package cli

import (
	"testing"

	"github.com/yosukei/amida/pkg/errors"
	"github.com/yosukei/amida/pkg/session"
)

func TestNewStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("memory", func(t *testing.T) {
		store, err := newStore(&serveOpts{backend: "memory"})
		if err != nil {
			t.Fatalf("newStore() error = %v", err)
		}
		if _, ok := store.(*session.MemoryStore); !ok {
			t.Errorf("store = %T, want *session.MemoryStore", store)
		}
	})

	t.Run("file", func(t *testing.T) {
		store, err := newStore(&serveOpts{backend: "file"})
		if err != nil {
			t.Fatalf("newStore() error = %v", err)
		}
		if _, ok := store.(*session.FileStore); !ok {
			t.Errorf("store = %T, want *session.FileStore", store)
		}
	})

	t.Run("redis without addr", func(t *testing.T) {
		_, err := newStore(&serveOpts{backend: "redis"})
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := newStore(&serveOpts{backend: "sqlite"})
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})
}

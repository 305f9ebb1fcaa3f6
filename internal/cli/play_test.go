package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/session"
)

func testRevealGame(t *testing.T) *session.Game {
	t.Helper()
	cfg := ladder.Config{Players: 3, Levels: 5, Probability: 0.4}
	l, err := ladder.Generate(cfg, ladder.SeededSource(8))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return session.New(cfg, l,
		[]string{"Alice", "Bob", "Carol"},
		[]string{"Gold", "Silver", "Bronze"},
		session.DefaultTTL)
}

func TestResolveGameReusesCurrent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ctx := context.Background()

	first, err := resolveGame(ctx, "", &playOpts{seed: 2})
	if err != nil {
		t.Fatalf("resolveGame() error = %v", err)
	}

	second, err := resolveGame(ctx, "", &playOpts{})
	if err != nil {
		t.Fatalf("resolveGame() error = %v", err)
	}

	// Same rungs: the second call replays rather than redraws.
	for i := range first.Rungs {
		for j := range first.Rungs[i] {
			if first.Rungs[i][j] != second.Rungs[i][j] {
				t.Fatal("second resolveGame drew a fresh ladder")
			}
		}
	}
}

func TestResolveGameRedraw(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ctx := context.Background()

	if _, err := resolveGame(ctx, "", &playOpts{seed: 2}); err != nil {
		t.Fatalf("resolveGame() error = %v", err)
	}
	redrawn, err := resolveGame(ctx, "", &playOpts{redraw: true, seed: 3})
	if err != nil {
		t.Fatalf("resolveGame() error = %v", err)
	}
	replayed, err := resolveGame(ctx, "", &playOpts{})
	if err != nil {
		t.Fatalf("resolveGame() error = %v", err)
	}

	// The redraw replaced the current game.
	for i := range redrawn.Rungs {
		for j := range redrawn.Rungs[i] {
			if redrawn.Rungs[i][j] != replayed.Rungs[i][j] {
				t.Fatal("redraw did not replace the current game")
			}
		}
	}
}

func TestResultTable(t *testing.T) {
	game := testRevealGame(t)
	out := resultTable(game.Mapping().Pairs(game.Players, game.Outcomes))

	for _, want := range []string{"Player", "Outcome", "Alice", "Bob", "Carol", "Gold", "Silver", "Bronze"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRevealModelNavigation(t *testing.T) {
	game := testRevealGame(t)
	m := newRevealModel(game)

	press := func(model tea.Model, key string) tea.Model {
		next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next
	}

	model := tea.Model(m)
	model = press(model, "j")
	model = press(model, "j")
	model = press(model, "j") // clamped at the last player

	got := model.(revealModel)
	if got.cursor != 2 {
		t.Errorf("cursor = %d, want 2", got.cursor)
	}

	model = press(model, "k")
	got = model.(revealModel)
	if got.cursor != 1 {
		t.Errorf("cursor = %d after k, want 1", got.cursor)
	}
}

func TestRevealModelReveal(t *testing.T) {
	game := testRevealGame(t)
	model := tea.Model(newRevealModel(game))

	// Nothing revealed: outcomes are hidden.
	view := model.(revealModel).View()
	if !strings.Contains(view, "???") {
		t.Error("unrevealed view does not hide outcomes")
	}
	if strings.Contains(view, "Gold") {
		t.Error("outcome visible before reveal")
	}

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(revealModel)
	if !got.revealed[0] {
		t.Error("enter did not reveal the selected player")
	}

	view = got.View()
	want := game.Outcomes[game.Mapping()[0]]
	if !strings.Contains(view, want) {
		t.Errorf("revealed view missing outcome %q:\n%s", want, view)
	}
}

func TestRevealModelRevealAll(t *testing.T) {
	game := testRevealGame(t)
	model := tea.Model(newRevealModel(game))

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	got := next.(revealModel)
	if len(got.revealed) != len(game.Players) {
		t.Errorf("revealed %d players, want %d", len(got.revealed), len(game.Players))
	}
	if cmd == nil {
		t.Error("reveal-all did not quit")
	}
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/session"
)

func testServer(t *testing.T) (*Server, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	logger := log.New(io.Discard)
	return New(store, WithLogger(logger)), store
}

func createGame(t *testing.T, h http.Handler, body string) gameResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("POST /games = %d, want 201: %s", w.Code, w.Body)
	}
	var game gameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &game); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	return game
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s", w.Body)
	}
}

func TestCreateGame(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	game := createGame(t, h, `{"players": "Alice, Bob, Carol", "outcomes": "X, Y, Z", "levels": 8, "seed": 3}`)

	if game.ID == "" {
		t.Error("response has no game ID")
	}
	if game.Config.Players != 3 || game.Config.Levels != 8 {
		t.Errorf("config = %+v", game.Config)
	}
	if len(game.Rungs) != 8 {
		t.Errorf("len(Rungs) = %d, want 8", len(game.Rungs))
	}
	if !game.Mapping.IsBijection() {
		t.Errorf("mapping %v is not a bijection", game.Mapping)
	}
	if len(game.Pairs) != 3 || game.Pairs[0].Player != "Alice" {
		t.Errorf("pairs = %+v", game.Pairs)
	}

	stored, err := store.Get(context.Background(), game.ID)
	if err != nil || stored == nil {
		t.Fatalf("game not persisted: %v, %v", stored, err)
	}
}

func TestCreateGameDefaults(t *testing.T) {
	s, _ := testServer(t)
	game := createGame(t, s.Handler(), "")

	if game.Config.Players != 4 || game.Config.Levels != 10 || game.Config.Probability != 0.35 {
		t.Errorf("default config = %+v", game.Config)
	}
	want := []string{"P1", "P2", "P3", "P4"}
	for i, name := range want {
		if game.Players[i] != name {
			t.Errorf("Players = %v, want %v", game.Players, want)
			break
		}
	}
}

func TestCreateGameZeroProbability(t *testing.T) {
	s, _ := testServer(t)
	game := createGame(t, s.Handler(), `{"count": 3, "probability": 0}`)

	if game.Config.Probability != 0 {
		t.Errorf("probability = %g, want 0", game.Config.Probability)
	}
	// No rungs can be placed, so every player keeps their own slot.
	for i, v := range game.Mapping {
		if v != i {
			t.Errorf("mapping = %v, want identity", game.Mapping)
			break
		}
	}
	for c, level := range game.Rungs {
		for i, rung := range level {
			if rung {
				t.Errorf("rung placed at level %d gap %d with probability 0", c, i)
			}
		}
	}
}

func TestCreateGameInvalid(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{`},
		{"one player", `{"count": 1}`},
		{"probability out of range", `{"probability": 2.0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", w.Code, w.Body)
			}
		})
	}
}

func TestGetGame(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()
	created := createGame(t, h, `{"count": 3, "seed": 5}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games/{id} = %d: %s", w.Code, w.Body)
	}

	var got gameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}
	for i := range created.Mapping {
		if got.Mapping[i] != created.Mapping[i] {
			t.Fatalf("mapping changed on read: %v vs %v", got.Mapping, created.Mapping)
		}
	}
}

func TestGetGameNotFound(t *testing.T) {
	s, _ := testServer(t)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "GAME_NOT_FOUND") {
		t.Errorf("body = %s", w.Body)
	}
}

func TestRegenerate(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()
	created := createGame(t, h, `{"count": 6, "levels": 30, "probability": 0.5, "seed": 2}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/games/"+created.ID+"/regenerate", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("regenerate = %d: %s", w.Code, w.Body)
	}

	var got gameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got.Config != created.Config {
		t.Errorf("config changed on regenerate: %+v vs %+v", got.Config, created.Config)
	}
	if !got.Mapping.IsBijection() {
		t.Errorf("regenerated mapping %v is not a bijection", got.Mapping)
	}

	// 30 levels at p=0.5 make an identical redraw vanishingly unlikely.
	same := true
	for i := range created.Rungs {
		for j := range created.Rungs[i] {
			if got.Rungs[i][j] != created.Rungs[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Error("rungs unchanged after regenerate")
	}

	// The served game now derives from the new rungs.
	want := ladder.Simulate(ladder.Layout{Rungs: got.Rungs})
	for i := range want {
		if got.Mapping[i] != want[i] {
			t.Fatalf("mapping %v does not match regenerated rungs (want %v)", got.Mapping, want)
		}
	}
}

func TestConcurrentReadsDuringRegenerate(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()
	created := createGame(t, h, `{"count": 5, "levels": 20, "probability": 0.5, "seed": 1}`)

	// Regenerations and reads of the same game must be safe to serve in
	// parallel: every request stands alone, and readers always see a
	// complete game, before or after any given redraw.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/games/"+created.ID+"/regenerate", nil))
			if w.Code != http.StatusOK {
				t.Errorf("regenerate = %d: %s", w.Code, w.Body)
			}
		}()
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID, nil))
			if w.Code != http.StatusOK {
				t.Errorf("get = %d: %s", w.Code, w.Body)
				return
			}
			var got gameResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Errorf("parse response: %v", err)
				return
			}
			if !got.Mapping.IsBijection() {
				t.Errorf("read a torn game: mapping %v", got.Mapping)
			}
		}()
	}
	wg.Wait()
}

func TestResult(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()
	created := createGame(t, h, `{"players": "A, B", "outcomes": "Win, Lose", "seed": 4}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/result", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("result = %d: %s", w.Code, w.Body)
	}

	var got struct {
		Mapping ladder.Permutation `json:"mapping"`
		Pairs   []ladder.Pair      `json:"pairs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got.Pairs) != 2 {
		t.Fatalf("pairs = %+v", got.Pairs)
	}
	for _, p := range got.Pairs {
		if p.Player == "" || p.Outcome == "" {
			t.Errorf("incomplete pair %+v", p)
		}
	}
}

func TestDiagram(t *testing.T) {
	s, _ := testServer(t)
	h := s.Handler()
	created := createGame(t, h, `{"count": 4, "seed": 6}`)

	t.Run("default style", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/diagram.svg", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("diagram = %d: %s", w.Code, w.Body)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("Content-Type = %q", ct)
		}
		if !strings.Contains(w.Body.String(), "<svg") {
			t.Error("body is not SVG")
		}
	})

	t.Run("ink style", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/diagram.svg?style=ink", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("diagram = %d: %s", w.Code, w.Body)
		}
		if !strings.Contains(w.Body.String(), "<path") {
			t.Error("ink diagram has no wobbled paths")
		}
	})

	t.Run("highlight", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/diagram.svg?highlight=1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("diagram = %d: %s", w.Code, w.Body)
		}
		if !strings.Contains(w.Body.String(), "<polyline") {
			t.Error("highlighted diagram has no trace polyline")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/diagram.svg?style=neon", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("highlight out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/"+created.ID+"/diagram.svg?highlight=9", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

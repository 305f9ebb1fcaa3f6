package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yosukei/amida/pkg/errors"
	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/render/ladderviz/layout"
	"github.com/yosukei/amida/pkg/render/ladderviz/sink"
	"github.com/yosukei/amida/pkg/render/ladderviz/styles"
	"github.com/yosukei/amida/pkg/session"
)

// createGameRequest configures a new game. Name lists are comma-separated;
// short lists are padded with numbered placeholders. An empty body creates
// a game with defaults. Probability is a pointer so an explicit 0 (a
// rungless ladder) stays distinguishable from an absent field.
type createGameRequest struct {
	Players     string   `json:"players"`
	Outcomes    string   `json:"outcomes"`
	Count       int      `json:"count"`
	Levels      int      `json:"levels"`
	Probability *float64 `json:"probability"`
	Seed        uint64   `json:"seed"`
}

type gameResponse struct {
	ID        string             `json:"id"`
	Config    ladder.Config      `json:"config"`
	Rungs     [][]bool           `json:"rungs"`
	Players   []string           `json:"players"`
	Outcomes  []string           `json:"outcomes"`
	Mapping   ladder.Permutation `json:"mapping"`
	Pairs     []ladder.Pair      `json:"pairs"`
	CreatedAt time.Time          `json:"created_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func newGameResponse(game *session.Game) gameResponse {
	mapping := game.Mapping()
	return gameResponse{
		ID:        game.ID,
		Config:    game.Config,
		Rungs:     game.Rungs,
		Players:   game.Players,
		Outcomes:  game.Outcomes,
		Mapping:   mapping,
		Pairs:     mapping.Pairs(game.Players, game.Outcomes),
		CreatedAt: game.CreatedAt,
		ExpiresAt: game.ExpiresAt,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	req := createGameRequest{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse request body"))
			return
		}
	}

	cfg := ladder.Config{
		Players:     req.Count,
		Levels:      req.Levels,
		Probability: ladder.DefaultProbability,
	}
	if req.Probability != nil {
		cfg.Probability = *req.Probability
	}
	if cfg.Players == 0 {
		cfg.Players = max(countNames(req.Players), countNames(req.Outcomes))
		if cfg.Players == 0 {
			cfg.Players = ladder.DefaultPlayers
		}
	}
	if cfg.Levels == 0 {
		cfg.Levels = ladder.DefaultLevels
	}

	var src ladder.Source
	if req.Seed != 0 {
		src = ladder.SeededSource(req.Seed)
	}
	l, err := ladder.Generate(cfg, src)
	if err != nil {
		s.writeError(w, err)
		return
	}

	players := ladder.NormalizeNames(req.Players, cfg.Players, "P")
	outcomes := ladder.NormalizeNames(req.Outcomes, cfg.Players, "Prize ")
	game := session.New(cfg, l, players, outcomes, s.ttl)

	if err := s.store.Set(r.Context(), game); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store game"))
		return
	}

	s.logger.Info("game created", "id", game.ID, "players", cfg.Players, "levels", cfg.Levels)
	writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newGameResponse(game))
}

// handleRegenerate redraws the rungs with the same configuration. All
// derived artifacts (mapping, diagrams) reflect the new rungs immediately,
// since they are computed from the stored layout on every request.
func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}

	l, err := ladder.Generate(game.Config, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	game.Rungs = l.Rungs
	game.CreatedAt = time.Now()
	game.ExpiresAt = game.CreatedAt.Add(s.ttl)

	if err := s.store.Set(r.Context(), game); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store game"))
		return
	}

	s.logger.Info("game regenerated", "id", game.ID)
	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	mapping := game.Mapping()
	writeJSON(w, http.StatusOK, map[string]any{
		"id":      game.ID,
		"mapping": mapping,
		"pairs":   mapping.Pairs(game.Players, game.Outcomes),
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}

	var opts []sink.SVGOption
	switch name := r.URL.Query().Get("style"); name {
	case "", "simple":
		// default style
	case "ink":
		opts = append(opts, sink.WithStyle(styles.NewInk(int64(len(game.ID)))))
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name))
		return
	}

	if raw := r.URL.Query().Get("highlight"); raw != "" {
		player, err := strconv.Atoi(raw)
		if err != nil || player < 0 || player >= game.Config.Players {
			s.writeError(w, errors.New(errors.ErrCodeInvalidConfig, "highlight must be a player index in [0, %d)", game.Config.Players))
			return
		}
		opts = append(opts, sink.WithTrace(player))
	}

	d := layout.Build(game.Layout(), game.Players)
	svg := sink.RenderSVG(d, opts...)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

// loadGame fetches the game named in the URL, writing the error response
// itself when the game is missing or the store fails.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) (*session.Game, bool) {
	id := chi.URLParam(r, "id")
	game, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load game"))
		return nil, false
	}
	if game == nil {
		s.writeError(w, errors.New(errors.ErrCodeGameNotFound, "game %q not found", id))
		return nil, false
	}
	return game, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidNames, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeGameNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case "":
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
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

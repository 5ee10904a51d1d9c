package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"shashki/internal/server/game"
	"shashki/internal/shashki"
	"shashki/internal/storage"
)

const maxJSONBodyBytes int64 = 1 << 16

// TallySource 胜负统计来源（storage.Scoreboard）
type TallySource interface {
	Tally() (storage.Tally, error)
}

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
	stats TallySource
}

// NewHandler stats 可以为 nil
func NewHandler(games *game.Manager, stats TallySource) *Handler {
	return &Handler{games: games, stats: stats}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/select":
		h.handleSelect(w, r)
	case "/api/deselect":
		h.handleDeselect(w, r)
	case "/api/commit":
		h.handleCommit(w, r)
	case "/api/reset":
		h.handleReset(w, r)
	case "/api/stats":
		h.handleStats(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 表示标准开局
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var gs *game.GameState
	if req.Position != "" {
		pos, err := shashki.DecodePosition(req.Position)
		if err != nil {
			http.Error(w, "invalid position", http.StatusBadRequest)
			return
		}
		gs = h.games.NewGameFrom(pos)
	} else {
		gs = h.games.NewGame()
	}
	log.Printf("new game %s (%s)", gs.ID, gs.Name)
	h.respondNewGame(w, gs)
}

// 新建之后、读取之前，对局可能已被删除
func (h *Handler) respondNewGame(w http.ResponseWriter, gs *game.GameState) {
	var resp NewGameResponse
	err := h.games.Do(gs.ID, func(g *shashki.Game) error {
		resp = NewGameResponse{GameID: gs.ID, Name: gs.Name, State: stateOf(gs.ID, g)}
		return nil
	})
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w, req.GameID, func(*shashki.Game) error { return nil })
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w, req.GameID, func(g *shashki.Game) error {
		sq, ok := shashki.ParseSquare(req.Square)
		if !ok {
			return fmt.Errorf("%w: bad square %q", shashki.ErrInvalidSelection, req.Square)
		}
		return g.Select(sq)
	})
}

func (h *Handler) handleDeselect(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w, req.GameID, func(g *shashki.Game) error { return g.Deselect() })
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w, req.GameID, func(g *shashki.Game) error {
		g.Reset()
		return nil
	})
}

func (h *Handler) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if !decode(w, r, &req) {
		return
	}

	var (
		resp  CommitResponse
		state StateResponse
	)
	err := h.games.Do(req.GameID, func(g *shashki.Game) error {
		defer func() { state = stateOf(req.GameID, g) }()
		to, ok := shashki.ParseSquare(req.To)
		if !ok {
			return fmt.Errorf("%w: bad square %q", shashki.ErrIllegalHop, req.To)
		}
		res, err := g.Commit(to)
		if err != nil {
			return err
		}
		resp = CommitResponse{
			From:      shashki.SquareName(res.From),
			Hop:       hopToDTO(res.Hop),
			Promoted:  res.Promoted,
			TurnEnded: res.TurnEnded,
		}
		return nil
	})
	if err != nil {
		writeError(w, err, &state)
		return
	}
	resp.State = state
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{ActiveGames: len(h.games.List())}
	if h.stats != nil {
		t, err := h.stats.Tally()
		if err != nil {
			log.Printf("read tally: %v", err)
			http.Error(w, "stats unavailable", http.StatusInternalServerError)
			return
		}
		resp.GamesPlayed = t.GamesPlayed
		resp.WhiteWins = t.WhiteWins
		resp.BlackWins = t.BlackWins
	}
	writeJSON(w, http.StatusOK, resp)
}

// respondState 执行 fn，然后把（可能未变的）局面返回给前端
func (h *Handler) respondState(w http.ResponseWriter, id string, fn func(g *shashki.Game) error) {
	var state StateResponse
	err := h.games.Do(id, func(g *shashki.Game) error {
		err := fn(g)
		state = stateOf(id, g)
		return err
	})
	if err != nil {
		writeError(w, err, &state)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

// 规则层的拒绝不是故障：返回 409 和当前局面，前端重新渲染即可
func writeError(w http.ResponseWriter, err error, state *StateResponse) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, shashki.ErrInvalidSelection),
		errors.Is(err, shashki.ErrIllegalHop),
		errors.Is(err, shashki.ErrInapplicableAction),
		errors.Is(err, shashki.ErrGameOver):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), State: state})
	default:
		log.Printf("unexpected error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

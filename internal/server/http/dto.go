package httpserver

import (
	"fmt"

	"shashki/internal/shashki"
)

// 格子在接口里一律用代数记法（"c3"）

type HopDTO struct {
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
}

// NewGame 请求；Position 为空时从标准开局开始
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

type NewGameResponse struct {
	GameID string        `json:"game_id"`
	Name   string        `json:"name"`
	State  StateResponse `json:"state"`
}

// State / Deselect / Reset 请求
type GameRequest struct {
	GameID string `json:"game_id"`
}

type SelectRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type CommitRequest struct {
	GameID string `json:"game_id"`
	To     string `json:"to"`
}

type CommitResponse struct {
	From      string        `json:"from"`
	Hop       HopDTO        `json:"hop"`
	Promoted  bool          `json:"promoted"`
	TurnEnded bool          `json:"turn_ended"`
	State     StateResponse `json:"state"`
}

// StateResponse 前端渲染和高亮所需的全部信息
type StateResponse struct {
	GameID       string     `json:"game_id"`
	Position     string     `json:"position"`
	Hash         string     `json:"hash"`
	ToMove       string     `json:"to_move"`
	Mode         string     `json:"mode"`
	MaxCapture   int        `json:"max_capture"`
	Origins      []string   `json:"origins"`
	Selected     string     `json:"selected,omitempty"`
	Current      string     `json:"current,omitempty"`
	Destinations []string   `json:"destinations"`
	NextOptions  []HopDTO   `json:"next_options"`
	Candidates   [][]HopDTO `json:"candidates,omitempty"`
	Prefix       []HopDTO   `json:"prefix"`
	Status       string     `json:"status"` // "ongoing" / "white_won" / "black_won"
}

type ErrorResponse struct {
	Error string         `json:"error"`
	State *StateResponse `json:"state,omitempty"`
}

type StatsResponse struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	ActiveGames int `json:"active_games"`
}

func squareName(sq int) string {
	if sq == shashki.NoSquare {
		return ""
	}
	return shashki.SquareName(sq)
}

func squaresToDTO(sqs []int) []string {
	out := make([]string, len(sqs))
	for i, s := range sqs {
		out[i] = shashki.SquareName(s)
	}
	return out
}

func hopToDTO(h shashki.Hop) HopDTO {
	return HopDTO{To: squareName(h.To), Captured: squareName(h.Captured)}
}

func hopsToDTO(hs []shashki.Hop) []HopDTO {
	out := make([]HopDTO, len(hs))
	for i, h := range hs {
		out[i] = hopToDTO(h)
	}
	return out
}

func sequencesToDTO(seqs []shashki.Sequence) [][]HopDTO {
	if len(seqs) == 0 {
		return nil
	}
	out := make([][]HopDTO, len(seqs))
	for i, s := range seqs {
		out[i] = hopsToDTO(s)
	}
	return out
}

func statusOf(g *shashki.Game) string {
	switch g.Winner() {
	case shashki.White:
		return "white_won"
	case shashki.Black:
		return "black_won"
	default:
		return "ongoing"
	}
}

func stateOf(id string, g *shashki.Game) StateResponse {
	pos := g.Position()
	a := g.Actions()
	return StateResponse{
		GameID:       id,
		Position:     pos.Encode(),
		Hash:         fmt.Sprintf("%016x", pos.Hash),
		ToMove:       pos.SideToMove.String(),
		Mode:         a.Mode.String(),
		MaxCapture:   a.MaxCapture(),
		Origins:      squaresToDTO(a.Origins()),
		Selected:     squareName(g.Selected()),
		Current:      squareName(g.Current()),
		Destinations: squaresToDTO(g.Destinations()),
		NextOptions:  hopsToDTO(g.NextOptions()),
		Candidates:   sequencesToDTO(g.Candidates()),
		Prefix:       hopsToDTO(g.Prefix()),
		Status:       statusOf(g),
	}
}

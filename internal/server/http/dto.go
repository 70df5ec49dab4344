package httpserver

import (
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构，下标 = rank*9 + file
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// 棋盘上的一个子
type PieceDTO struct {
	Index int    `json:"index"`
	Side  string `json:"side"` // "red" / "green"
	Type  string `json:"type"` // "chariot" / "cannon" / ...
	Code  uint8  `json:"code"` // 原始编码，前端按位判断
}

// NewGame 请求，FEN 为空则标准开局
type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

// NewGame 返回
type NewGameResponse struct {
	GameID   string     `json:"game_id"`
	Position string     `json:"position"` // FEN 字符串
	ToMove   string     `json:"to_move"`
	Pieces   []PieceDTO `json:"pieces"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// State 返回
type StateResponse struct {
	Position string              `json:"position"`
	ToMove   string              `json:"to_move"`
	Captured map[string][]string `json:"captured"` // 吃子方 -> 被吃的子
	Status   string              `json:"status"`   // "ongoing" / "general_captured"
	Winner   string              `json:"winner,omitempty"`
	Plies    int                 `json:"plies"`
}

// Moves 请求：某个点上的子能走到哪
type MovesRequest struct {
	GameID string `json:"game_id"`
	From   int    `json:"from"`
}

type MovesResponse struct {
	From         int   `json:"from"`
	Destinations []int `json:"destinations"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Play 返回
type PlayResponse struct {
	Position      string `json:"position"`
	ToMove        string `json:"to_move"`
	CapturedPiece string `json:"captured_piece,omitempty"`
	Status        string `json:"status"`
	Winner        string `json:"winner,omitempty"`
}

// Attacked 请求：side 为 "red" / "green"
type AttackedRequest struct {
	GameID string `json:"game_id"`
	Side   string `json:"side"`
}

type AttackedResponse struct {
	Side   string `json:"side"`
	Points []int  `json:"points"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func piecesToDTO(ps []game.Placement) []PieceDTO {
	out := make([]PieceDTO, len(ps))
	for i, p := range ps {
		out[i] = PieceDTO{
			Index: p.Index,
			Side:  p.Piece.Side().String(),
			Type:  p.Piece.Type().String(),
			Code:  uint8(p.Piece),
		}
	}
	return out
}

func capturedToDTO(c map[xiangqi.Side][]xiangqi.Piece) map[string][]string {
	out := map[string][]string{
		xiangqi.Red.String():   {},
		xiangqi.Green.String(): {},
	}
	for side, pcs := range c {
		names := make([]string, len(pcs))
		for i, pc := range pcs {
			names[i] = pc.Type().String()
		}
		out[side.String()] = names
	}
	return out
}

func winnerString(s game.Snapshot) string {
	if s.Winner == xiangqi.NoSide {
		return ""
	}
	return s.Winner.String()
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

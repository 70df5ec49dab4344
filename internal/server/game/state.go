package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

type Status string

const (
	StatusOngoing         Status = "ongoing"
	StatusGeneralCaptured Status = "general_captured"
)

// GameState 一局棋。mu 串行化同一局的所有读写，相当于回合制的外部顺序保证。
type GameState struct {
	mu sync.Mutex

	ID        string
	Board     *xiangqi.Board
	ToMove    xiangqi.Side
	Status    Status
	Winner    xiangqi.Side
	Captured  map[xiangqi.Side][]xiangqi.Piece // 按吃子方记录
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot 是 GameState 的只读拷贝，可以在锁外使用
type Snapshot struct {
	ID       string
	FEN      string
	ToMove   xiangqi.Side
	Status   Status
	Winner   xiangqi.Side
	Captured map[xiangqi.Side][]xiangqi.Piece
	Plies    int
	Hash     uint64
	Pieces   []Placement // 先红后绿，各自按 id 排序
}

// Placement 是棋盘上一个子的位置
type Placement struct {
	Index int
	Piece xiangqi.Piece
}

func (g *GameState) snapshotLocked() Snapshot {
	captured := make(map[xiangqi.Side][]xiangqi.Piece, len(g.Captured))
	for side, pcs := range g.Captured {
		captured[side] = append([]xiangqi.Piece(nil), pcs...)
	}
	pieces := make([]Placement, 0, g.Board.PieceCount(xiangqi.Red)+g.Board.PieceCount(xiangqi.Green))
	for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Green} {
		for _, pt := range g.Board.Pieces(side) {
			pieces = append(pieces, Placement{Index: pt.Index(), Piece: pt.Piece()})
		}
	}
	return Snapshot{
		ID:       g.ID,
		FEN:      g.Board.Encode(g.ToMove),
		ToMove:   g.ToMove,
		Status:   g.Status,
		Winner:   g.Winner,
		Captured: captured,
		Plies:    g.Plies,
		Hash:     g.Board.PositionHash(g.ToMove),
		Pieces:   pieces,
	}
}

// PlayResult 是一步棋的结果
type PlayResult struct {
	Snapshot
	From          int
	To            int
	CapturedPiece xiangqi.Piece
}

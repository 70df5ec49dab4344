package xiangqi

import (
	"fmt"
	"slices"
	"strings"
)

const (
	Files     = 9
	Ranks     = 10
	NumPoints = Files * Ranks

	// RiverIndex 是绿方半场的第一个格子（rank 5, file 0）
	RiverIndex = NumPoints / 2
)

func indexOf(file, rank int) int { return rank*Files + file }
func fileOf(idx int) int         { return idx % Files }
func rankOf(idx int) int         { return idx / Files }

// IsValid 判断 index 是否落在 [0, 89]
func IsValid(idx int) bool { return idx >= 0 && idx < NumPoints }

// ownHalf 红方在下（rank 0..4），绿方在上（rank 5..9）
func ownHalf(side Side, idx int) bool {
	switch side {
	case Red:
		return idx < RiverIndex
	case Green:
		return idx >= RiverIndex
	}
	return false
}

// Vec2 是交叉点的渲染坐标
type Vec2 struct {
	X, Y float64
}

// PieceID 在棋子生成时分配，之后随棋子移动，不再改变
type PieceID int

const noPieceID PieceID = -1

// Point 是棋盘上的一个交叉点。位置和下标构造后不变，只有占位棋子会变。
type Point struct {
	position Vec2
	index    int
	piece    Piece
	id       PieceID
}

func (pt *Point) Position() Vec2 { return pt.position }
func (pt *Point) Index() int     { return pt.index }
func (pt *Point) Piece() Piece   { return pt.piece }
func (pt *Point) IsEmpty() bool  { return pt.piece == None }

func (pt *Point) String() string {
	return fmt.Sprintf("%d(%s)", pt.index, pt.piece)
}

// Board 拥有 90 个交叉点，外加红绿双方 棋子ID -> 交叉点 的索引，
// 用来在 O(棋子数) 内枚举一方所有棋子。
type Board struct {
	points [NumPoints]Point
	pieces [2]map[PieceID]*Point
	nextID PieceID
	scale  float64
	hash   uint64
}

func sideIndex(side Side) int {
	if side == Green {
		return 1
	}
	return 0
}

// NewEmptyBoard 建一个没有棋子的棋盘
func NewEmptyBoard(scale float64) *Board {
	initZobrist()
	b := &Board{scale: scale}
	for idx := 0; idx < NumPoints; idx++ {
		b.points[idx] = Point{
			position: Vec2{X: float64(fileOf(idx)) * scale, Y: float64(rankOf(idx)) * scale},
			index:    idx,
			id:       noPieceID,
		}
	}
	b.pieces[0] = make(map[PieceID]*Point, 16)
	b.pieces[1] = make(map[PieceID]*Point, 16)
	return b
}

// NewBoard 建一个开局棋盘。只摆红方半场，绿方由镜像得到，保证双方对称。
func NewBoard(scale float64) *Board {
	b := NewEmptyBoard(scale)
	for rank := 0; rank < Ranks/2; rank++ {
		for file := 0; file < Files; file++ {
			pt := startingPieceType(file, rank)
			if pt == PieceNone {
				continue
			}
			b.Place(indexOf(file, rank), MakePiece(Red, pt))
			b.Place(mirror(indexOf(file, rank)), MakePiece(Green, pt))
		}
	}
	return b
}

// mirror 同时翻转 file 和 rank
func mirror(idx int) int { return NumPoints - 1 - idx }

// startingPieceType 只处理红方半场（rank 0..4）
func startingPieceType(file, rank int) PieceType {
	switch rank {
	case 0:
		switch file {
		case 0, 8:
			return PieceChariot
		case 1, 7:
			return PieceKnight
		case 2, 6:
			return PieceElephant
		case 3, 5:
			return PieceAdvisor
		default:
			return PieceGeneral
		}
	case 2:
		if file == 1 || file == 7 {
			return PieceCannon
		}
	case 3:
		if file%2 == 0 {
			return PieceSoldier
		}
	}
	return PieceNone
}

func (b *Board) Scale() float64 { return b.scale }

// At 越界直接 panic，调用方应先用 IsValid 检查
func (b *Board) At(idx int) *Point {
	if !IsValid(idx) {
		panic(fmt.Sprintf("xiangqi: index %d out of range", idx))
	}
	return &b.points[idx]
}

func (b *Board) IsValid(idx int) bool { return IsValid(idx) }

// Occupant 总是返回该点上的棋子，bool 表示是否非空
func (b *Board) Occupant(idx int) (Piece, bool) {
	pc := b.points[idx].piece
	return pc, pc != None
}

// Place 在空点上生成一个棋子，并登记到该方的索引里
func (b *Board) Place(idx int, pc Piece) *Point {
	pt := b.At(idx)
	if !pt.IsEmpty() {
		panic(fmt.Sprintf("xiangqi: place %s on occupied point %s", pc, pt))
	}
	if pc.Side() == NoSide || pc.Type() == PieceNone {
		panic(fmt.Sprintf("xiangqi: place malformed piece %#b", uint8(pc)))
	}
	pt.piece = pc
	pt.id = b.nextID
	b.nextID++
	b.pieces[sideIndex(pc.Side())][pt.id] = pt
	b.hash ^= pieceHashKey(pc, idx)
	return pt
}

// RegisterMove 把 from 上的棋子移到 to，返回被吃掉的棋子（没有则为 None）。
// to 上不能是己方棋子，这由走法生成保证，这里只做断言。
func (b *Board) RegisterMove(from, to *Point) Piece {
	mover := from.piece
	if mover == None {
		panic(fmt.Sprintf("xiangqi: move from empty point %d", from.index))
	}
	captured := to.piece
	if captured != None && captured.Side() == mover.Side() {
		panic(fmt.Sprintf("xiangqi: move %s onto own piece %s", from, to))
	}
	own := b.pieces[sideIndex(mover.Side())]

	if captured != None {
		delete(b.pieces[sideIndex(captured.Side())], to.id)
		b.hash ^= pieceHashKey(captured, to.index)
	}
	b.hash ^= pieceHashKey(mover, from.index)
	b.hash ^= pieceHashKey(mover, to.index)

	to.piece, to.id = mover, from.id
	from.piece, from.id = None, noPieceID
	own[to.id] = to
	return captured
}

// Pieces 按棋子ID顺序返回该方所有棋子所在的点
func (b *Board) Pieces(side Side) []*Point {
	if side == NoSide {
		return nil
	}
	m := b.pieces[sideIndex(side)]
	ids := make([]PieceID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*Point, len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}
	return out
}

// PieceCount 该方在盘上的棋子数
func (b *Board) PieceCount(side Side) int {
	if side == NoSide {
		return 0
	}
	return len(b.pieces[sideIndex(side)])
}

// Hash 增量维护的 Zobrist 哈希（不含走子方）
func (b *Board) Hash() uint64 { return b.hash }

// String 按 rank 9 到 rank 0 打印，方便调试
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		for file := 0; file < Files; file++ {
			sb.WriteRune(pieceToChar(b.points[indexOf(file, rank)].piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

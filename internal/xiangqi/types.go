package xiangqi

// Side 占用 Piece 的两个高位
type Side uint8

const (
	NoSide Side = 0
	Red    Side = 0b0100000
	Green  Side = 0b1000000
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Green
	case Green:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Green:
		return "green"
	}
	return "none"
}

// ParseSide 接受 "red"/"green"（大小写敏感），其他返回 NoSide
func ParseSide(s string) Side {
	switch s {
	case "red":
		return Red
	case "green":
		return Green
	}
	return NoSide
}

// PieceType 占用 Piece 的低五位。同一族的棋子共享一个标志位：
// bit0 单步（将、兵），bit2 直线滑行（车、炮），bit3 斜走（士、象），bit4 马。
type PieceType uint8

const (
	PieceNone     PieceType = 0
	PieceGeneral  PieceType = 0b00001 // 将
	PieceSoldier  PieceType = 0b00011 // 兵
	PieceChariot  PieceType = 0b00100 // 车
	PieceCannon   PieceType = 0b00110 // 炮
	PieceAdvisor  PieceType = 0b01000 // 士
	PieceElephant PieceType = 0b01010 // 象
	PieceKnight   PieceType = 0b10000 // 马
)

const (
	singleStepBit = 0b00001
	slidingBit    = 0b00100
	diagonalBit   = 0b01000
	knightBit     = 0b10000

	typeMask = 0b0011111
	sideMask = 0b1100000
)

// Piece 一个字节同时编码类型和颜色；0 为空
type Piece uint8

const None Piece = 0

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return None
	}
	return Piece(side) | Piece(pt)
}

func (p Piece) Type() PieceType { return PieceType(p & typeMask) }
func (p Piece) Side() Side      { return Side(p & sideMask) }

func (p Piece) IsSliding() bool            { return p&slidingBit != 0 }
func (p Piece) IsDiagonalConfined() bool   { return p&diagonalBit != 0 }
func (p Piece) IsSingleStepConfined() bool { return p&singleStepBit != 0 }
func (p Piece) IsKnight() bool             { return p&knightBit != 0 }

var pieceLetters = map[PieceType]rune{
	PieceChariot:  'r',
	PieceKnight:   'n',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceGeneral:  'k',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

var letterToPieceType = func() map[rune]PieceType {
	m := make(map[rune]PieceType, len(pieceLetters))
	for pt, r := range pieceLetters {
		m[r] = pt
	}
	return m
}()

func (pt PieceType) String() string {
	switch pt {
	case PieceGeneral:
		return "general"
	case PieceSoldier:
		return "soldier"
	case PieceChariot:
		return "chariot"
	case PieceCannon:
		return "cannon"
	case PieceAdvisor:
		return "advisor"
	case PieceElephant:
		return "elephant"
	case PieceKnight:
		return "knight"
	}
	return "none"
}

// String 返回 FEN 字母：红方大写，绿方小写，空位 '.'
func (p Piece) String() string {
	return string(pieceToChar(p))
}

func pieceToChar(p Piece) rune {
	base, ok := pieceLetters[p.Type()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return base - 'a' + 'A'
	}
	return base
}

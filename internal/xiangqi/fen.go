package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// InitialFEN 是 NewBoard 的开局局面，红方先走
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

var ErrInvalidFEN = errors.New("invalid FEN")

// Encode 10 行用"/"隔开，从 rank 9 到 rank 0；空位用数字压缩；空格后 w/b 表示红/绿先走
func (b *Board) Encode(toMove Side) string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		if rank < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < Files; file++ {
			pc := b.points[indexOf(file, rank)].piece
			if pc == None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Green {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodeBoard 解析 Encode 的格式，返回棋盘和走子方
func DecodeBoard(fen string, scale float64) (*Board, Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, NoSide, fmt.Errorf("%w: missing side to move", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, NoSide, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	b := NewEmptyBoard(scale)
	for i, row := range rows {
		rank := Ranks - 1 - i
		file := 0
		for _, ch := range row {
			if file >= Files {
				return nil, NoSide, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, rank)
			}
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, NoSide, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Green
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Place(indexOf(file, rank), MakePiece(side, pt))
			file++
		}
		if file != Files {
			return nil, NoSide, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank, file)
		}
	}
	var toMove Side
	switch parts[1] {
	case "w", "r":
		toMove = Red
	case "b", "g":
		toMove = Green
	default:
		return nil, NoSide, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	return b, toMove, nil
}

package xiangqi

// generator 追加 from 上棋子的伪合法落点
type generator func(b *Board, from int, out []*Point) []*Point

// Handle 返回 origin 上棋子的伪合法落点（不考虑将军）。
// 第一个元素永远是 origin 本身，调用方用它判断"点的是不是自己"，也用它找回要走的棋子。
// origin 为空时只返回 origin。
func Handle(b *Board, origin *Point) []*Point {
	out := make([]*Point, 1, 18)
	out[0] = origin
	gen := generatorFor(origin.piece.Type())
	if gen == nil {
		return out
	}
	return gen(b, origin.index, out)
}

func generatorFor(pt PieceType) generator {
	switch pt {
	case PieceChariot:
		return genChariotMoves
	case PieceCannon:
		return genCannonMoves
	case PieceKnight:
		return genKnightMoves
	case PieceElephant:
		return genElephantMoves
	case PieceAdvisor:
		return genAdvisorMoves
	case PieceGeneral:
		return genGeneralMoves
	case PieceSoldier:
		return genSoldierMoves
	}
	return nil
}

// Destinations 是去掉哨兵后的 Handle 结果
func (b *Board) Destinations(idx int) []*Point {
	return Handle(b, b.At(idx))[1:]
}

// CanMove 判断 from -> to 是否在伪合法落点里
func (b *Board) CanMove(from, to int) bool {
	if !IsValid(from) || !IsValid(to) || from == to {
		return false
	}
	for _, pt := range b.Destinations(from) {
		if pt.index == to {
			return true
		}
	}
	return false
}

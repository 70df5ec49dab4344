package xiangqi

import "sync"

const zobristPieceTypes = 8 // 序号 [1..7]，0 保留给空位

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumPoints]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		// splitmix64，固定种子保证跨进程一致
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for idx := 0; idx < NumPoints; idx++ {
					zobristPieces[side][pt][idx] = next()
				}
			}
		}
		zobristSide = next()
	})
}

// typeOrdinal 把稀疏的类型位压成 1..7
func typeOrdinal(pt PieceType) int {
	switch pt {
	case PieceGeneral:
		return 1
	case PieceSoldier:
		return 2
	case PieceChariot:
		return 3
	case PieceCannon:
		return 4
	case PieceAdvisor:
		return 5
	case PieceElephant:
		return 6
	case PieceKnight:
		return 7
	}
	return 0
}

func pieceHashKey(pc Piece, idx int) uint64 {
	if pc == None || !IsValid(idx) {
		return 0
	}
	var sideIdx int
	switch pc.Side() {
	case Red:
		sideIdx = 0
	case Green:
		sideIdx = 1
	default:
		return 0
	}
	ord := typeOrdinal(pc.Type())
	if ord == 0 {
		return 0
	}
	return zobristPieces[sideIdx][ord][idx]
}

// CalculateHash 全量计算棋盘哈希，用来校验增量结果
func (b *Board) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for idx := 0; idx < NumPoints; idx++ {
		pc := b.points[idx].piece
		if pc == None {
			continue
		}
		h ^= pieceHashKey(pc, idx)
	}
	return h
}

// PositionHash 把走子方也算进去，用于重复局面判断
func (b *Board) PositionHash(toMove Side) uint64 {
	h := b.hash
	if toMove == Green {
		h ^= zobristSide
	}
	return h
}

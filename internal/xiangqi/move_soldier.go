package xiangqi

// 兵的前进方向：红向上(+Files)，绿向下(-Files)
func soldierForward(side Side) step {
	if side == Green {
		return step{-Files, 0}
	}
	return step{+Files, 0}
}

// 是否已经过河
func soldierCrossed(side Side, idx int) bool {
	switch side {
	case Red:
		return idx >= RiverIndex
	case Green:
		return idx < RiverIndex
	}
	return false
}

// 兵：过河前只能前进一格；过河后可以前进或左右一格；永远不能后退
func genSoldierMoves(b *Board, from int, out []*Point) []*Point {
	side := b.points[from].piece.Side()
	out = b.traverse(from, soldierForward(side), 1, nil, out)
	if !soldierCrossed(side, from) {
		return out
	}
	out = b.traverse(from, straightSteps[0], 1, nil, out)
	out = b.traverse(from, straightSteps[2], 1, nil, out)
	return out
}

package xiangqi

// 马：每条马腿（上下左右相邻点）对应两个日字落点
var knightLegs = [4]struct {
	Leg   step
	Leaps [2]step
}{
	{step{+Files, 0}, [2]step{{2*Files + 1, +1}, {2*Files - 1, -1}}},
	{step{+1, +1}, [2]step{{Files + 2, +2}, {-Files + 2, +2}}},
	{step{-Files, 0}, [2]step{{-2*Files - 1, -1}, {-2*Files + 1, +1}}},
	{step{-1, -1}, [2]step{{-Files - 2, -2}, {Files - 2, -2}}},
}

func genKnightMoves(b *Board, from int, out []*Point) []*Point {
	// 先算出哪些马腿被憋住
	var hobbled [4]bool
	for i, kl := range knightLegs {
		leg, ok := kl.Leg.next(from)
		if ok && b.points[leg].piece != None {
			hobbled[i] = true
		}
	}
	for i, kl := range knightLegs {
		if hobbled[i] {
			continue
		}
		// 靠边时的绕边落点由 step.next 的列检查拦掉
		for _, s := range kl.Leaps {
			out = b.traverse(from, s, 1, nil, out)
		}
	}
	return out
}

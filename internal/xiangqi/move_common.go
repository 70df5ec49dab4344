package xiangqi

// 车最多走 Ranks-1 步，取 Ranks 足够
const slideDepth = Ranks

// 九宫，下标固定；[0] 红方，[1] 绿方
var palacePoints = [2]map[int]bool{
	pointSet(3, 4, 5, 12, 13, 14, 21, 22, 23),
	pointSet(mirrorAll(3, 4, 5, 12, 13, 14, 21, 22, 23)...),
}

// 象位：己方半场的七个点
var elephantPoints = [2]map[int]bool{
	pointSet(2, 6, 18, 22, 26, 38, 42),
	pointSet(mirrorAll(2, 6, 18, 22, 26, 38, 42)...),
}

func pointSet(idx ...int) map[int]bool {
	m := make(map[int]bool, len(idx))
	for _, i := range idx {
		m[i] = true
	}
	return m
}

func mirrorAll(idx ...int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = mirror(v)
	}
	return out
}

// 车：横竖滑行
func genChariotMoves(b *Board, from int, out []*Point) []*Point {
	for _, s := range straightSteps {
		out = b.traverse(from, s, slideDepth, nil, out)
	}
	return out
}

// 炮：没碰到子之前和车一样走空点；翻过第一个子（炮架，不分颜色）后，
// 只有下一个遇到的子是敌子才能吃
func genCannonMoves(b *Board, from int, out []*Point) []*Point {
	side := b.points[from].piece.Side()
	for _, s := range straightSteps {
		cur := from
		screened := false
		for {
			to, inside := s.next(cur)
			if !inside {
				break
			}
			cur = to
			pc := b.points[to].piece
			if !screened {
				if pc == None {
					out = append(out, &b.points[to])
				} else {
					screened = true
				}
				continue
			}
			if pc != None {
				if pc.Side() != side {
					out = append(out, &b.points[to])
				}
				break
			}
		}
	}
	return out
}

// 象：田字，只能落在本方象位上，象眼有子不能走
func genElephantMoves(b *Board, from int, out []*Point) []*Point {
	table := elephantPoints[sideIndex(b.points[from].piece.Side())]
	for i, s := range elephantSteps {
		eye := diagonalSteps[i]
		out = b.traverse(from, s, 1, func(origin, to int) bool {
			if !table[to] {
				return false
			}
			mid, _ := eye.next(origin)
			return b.points[mid].piece == None
		}, out)
	}
	return out
}

// 士：斜走一格，不过河
func genAdvisorMoves(b *Board, from int, out []*Point) []*Point {
	side := b.points[from].piece.Side()
	start := len(out)
	for _, s := range diagonalSteps {
		out = b.traverse(from, s, 1, func(_, to int) bool {
			return ownHalf(side, to)
		}, out)
	}
	return dedupeFrom(out, start)
}

// dedupeFrom 去掉 out[start:] 中重复的落点，保持首次出现的顺序
func dedupeFrom(out []*Point, start int) []*Point {
	seen := make(map[int]bool, len(out)-start)
	kept := out[:start]
	for _, pt := range out[start:] {
		if seen[pt.index] {
			continue
		}
		seen[pt.index] = true
		kept = append(kept, pt)
	}
	return kept
}

// 将：九宫内上下左右一格（不处理对将）
func genGeneralMoves(b *Board, from int, out []*Point) []*Point {
	palace := palacePoints[sideIndex(b.points[from].piece.Side())]
	for _, s := range straightSteps {
		out = b.traverse(from, s, 1, func(_, to int) bool {
			return palace[to]
		}, out)
	}
	return out
}

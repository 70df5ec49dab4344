package xiangqi

// step 是下标空间里的一次位移，dFile 是它应有的列变化量。
// 落点列变化不等于 dFile 时说明跨过了左右边界（9 列棋盘上 +1 会从 file 8 绕到下一行 file 0）。
type step struct {
	delta int
	dFile int
}

var (
	// 右、上、左、下
	straightSteps = [4]step{{+1, +1}, {+Files, 0}, {-1, -1}, {-Files, 0}}
	// 斜一格
	diagonalSteps = [4]step{{Files + 1, +1}, {Files - 1, -1}, {-Files - 1, -1}, {-Files + 1, +1}}
	// 斜两格（田字），象眼为对应的 diagonalSteps
	elephantSteps = [4]step{{2*Files + 2, +2}, {2*Files - 2, -2}, {-2*Files - 2, -2}, {-2*Files + 2, +2}}
)

// next 返回 from 沿 s 走一步后的下标；出界或绕边返回 false
func (s step) next(from int) (int, bool) {
	to := from + s.delta
	if !IsValid(to) {
		return 0, false
	}
	if fileOf(to)-fileOf(from) != s.dFile {
		return 0, false
	}
	return to, true
}

// rule 判断 origin 出发能否落到 to（九宫、河界、象位表、憋马腿……）
type rule func(origin, to int) bool

// traverse 从 origin 沿 s 最多走 depth 步，结果追加到 out。
// 空点：收入并继续；敌子：收入后停；己子：不收入直接停。
// 出界、绕边、depth 用完或 ok 返回 false 时停止。
func (b *Board) traverse(origin int, s step, depth int, ok rule, out []*Point) []*Point {
	side := b.points[origin].piece.Side()
	cur := origin
	for ; depth > 0; depth-- {
		to, inside := s.next(cur)
		if !inside {
			break
		}
		if ok != nil && !ok(origin, to) {
			break
		}
		dst := &b.points[to]
		if dst.piece != None {
			if dst.piece.Side() != side {
				out = append(out, dst)
			}
			break
		}
		out = append(out, dst)
		cur = to
	}
	return out
}

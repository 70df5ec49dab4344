package xiangqi

import "slices"

// PointSet 以下标去重的点集合
type PointSet map[int]*Point

func (s PointSet) Add(pt *Point) bool {
	if _, ok := s[pt.index]; ok {
		return false
	}
	s[pt.index] = pt
	return true
}

func (s PointSet) Has(idx int) bool {
	_, ok := s[idx]
	return ok
}

func (s PointSet) Len() int { return len(s) }

// Sorted 按下标升序
func (s PointSet) Sorted() []*Point {
	out := make([]*Point, 0, len(s))
	for _, pt := range s {
		out = append(out, pt)
	}
	slices.SortFunc(out, func(a, b *Point) int { return a.index - b.index })
	return out
}

// Indices 按下标升序
func (s PointSet) Indices() []int {
	out := make([]int, 0, len(s))
	for idx := range s {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// AttackedPoints 汇总 side 所有棋子的落点。
// 每个棋子的结果按位置去掉第一个元素（哨兵），不按值比较，
// 所以炮隔子吃到的点不会被误删。
func (b *Board) AttackedPoints(side Side) PointSet {
	set := make(PointSet)
	for _, pt := range b.Pieces(side) {
		for _, dst := range Handle(b, pt)[1:] {
			set.Add(dst)
		}
	}
	return set
}

// IsAttacked 判断 idx 是否在 bySide 的落点中，找到即返回
func (b *Board) IsAttacked(idx int, bySide Side) bool {
	for _, pt := range b.Pieces(bySide) {
		for _, dst := range Handle(b, pt)[1:] {
			if dst.index == idx {
				return true
			}
		}
	}
	return false
}

// GeneralPoint 返回 side 的将所在点，已被吃掉则为 nil
func (b *Board) GeneralPoint(side Side) *Point {
	for _, pt := range b.Pieces(side) {
		if pt.piece.Type() == PieceGeneral {
			return pt
		}
	}
	return nil
}

package xiangqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttackedPointsNoPieces(t *testing.T) {
	b := boardWith(map[int]Piece{40: rChariot})
	assert.Equal(t, 0, b.AttackedPoints(Green).Len())
	assert.Empty(t, b.AttackedPoints(Green).Sorted())
	assert.False(t, b.IsAttacked(40, Green))
}

func TestAttackedPointsInitialBoard(t *testing.T) {
	b := NewBoard(1)
	red := b.AttackedPoints(Red)

	assert.True(t, red.Has(82), "cannon over the screen hits the knight")
	assert.True(t, red.Has(88))
	assert.False(t, red.Has(64), "screen itself is not attacked")
	assert.False(t, red.Has(19), "origin sentinel dropped")
	assert.False(t, red.Has(0), "own pieces never attacked")
	assert.True(t, b.IsAttacked(82, Red))
	assert.False(t, b.IsAttacked(64, Red))

	green := b.AttackedPoints(Green)
	assert.Equal(t, red.Len(), green.Len(), "starting layout is symmetric")
	for idx := range red {
		assert.True(t, green.Has(mirror(idx)), "mirror of %d", idx)
	}
}

func TestAttackedPointsDeduplicates(t *testing.T) {
	// 两个车都能到 49
	b := boardWith(map[int]Piece{40: rChariot, 48: rChariot})
	set := b.AttackedPoints(Red)
	assert.True(t, set.Has(49))

	var want []int
	seen := map[int]bool{}
	for _, origin := range []int{40, 48} {
		for _, pt := range b.Destinations(origin) {
			if !seen[pt.Index()] {
				seen[pt.Index()] = true
				want = append(want, pt.Index())
			}
		}
	}
	assert.ElementsMatch(t, want, set.Indices())
	assert.Equal(t, len(want), set.Len())
}

func TestAttackedPointsKeepsCannonCapture(t *testing.T) {
	b := boardWith(map[int]Piece{4: rCannon, 22: gSoldier, 49: gGeneral})
	set := b.AttackedPoints(Red)
	assert.True(t, set.Has(49))
	assert.False(t, set.Has(4))
	assert.Same(t, b.At(49), set[49])
}

func TestPointSetAdd(t *testing.T) {
	b := NewEmptyBoard(1)
	s := make(PointSet)
	assert.True(t, s.Add(b.At(7)))
	assert.False(t, s.Add(b.At(7)))
	assert.True(t, s.Add(b.At(3)))
	assert.Equal(t, []int{3, 7}, s.Indices())
	assert.Equal(t, []int{3, 7}, indices(s.Sorted()))
}

func TestGeneralPoint(t *testing.T) {
	b := NewBoard(1)
	assert.Equal(t, 4, b.GeneralPoint(Red).Index())
	assert.Equal(t, 85, b.GeneralPoint(Green).Index())

	b = boardWith(map[int]Piece{40: rChariot})
	assert.Nil(t, b.GeneralPoint(Red))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/xiangqi"
)

func initialCodes() []uint8 {
	b := xiangqi.NewBoard(1)
	codes := make([]uint8, xiangqi.NumPoints)
	for idx := range codes {
		pc, _ := b.Occupant(idx)
		codes[idx] = uint8(pc)
	}
	return codes
}

func TestBoardFromCodes(t *testing.T) {
	b, err := boardFromCodes(initialCodes())
	require.NoError(t, err)
	assert.Equal(t, xiangqi.InitialFEN, b.Encode(xiangqi.Red))

	_, err = boardFromCodes(make([]uint8, 89))
	assert.Error(t, err)

	bad := initialCodes()
	bad[40] = 0b0100010 // 没有这种棋子
	_, err = boardFromCodes(bad)
	assert.Error(t, err)

	bad[40] = 0b1100001 // 两个颜色位
	_, err = boardFromCodes(bad)
	assert.Error(t, err)
}

func TestDestinationMask(t *testing.T) {
	b, err := boardFromCodes(initialCodes())
	require.NoError(t, err)

	mask, count := destinationMask(b, 1)
	assert.Equal(t, 2, count)
	assert.Equal(t, int8(1), mask[18])
	assert.Equal(t, int8(1), mask[20])
	assert.Equal(t, int8(0), mask[1], "origin is never a destination")

	_, count = destinationMask(b, 40)
	assert.Zero(t, count)
	mask, count = destinationMask(b, 120)
	assert.Zero(t, count)
	assert.Len(t, mask, xiangqi.NumPoints)
}

func TestAttackedMask(t *testing.T) {
	b, err := boardFromCodes(initialCodes())
	require.NoError(t, err)

	mask, count := attackedMask(b, xiangqi.Red)
	assert.Equal(t, b.AttackedPoints(xiangqi.Red).Len(), count)
	assert.Equal(t, int8(1), mask[82])
	assert.Equal(t, int8(0), mask[64], "cannon screen")
}

func TestWinner(t *testing.T) {
	b, err := boardFromCodes(initialCodes())
	require.NoError(t, err)
	assert.Equal(t, xiangqi.NoSide, winner(b))

	codes := initialCodes()
	codes[85] = 0
	b, err = boardFromCodes(codes)
	require.NoError(t, err)
	assert.Equal(t, xiangqi.Red, winner(b))
}

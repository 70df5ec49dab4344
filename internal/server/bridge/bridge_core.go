package main

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

// 棋盘按下标平铺成 90 个字节，每格是 Piece 的原始编码，0 为空

func boardFromCodes(codes []uint8) (*xiangqi.Board, error) {
	if len(codes) != xiangqi.NumPoints {
		return nil, fmt.Errorf("bridge: board has %d cells, want %d", len(codes), xiangqi.NumPoints)
	}
	b := xiangqi.NewEmptyBoard(1)
	for idx, c := range codes {
		if c == 0 {
			continue
		}
		pc := xiangqi.Piece(c)
		if !validCode(pc) {
			return nil, fmt.Errorf("bridge: bad piece code %#b at %d", c, idx)
		}
		b.Place(idx, pc)
	}
	return b, nil
}

func validCode(pc xiangqi.Piece) bool {
	if pc.Side() != xiangqi.Red && pc.Side() != xiangqi.Green {
		return false
	}
	switch pc.Type() {
	case xiangqi.PieceGeneral, xiangqi.PieceSoldier, xiangqi.PieceChariot, xiangqi.PieceCannon,
		xiangqi.PieceAdvisor, xiangqi.PieceElephant, xiangqi.PieceKnight:
		return true
	}
	return false
}

// destinationMask 返回 from 的落点掩码和落点数；起点为空或越界时全 0
func destinationMask(b *xiangqi.Board, from int) ([]int8, int) {
	mask := make([]int8, xiangqi.NumPoints)
	if !xiangqi.IsValid(from) {
		return mask, 0
	}
	count := 0
	for _, pt := range b.Destinations(from) {
		if mask[pt.Index()] == 0 {
			mask[pt.Index()] = 1
			count++
		}
	}
	return mask, count
}

func attackedMask(b *xiangqi.Board, side xiangqi.Side) ([]int8, int) {
	mask := make([]int8, xiangqi.NumPoints)
	set := b.AttackedPoints(side)
	for _, idx := range set.Indices() {
		mask[idx] = 1
	}
	return mask, set.Len()
}

// winner 只看将是否还在：一方的将没了，另一方赢；否则 NoSide
func winner(b *xiangqi.Board) xiangqi.Side {
	red := b.GeneralPoint(xiangqi.Red) != nil
	green := b.GeneralPoint(xiangqi.Green) != nil
	switch {
	case red && !green:
		return xiangqi.Red
	case green && !red:
		return xiangqi.Green
	}
	return xiangqi.NoSide
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"xiangqi/internal/xiangqi"
)

// TestCase 一个局面上某个起点的落点掩码，给前端或其他实现做对拍
type TestCase struct {
	FEN      string `json:"fen"`
	Origin   int    `json:"origin"`
	Mask     []int8 `json:"mask"`     // 90 格，可落点为 1
	Attacked []int8 `json:"attacked"` // 90 格，走子方受攻击点为 1
}

func mask(idx []int) []int8 {
	m := make([]int8, xiangqi.NumPoints)
	for _, i := range idx {
		m[i] = 1
	}
	return m
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("plies", 200, "max plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		b := xiangqi.NewBoard(1)
		toMove := xiangqi.Red
		for ply := 0; ply < *maxPlies; ply++ {
			if b.GeneralPoint(xiangqi.Red) == nil || b.GeneralPoint(xiangqi.Green) == nil {
				break
			}
			fen := b.Encode(toMove)
			attacked := mask(b.AttackedPoints(toMove).Indices())

			// 记录每个有落点的起点
			var movable []*xiangqi.Point
			for _, pt := range b.Pieces(toMove) {
				dsts := b.Destinations(pt.Index())
				if len(dsts) == 0 {
					continue
				}
				idx := make([]int, len(dsts))
				for i, d := range dsts {
					idx[i] = d.Index()
				}
				testCases = append(testCases, TestCase{
					FEN:      fen,
					Origin:   pt.Index(),
					Mask:     mask(idx),
					Attacked: attacked,
				})
				movable = append(movable, pt)
			}
			if len(movable) == 0 {
				break
			}

			// 随机选一步
			from := movable[rng.Intn(len(movable))]
			dsts := b.Destinations(from.Index())
			b.RegisterMove(from, dsts[rng.Intn(len(dsts))])
			toMove = toMove.Opposite()
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to inspect")
	flag.Parse()

	b, toMove, err := xiangqi.DecodeBoard(*fen, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}

	fmt.Println("FEN:", b.Encode(toMove))
	fmt.Printf("Hash: %016x\n", b.PositionHash(toMove))
	fmt.Print(b.String())

	for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Green} {
		total := 0
		for _, pt := range b.Pieces(side) {
			n := len(b.Destinations(pt.Index()))
			total += n
			fmt.Printf("  %-5s %-8s @%2d: %d\n", side, pt.Piece().Type(), pt.Index(), n)
		}
		attacked := b.AttackedPoints(side)
		fmt.Printf("%s: %d pieces, %d pseudo legal moves, %d attacked points\n",
			side, b.PieceCount(side), total, attacked.Len())
	}
}

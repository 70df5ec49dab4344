package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"
import (
	"time"
	"unsafe"

	"github.com/rs/zerolog/log"

	"xiangqi/internal/xiangqi"
)

//export IsLegal
func IsLegal(boardPtr *C.uint8_t, from, to C.int) C.bool {
	b, ok := cToGoBoard(boardPtr)
	if !ok || !xiangqi.IsValid(int(from)) || !xiangqi.IsValid(int(to)) {
		return C.bool(false)
	}
	return C.bool(b.CanMove(int(from), int(to)))
}

//export GetDestinationMask
func GetDestinationMask(boardPtr *C.uint8_t, from C.int, maskOut *C.int8_t) C.int {
	start := time.Now()
	out := (*[xiangqi.NumPoints]int8)(unsafe.Pointer(maskOut))
	for i := range out {
		out[i] = 0
	}
	b, ok := cToGoBoard(boardPtr)
	if !ok {
		return -1
	}

	mask, count := destinationMask(b, int(from))
	copy(out[:], mask)

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		log.Warn().Int("from", int(from)).Int("count", count).Dur("took", elapsed).Msg("Slow bridge call")
	}
	return C.int(count)
}

//export GetAttackedMask
func GetAttackedMask(boardPtr *C.uint8_t, side C.uint8_t, maskOut *C.int8_t) C.int {
	out := (*[xiangqi.NumPoints]int8)(unsafe.Pointer(maskOut))
	for i := range out {
		out[i] = 0
	}
	b, ok := cToGoBoard(boardPtr)
	if !ok {
		return -1
	}
	mask, count := attackedMask(b, xiangqi.Side(side))
	copy(out[:], mask)
	return C.int(count)
}

// CheckWinner 返回还有将的一方的编码，对局未结束返回 0
//
//export CheckWinner
func CheckWinner(boardPtr *C.uint8_t) C.uint8_t {
	b, ok := cToGoBoard(boardPtr)
	if !ok {
		return 0
	}
	return C.uint8_t(winner(b))
}

func cToGoBoard(ptr *C.uint8_t) (*xiangqi.Board, bool) {
	cells := (*[xiangqi.NumPoints]uint8)(unsafe.Pointer(ptr))
	b, err := boardFromCodes(cells[:])
	if err != nil {
		log.Warn().Err(err).Msg("Rejected bridge board")
		return nil, false
	}
	return b, true
}

func main() {}

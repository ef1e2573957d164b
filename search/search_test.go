package search

import (
	"testing"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

func TestBestMoveEmpty(t *testing.T) {
	if _, ok := BestMove(nil); ok {
		t.Fatalf("BestMove(nil) = ok, want no move")
	}
}

func TestBestMovePicksFirst(t *testing.T) {
	legal := []position.Move{
		position.NewMove(bitboard.ParseSquare("e2"), bitboard.ParseSquare("e4"), 0, position.Normal),
		position.NewMove(bitboard.ParseSquare("g1"), bitboard.ParseSquare("f3"), 0, position.Normal),
	}
	m, ok := BestMove(legal)
	if !ok || m != legal[0] {
		t.Fatalf("BestMove = %v, ok=%v, want %v, true", m, ok, legal[0])
	}
}

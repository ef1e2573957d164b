package movegen

import (
	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

// LegalMoves returns the subset of PseudoLegalMoves(b, side) that do not
// leave side's own king in check. It takes b by value (position.Board is a
// plain value type) so each candidate can be applied, tested, and undone on
// a private scratch copy without ever touching the caller's board.
func LegalMoves(b position.Board, side bitboard.Color) []position.Move {
	pseudo := PseudoLegalMoves(&b, side)
	legal := make([]position.Move, 0, len(pseudo))

	for _, m := range pseudo {
		rec, err := b.Apply(m)
		if err != nil {
			continue
		}
		if !InCheck(&b, side) {
			legal = append(legal, m)
		}
		b.Undo(rec)
	}
	return legal
}

// IsLegal reports whether m is a legal move for side in position b.
func IsLegal(b position.Board, side bitboard.Color, m position.Move) bool {
	for _, legal := range LegalMoves(b, side) {
		if legal == m {
			return true
		}
	}
	return false
}

// Perft walks the legal-move tree to the given depth and counts leaf
// positions, the standard move generator correctness check (see
// https://www.chessprogramming.org/Perft_Results). depth 0 counts the
// current position itself as one node.
func Perft(b position.Board, side bitboard.Color, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(b, side)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		rec, err := b.Apply(m)
		if err != nil {
			continue
		}
		nodes += Perft(b, side.Opposite(), depth-1)
		b.Undo(rec)
	}
	return nodes
}

// Package movegen implements pseudo-legal move generation, the is-a-square-
// attacked query, and the legal-move filter built on top of both. None of
// it mutates a caller's position.Board: Apply/Undo are always used on a
// private copy (position.Board is a plain value type, so a copy is just an
// assignment).
package movegen

import (
	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

// IsAttacked reports whether sq is attacked by any byColor piece, given the
// board's current occupancy. It works by reverse symmetry: for every piece
// type, the squares a byColor piece could stand on to attack sq are exactly
// the squares a piece of that type sitting ON sq would itself attack (for
// leapers) or reach (for sliders, since attack geometry is symmetric).
func IsAttacked(b *position.Board, sq bitboard.Square, byColor bitboard.Color) bool {
	if bitboard.PawnAttacks[byColor.Opposite()][sq]&b.Pieces[byColor][bitboard.Pawn] != 0 {
		return true
	}
	if bitboard.KnightAttacks[sq]&b.Pieces[byColor][bitboard.Knight] != 0 {
		return true
	}
	if bitboard.KingAttacks[sq]&b.Pieces[byColor][bitboard.King] != 0 {
		return true
	}
	diagonalAttackers := b.Pieces[byColor][bitboard.Bishop] | b.Pieces[byColor][bitboard.Queen]
	if bitboard.BishopAttacks(sq, b.AllOccupancy)&diagonalAttackers != 0 {
		return true
	}
	straightAttackers := b.Pieces[byColor][bitboard.Rook] | b.Pieces[byColor][bitboard.Queen]
	if bitboard.RookAttacks(sq, b.AllOccupancy)&straightAttackers != 0 {
		return true
	}
	return false
}

// InCheck reports whether side's king is currently attacked.
func InCheck(b *position.Board, side bitboard.Color) bool {
	return IsAttacked(b, b.KingSquare[side], side.Opposite())
}

package movegen

import (
	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

// promotionPieces is the fixed emission order for a pawn reaching the back
// rank: queen first since it is almost always the one a caller wants to try
// first, then the three underpromotions.
var promotionPieces = [4]position.PromotionPiece{
	position.PromoteQueen, position.PromoteRook, position.PromoteBishop, position.PromoteKnight,
}

// PseudoLegalMoves returns every move available to side's pieces without
// regard for whether it leaves side's own king in check. Castling moves are
// the one exception that does get a same-call legality guard (see below),
// since "castling out of or through check" cannot be caught by the
// generic apply-then-check-the-king legal filter: that filter only ever
// looks at the king's final square, never the square it passes through.
func PseudoLegalMoves(b *position.Board, side bitboard.Color) []position.Move {
	moves := make([]position.Move, 0, 48)
	moves = genPawnMoves(b, side, moves)
	moves = genLeaperMoves(b, side, bitboard.Knight, bitboard.KnightAttacks[:], moves)
	moves = genSliderMoves(b, side, bitboard.Bishop, bitboard.BishopAttacks, moves)
	moves = genSliderMoves(b, side, bitboard.Rook, bitboard.RookAttacks, moves)
	moves = genSliderMoves(b, side, bitboard.Queen, bitboard.QueenAttacks, moves)
	moves = genKingMoves(b, side, moves)
	moves = genCastlingMoves(b, side, moves)
	return moves
}

func genPawnMoves(b *position.Board, side bitboard.Color, moves []position.Move) []position.Move {
	pawns := b.Pieces[side][bitboard.Pawn]
	occ := b.AllOccupancy
	enemy := b.ColorOccupancy[side.Opposite()]

	var epTarget bitboard.Bitboard
	if b.EnPassant != bitboard.NoSquare {
		epTarget = epTarget.Set(b.EnPassant)
	}

	var singlePush, doublePush, captureLow, captureHigh bitboard.Bitboard
	var singleDelta, doubleDelta, lowDelta, highDelta int
	var promotionRank int

	if side == bitboard.White {
		singlePush = (pawns >> 8) &^ occ
		doublePush = ((singlePush & bitboard.Rank3) >> 8) &^ occ
		// Forward-right (toward the h-file) is a >>7 shift; forward-left
		// (toward the a-file) is a >>9 shift. Source squares on the file
		// the shift would wrap off of are masked out before shifting.
		captureHigh = (pawns & bitboard.NotHFile) >> 7 & (enemy | epTarget)
		captureLow = (pawns & bitboard.NotAFile) >> 9 & (enemy | epTarget)
		singleDelta, doubleDelta, lowDelta, highDelta = 8, 16, 9, 7
		promotionRank = 0
	} else {
		singlePush = (pawns << 8) &^ occ
		doublePush = ((singlePush & bitboard.Rank6) << 8) &^ occ
		captureHigh = (pawns & bitboard.NotAFile) << 7 & (enemy | epTarget)
		captureLow = (pawns & bitboard.NotHFile) << 9 & (enemy | epTarget)
		singleDelta, doubleDelta, lowDelta, highDelta = -8, -16, -9, -7
		promotionRank = 7
	}

	emit := func(dests bitboard.Bitboard, delta int) []position.Move {
		for dests != 0 {
			to := bitboard.PopLSB(&dests)
			from := bitboard.Square(int(to) + delta)
			if to.Row() == promotionRank {
				for _, promo := range promotionPieces {
					moves = append(moves, position.NewMove(from, to, promo, position.Promotion))
				}
			} else if to == b.EnPassant {
				moves = append(moves, position.NewMove(from, to, 0, position.EnPassantCapture))
			} else {
				moves = append(moves, position.NewMove(from, to, 0, position.Normal))
			}
		}
		return moves
	}

	moves = emit(singlePush, singleDelta)
	moves = emit(doublePush, doubleDelta)
	moves = emit(captureLow, lowDelta)
	moves = emit(captureHigh, highDelta)
	return moves
}

func genLeaperMoves(b *position.Board, side bitboard.Color, pt bitboard.PieceType, table []bitboard.Bitboard, moves []position.Move) []position.Move {
	pieces := b.Pieces[side][pt]
	own := b.ColorOccupancy[side]
	for pieces != 0 {
		from := bitboard.PopLSB(&pieces)
		dests := table[from] &^ own
		for dests != 0 {
			to := bitboard.PopLSB(&dests)
			moves = append(moves, position.NewMove(from, to, 0, position.Normal))
		}
	}
	return moves
}

func genSliderMoves(b *position.Board, side bitboard.Color, pt bitboard.PieceType, attacksFn func(bitboard.Square, bitboard.Bitboard) bitboard.Bitboard, moves []position.Move) []position.Move {
	pieces := b.Pieces[side][pt]
	own := b.ColorOccupancy[side]
	for pieces != 0 {
		from := bitboard.PopLSB(&pieces)
		dests := attacksFn(from, b.AllOccupancy) &^ own
		for dests != 0 {
			to := bitboard.PopLSB(&dests)
			moves = append(moves, position.NewMove(from, to, 0, position.Normal))
		}
	}
	return moves
}

func genKingMoves(b *position.Board, side bitboard.Color, moves []position.Move) []position.Move {
	from := b.KingSquare[side]
	dests := bitboard.KingAttacks[from] &^ b.ColorOccupancy[side]
	for dests != 0 {
		to := bitboard.PopLSB(&dests)
		moves = append(moves, position.NewMove(from, to, 0, position.Normal))
	}
	return moves
}

// genCastlingMoves emits O-O/O-O-O when the right is held, the squares
// between king and rook are empty, and none of the king's start square,
// transit square, or destination square is attacked. That last guard is
// the one piece of castling legality the generic apply-then-check filter
// cannot see on its own, since it only ever inspects the king's final
// resting square.
func genCastlingMoves(b *position.Board, side bitboard.Color, moves []position.Move) []position.Move {
	enemy := side.Opposite()
	row := 7
	if side == bitboard.Black {
		row = 0
	}
	kingHome := bitboard.NewSquare(row, 4)
	if b.KingSquare[side] != kingHome {
		return moves
	}

	var kingside, queenside position.CastlingRights
	if side == bitboard.White {
		kingside, queenside = position.WhiteKingside, position.WhiteQueenside
	} else {
		kingside, queenside = position.BlackKingside, position.BlackQueenside
	}

	clear := func(cols ...int) bool {
		for _, c := range cols {
			if b.AllOccupancy.Has(bitboard.NewSquare(row, c)) {
				return false
			}
		}
		return true
	}
	safe := func(cols ...int) bool {
		for _, c := range cols {
			if IsAttacked(b, bitboard.NewSquare(row, c), enemy) {
				return false
			}
		}
		return true
	}

	if b.CastlingRights&kingside != 0 && clear(5, 6) && safe(4, 5, 6) {
		moves = append(moves, position.NewMove(kingHome, bitboard.NewSquare(row, 6), 0, position.Castle))
	}
	if b.CastlingRights&queenside != 0 && clear(1, 2, 3) && safe(4, 3, 2) {
		moves = append(moves, position.NewMove(kingHome, bitboard.NewSquare(row, 2), 0, position.Castle))
	}
	return moves
}

package movegen

import (
	"testing"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

func TestMain(m *testing.M) {
	bitboard.Init()
	m.Run()
}

func sq(row, col int) bitboard.Square { return bitboard.NewSquare(row, col) }

func TestPseudoLegalCountStartingPosition(t *testing.T) {
	b := position.NewBoard()
	moves := PseudoLegalMoves(&b, bitboard.White)
	if len(moves) != 20 {
		t.Fatalf("starting position has %d pseudo-legal moves for white, want 20", len(moves))
	}
}

func TestLegalSubsetOfPseudoLegal(t *testing.T) {
	b := position.NewBoard()
	legal := LegalMoves(b, bitboard.White)
	pseudo := PseudoLegalMoves(&b, bitboard.White)

	pseudoSet := make(map[position.Move]bool, len(pseudo))
	for _, m := range pseudo {
		pseudoSet[m] = true
	}
	for _, m := range legal {
		if !pseudoSet[m] {
			t.Fatalf("legal move %v is not in the pseudo-legal set", m)
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	// Standard perft counts from the starting position, depths 1-4.
	// See https://www.chessprogramming.org/Perft_Results
	want := []int{20, 400, 8902, 197281}

	b := position.NewBoard()
	for depth, w := range want {
		got := Perft(b, bitboard.White, depth+1)
		if got != w {
			t.Fatalf("perft(%d) = %d, want %d", depth+1, got, w)
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// White king on e1, white rook on e4, black rook on e8: the white rook
	// is pinned and cannot step off the e-file even though it's otherwise
	// free to move sideways.
	var b position.Board
	b = emptyBoard()
	placeKing(&b, bitboard.White, sq(7, 4))
	placeKing(&b, bitboard.Black, sq(0, 0))
	placePiece(&b, bitboard.White, bitboard.Rook, sq(4, 4))
	placePiece(&b, bitboard.Black, bitboard.Rook, sq(0, 4))

	legal := LegalMoves(b, bitboard.White)
	for _, m := range legal {
		if m.From() == sq(4, 4) && m.To().Col() != 4 {
			t.Fatalf("pinned rook produced an off-file move: %v", m)
		}
	}
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	b := emptyBoard()
	placeKing(&b, bitboard.White, sq(7, 4))
	placeKing(&b, bitboard.Black, sq(0, 4))
	placePiece(&b, bitboard.White, bitboard.Rook, sq(7, 7))
	b.CastlingRights = position.WhiteKingside

	moves := PseudoLegalMoves(&b, bitboard.White)
	found := false
	for _, m := range moves {
		if m.IsCastle() && m.To() == sq(7, 6) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a kingside castle move to be generated")
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	b := emptyBoard()
	placeKing(&b, bitboard.White, sq(7, 4))
	placeKing(&b, bitboard.Black, sq(0, 4))
	placePiece(&b, bitboard.White, bitboard.Rook, sq(7, 7))
	placePiece(&b, bitboard.Black, bitboard.Rook, sq(0, 5)) // attacks f1, the transit square
	b.CastlingRights = position.WhiteKingside

	moves := PseudoLegalMoves(&b, bitboard.White)
	for _, m := range moves {
		if m.IsCastle() {
			t.Fatalf("castling through an attacked square should not be generated: %v", m)
		}
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b := emptyBoard()
	placeKing(&b, bitboard.White, sq(7, 4))
	placeKing(&b, bitboard.Black, sq(0, 4))
	placePiece(&b, bitboard.White, bitboard.Pawn, sq(3, 4)) // e5
	b.EnPassant = sq(2, 3)                                  // d6, as if black just played d7d5

	moves := PseudoLegalMoves(&b, bitboard.White)
	found := false
	for _, m := range moves {
		if m.IsEnPassantCapture() && m.To() == sq(2, 3) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an en passant capture to d6 to be generated")
	}
}

func TestPromotionEmitsAllFourPieces(t *testing.T) {
	b := emptyBoard()
	placeKing(&b, bitboard.White, sq(7, 4))
	placeKing(&b, bitboard.Black, sq(0, 7))
	placePiece(&b, bitboard.White, bitboard.Pawn, sq(1, 0)) // a7, about to promote

	moves := PseudoLegalMoves(&b, bitboard.White)
	count := 0
	for _, m := range moves {
		if m.IsPromotion() && m.From() == sq(1, 0) {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("pawn on the seventh rank produced %d promotion moves, want 4", count)
	}
}

func BenchmarkLegalMovesStartingPosition(b *testing.B) {
	board := position.NewBoard()
	for i := 0; i < b.N; i++ {
		_ = LegalMoves(board, bitboard.White)
	}
}

// --- helpers for constructing minimal test positions ---

func emptyBoard() position.Board {
	var b position.Board
	b.EnPassant = bitboard.NoSquare
	return b
}

func placePiece(b *position.Board, c bitboard.Color, pt bitboard.PieceType, s bitboard.Square) {
	b.Pieces[c][pt] = b.Pieces[c][pt].Set(s)
	b.ColorOccupancy[c] = b.ColorOccupancy[c].Set(s)
	b.AllOccupancy = b.AllOccupancy.Set(s)
}

func placeKing(b *position.Board, c bitboard.Color, s bitboard.Square) {
	placePiece(b, c, bitboard.King, s)
	b.KingSquare[c] = s
}

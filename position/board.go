// Package position implements the bitboard board state, starting position,
// and the make/unmake (Apply/Undo) discipline the rest of the engine is
// built on. It deliberately knows nothing about whose turn it is or how a
// game ends; the game package owns that.
package position

import "github.com/datavorous/touchgrass/bitboard"

// CastlingRights is a 4-bit set of which castling moves are still possible,
// independent of whether the path is currently blocked or attacked.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Piece is a (color, type) pair. Board.PieceAt returns one of these plus an
// "is there actually a piece here" bool, following the Go idiom for lookups
// that can miss rather than using a magic "no piece" sentinel value.
type Piece struct {
	Color bitboard.Color
	Type  bitboard.PieceType
}

// Board holds the full state needed to generate moves and apply/undo them:
// twelve piece bitboards (six types times two colors), the two per-color
// occupancy unions, their combined union, king squares for fast check
// detection, the en passant target (if any), and castling rights.
//
// Board is a plain value type — every field is an array or scalar, no
// slices or pointers — so copying a Board by assignment is a real,
// independent copy. LegalMoves relies on this to apply, test and undo
// speculative moves on its own copy without touching the caller's board.
type Board struct {
	Pieces         [2][bitboard.NumPieceTypes]bitboard.Bitboard
	ColorOccupancy [2]bitboard.Bitboard
	AllOccupancy   bitboard.Bitboard
	KingSquare     [2]bitboard.Square
	EnPassant      bitboard.Square
	CastlingRights CastlingRights
}

// NewBoard returns the standard chess starting position.
func NewBoard() Board {
	var b Board
	b.EnPassant = bitboard.NoSquare
	b.CastlingRights = AllCastlingRights

	place := func(color bitboard.Color, pt bitboard.PieceType, squares ...bitboard.Square) {
		for _, sq := range squares {
			b.placePiece(color, pt, sq)
		}
	}

	back := func(row int) func(int) bitboard.Square {
		return func(col int) bitboard.Square { return bitboard.NewSquare(row, col) }
	}
	white, black := back(7), back(0)

	place(bitboard.White, bitboard.Rook, white(0), white(7))
	place(bitboard.White, bitboard.Knight, white(1), white(6))
	place(bitboard.White, bitboard.Bishop, white(2), white(5))
	place(bitboard.White, bitboard.Queen, white(3))
	place(bitboard.White, bitboard.King, white(4))
	for col := 0; col < 8; col++ {
		place(bitboard.White, bitboard.Pawn, bitboard.NewSquare(6, col))
	}

	place(bitboard.Black, bitboard.Rook, black(0), black(7))
	place(bitboard.Black, bitboard.Knight, black(1), black(6))
	place(bitboard.Black, bitboard.Bishop, black(2), black(5))
	place(bitboard.Black, bitboard.Queen, black(3))
	place(bitboard.Black, bitboard.King, black(4))
	for col := 0; col < 8; col++ {
		place(bitboard.Black, bitboard.Pawn, bitboard.NewSquare(1, col))
	}

	return b
}

// PieceAt looks up the piece occupying sq, if any.
func (b *Board) PieceAt(sq bitboard.Square) (Piece, bool) {
	if !b.AllOccupancy.Has(sq) {
		return Piece{}, false
	}
	color := bitboard.White
	if b.ColorOccupancy[bitboard.Black].Has(sq) {
		color = bitboard.Black
	}
	for pt := bitboard.Pawn; pt < bitboard.NumPieceTypes; pt++ {
		if b.Pieces[color][pt].Has(sq) {
			return Piece{Color: color, Type: pt}, true
		}
	}
	return Piece{}, false
}

// SignedPieceAt returns the legacy signed-integer piece encoding the engine
// this was distilled from used (positive for white, negative for black,
// magnitude 1=pawn..6=king, 0=empty). Nothing in the hot path uses this; it
// exists for tests and debug rendering that want the compact form.
func (b *Board) SignedPieceAt(sq bitboard.Square) int {
	p, ok := b.PieceAt(sq)
	if !ok {
		return 0
	}
	v := int(p.Type) + 1
	if p.Color == bitboard.Black {
		v = -v
	}
	return v
}

func (b *Board) placePiece(color bitboard.Color, pt bitboard.PieceType, sq bitboard.Square) {
	b.Pieces[color][pt] = b.Pieces[color][pt].Set(sq)
	b.ColorOccupancy[color] = b.ColorOccupancy[color].Set(sq)
	b.AllOccupancy = b.AllOccupancy.Set(sq)
	if pt == bitboard.King {
		b.KingSquare[color] = sq
	}
}

func (b *Board) removePiece(color bitboard.Color, pt bitboard.PieceType, sq bitboard.Square) {
	b.Pieces[color][pt] = b.Pieces[color][pt].Clear(sq)
	b.ColorOccupancy[color] = b.ColorOccupancy[color].Clear(sq)
	b.AllOccupancy = b.AllOccupancy.Clear(sq)
}

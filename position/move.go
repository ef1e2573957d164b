package position

import "github.com/datavorous/touchgrass/bitboard"

// MoveType distinguishes the handful of move shapes that need special
// apply/undo handling beyond "piece goes from A to B".
type MoveType uint8

const (
	Normal MoveType = iota
	Castle
	EnPassantCapture
	Promotion
)

// PromotionPiece enumerates the four pieces a pawn may promote to. It is
// only meaningful on a Move whose Type is Promotion.
type PromotionPiece uint8

const (
	PromoteKnight PromotionPiece = iota
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// PieceType converts a PromotionPiece to the corresponding board PieceType.
func (p PromotionPiece) PieceType() bitboard.PieceType {
	return bitboard.Knight + bitboard.PieceType(p)
}

// Move is a packed move: to (bits 0-5), from (bits 6-11), promotion piece
// (bits 12-13), move type (bits 14-15). The packing mirrors the teacher
// codebase's move encoding, which keeps a MoveList cheap to copy and
// compare.
type Move uint16

// NewMove builds a Move. promo is ignored unless kind is Promotion.
func NewMove(from, to bitboard.Square, promo PromotionPiece, kind MoveType) Move {
	return Move(to) | Move(from)<<6 | Move(promo)<<12 | Move(kind)<<14
}

func (m Move) To() bitboard.Square          { return bitboard.Square(m & 0x3F) }
func (m Move) From() bitboard.Square        { return bitboard.Square((m >> 6) & 0x3F) }
func (m Move) Promotion() PromotionPiece    { return PromotionPiece((m >> 12) & 0x3) }
func (m Move) Type() MoveType               { return MoveType((m >> 14) & 0x3) }
func (m Move) IsCastle() bool               { return m.Type() == Castle }
func (m Move) IsEnPassantCapture() bool     { return m.Type() == EnPassantCapture }
func (m Move) IsPromotion() bool            { return m.Type() == Promotion }

// String renders a move in long algebraic notation, the shape the UCI
// protocol speaks (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()])
	}
	return s
}

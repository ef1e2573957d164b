package position

import "github.com/datavorous/touchgrass/bitboard"

// MoveRecord captures everything Undo needs to exactly reverse an Apply: the
// move itself, what was moved and (if anything) captured, and whatever
// incidental state (en passant target, castling rights, the rook's hop on a
// castle) Apply changed as a side effect. It plays the role the original
// prototype's MoveRecord dataclass did, extended with the castling/en
// passant bookkeeping that prototype didn't have to undo because it didn't
// generate those moves in the first place.
type MoveRecord struct {
	Move Move

	Moved      Piece
	Captured   Piece
	CapturedOK bool

	PriorEnPassant      bitboard.Square
	PriorCastlingRights CastlingRights

	// The square the captured piece stood on (NoSquare when nothing was
	// captured). For MoveType == EnPassantCapture this is not Move.To().
	CapturedSquare bitboard.Square

	// Set only for MoveType == Castle: the rook's hop, so Undo can put it
	// back without re-deriving it from Move.To().
	RookFrom, RookTo bitboard.Square
}

// Apply performs m on b and returns a record that Undo can later use to put
// b back exactly as it was. It assumes m is at least pseudo-legal for the
// piece standing on its from-square; legality (is my own king left in
// check) is the move generator's job, not this one's.
func (b *Board) Apply(m Move) (MoveRecord, error) {
	from, to := m.From(), m.To()

	moved, ok := b.PieceAt(from)
	if !ok {
		return MoveRecord{}, ErrNoPieceAtSource
	}

	rec := MoveRecord{
		Move:                m,
		Moved:               moved,
		PriorEnPassant:      b.EnPassant,
		PriorCastlingRights: b.CastlingRights,
		CapturedSquare:      bitboard.NoSquare,
	}

	// Figure out what's captured, and where it actually sits: normal
	// captures sit on the destination square, but an en passant capture
	// takes a pawn that is not on the destination square at all.
	capturedSquare := to
	if m.IsEnPassantCapture() {
		capturedSquare = enPassantVictimSquare(to, moved.Color)
	}
	if captured, capturedOK := b.PieceAt(capturedSquare); capturedOK {
		rec.Captured = captured
		rec.CapturedOK = true
		rec.CapturedSquare = capturedSquare
		b.removePiece(captured.Color, captured.Type, capturedSquare)
	}

	b.removePiece(moved.Color, moved.Type, from)
	placedType := moved.Type
	if m.IsPromotion() {
		placedType = m.Promotion().PieceType()
	}
	b.placePiece(moved.Color, placedType, to)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rec.RookFrom, rec.RookTo = rookFrom, rookTo
		b.removePiece(moved.Color, bitboard.Rook, rookFrom)
		b.placePiece(moved.Color, bitboard.Rook, rookTo)
	}

	b.CastlingRights &= castlingRightsAfter(moved, from, rec.CapturedOK, capturedSquare)

	b.EnPassant = bitboard.NoSquare
	if moved.Type == bitboard.Pawn && abs(to.Row()-from.Row()) == 2 {
		b.EnPassant = bitboard.NewSquare((from.Row()+to.Row())/2, from.Col())
	}

	return rec, nil
}

// Undo reverses the Apply that produced rec. Behavior is undefined if rec
// did not come from the Apply call immediately preceding it.
func (b *Board) Undo(rec MoveRecord) {
	from, to := rec.Move.From(), rec.Move.To()

	placedType := rec.Moved.Type
	if rec.Move.IsPromotion() {
		placedType = rec.Move.Promotion().PieceType()
	}
	b.removePiece(rec.Moved.Color, placedType, to)
	b.placePiece(rec.Moved.Color, rec.Moved.Type, from)

	if rec.Move.IsCastle() {
		b.removePiece(rec.Moved.Color, bitboard.Rook, rec.RookTo)
		b.placePiece(rec.Moved.Color, bitboard.Rook, rec.RookFrom)
	}

	if rec.CapturedOK {
		b.placePiece(rec.Captured.Color, rec.Captured.Type, rec.CapturedSquare)
	}

	b.EnPassant = rec.PriorEnPassant
	b.CastlingRights = rec.PriorCastlingRights
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// enPassantVictimSquare returns the square the captured pawn stands on when
// a pawn of moverColor captures en passant onto captureTo.
func enPassantVictimSquare(captureTo bitboard.Square, moverColor bitboard.Color) bitboard.Square {
	if moverColor == bitboard.White {
		return bitboard.NewSquare(captureTo.Row()+1, captureTo.Col())
	}
	return bitboard.NewSquare(captureTo.Row()-1, captureTo.Col())
}

// castleRookSquares returns the rook's from/to squares for a castle whose
// king lands on kingTo.
func castleRookSquares(kingTo bitboard.Square) (from, to bitboard.Square) {
	row := kingTo.Row()
	if kingTo.Col() == 6 { // kingside
		return bitboard.NewSquare(row, 7), bitboard.NewSquare(row, 5)
	}
	// queenside
	return bitboard.NewSquare(row, 0), bitboard.NewSquare(row, 3)
}

var (
	whiteRookAHome = bitboard.NewSquare(7, 0)
	whiteRookHHome = bitboard.NewSquare(7, 7)
	blackRookAHome = bitboard.NewSquare(0, 0)
	blackRookHHome = bitboard.NewSquare(0, 7)
)

// castlingRightsAfter returns a mask to AND into CastlingRights after a
// move: any right whose king or rook just left home, or whose rook was
// just captured on its home square, is stripped.
func castlingRightsAfter(moved Piece, from bitboard.Square, capturedOK bool, capturedSquare bitboard.Square) CastlingRights {
	keep := AllCastlingRights

	switch {
	case moved.Type == bitboard.King && moved.Color == bitboard.White:
		keep &^= WhiteKingside | WhiteQueenside
	case moved.Type == bitboard.King && moved.Color == bitboard.Black:
		keep &^= BlackKingside | BlackQueenside
	}
	if moved.Type == bitboard.Rook {
		switch from {
		case whiteRookAHome:
			keep &^= WhiteQueenside
		case whiteRookHHome:
			keep &^= WhiteKingside
		case blackRookAHome:
			keep &^= BlackQueenside
		case blackRookHHome:
			keep &^= BlackKingside
		}
	}
	if capturedOK {
		switch capturedSquare {
		case whiteRookAHome:
			keep &^= WhiteQueenside
		case whiteRookHHome:
			keep &^= WhiteKingside
		case blackRookAHome:
			keep &^= BlackQueenside
		case blackRookHHome:
			keep &^= BlackKingside
		}
	}
	return keep
}

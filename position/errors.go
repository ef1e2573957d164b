package position

import "errors"

// ErrNoPieceAtSource is returned by Apply when a move's from-square is
// empty. The UCI boundary treats this as non-fatal (see internal/uciloop);
// nothing in this package panics on bad input, unlike the FEN parser this
// engine's bitboard representation was distilled from, which assumed its
// caller never passed it garbage.
var ErrNoPieceAtSource = errors.New("position: no piece at source square")

// Package fen converts between Forsyth-Edwards Notation strings and
// position.Board values. Unlike the teacher codebase's fen.go, which
// assumes its input is always well-formed and panics otherwise (reasonable
// when FEN only ever comes from test fixtures), Parse here returns an error
// instead: a UCI "position fen ..." command comes straight off the wire and
// is not guaranteed to be valid.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

// Startpos is the FEN for the standard chess starting position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN is returned by Parse for any input that isn't a valid
// six-field FEN record.
var ErrMalformedFEN = fmt.Errorf("fen: malformed FEN string")

// Result is everything a FEN record describes. Board owns the squares and
// castling rights; side-to-move and the two move counters live alongside
// it rather than on position.Board itself, mirroring the spec's Game/Board
// split — Board has no notion of whose turn it is.
type Result struct {
	Board          position.Board
	SideToMove     bitboard.Color
	HalfmoveClock  int
	FullmoveNumber int
}

var pieceRunes = map[rune]position.Piece{
	'P': {Color: bitboard.White, Type: bitboard.Pawn},
	'N': {Color: bitboard.White, Type: bitboard.Knight},
	'B': {Color: bitboard.White, Type: bitboard.Bishop},
	'R': {Color: bitboard.White, Type: bitboard.Rook},
	'Q': {Color: bitboard.White, Type: bitboard.Queen},
	'K': {Color: bitboard.White, Type: bitboard.King},
	'p': {Color: bitboard.Black, Type: bitboard.Pawn},
	'n': {Color: bitboard.Black, Type: bitboard.Knight},
	'b': {Color: bitboard.Black, Type: bitboard.Bishop},
	'r': {Color: bitboard.Black, Type: bitboard.Rook},
	'q': {Color: bitboard.Black, Type: bitboard.Queen},
	'k': {Color: bitboard.Black, Type: bitboard.King},
}

// Parse parses a FEN string. Piece placement and side-to-move are
// authoritative; castling rights and the en passant square are parsed and
// stored on the resulting Board; the halfmove clock and fullmove number are
// parsed and returned but feed no further logic (the fifty-move rule is an
// explicit non-goal).
func Parse(fenStr string) (Result, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return Result{}, fmt.Errorf("%w: want 6 space-separated fields, got %d", ErrMalformedFEN, len(fields))
	}

	var res Result
	res.Board.EnPassant = bitboard.NoSquare

	if err := parsePlacement(&res.Board, fields[0]); err != nil {
		return Result{}, err
	}

	switch fields[1] {
	case "w":
		res.SideToMove = bitboard.White
	case "b":
		res.SideToMove = bitboard.Black
	default:
		return Result{}, fmt.Errorf("%w: active color must be \"w\" or \"b\", got %q", ErrMalformedFEN, fields[1])
	}

	res.Board.CastlingRights = parseCastling(fields[2])

	if fields[3] != "-" {
		s := bitboard.ParseSquare(fields[3])
		if s == bitboard.NoSquare {
			return Result{}, fmt.Errorf("%w: bad en passant square %q", ErrMalformedFEN, fields[3])
		}
		res.Board.EnPassant = s
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return Result{}, fmt.Errorf("%w: bad halfmove clock %q", ErrMalformedFEN, fields[4])
	}
	res.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return Result{}, fmt.Errorf("%w: bad fullmove number %q", ErrMalformedFEN, fields[5])
	}
	res.FullmoveNumber = fullmove

	return res, nil
}

func parsePlacement(b *position.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: piece placement must have 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := pieceRunes[c]
				if !ok {
					return fmt.Errorf("%w: invalid piece character %q", ErrMalformedFEN, c)
				}
				if col > 7 {
					return fmt.Errorf("%w: rank %d has more than 8 files", ErrMalformedFEN, row+1)
				}
				sq := bitboard.NewSquare(row, col)
				b.Pieces[piece.Color][piece.Type] = b.Pieces[piece.Color][piece.Type].Set(sq)
				b.ColorOccupancy[piece.Color] = b.ColorOccupancy[piece.Color].Set(sq)
				b.AllOccupancy = b.AllOccupancy.Set(sq)
				if piece.Type == bitboard.King {
					b.KingSquare[piece.Color] = sq
				}
				col++
			}
		}
		if col != 8 {
			return fmt.Errorf("%w: rank %d does not account for 8 files", ErrMalformedFEN, row+1)
		}
	}
	return nil
}

func parseCastling(field string) position.CastlingRights {
	var rights position.CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= position.WhiteKingside
		case 'Q':
			rights |= position.WhiteQueenside
		case 'k':
			rights |= position.BlackKingside
		case 'q':
			rights |= position.BlackQueenside
		}
	}
	return rights
}

// Serialize renders res as a FEN string.
func Serialize(res Result) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			sq := bitboard.NewSquare(row, col)
			p, ok := res.Board.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if res.SideToMove == bitboard.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingString(res.Board.CastlingRights))

	sb.WriteByte(' ')
	sb.WriteString(res.Board.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(res.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(res.FullmoveNumber))

	return sb.String()
}

func pieceChar(p position.Piece) rune {
	chars := [6]rune{'P', 'N', 'B', 'R', 'Q', 'K'}
	c := chars[p.Type]
	if p.Color == bitboard.Black {
		c = []rune(strings.ToLower(string(c)))[0]
	}
	return c
}

func castlingString(rights position.CastlingRights) string {
	var sb strings.Builder
	if rights&position.WhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if rights&position.WhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if rights&position.BlackKingside != 0 {
		sb.WriteByte('k')
	}
	if rights&position.BlackQueenside != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

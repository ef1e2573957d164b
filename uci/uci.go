// Package uci implements the protocol-level pieces of the Universal Chess
// Interface: move notation conversion and line parsing. It has no I/O of
// its own — internal/uciloop owns the stdin/stdout loop and calls into
// this package and into game for everything it does.
package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/position"
)

// ErrMalformedUCICommand is returned by ParseMove and the command parsers
// below for input that doesn't match the expected shape. The loop drops
// the offending command and keeps running rather than treating this as
// fatal, per the protocol's "recognised commands, all others silently
// ignored" rule.
var ErrMalformedUCICommand = fmt.Errorf("uci: malformed command")

var promoChars = map[byte]position.PromotionPiece{
	'n': position.PromoteKnight,
	'b': position.PromoteBishop,
	'r': position.PromoteRook,
	'q': position.PromoteQueen,
}

// ParseMove parses a long-algebraic UCI move such as "e2e4" or "e7e8q".
// The promotion suffix, when present, selects the promotion piece; when a
// move turns out to be a promotion and no suffix was given, callers should
// default to queen (the legal move list itself carries the true Type/
// Promotion, so FindMove rather than ParseMove is what applies this
// default in practice).
func ParseMove(s string) (from, to bitboard.Square, promo position.PromotionPiece, hasPromo bool, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, 0, false, fmt.Errorf("%w: %q is not 4 or 5 characters", ErrMalformedUCICommand, s)
	}
	from = bitboard.ParseSquare(s[0:2])
	to = bitboard.ParseSquare(s[2:4])
	if from == bitboard.NoSquare || to == bitboard.NoSquare {
		return 0, 0, 0, false, fmt.Errorf("%w: bad square in %q", ErrMalformedUCICommand, s)
	}
	if len(s) == 5 {
		p, ok := promoChars[s[4]]
		if !ok {
			return 0, 0, 0, false, fmt.Errorf("%w: bad promotion suffix in %q", ErrMalformedUCICommand, s)
		}
		promo, hasPromo = p, true
	}
	return from, to, promo, hasPromo, nil
}

// FormatMove renders m in long algebraic notation. "0000" is the protocol's
// way of saying "no move" (stalemate/checkmate with nothing to play).
func FormatMove(m position.Move) string {
	return m.String()
}

// NoMove is the UCI "null move" string printed when there is no legal
// reply.
const NoMove = "0000"

// FindMove looks up the legal move matching a parsed UCI move (from, to,
// and, for promotions, the requested promotion piece). Needed because a
// Move's packed representation also carries the move Type (normal/castle/
// en-passant/promotion), which a bare UCI string doesn't disambiguate on
// its own — the caller always has a legal move list to search, never
// constructs a Move from scratch.
func FindMove(legal []position.Move, from, to bitboard.Square, promo position.PromotionPiece, hasPromo bool) (position.Move, bool) {
	for _, m := range legal {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			want := position.PromoteQueen
			if hasPromo {
				want = promo
			}
			if m.Promotion() != want {
				continue
			}
		}
		return m, true
	}
	return 0, false
}

// GoOptions holds the subset of "go" arguments this adapter understands.
// Everything else on the line (wtime, btime, movetime, etc.) is parsed and
// discarded, matching the spec's "[… ignored …]" clause.
type GoOptions struct {
	Depth    int
	HasDepth bool
}

// ParseGo parses the arguments following "go ".
func ParseGo(args []string) GoOptions {
	var opts GoOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				opts.Depth, opts.HasDepth = d, true
			}
			i++
		}
	}
	return opts
}

// PositionCommand is a parsed "position [startpos|fen ...] [moves ...]"
// command.
type PositionCommand struct {
	FEN   string // the 6-field FEN, or "" for startpos
	Moves []string
}

// ParsePosition parses the arguments following "position ".
func ParsePosition(args []string) (PositionCommand, error) {
	if len(args) == 0 {
		return PositionCommand{}, fmt.Errorf("%w: \"position\" needs arguments", ErrMalformedUCICommand)
	}

	var cmd PositionCommand
	rest := args

	switch args[0] {
	case "startpos":
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return PositionCommand{}, fmt.Errorf("%w: \"position fen\" needs 6 FEN fields", ErrMalformedUCICommand)
		}
		cmd.FEN = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		return PositionCommand{}, fmt.Errorf("%w: expected \"startpos\" or \"fen\", got %q", ErrMalformedUCICommand, args[0])
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return PositionCommand{}, fmt.Errorf("%w: expected \"moves\", got %q", ErrMalformedUCICommand, rest[0])
		}
		cmd.Moves = rest[1:]
	}
	return cmd, nil
}

package position

import (
	"strings"

	"github.com/datavorous/touchgrass/bitboard"
)

var pieceGlyphs = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

// Render draws the board as an 8x8 text grid of Unicode chess glyphs ('.'
// for an empty square) with file/rank labels, the
// way the teacher's cli.FormatPosition and the original prototype's
// print_board both do, for debugging and the perft tool's verbose mode.
// It is never on the hot path.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		rank := 8 - row
		sb.WriteByte(byte('0' + rank))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			sq := bitboard.NewSquare(row, col)
			if p, ok := b.PieceAt(sq); ok {
				sb.WriteRune(pieceGlyphs[p.Color][p.Type])
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

package fen

import (
	"strings"

	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/types"
)

// DebugString renders b as an 8x8 ASCII grid with file/rank labels and
// a trailing FEN-style status line, for use in logs and test failures.
func DebugString(b *board.Board) string {
	var sb strings.Builder
	for r := types.Rank(0); r < 8; r++ {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := types.File(0); f < 8; f++ {
			p := b.PieceAt(types.SquareOf(f, r))
			sb.WriteString(p.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(b.SideToMove().String())
	sb.WriteString(" ")
	sb.WriteString(b.Castling().String())
	sb.WriteString(" ")
	sb.WriteString(b.EnPassant().String())
	sb.WriteString("\n")
	return sb.String()
}

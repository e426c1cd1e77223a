package magic

import "github.com/mkorhonen/bitperft/types"

// DebugBitboard renders b as an 8x8 grid with file/rank labels, for use
// in log output and test failure messages when diagnosing a bad mask or
// attack set.
func DebugBitboard(b types.Bitboard) string {
	out := "\n"
	for r := types.Rank(0); r < 8; r++ {
		out += r.String() + " "
		for f := types.File(0); f < 8; f++ {
			if b.Test(types.SquareOf(f, r)) {
				out += "1 "
			} else {
				out += ". "
			}
		}
		out += "\n"
	}
	out += "  a b c d e f g h\n"
	return out
}

// Package magic builds and serves the attack lookup tables used by move
// generation: direct leaper tables for pawns, knights and kings, and
// magic-bitboard tables for the sliding pieces (bishop, rook, and queen
// as their union).
package magic

import "github.com/mkorhonen/bitperft/types"

// delta is a (file, rank) step used to walk rays and enumerate leaper
// targets without wrapping around board edges.
type delta struct{ df, dr int }

var knightDeltas = []delta{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = []delta{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// bishopDirs and rookDirs are the four ray directions for each slider,
// used both to build relevant-occupancy masks and to walk attacks given
// a set of blockers.
var bishopDirs = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func step(sq types.Square, d delta) (types.Square, bool) {
	f := int(sq.File()) + d.df
	r := int(sq.Rank()) + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return types.NoSquare, false
	}
	return types.SquareOf(types.File(f), types.Rank(r)), true
}

// pawnAttackMask returns the squares a pawn of side s on sq attacks.
func pawnAttackMask(sq types.Square, s types.Side) types.Bitboard {
	var dr int
	if s == types.White {
		dr = -1 // toward rank 8, i.e. decreasing rank index
	} else {
		dr = 1
	}
	bb := types.Empty
	for _, df := range []int{-1, 1} {
		if next, ok := step(sq, delta{df, dr}); ok {
			bb = bb.Set(next)
		}
	}
	return bb
}

// knightAttackMask returns the squares a knight on sq attacks.
func knightAttackMask(sq types.Square) types.Bitboard {
	bb := types.Empty
	for _, d := range knightDeltas {
		if next, ok := step(sq, d); ok {
			bb = bb.Set(next)
		}
	}
	return bb
}

// kingAttackMask returns the squares a king on sq attacks.
func kingAttackMask(sq types.Square) types.Bitboard {
	bb := types.Empty
	for _, d := range kingDeltas {
		if next, ok := step(sq, d); ok {
			bb = bb.Set(next)
		}
	}
	return bb
}

// relevantOccupancy walks each direction in dirs from sq, stopping one
// square short of the board edge, and returns the union of squares
// walked over. This is the "relevant occupancy" mask used to index the
// magic tables: edge squares never block further sliding so they are
// excluded, which keeps the table's index space as small as possible.
func relevantOccupancy(sq types.Square, dirs []delta) types.Bitboard {
	bb := types.Empty
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			// stop before adding a square that itself sits on the edge
			// in the direction of travel, since sliding off it would
			// leave the board.
			if _, canContinue := step(next, d); !canContinue {
				break
			}
			bb = bb.Set(next)
			cur = next
		}
	}
	return bb
}

// slidingAttacks walks each direction in dirs from sq until it falls
// off the board or hits an occupied square (inclusive of that blocker,
// since it is a legal capture target).
func slidingAttacks(sq types.Square, dirs []delta, occupied types.Bitboard) types.Bitboard {
	bb := types.Empty
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			bb = bb.Set(next)
			if occupied.Test(next) {
				break
			}
			cur = next
		}
	}
	return bb
}

func bishopMask(sq types.Square) types.Bitboard { return relevantOccupancy(sq, bishopDirs) }
func rookMask(sq types.Square) types.Bitboard   { return relevantOccupancy(sq, rookDirs) }

func bishopAttacksSlow(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slidingAttacks(sq, bishopDirs, occupied)
}

func rookAttacksSlow(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slidingAttacks(sq, rookDirs, occupied)
}

// setOccupancy builds the index-th subset of mask's bits: it walks the
// mask's set bits lowest-first and keeps the i-th one when bit i of
// index is set. It is used both to generate verification data while
// searching for magic numbers and to populate the final attack tables.
func setOccupancy(index int, bits int, mask types.Bitboard) types.Bitboard {
	occupancy := types.Empty
	m := mask
	for i := 0; i < bits; i++ {
		sq, rest := m.PopLsb()
		m = rest
		if index&(1<<uint(i)) != 0 {
			occupancy = occupancy.Set(sq)
		}
	}
	return occupancy
}

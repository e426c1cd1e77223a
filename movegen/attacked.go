// Package movegen generates pseudo-legal and legal moves for a
// position and runs perft over them. Move generation works on boards
// that reach it already built; only the perft driver's StartPerft
// imports fen, to parse the FEN string it is given.
package movegen

import (
	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/magic"
	"github.com/mkorhonen/bitperft/types"
)

// IsSquareAttacked reports whether sq is attacked by any piece of side
// attacker. It works by the usual "symmetric lookup" trick: for each
// piece type, it asks what that piece type would attack if it stood on
// sq, and checks whether any of attacker's pieces of that type lie in
// that set. A pawn needs attacker's opponent color passed to the pawn
// table, since a square is attacked by a black pawn the same way a
// white pawn standing on that square would attack backward.
func IsSquareAttacked(b *board.Board, t *magic.Tables, sq types.Square, attacker types.Side) bool {
	occ := b.Occupied(types.Both)

	if t.PawnAttacks(sq, attacker.Opponent())&b.Pieces(types.Pawn, attacker) != 0 {
		return true
	}
	if t.KnightAttacks(sq)&b.Pieces(types.Knight, attacker) != 0 {
		return true
	}
	if t.KingAttacks(sq)&b.Pieces(types.King, attacker) != 0 {
		return true
	}
	bishopLike := b.Pieces(types.Bishop, attacker) | b.Pieces(types.Queen, attacker)
	if t.BishopAttacks(sq, occ)&bishopLike != 0 {
		return true
	}
	rookLike := b.Pieces(types.Rook, attacker) | b.Pieces(types.Queen, attacker)
	if t.RookAttacks(sq, occ)&rookLike != 0 {
		return true
	}
	return false
}

// InCheck reports whether s's king is currently attacked.
func InCheck(b *board.Board, t *magic.Tables, s types.Side) bool {
	king := b.KingSquare(s)
	if king == types.NoSquare {
		return false
	}
	return IsSquareAttacked(b, t, king, s.Opponent())
}

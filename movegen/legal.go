package movegen

import (
	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/magic"
	"github.com/mkorhonen/bitperft/types"
)

// GenerateLegalMoves fills ml with every legal move for the side to
// move in b. It generates the pseudo-legal set and then, for each one,
// plays it on b, checks whether the mover's own king is attacked
// afterward, and unmakes it - discarding the move if the king was left
// in check. This is the straightforward "generate then filter" approach
// rather than a pin-aware generator, trading some speed for simplicity.
func GenerateLegalMoves(b *board.Board, t *magic.Tables, ml *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegalMoves(b, t, &pseudo)

	mover := b.SideToMove()
	ml.Clear()
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.At(i)
		undo := b.PlayMove(mv)
		if !InCheck(b, t, mover) {
			ml.Push(mv)
		}
		b.UnmakeMove(undo)
	}
}

// IsLegal reports whether mv, assumed pseudo-legal in b, does not leave
// the mover's own king in check.
func IsLegal(b *board.Board, t *magic.Tables, mv types.Move) bool {
	mover := b.SideToMove()
	undo := b.PlayMove(mv)
	legal := !InCheck(b, t, mover)
	b.UnmakeMove(undo)
	return legal
}

package movegen

import "github.com/mkorhonen/bitperft/types"

// maxMoves is a generous upper bound on the number of legal (or
// pseudo-legal) moves any reachable chess position can have; the
// largest known position has 218. 256 leaves headroom without wasting
// much space.
const maxMoves = 256

// MoveList is a fixed-capacity move buffer. Unlike a slice-backed list
// it never grows the heap: GeneratePseudoLegalMoves and
// GenerateLegalMoves write straight into a caller-owned array, which
// matters on the perft hot path where a list is built and discarded for
// every node in the tree.
type MoveList struct {
	moves [maxMoves]types.Move
	n     int
}

// Push appends mv. It panics if the list is already at capacity, which
// would indicate a bug in move generation rather than a position that
// legitimately has more than 256 moves.
func (l *MoveList) Push(mv types.Move) {
	l.moves[l.n] = mv
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.n }

// At returns the i-th move.
func (l *MoveList) At(i int) types.Move { return l.moves[i] }

// Clear empties the list without releasing its backing array.
func (l *MoveList) Clear() { l.n = 0 }

// Slice returns the populated portion of the list as a slice. The
// returned slice aliases the list's backing array and is only valid
// until the next Push or Clear.
func (l *MoveList) Slice() []types.Move {
	return l.moves[:l.n]
}

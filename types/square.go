// Package types holds the primitive vocabulary shared by every other
// package in the engine: squares, files, ranks, sides, pieces, bitboards
// and the packed move word. Nothing in this package depends on the rest
// of the module.
package types

import "fmt"

// Square identifies one of the 64 squares on a chess board, or the
// sentinel NoSquare. The numbering is a8=0, b8=1, ..., h8=7, a7=8, ...,
// h1=63 - rank-major, starting from rank 8. This matches the source
// this generator was distilled from; callers must not mix it up with
// the more common a1=0 convention.
type Square uint8

// NoSquare is the sentinel used for "no square" (e.g. no en-passant
// target available). It must never be set in a bitboard.
const NoSquare Square = 64

// SqLength is the number of real squares (0..63); NoSquare is one past it.
const SqLength = 64

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// File returns the file of the square (0=a ... 7=h).
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank of the square, with the convention that rank 0
// is the 8th rank and rank 7 is the 1st rank (consistent with a8=0).
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a Square from a file and a rank using this package's
// a8=0 numbering. Returns NoSquare if either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return NoSquare
	}
	return Square(int(r)<<3 + int(f))
}

// cellNames are the algebraic coordinates of squares 0..63 in this
// package's a8=0 numbering.
var cellNames = [SqLength]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// String returns the algebraic coordinate of the square (e.g. "e5"), or
// "-" for NoSquare / an out-of-range value.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return cellNames[sq]
}

// ParseSquare parses an algebraic coordinate like "e5" and returns the
// corresponding Square, or NoSquare if s is not a valid coordinate.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	f := File(s[0] - 'a')
	r := Rank('8' - s[1])
	if !f.IsValid() || !r.IsValid() {
		return NoSquare
	}
	return SquareOf(f, r)
}

// File is a board file, 0=a ... 7=h.
type File int8

// IsValid reports whether f is one of the 8 real files.
func (f File) IsValid() bool { return f >= 0 && f < 8 }

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// Rank is a board rank, using this package's numbering: 0 is the 8th
// rank (the far side from White), 7 is the 1st rank.
type Rank int8

// IsValid reports whether r is one of the 8 real ranks.
func (r Rank) IsValid() bool { return r >= 0 && r < 8 }

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d", 8-int(r))
}

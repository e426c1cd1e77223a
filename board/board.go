// Package board holds the mutable chess position: piece placement,
// side to move, castling rights and the en passant target square, plus
// the make/unmake pair move generation drives during search and perft.
package board

import (
	"github.com/mkorhonen/bitperft/types"
)

// Board is a complete chess position. The zero value is not a valid
// empty board (its piece-centric array reads as white pawns and its en
// passant square as a8); use New for an empty board, NewStart for the
// game's starting position or the fen package to load one from
// Forsyth-Edwards notation.
type Board struct {
	pieces    [types.PieceLength]types.Bitboard
	occupied  [types.SideLength + 1]types.Bitboard // White, Black, Both
	board     [types.SqLength]types.Piece          // piece-centric lookup, kept in sync with pieces
	sideToMove types.Side
	castling  types.CastlingRights
	epSquare  types.Square
	halfmove  int
	fullmove  int
}

// New returns an empty board: White to move, no castling rights, no en
// passant target.
func New() *Board {
	b := &Board{
		sideToMove: types.White,
		castling:   types.NoCastling,
		epSquare:   types.NoSquare,
		fullmove:   1,
	}
	for i := range b.board {
		b.board[i] = types.NoPiece
	}
	return b
}

// NewStart returns the standard chess starting position.
func NewStart() *Board {
	b := New()
	b.castling = types.AllCastling
	placements := []struct {
		p  types.Piece
		sq types.Square
	}{
		{types.WhiteRook, types.ParseSquare("a1")}, {types.WhiteKnight, types.ParseSquare("b1")},
		{types.WhiteBishop, types.ParseSquare("c1")}, {types.WhiteQueen, types.ParseSquare("d1")},
		{types.WhiteKing, types.ParseSquare("e1")}, {types.WhiteBishop, types.ParseSquare("f1")},
		{types.WhiteKnight, types.ParseSquare("g1")}, {types.WhiteRook, types.ParseSquare("h1")},
		{types.BlackRook, types.ParseSquare("a8")}, {types.BlackKnight, types.ParseSquare("b8")},
		{types.BlackBishop, types.ParseSquare("c8")}, {types.BlackQueen, types.ParseSquare("d8")},
		{types.BlackKing, types.ParseSquare("e8")}, {types.BlackBishop, types.ParseSquare("f8")},
		{types.BlackKnight, types.ParseSquare("g8")}, {types.BlackRook, types.ParseSquare("h8")},
	}
	for _, pl := range placements {
		b.PutPiece(pl.p, pl.sq)
	}
	for f := types.File(0); f < 8; f++ {
		b.PutPiece(types.WhitePawn, types.SquareOf(f, 6))
		b.PutPiece(types.BlackPawn, types.SquareOf(f, 1))
	}
	return b
}

// PieceAt returns the piece on sq, or types.NoPiece if the square is empty.
func (b *Board) PieceAt(sq types.Square) types.Piece {
	return b.board[sq]
}

// Bitboard returns the bitboard of a single piece kind.
func (b *Board) Bitboard(p types.Piece) types.Bitboard {
	return b.pieces[p]
}

// Pieces returns the combined bitboard of every piece of type pt and
// side s.
func (b *Board) Pieces(pt types.PieceType, s types.Side) types.Bitboard {
	return b.pieces[types.MakePiece(pt, s)]
}

// Occupied returns the combined occupancy of s (types.Both for the
// whole board).
func (b *Board) Occupied(s types.Side) types.Bitboard {
	return b.occupied[s]
}

// SideToMove returns the side to move.
func (b *Board) SideToMove() types.Side { return b.sideToMove }

// Castling returns the current castling rights.
func (b *Board) Castling() types.CastlingRights { return b.castling }

// EnPassant returns the current en passant target square, or
// types.NoSquare if none is available.
func (b *Board) EnPassant() types.Square { return b.epSquare }

// KingSquare returns the square of s's king, or types.NoSquare if s has
// no king on the board (only possible on artificial test positions).
func (b *Board) KingSquare(s types.Side) types.Square {
	return b.pieces[types.MakePiece(types.King, s)].Lsb()
}

// PutPiece places p on sq. sq must currently be empty; callers that
// need to overwrite a square must RemovePiece first.
func (b *Board) PutPiece(p types.Piece, sq types.Square) {
	b.board[sq] = p
	bb := types.SquareBB(sq)
	b.pieces[p] |= bb
	b.occupied[p.Side()] |= bb
	b.occupied[types.Both] |= bb
}

// RemovePiece removes whatever piece sits on sq. It is a no-op if sq is
// already empty.
func (b *Board) RemovePiece(sq types.Square) {
	p := b.board[sq]
	if p == types.NoPiece {
		return
	}
	b.board[sq] = types.NoPiece
	bb := ^types.SquareBB(sq)
	b.pieces[p] &= bb
	b.occupied[p.Side()] &= bb
	b.occupied[types.Both] &= bb
}

// MovePiece relocates whatever piece sits on from to to. to must be
// empty; captures are handled by RemovePiece-ing the destination first.
func (b *Board) MovePiece(from, to types.Square) {
	p := b.board[from]
	b.RemovePiece(from)
	b.PutPiece(p, to)
}

// SetSideToMove sets the side to move. Used by the fen package while
// building a board from Forsyth-Edwards notation.
func (b *Board) SetSideToMove(s types.Side) { b.sideToMove = s }

// SetCastling sets the castling rights outright.
func (b *Board) SetCastling(c types.CastlingRights) { b.castling = c }

// SetEnPassant sets the en passant target square outright.
func (b *Board) SetEnPassant(sq types.Square) { b.epSquare = sq }

// SetClocks sets the halfmove clock and fullmove number outright.
func (b *Board) SetClocks(halfmove, fullmove int) {
	b.halfmove = halfmove
	b.fullmove = fullmove
}

// HalfmoveClock returns the halfmove clock (moves since the last pawn
// move or capture), used for the fifty-move rule.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the fullmove counter.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Clone returns an independent copy of b. Every field of Board is a
// fixed-size array or scalar, so this is a true deep copy: the clone
// and the original never alias any storage, which is what makes it
// safe to hand each goroutine of a parallel perft run its own clone
// while they all share the same read-only magic.Tables.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

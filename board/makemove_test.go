package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/mkorhonen/bitperft/types"
)

func boardSnapshot(b *Board) Board { return *b }

func TestPlayMoveQuietAndUnmake(t *testing.T) {
	b := NewStart()
	before := boardSnapshot(b)

	mv := types.NewMove(types.ParseSquare("e2"), types.ParseSquare("e4"), types.Pawn, types.MoveFlags{DoublePawn: true})
	undo := b.PlayMove(mv)

	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("e2")))
	assert.Equal(t, types.WhitePawn, b.PieceAt(types.ParseSquare("e4")))
	assert.Equal(t, types.ParseSquare("e3"), b.EnPassant())
	assert.Equal(t, types.Black, b.SideToMove())

	b.UnmakeMove(undo)
	assert.Equal(t, before, *b)
}

func TestPlayMoveCaptureRemovesCapturedPiece(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKing, types.ParseSquare("e1"))
	b.PutPiece(types.BlackKing, types.ParseSquare("e8"))
	b.PutPiece(types.WhiteBishop, types.ParseSquare("a1"))
	b.PutPiece(types.BlackKnight, types.ParseSquare("h8"))
	before := boardSnapshot(b)

	mv := types.NewMove(types.ParseSquare("a1"), types.ParseSquare("h8"), types.Bishop, types.MoveFlags{Capture: true})
	undo := b.PlayMove(mv)

	assert.Equal(t, types.WhiteBishop, b.PieceAt(types.ParseSquare("h8")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("a1")))
	assert.Equal(t, 3, b.Occupied(types.Both).PopCount())

	b.UnmakeMove(undo)
	assert.Equal(t, before, *b)
	assert.Equal(t, types.BlackKnight, b.PieceAt(types.ParseSquare("h8")))
}

func TestPlayMoveEnPassantRemovesVictimNotDestination(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKing, types.ParseSquare("e1"))
	b.PutPiece(types.BlackKing, types.ParseSquare("e8"))
	b.PutPiece(types.WhitePawn, types.ParseSquare("e5"))
	b.PutPiece(types.BlackPawn, types.ParseSquare("d5"))
	b.SetEnPassant(types.ParseSquare("d6"))
	before := boardSnapshot(b)

	mv := types.NewMove(types.ParseSquare("e5"), types.ParseSquare("d6"), types.Pawn, types.MoveFlags{Capture: true, EnPassant: true})
	undo := b.PlayMove(mv)

	assert.Equal(t, types.WhitePawn, b.PieceAt(types.ParseSquare("d6")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("d5")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("e5")))

	b.UnmakeMove(undo)
	assert.Equal(t, before, *b)
}

func TestPlayMoveCastlingMovesRookToo(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKing, types.ParseSquare("e1"))
	b.PutPiece(types.WhiteRook, types.ParseSquare("h1"))
	b.PutPiece(types.BlackKing, types.ParseSquare("e8"))
	b.SetCastling(types.AllCastling)
	before := boardSnapshot(b)

	mv := types.NewMove(types.ParseSquare("e1"), types.ParseSquare("g1"), types.King, types.MoveFlags{Castling: true})
	undo := b.PlayMove(mv)

	assert.Equal(t, types.WhiteKing, b.PieceAt(types.ParseSquare("g1")))
	assert.Equal(t, types.WhiteRook, b.PieceAt(types.ParseSquare("f1")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("e1")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("h1")))
	assert.False(t, b.Castling().Has(types.WhiteKingSide))
	assert.False(t, b.Castling().Has(types.WhiteQueenSide))

	b.UnmakeMove(undo)
	assert.Equal(t, before, *b)
}

func TestPlayMovePromotionSwapsThePiece(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKing, types.ParseSquare("e1"))
	b.PutPiece(types.BlackKing, types.ParseSquare("e8"))
	b.PutPiece(types.WhitePawn, types.ParseSquare("a7"))
	before := boardSnapshot(b)

	mv := types.NewMove(types.ParseSquare("a7"), types.ParseSquare("a8"), types.Pawn, types.MoveFlags{Promotion: types.Queen})
	undo := b.PlayMove(mv)

	assert.Equal(t, types.WhiteQueen, b.PieceAt(types.ParseSquare("a8")))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("a7")))

	b.UnmakeMove(undo)
	assert.Equal(t, before, *b)
	assert.Equal(t, types.WhitePawn, b.PieceAt(types.ParseSquare("a7")))
}

func TestRookCaptureRemovesCorrespondingCastlingRight(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKing, types.ParseSquare("e1"))
	b.PutPiece(types.WhiteRook, types.ParseSquare("h1"))
	b.PutPiece(types.BlackKing, types.ParseSquare("e8"))
	b.PutPiece(types.BlackBishop, types.ParseSquare("h1")) // overwritten below
	b.RemovePiece(types.ParseSquare("h1"))
	b.PutPiece(types.WhiteRook, types.ParseSquare("h1"))
	b.PutPiece(types.BlackBishop, types.ParseSquare("a8"))
	b.SetCastling(types.AllCastling)

	mv := types.NewMove(types.ParseSquare("a8"), types.ParseSquare("h1"), types.Bishop, types.MoveFlags{Capture: true})
	b.SetSideToMove(types.Black)
	b.PlayMove(mv)

	assert.False(t, b.Castling().Has(types.WhiteKingSide))
	assert.True(t, b.Castling().Has(types.BlackKingSide))
}

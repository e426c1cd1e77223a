package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/mkorhonen/bitperft/types"
)

func TestNewStartPlacesEveryPiece(t *testing.T) {
	b := NewStart()
	assert.Equal(t, 8, b.Pieces(types.Pawn, types.White).PopCount())
	assert.Equal(t, 8, b.Pieces(types.Pawn, types.Black).PopCount())
	assert.Equal(t, types.ParseSquare("e1"), b.KingSquare(types.White))
	assert.Equal(t, types.ParseSquare("e8"), b.KingSquare(types.Black))
	assert.Equal(t, 16, b.Occupied(types.White).PopCount())
	assert.Equal(t, 16, b.Occupied(types.Black).PopCount())
	assert.Equal(t, 32, b.Occupied(types.Both).PopCount())
	assert.Equal(t, types.White, b.SideToMove())
	assert.Equal(t, types.AllCastling, b.Castling())
}

func TestPutRemoveMovePiece(t *testing.T) {
	b := New()
	b.PutPiece(types.WhiteKnight, types.ParseSquare("b1"))
	assert.Equal(t, types.WhiteKnight, b.PieceAt(types.ParseSquare("b1")))

	b.MovePiece(types.ParseSquare("b1"), types.ParseSquare("c3"))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("b1")))
	assert.Equal(t, types.WhiteKnight, b.PieceAt(types.ParseSquare("c3")))

	b.RemovePiece(types.ParseSquare("c3"))
	assert.Equal(t, types.NoPiece, b.PieceAt(types.ParseSquare("c3")))
	assert.Equal(t, types.Empty, b.Occupied(types.Both))
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStart()
	c := b.Clone()
	c.RemovePiece(types.ParseSquare("e2"))
	assert.Equal(t, types.WhitePawn, b.PieceAt(types.ParseSquare("e2")))
	assert.Equal(t, types.NoPiece, c.PieceAt(types.ParseSquare("e2")))
}

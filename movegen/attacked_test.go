package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/fen"
	"github.com/mkorhonen/bitperft/magic"
	"github.com/mkorhonen/bitperft/types"
)

func TestIsSquareAttackedPillsburySetup(t *testing.T) {
	b, err := fen.Parse(fen.Named["PillsburyMate"])
	assert.NoError(t, err)
	tables := magic.NewTables()

	// White to move: the bishop on h6 already bears on f8 (through the
	// empty g7 square) but the king on g8 is not yet in check - White
	// still has to deliver the mating move.
	assert.True(t, IsSquareAttacked(b, tables, types.ParseSquare("f8"), types.White))
	assert.False(t, InCheck(b, tables, types.Black))
}

func TestIsSquareAttackedEmptyBoard(t *testing.T) {
	b, err := fen.Parse(fen.Named["EmptyBoard"])
	assert.NoError(t, err)
	tables := magic.NewTables()
	assert.False(t, IsSquareAttacked(b, tables, types.ParseSquare("e4"), types.White))
	assert.False(t, IsSquareAttacked(b, tables, types.ParseSquare("e4"), types.Black))
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	b := emptyBoardWithKnight(t, types.ParseSquare("f3"), types.White)
	tables := magic.NewTables()
	assert.True(t, IsSquareAttacked(b, tables, types.ParseSquare("e5"), types.White))
	assert.False(t, IsSquareAttacked(b, tables, types.ParseSquare("e4"), types.White))
}

func emptyBoardWithKnight(t *testing.T, sq types.Square, side types.Side) *board.Board {
	t.Helper()
	b, err := fen.Parse(fen.Named["EmptyBoard"])
	assert.NoError(t, err)
	b.PutPiece(types.MakePiece(types.Knight, side), sq)
	return b
}

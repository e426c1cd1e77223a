package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		from  Square
		to    Square
		piece PieceType
		flags MoveFlags
	}{
		{"quiet e2e4", ParseSquare("e2"), ParseSquare("e4"), Pawn, MoveFlags{Promotion: NoPieceType}},
		{"capture", ParseSquare("e4"), ParseSquare("d5"), Pawn, MoveFlags{Promotion: NoPieceType, Capture: true}},
		{"double push", ParseSquare("e2"), ParseSquare("e4"), Pawn, MoveFlags{Promotion: NoPieceType, DoublePawn: true}},
		{"en passant", ParseSquare("e5"), ParseSquare("d6"), Pawn, MoveFlags{Promotion: NoPieceType, Capture: true, EnPassant: true}},
		{"castling", ParseSquare("e1"), ParseSquare("g1"), King, MoveFlags{Promotion: NoPieceType, Castling: true}},
		{"promotion", ParseSquare("a7"), ParseSquare("a8"), Pawn, MoveFlags{Promotion: Queen}},
		{"promotion capture", ParseSquare("b7"), ParseSquare("a8"), Pawn, MoveFlags{Promotion: Knight, Capture: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(tt.from, tt.to, tt.piece, tt.flags)
			assert.Equal(t, tt.from, m.From())
			assert.Equal(t, tt.to, m.To())
			assert.Equal(t, tt.piece, m.Piece())
			assert.Equal(t, tt.flags.Capture, m.IsCapture())
			assert.Equal(t, tt.flags.DoublePawn, m.IsDoublePawnPush())
			assert.Equal(t, tt.flags.EnPassant, m.IsEnPassant())
			assert.Equal(t, tt.flags.Castling, m.IsCastling())
			if tt.flags.Promotion.IsValid() {
				assert.True(t, m.IsPromotion())
				assert.Equal(t, tt.flags.Promotion, m.Promotion())
			} else {
				assert.False(t, m.IsPromotion())
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(ParseSquare("e2"), ParseSquare("e4"), Pawn, MoveFlags{}).String())
	assert.Equal(t, "a7a8q", NewMove(ParseSquare("a7"), ParseSquare("a8"), Pawn, MoveFlags{Promotion: Queen}).String())
}

// A zero-valued MoveFlags (the common case: no field but Capture set)
// leaves Promotion at PieceType's zero value, which is Pawn - this must
// not be mistaken for a promotion to a pawn.
func TestZeroValueMoveFlagsIsNotAPromotion(t *testing.T) {
	m := NewMove(ParseSquare("e4"), ParseSquare("d5"), Pawn, MoveFlags{Capture: true})
	assert.False(t, m.IsPromotion())
	assert.Equal(t, NoPieceType, m.Promotion())
}

func TestNoMoveIsZero(t *testing.T) {
	assert.Equal(t, Move(0), NoMove)
}

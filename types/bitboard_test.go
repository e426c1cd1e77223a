package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearTest(t *testing.T) {
	b := Empty
	b = b.Set(ParseSquare("e4"))
	assert.True(t, b.Test(ParseSquare("e4")))
	assert.Equal(t, 1, b.PopCount())

	b = b.Clear(ParseSquare("e4"))
	assert.False(t, b.Test(ParseSquare("e4")))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardLsbAndPopLsb(t *testing.T) {
	b := SquareBB(ParseSquare("h8")) | SquareBB(ParseSquare("a8"))
	first, rest := b.PopLsb()
	assert.Equal(t, ParseSquare("a8"), first)
	assert.Equal(t, 1, rest.PopCount())
	second := rest.Lsb()
	assert.Equal(t, ParseSquare("h8"), second)
}

func TestEmptyBitboardLsbIsNoSquare(t *testing.T) {
	assert.Equal(t, NoSquare, Empty.Lsb())
}

func TestFileMasksDontOverlap(t *testing.T) {
	assert.Equal(t, Bitboard(0), FileA&FileH)
	assert.Equal(t, 8, FileA.PopCount())
	assert.Equal(t, 8, Rank1.PopCount())
	assert.Equal(t, 8, Rank8.PopCount())
}

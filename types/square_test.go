package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNumbering(t *testing.T) {
	assert.Equal(t, Square(0), ParseSquare("a8"))
	assert.Equal(t, Square(7), ParseSquare("h8"))
	assert.Equal(t, Square(56), ParseSquare("a1"))
	assert.Equal(t, Square(63), ParseSquare("h1"))
}

func TestSquareStringRoundTrip(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		assert.Equal(t, sq, ParseSquare(sq.String()))
	}
}

func TestNoSquare(t *testing.T) {
	assert.False(t, NoSquare.IsValid())
	assert.Equal(t, "-", NoSquare.String())
	assert.Equal(t, NoSquare, ParseSquare("z9"))
}

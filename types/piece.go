package types

// PieceType is a piece kind without color: Pawn..King, or NoPieceType.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// PtLength is the number of real piece types.
const PtLength = 6

var pieceTypeLetters = [PtLength]string{"p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return pieceTypeLetters[pt]
}

// IsValid reports whether pt is one of the 6 real piece types.
func (pt PieceType) IsValid() bool { return pt < PtLength }

// Piece is a piece type paired with a side, the unit stored on each
// board square. NoPiece marks an empty square.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// PieceLength is the number of real pieces (6 types * 2 sides).
const PieceLength = 12

// MakePiece builds a Piece from a piece type and a side.
func MakePiece(pt PieceType, s Side) Piece {
	if !pt.IsValid() || s == Both {
		return NoPiece
	}
	return Piece(int(s)*PtLength + int(pt))
}

// Type returns the piece type of p, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p >= PieceLength {
		return NoPieceType
	}
	return PieceType(int(p) % PtLength)
}

// Side returns the color of p. Calling it on NoPiece is a programming
// error and returns Both.
func (p Piece) Side() Side {
	if p >= PieceLength {
		return Both
	}
	if p < PtLength {
		return White
	}
	return Black
}

var pieceLetters = [PieceLength]string{
	"P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
}

func (p Piece) String() string {
	if p >= PieceLength {
		return "."
	}
	return pieceLetters[p]
}

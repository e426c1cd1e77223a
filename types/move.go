package types

// Move is a chess move packed into the low 24 bits of a uint32:
//
//	bits  0- 5  source square       (0..63)
//	bits  6-11  destination square  (0..63)
//	bits 12-15  moving piece type   (Pawn..King)
//	bits 16-19  promotion piece type, or NoPieceType when this is not a
//	            promotion
//	bit     20  capture flag
//	bit     21  double pawn push flag
//	bit     22  en passant capture flag
//	bit     23  castling flag
//
// The encoding carries no captured-piece or captured-square
// information; callers that need to know what was captured consult the
// board before playing the move.
type Move uint32

// NoMove is the zero value, used as a "no move found" sentinel. It
// decodes as a8-a8 (square 0 to square 0), and From()==To() never
// occurs for a real move.
const NoMove Move = 0

const (
	fromShift  = 0
	toShift    = 6
	pieceShift = 12
	promoShift = 16

	captureBit  = 20
	doublePBit  = 21
	enPassBit  = 22
	castleBit   = 23

	squareMask = 0x3F
	pieceMask  = 0xF
)

// MoveFlags bundles the boolean properties of a move so constructors
// don't need half a dozen bool parameters.
type MoveFlags struct {
	Promotion  PieceType // NoPieceType when this is not a promotion
	Capture    bool
	DoublePawn bool
	EnPassant  bool
	Castling   bool
}

// NewMove encodes a move. piece is the type of the piece making the
// move (before any promotion).
func NewMove(from, to Square, piece PieceType, flags MoveFlags) Move {
	promo := flags.Promotion
	if !isPromotionChoice(promo) {
		promo = NoPieceType
	}
	m := Move(uint32(from)&squareMask) << fromShift
	m |= Move(uint32(to)&squareMask) << toShift
	m |= Move(uint32(piece)&pieceMask) << pieceShift
	m |= Move(uint32(promo)&pieceMask) << promoShift
	if flags.Capture {
		m |= 1 << captureBit
	}
	if flags.DoublePawn {
		m |= 1 << doublePBit
	}
	if flags.EnPassant {
		m |= 1 << enPassBit
	}
	if flags.Castling {
		m |= 1 << castleBit
	}
	return m
}

// From returns the source square.
func (m Move) From() Square {
	return Square((uint32(m) >> fromShift) & squareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint32(m) >> toShift) & squareMask)
}

// Piece returns the type of the piece making the move.
func (m Move) Piece() PieceType {
	return PieceType((uint32(m) >> pieceShift) & pieceMask)
}

// Promotion returns the promotion piece type, or NoPieceType when the
// move is not a promotion.
func (m Move) Promotion() PieceType {
	return PieceType((uint32(m) >> promoShift) & pieceMask)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return isPromotionChoice(m.Promotion())
}

// isPromotionChoice reports whether pt is one of the four pieces a
// pawn may promote to. A pawn can never promote to a pawn or a king,
// so treating those (including MoveFlags' zero-valued Promotion field,
// which is Pawn) as "not promoting" lets callers that don't care about
// promotion simply omit the field instead of spelling out
// Promotion: NoPieceType on every quiet move.
func isPromotionChoice(pt PieceType) bool {
	switch pt {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// IsCapture reports whether the move captures a piece (including en
// passant).
func (m Move) IsCapture() bool {
	return uint32(m)&(1<<captureBit) != 0
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return uint32(m)&(1<<doublePBit) != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return uint32(m)&(1<<enPassBit) != 0
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return uint32(m)&(1<<castleBit) != 0
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}

package board

import "github.com/mkorhonen/bitperft/types"

// UndoState captures everything PlayMove changed, so UnmakeMove can
// restore the board exactly. Callers get one back from PlayMove and
// must pass it to UnmakeMove in LIFO order - there is no history stack,
// just this one-shot snapshot, matching the generator's need to
// make/test/unmake a move at a time rather than keep a full game
// history.
type UndoState struct {
	move          types.Move
	capturedPiece types.Piece
	capturedSq    types.Square
	priorCastling types.CastlingRights
	priorEP       types.Square
	priorHalfmove int
}

// rookCastleSquares maps a king's castling destination square to the
// rook's (from, to) squares for that same move.
var rookCastleSquares = map[types.Square][2]types.Square{
	types.ParseSquare("g1"): {types.ParseSquare("h1"), types.ParseSquare("f1")},
	types.ParseSquare("c1"): {types.ParseSquare("a1"), types.ParseSquare("d1")},
	types.ParseSquare("g8"): {types.ParseSquare("h8"), types.ParseSquare("f8")},
	types.ParseSquare("c8"): {types.ParseSquare("a8"), types.ParseSquare("d8")},
}

// castlingLoss maps a square to the castling rights permanently lost
// when a king or rook leaves (or a rook is captured on) that square.
var castlingLoss = map[types.Square]types.CastlingRights{
	types.ParseSquare("e1"): types.WhiteKingSide | types.WhiteQueenSide,
	types.ParseSquare("h1"): types.WhiteKingSide,
	types.ParseSquare("a1"): types.WhiteQueenSide,
	types.ParseSquare("e8"): types.BlackKingSide | types.BlackQueenSide,
	types.ParseSquare("h8"): types.BlackKingSide,
	types.ParseSquare("a8"): types.BlackQueenSide,
}

// enPassantCapturedSquare returns the square of the pawn captured by an
// en passant move landing on to, played by mover.
func enPassantCapturedSquare(to types.Square, mover types.Side) types.Square {
	if mover == types.White {
		return types.SquareOf(to.File(), to.Rank()+1)
	}
	return types.SquareOf(to.File(), to.Rank()-1)
}

// PlayMove applies mv to the board and returns the state needed to
// undo it. Unlike a naive generator that just relocates the moving
// piece, this fully resolves a move's side effects: the captured piece
// (including an en passant victim, which does not sit on the
// destination square) is removed from the board, a castling move also
// relocates its rook, a promotion replaces the pawn with the chosen
// piece, and castling rights are updated whenever a king or rook moves
// or is captured.
func (b *Board) PlayMove(mv types.Move) UndoState {
	mover := b.sideToMove
	from, to := mv.From(), mv.To()

	undo := UndoState{
		move:          mv,
		capturedPiece: types.NoPiece,
		capturedSq:    types.NoSquare,
		priorCastling: b.castling,
		priorEP:       b.epSquare,
		priorHalfmove: b.halfmove,
	}

	if mv.IsCapture() {
		capSq := to
		if mv.IsEnPassant() {
			capSq = enPassantCapturedSquare(to, mover)
		}
		undo.capturedPiece = b.PieceAt(capSq)
		undo.capturedSq = capSq
		b.RemovePiece(capSq)
		if loss, ok := castlingLoss[capSq]; ok {
			b.castling = b.castling.Remove(loss)
		}
	}

	b.MovePiece(from, to)

	if mv.IsPromotion() {
		b.RemovePiece(to)
		b.PutPiece(types.MakePiece(mv.Promotion(), mover), to)
	}

	if mv.IsCastling() {
		if rook, ok := rookCastleSquares[to]; ok {
			b.MovePiece(rook[0], rook[1])
		}
	}

	if loss, ok := castlingLoss[from]; ok {
		b.castling = b.castling.Remove(loss)
	}

	if mv.IsDoublePawnPush() {
		b.epSquare = enPassantCapturedSquare(to, mover)
	} else {
		b.epSquare = types.NoSquare
	}

	if mv.Piece() == types.Pawn || mv.IsCapture() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if mover == types.Black {
		b.fullmove++
	}

	b.sideToMove = mover.Opponent()

	return undo
}

// UnmakeMove reverses the effect of the PlayMove call that produced
// undo. Boards must be unmade in LIFO order relative to PlayMove calls.
func (b *Board) UnmakeMove(undo UndoState) {
	mv := undo.move
	mover := b.sideToMove.Opponent()
	from, to := mv.From(), mv.To()

	b.sideToMove = mover
	b.castling = undo.priorCastling
	b.epSquare = undo.priorEP
	b.halfmove = undo.priorHalfmove
	if mover == types.Black {
		b.fullmove--
	}

	if mv.IsCastling() {
		if rook, ok := rookCastleSquares[to]; ok {
			b.MovePiece(rook[1], rook[0])
		}
	}

	b.RemovePiece(to)
	b.PutPiece(types.MakePiece(mv.Piece(), mover), from)

	if undo.capturedPiece != types.NoPiece {
		b.PutPiece(undo.capturedPiece, undo.capturedSq)
	}
}

package movegen

import (
	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/magic"
	"github.com/mkorhonen/bitperft/types"
)

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// castleSpec describes one side's one castling move: the squares that
// must be empty, the squares that must not be attacked (including the
// king's start and end square), the king's destination, and the right
// bit it depends on.
type castleSpec struct {
	right       types.CastlingRights
	kingFrom    types.Square
	kingTo      types.Square
	mustBeEmpty types.Bitboard
	mustBeSafe  []types.Square
}

var castleSpecs = []castleSpec{
	{
		right: types.WhiteKingSide, kingFrom: types.ParseSquare("e1"), kingTo: types.ParseSquare("g1"),
		mustBeEmpty: types.SquareBB(types.ParseSquare("f1")) | types.SquareBB(types.ParseSquare("g1")),
		mustBeSafe:  []types.Square{types.ParseSquare("e1"), types.ParseSquare("f1"), types.ParseSquare("g1")},
	},
	{
		right: types.WhiteQueenSide, kingFrom: types.ParseSquare("e1"), kingTo: types.ParseSquare("c1"),
		mustBeEmpty: types.SquareBB(types.ParseSquare("d1")) | types.SquareBB(types.ParseSquare("c1")) | types.SquareBB(types.ParseSquare("b1")),
		mustBeSafe:  []types.Square{types.ParseSquare("e1"), types.ParseSquare("d1"), types.ParseSquare("c1")},
	},
	{
		right: types.BlackKingSide, kingFrom: types.ParseSquare("e8"), kingTo: types.ParseSquare("g8"),
		mustBeEmpty: types.SquareBB(types.ParseSquare("f8")) | types.SquareBB(types.ParseSquare("g8")),
		mustBeSafe:  []types.Square{types.ParseSquare("e8"), types.ParseSquare("f8"), types.ParseSquare("g8")},
	},
	{
		right: types.BlackQueenSide, kingFrom: types.ParseSquare("e8"), kingTo: types.ParseSquare("c8"),
		mustBeEmpty: types.SquareBB(types.ParseSquare("d8")) | types.SquareBB(types.ParseSquare("c8")) | types.SquareBB(types.ParseSquare("b8")),
		mustBeSafe:  []types.Square{types.ParseSquare("e8"), types.ParseSquare("d8"), types.ParseSquare("c8")},
	},
}

// GeneratePseudoLegalMoves fills ml with every pseudo-legal move for
// the side to move in b: moves that obey each piece's movement rules
// but may leave the mover's own king in check. Callers that need only
// legal moves should use GenerateLegalMoves instead.
func GeneratePseudoLegalMoves(b *board.Board, t *magic.Tables, ml *MoveList) {
	ml.Clear()
	side := b.SideToMove()
	generatePawnMoves(b, t, side, ml)
	generateCastling(b, t, side, ml)
	generateLeaperMoves(b, types.Knight, side, ml, func(sq types.Square) types.Bitboard { return t.KnightAttacks(sq) })
	generateLeaperMoves(b, types.King, side, ml, func(sq types.Square) types.Bitboard { return t.KingAttacks(sq) })
	occ := b.Occupied(types.Both)
	generateLeaperMoves(b, types.Bishop, side, ml, func(sq types.Square) types.Bitboard { return t.BishopAttacks(sq, occ) })
	generateLeaperMoves(b, types.Rook, side, ml, func(sq types.Square) types.Bitboard { return t.RookAttacks(sq, occ) })
	generateLeaperMoves(b, types.Queen, side, ml, func(sq types.Square) types.Bitboard { return t.QueenAttacks(sq, occ) })
}

// generateLeaperMoves generates moves for every piece of type pt and
// side using attacksOf to find its target squares; own-side occupancy
// is excluded. Despite the name it also serves the sliders, whose
// attacksOf closures already account for blockers.
func generateLeaperMoves(b *board.Board, pt types.PieceType, side types.Side, ml *MoveList, attacksOf func(types.Square) types.Bitboard) {
	pieces := b.Pieces(pt, side)
	own := b.Occupied(side)
	opp := b.Occupied(side.Opponent())
	for pieces != types.Empty {
		from, rest := pieces.PopLsb()
		pieces = rest
		targets := attacksOf(from) &^ own
		for targets != types.Empty {
			to, restT := targets.PopLsb()
			targets = restT
			ml.Push(types.NewMove(from, to, pt, types.MoveFlags{Capture: opp.Test(to)}))
		}
	}
}

func generatePawnMoves(b *board.Board, t *magic.Tables, side types.Side, ml *MoveList) {
	pawns := b.Pieces(types.Pawn, side)
	occAll := b.Occupied(types.Both)
	opp := b.Occupied(side.Opponent())

	var pushDir int8
	var startRank, promoRank types.Rank
	if side == types.White {
		pushDir = -1
		startRank, promoRank = 6, 0
	} else {
		pushDir = 1
		startRank, promoRank = 1, 7
	}

	for pawns != types.Empty {
		from, rest := pawns.PopLsb()
		pawns = rest

		oneTo := types.SquareOf(from.File(), from.Rank()+types.Rank(pushDir))
		if oneTo.IsValid() && !occAll.Test(oneTo) {
			addPawnMove(ml, from, oneTo, oneTo.Rank() == promoRank, types.MoveFlags{})
			if from.Rank() == startRank {
				twoTo := types.SquareOf(from.File(), from.Rank()+types.Rank(2*pushDir))
				if twoTo.IsValid() && !occAll.Test(twoTo) {
					ml.Push(types.NewMove(from, twoTo, types.Pawn, types.MoveFlags{DoublePawn: true}))
				}
			}
		}

		attacks := t.PawnAttacks(from, side)
		captures := attacks & opp
		for captures != types.Empty {
			to, restC := captures.PopLsb()
			captures = restC
			addPawnMove(ml, from, to, to.Rank() == promoRank, types.MoveFlags{Capture: true})
		}

		if ep := b.EnPassant(); ep.IsValid() && attacks.Test(ep) {
			ml.Push(types.NewMove(from, ep, types.Pawn, types.MoveFlags{Capture: true, EnPassant: true}))
		}
	}
}

// addPawnMove pushes a plain pawn move, expanding it into the four
// promotion choices when promoting rather than a single collapsed move.
func addPawnMove(ml *MoveList, from, to types.Square, promoting bool, flags types.MoveFlags) {
	if !promoting {
		ml.Push(types.NewMove(from, to, types.Pawn, flags))
		return
	}
	for _, promo := range promotionPieces {
		f := flags
		f.Promotion = promo
		ml.Push(types.NewMove(from, to, types.Pawn, f))
	}
}

func generateCastling(b *board.Board, t *magic.Tables, side types.Side, ml *MoveList) {
	occ := b.Occupied(types.Both)
	opponent := side.Opponent()
	for _, spec := range castleSpecs {
		if (spec.right == types.WhiteKingSide || spec.right == types.WhiteQueenSide) && side != types.White {
			continue
		}
		if (spec.right == types.BlackKingSide || spec.right == types.BlackQueenSide) && side != types.Black {
			continue
		}
		if !b.Castling().Has(spec.right) {
			continue
		}
		if occ&spec.mustBeEmpty != 0 {
			continue
		}
		safe := true
		for _, sq := range spec.mustBeSafe {
			if IsSquareAttacked(b, t, sq, opponent) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		ml.Push(types.NewMove(spec.kingFrom, spec.kingTo, types.King, types.MoveFlags{Castling: true}))
	}
}

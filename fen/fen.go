// Package fen parses and renders Forsyth-Edwards Notation. It is a
// collaborator of the move generator, not part of it: move generation
// works on already built boards, and within movegen only the perft
// driver's StartPerft uses this package, to parse its FEN argument.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/types"
)

var pieceFromLetter = map[byte]types.Piece{
	'P': types.WhitePawn, 'N': types.WhiteKnight, 'B': types.WhiteBishop,
	'R': types.WhiteRook, 'Q': types.WhiteQueen, 'K': types.WhiteKing,
	'p': types.BlackPawn, 'n': types.BlackKnight, 'b': types.BlackBishop,
	'r': types.BlackRook, 'q': types.BlackQueen, 'k': types.BlackKing,
}

var castleFromLetter = map[byte]types.CastlingRights{
	'K': types.WhiteKingSide, 'Q': types.WhiteQueenSide,
	'k': types.BlackKingSide, 'q': types.BlackQueenSide,
}

// Parse reads a FEN string and returns the position it describes. Only
// the first four fields (placement, side to move, castling, en
// passant) are mandatory; halfmove clock and fullmove number default to
// 0 and 1 when absent or not a number.
func Parse(s string) (*board.Board, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: need at least 4 fields, got %d: %q", len(fields), s)
	}

	b := board.New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: need 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for r, rankStr := range ranks {
		f := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			p, ok := pieceFromLetter[c]
			if !ok {
				return nil, fmt.Errorf("fen: unknown piece letter %q", c)
			}
			if f > 7 {
				return nil, fmt.Errorf("fen: rank %d overflows 8 files", r)
			}
			b.PutPiece(p, types.SquareOf(types.File(f), types.Rank(r)))
			f++
		}
	}

	switch fields[1] {
	case "w":
		b.SetSideToMove(types.White)
	case "b":
		b.SetSideToMove(types.Black)
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	castling := types.NoCastling
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			cr, ok := castleFromLetter[fields[2][i]]
			if !ok {
				return nil, fmt.Errorf("fen: bad castling letter %q", fields[2][i])
			}
			castling |= cr
		}
	}
	b.SetCastling(castling)

	ep := types.NoSquare
	if fields[3] != "-" {
		ep = types.ParseSquare(fields[3])
		if ep == types.NoSquare {
			return nil, fmt.Errorf("fen: bad en passant square %q", fields[3])
		}
	}
	b.SetEnPassant(ep)

	halfmove, fullmove := 0, 1
	if len(fields) >= 5 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			halfmove = v
		}
	}
	if len(fields) >= 6 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			fullmove = v
		}
	}
	b.SetClocks(halfmove, fullmove)

	return b, nil
}

// Named are frequently used test positions, kept as a lookup table
// instead of scattering FEN literals across test files.
var Named = map[string]string{
	"EmptyBoard":       "8/8/8/8/8/8/8/8 w - - 0 1",
	"StartingPosition":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"ScotchGame":        "r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
	"EpauletteMate":     "5rkr/8/8/8/8/8/8/1Q4K1 w - - 0 1",
	"BackrankMate":      "6k1/5ppp/8/8/8/8/8/1rk5 w - - 0 1",
	"LadderMate":        "6k1/R7/2R5/8/8/8/8/8 w - - 0 1",
	"CastleMate":        "8/8/8/8/8/8/R7/R3K1k1 w Q - 0 1",
	"PillsburyMate":     "5rk1/5p1p/5p1B/8/8/8/8/K6R w - - 0 1",
	"Kiwipete":          "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"FourWayPromotion":  "8/1P6/8/8/8/8/6p1/8 w - - 0 1",
}

package magic

import "github.com/mkorhonen/bitperft/types"

// SliderMagic holds one square's magic bitboard entry: the relevant
// occupancy mask, the magic multiplier, the shift derived from the
// mask's population count, and the resulting attack table indexed by
// ((occupied&Mask)*Magic)>>Shift.
type SliderMagic struct {
	Mask    types.Bitboard
	Magic   uint64
	Shift   uint
	Attacks []types.Bitboard
}

func (m *SliderMagic) index(occupied types.Bitboard) int {
	return int((uint64(occupied&m.Mask) * m.Magic) >> m.Shift)
}

func (m *SliderMagic) lookup(occupied types.Bitboard) types.Bitboard {
	return m.Attacks[m.index(occupied)]
}

// Tables owns every attack lookup the move generator needs: direct
// tables for the leapers (pawn, knight, king) and magic bitboard tables
// for the sliders (bishop, rook; queen reuses both). Building it walks
// the magic-number search for all 128 slider squares, so it is meant to
// be constructed once at startup and shared read-only afterward - every
// field is written only during NewTables and never mutated again, which
// is what makes it safe to share across goroutines in a parallel perft
// run.
type Tables struct {
	pawn   [types.SideLength][types.SqLength]types.Bitboard
	knight [types.SqLength]types.Bitboard
	king   [types.SqLength]types.Bitboard
	bishop [types.SqLength]SliderMagic
	rook   [types.SqLength]SliderMagic
}

// NewTables builds a complete set of attack tables, including running
// the magic number search for every square of both sliding pieces.
func NewTables() *Tables {
	t := &Tables{}
	for sq := 0; sq < types.SqLength; sq++ {
		s := types.Square(sq)
		t.pawn[types.White][sq] = pawnAttackMask(s, types.White)
		t.pawn[types.Black][sq] = pawnAttackMask(s, types.Black)
		t.knight[sq] = knightAttackMask(s)
		t.king[sq] = kingAttackMask(s)
	}
	initSlider(t.bishop[:], bishopMask, bishopAttacksSlow)
	initSlider(t.rook[:], rookMask, rookAttacksSlow)
	return t
}

// initSlider builds one slider's magic table, one square at a time. A
// single PRNG is seeded here and threaded through every square's
// findMagic call, matching the original generator: the candidate
// sequence runs continuously across all 64 squares of a table and only
// resets to the fixed seed between the bishop table and the rook
// table.
func initSlider(table []SliderMagic, maskFn func(types.Square) types.Bitboard, slow func(types.Square, types.Bitboard) types.Bitboard) {
	rng := newPRNG()
	for sq := 0; sq < types.SqLength; sq++ {
		s := types.Square(sq)
		mask := maskFn(s)
		relBits := mask.PopCount()
		magicNum := findMagic(rng, s, mask, relBits, slow)
		shift := uint(64 - relBits)
		size := 1 << uint(relBits)
		attacks := make([]types.Bitboard, size)
		for i := 0; i < size; i++ {
			occ := setOccupancy(i, relBits, mask)
			idx := (uint64(occ) * magicNum) >> shift
			attacks[idx] = slow(s, occ)
		}
		table[sq] = SliderMagic{Mask: mask, Magic: magicNum, Shift: shift, Attacks: attacks}
	}
}

// PawnAttacks returns the squares a pawn of side s on sq attacks.
func (t *Tables) PawnAttacks(sq types.Square, s types.Side) types.Bitboard {
	return t.pawn[s][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func (t *Tables) KnightAttacks(sq types.Square) types.Bitboard {
	return t.knight[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func (t *Tables) KingAttacks(sq types.Square) types.Bitboard {
	return t.king[sq]
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// current occupancy of the whole board.
func (t *Tables) BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return t.bishop[sq].lookup(occupied)
}

// RookAttacks returns the squares a rook on sq attacks given the
// current occupancy of the whole board.
func (t *Tables) RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return t.rook[sq].lookup(occupied)
}

// QueenAttacks returns the squares a queen on sq attacks: the union of
// its bishop and rook attacks.
func (t *Tables) QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return t.BishopAttacks(sq, occupied) | t.RookAttacks(sq, occupied)
}

// Attacks returns the attack bitboard for pt on sq given occupied,
// dispatching to the right table. For Pawn, side selects the attacking
// color; it is ignored for the other piece types.
func (t *Tables) Attacks(pt types.PieceType, sq types.Square, side types.Side, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Pawn:
		return t.PawnAttacks(sq, side)
	case types.Knight:
		return t.KnightAttacks(sq)
	case types.Bishop:
		return t.BishopAttacks(sq, occupied)
	case types.Rook:
		return t.RookAttacks(sq, occupied)
	case types.Queen:
		return t.QueenAttacks(sq, occupied)
	case types.King:
		return t.KingAttacks(sq)
	default:
		return types.Empty
	}
}

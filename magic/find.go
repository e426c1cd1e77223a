package magic

import (
	"math/bits"

	"github.com/mkorhonen/bitperft/types"
)

// findMagic searches for a magic number for sq that maps every subset
// of mask (there are 1<<relBits of them) into a collision-free index
// for the attack sets produced by slow. It never returns until it
// finds one: with the fixed seed rng is started from in rand.go the
// search is deterministic and known to terminate quickly for every
// square of both sliders.
//
// rng is shared across every square of one slider's table (initSlider
// passes the same *prng down its loop) so the candidate sequence picks
// up where the previous square's search left off, rather than
// restarting from the seed each time.
func findMagic(rng *prng, sq types.Square, mask types.Bitboard, relBits int, slow func(types.Square, types.Bitboard) types.Bitboard) uint64 {
	n := 1 << relBits
	occupancies := make([]types.Bitboard, n)
	attacks := make([]types.Bitboard, n)
	for i := 0; i < n; i++ {
		occupancies[i] = setOccupancy(i, relBits, mask)
		attacks[i] = slow(sq, occupancies[i])
	}

	used := make([]types.Bitboard, n)

	for {
		candidate := rng.sparseUint64()

		// cheap reject: a good magic spreads mask's bits across the top
		// byte of mask*candidate.
		if bits.OnesCount64(uint64(mask)*candidate>>56) < 6 {
			continue
		}

		for i := range used {
			used[i] = 0
		}
		seen := make([]bool, n)

		ok := true
		for i := 0; i < n && ok; i++ {
			idx := (uint64(occupancies[i]) * candidate) >> uint(64-relBits)
			if !seen[idx] {
				seen[idx] = true
				used[idx] = attacks[i]
			} else if used[idx] != attacks[i] {
				ok = false
			}
		}
		if ok {
			return candidate
		}
	}
}

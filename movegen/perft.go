package movegen

import (
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkorhonen/bitperft/board"
	"github.com/mkorhonen/bitperft/fen"
	"github.com/mkorhonen/bitperft/logging"
	"github.com/mkorhonen/bitperft/magic"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of the legal move tree rooted at a
// position, down to a fixed depth - the standard way to check a move
// generator for both correctness (against known node counts) and
// speed. Besides the total it tallies how many of those leaf-producing
// moves were captures, en passant captures, castles, promotions or left
// the opponent in check.
type Perft struct {
	tables *magic.Tables

	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
}

// NewPerft returns a Perft runner sharing t, which callers typically
// build once with magic.NewTables and reuse across many runs.
func NewPerft(t *magic.Tables) *Perft {
	return &Perft{tables: t}
}

func (p *Perft) reset() {
	p.Nodes = 0
	p.CheckCounter = 0
	p.CaptureCounter = 0
	p.EnPassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}

// Run counts the leaf nodes depth plies below b and returns the count,
// also leaving the per-category counters populated. b is left
// unmodified: every move played during the search is unmade.
func (p *Perft) Run(b *board.Board, depth int) uint64 {
	p.reset()
	if depth <= 0 {
		p.Nodes = 1
		return 1
	}
	p.Nodes = p.search(b, depth)
	return p.Nodes
}

func (p *Perft) search(b *board.Board, depth int) uint64 {
	var ml MoveList
	GenerateLegalMoves(b, p.tables, &ml)

	if depth == 1 {
		var nodes uint64
		mover := b.SideToMove()
		for i := 0; i < ml.Len(); i++ {
			mv := ml.At(i)
			nodes++
			if mv.IsCapture() {
				p.CaptureCounter++
			}
			if mv.IsEnPassant() {
				p.EnPassantCounter++
			}
			if mv.IsCastling() {
				p.CastleCounter++
			}
			if mv.IsPromotion() {
				p.PromotionCounter++
			}
			undo := b.PlayMove(mv)
			if InCheck(b, p.tables, mover.Opponent()) {
				p.CheckCounter++
			}
			b.UnmakeMove(undo)
		}
		return nodes
	}

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		mv := ml.At(i)
		undo := b.PlayMove(mv)
		nodes += p.search(b, depth-1)
		b.UnmakeMove(undo)
	}
	return nodes
}

// StartPerft parses fenStr, runs Run for every depth from 1 to depth,
// and logs the node count and timing of each, matching the progress
// output style the perft runner this was grounded on uses for manual
// benchmarking.
func (p *Perft) StartPerft(fenStr string, depth int) error {
	b, err := fen.Parse(fenStr)
	if err != nil {
		return err
	}
	log := logging.GetPerftLog()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := p.Run(b, d)
		elapsed := time.Since(start)
		log.Infof(out.Sprintf("perft depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d in %s",
			d, nodes, p.CaptureCounter, p.EnPassantCounter, p.CastleCounter, p.PromotionCounter, p.CheckCounter, elapsed))
	}
	return nil
}

// DivideResult is one root move's subtree node count, as reported by
// Divide and PerftDivide.
type DivideResult struct {
	Move  string
	Nodes uint64
}

// Divide runs perft to depth-1 independently for every legal root move
// of b, returning each move's subtree count. It is the standard
// debugging tool for isolating which root move's subtree disagrees with
// a known-good node count.
func (p *Perft) Divide(b *board.Board, depth int) []DivideResult {
	var ml MoveList
	GenerateLegalMoves(b, p.tables, &ml)

	results := make([]DivideResult, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		mv := ml.At(i)
		undo := b.PlayMove(mv)
		sub := NewPerft(p.tables)
		var nodes uint64
		if depth-1 <= 0 {
			nodes = 1
		} else {
			nodes = sub.search(b, depth-1)
		}
		b.UnmakeMove(undo)
		results[i] = DivideResult{Move: mv.String(), Nodes: nodes}
	}
	return results
}

// PerftDivide is Divide's parallel counterpart: each root move's
// subtree is counted on its own goroutine, each with its own
// board.Board clone, while every goroutine shares the same read-only
// magic.Tables. This mirrors the only concurrency the move generator
// supports - independent boards over shared, immutable attack tables -
// so it is a property of the driver, not of move generation itself.
func (p *Perft) PerftDivide(b *board.Board, depth int) ([]DivideResult, error) {
	var ml MoveList
	GenerateLegalMoves(b, p.tables, &ml)

	results := make([]DivideResult, ml.Len())
	var g errgroup.Group
	for i := 0; i < ml.Len(); i++ {
		i := i
		mv := ml.At(i)
		g.Go(func() error {
			local := b.Clone()
			undo := local.PlayMove(mv)
			sub := NewPerft(p.tables)
			var nodes uint64
			if depth-1 <= 0 {
				nodes = 1
			} else {
				nodes = sub.search(local, depth-1)
			}
			local.UnmakeMove(undo)
			results[i] = DivideResult{Move: mv.String(), Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Package perft counts (and classifies) the leaves of the legal-move tree
// rooted at a position, to a fixed depth. It is the standard move-generator
// correctness harness: known positions have known, previously-published node
// counts at each depth, so a mismatch pinpoints a move-generation bug.
package perft

import (
	"context"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/herohde/vantage/pkg/schedule"
)

// Perft counts the leaves of the legal-move tree rooted at b, to depth ply:
// 1 at depth 0, |legal moves| at depth 1, otherwise the sum of Perft(depth-1)
// over every child reached by make/unmake.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.GenerateLegal(b, b.SideToMove())
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		undo := b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(m, undo)
	}
	return nodes
}

// DivideEntry is one root move's subtree node count, as returned by
// PerftDivide.
type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

// PerftDivide runs Perft(depth-1) under each of b's root legal moves and
// returns the per-move breakdown alongside the grand total.
func PerftDivide(b *board.Board, depth int) ([]DivideEntry, uint64) {
	moves := movegen.GenerateLegal(b, b.SideToMove())

	entries := make([]DivideEntry, 0, len(moves))
	var total uint64
	for _, m := range moves {
		undo := b.MakeMove(m)
		nodes := Perft(b, depth-1)
		b.UnmakeMove(m, undo)

		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	return entries, total
}

// Stats classifies every leaf of a perft tree, not just its count.
type Stats struct {
	Nodes        uint64
	Captures     uint64
	EnPassant    uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
	Checkmates   uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.DoubleChecks += o.DoubleChecks
	s.Checkmates += o.Checkmates
}

// PerftDetailed walks the same tree as Perft but classifies each leaf:
// capture/en-passant/castle/promotion is read off the move itself before it
// is made; check/double-check/checkmate is read off the opponent's king
// square and legal-move count after it is made.
func PerftDetailed(b *board.Board, depth int) Stats {
	if depth == 0 {
		return Stats{Nodes: 1}
	}

	moves := movegen.GenerateLegal(b, b.SideToMove())

	var total Stats
	for _, m := range moves {
		if depth == 1 {
			total.add(classifyLeaf(b, m))
			continue
		}

		undo := b.MakeMove(m)
		total.add(PerftDetailed(b, depth-1))
		b.UnmakeMove(m, undo)
	}
	return total
}

func classifyLeaf(b *board.Board, m board.Move) Stats {
	mover := b.SideToMove()
	opponent := mover.Opponent()

	s := Stats{Nodes: 1}
	switch {
	case m.Special == board.EnPassant:
		s.Captures++
		s.EnPassant++
	case m.Special == board.Castle:
		s.Castles++
	case !b.IsEmpty(m.To):
		s.Captures++
	}
	if m.Special == board.Promotion {
		s.Promotions++
	}

	undo := b.MakeMove(m)
	if kingSq, ok := b.FindKing(opponent); ok {
		if attackers := b.CountAttackers(kingSq, mover); attackers > 0 {
			s.Checks++
			if attackers >= 2 {
				s.DoubleChecks++
			}
			if len(movegen.GenerateLegal(b, opponent)) == 0 {
				s.Checkmates++
			}
		}
	}
	b.UnmakeMove(m, undo)

	return s
}

// PerftDetailedParallel is PerftDetailed with the root split across cfg's
// pool: each root move is classified in its own clone of b, and the per-move
// Stats are reduced by addition. Depths below 4 run serially — the pool
// fan-out overhead isn't worth it for trees that small.
func PerftDetailedParallel(ctx context.Context, b *board.Board, depth int, cfg schedule.Config) Stats {
	if depth < 4 {
		return PerftDetailed(b, depth)
	}

	moves := movegen.GenerateLegal(b, b.SideToMove())
	results := make([]Stats, len(moves))

	pool := schedule.NewPool(ctx, cfg)
	for i, m := range moves {
		i, m := i, m
		pool.Go(i, func(ctx context.Context) error {
			clone := b.Clone()
			undo := clone.MakeMove(m)
			results[i] = PerftDetailed(clone, depth-1)
			clone.UnmakeMove(m, undo)
			return nil
		})
	}
	_ = pool.Wait() // workers are pure computation and never error

	var total Stats
	for _, r := range results {
		total.add(r)
	}
	return total
}

package search

import (
	"context"
	"math"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/eval"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Minimax implements naive minimax search, fixed depth, no pruning. Useful
// for comparison and validation against AlphaBeta. Pseudo-code:
//
// function minimax(node, depth, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, minimax(child, depth − 1, FALSE))
//	    return value
//	else (* minimizing player *)
//	    value := +∞
//	    for each child of node do
//	        value := min(value, minimax(child, depth − 1, TRUE))
//	    return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct{}

// Search evaluates b to the given depth, returning the White-perspective
// value and the number of nodes visited. maximizing tracks whose ply it is
// throughout the recursion (White maximizes the absolute evaluation, Black
// minimizes it), seeded from b's own side to move. If ctx is cancelled
// mid-search, the recursion unwinds early and returns whatever value the
// deepest reached node's heuristic produced.
func (Minimax) Search(ctx context.Context, b *board.Board, depth int) (int32, uint64) {
	run := &runMinimax{}
	score := run.search(ctx, b, depth, b.SideToMove() == board.White)
	return score, run.nodes
}

type runMinimax struct {
	nodes uint64
}

func (r *runMinimax) search(ctx context.Context, b *board.Board, depth int, maximizing bool) int32 {
	r.nodes++

	if depth == 0 || contextx.IsCancelled(ctx) {
		return eval.Evaluate(b)
	}

	mover := b.SideToMove()
	moves := movegen.GenerateLegal(b, mover)
	if len(moves) == 0 {
		return TerminalScore(b, mover, maximizing)
	}

	if maximizing {
		value := int32(math.MinInt32)
		for _, m := range moves {
			undo := b.MakeMove(m)
			value = max32(value, r.search(ctx, b, depth-1, false))
			b.UnmakeMove(m, undo)
		}
		return value
	}

	value := int32(math.MaxInt32)
	for _, m := range moves {
		undo := b.MakeMove(m)
		value = min32(value, r.search(ctx, b, depth-1, true))
		b.UnmakeMove(m, undo)
	}
	return value
}

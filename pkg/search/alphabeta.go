package search

import (
	"context"
	"math"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/eval"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta implements fail-hard alpha-beta pruning. Pseudo-code:
//
// function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if β ≤ α then
//	            break (* α cutoff *)
//	    return value
//
// maximizingPlayer alternates by ply, seeded from the board's actual side to
// move so it always tracks "is it White's turn" through the recursion; the
// evaluation it bounds is always the absolute White-perspective value. See:
// https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type AlphaBeta struct{}

// Search evaluates b to the given depth, returning the White-perspective
// value and the number of nodes visited. Mirrors Minimax's signature so the
// two can be compared directly in tests. ctx cancellation is checked once
// per node, same as Minimax.
func (AlphaBeta) Search(ctx context.Context, b *board.Board, depth int) (int32, uint64) {
	run := &runAlphaBeta{}
	score := run.search(ctx, b, depth, negInf, posInf, b.SideToMove() == board.White)
	return score, run.nodes
}

// SearchWindow is Search with an explicit pruning window instead of the
// default [negInf, posInf]. Used by pkg/twophase to pass phase 1's best
// score down as an alpha (or beta) floor when searching phase 2's moves,
// without needing the negamax sign-flip the window would otherwise carry:
// alpha/beta here bound the same absolute White-perspective value Search
// returns, at every ply, regardless of whose turn it is.
func (AlphaBeta) SearchWindow(ctx context.Context, b *board.Board, depth int, alpha, beta int32) (int32, uint64) {
	run := &runAlphaBeta{}
	score := run.search(ctx, b, depth, alpha, beta, b.SideToMove() == board.White)
	return score, run.nodes
}

type runAlphaBeta struct {
	nodes uint64
}

func (r *runAlphaBeta) search(ctx context.Context, b *board.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	if depth == 0 || contextx.IsCancelled(ctx) {
		r.nodes++
		return eval.Evaluate(b)
	}

	mover := b.SideToMove()
	moves := movegen.GenerateLegal(b, mover)
	if len(moves) == 0 {
		r.nodes++
		return TerminalScore(b, mover, maximizing)
	}

	r.nodes++

	if maximizing {
		value := int32(math.MinInt32)
		for _, m := range moves {
			undo := b.MakeMove(m)
			value = max32(value, r.search(ctx, b, depth-1, alpha, beta, false))
			b.UnmakeMove(m, undo)

			alpha = max32(alpha, value)
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return value
	}

	value := int32(math.MaxInt32)
	for _, m := range moves {
		undo := b.MakeMove(m)
		value = min32(value, r.search(ctx, b, depth-1, alpha, beta, true))
		b.UnmakeMove(m, undo)

		beta = min32(beta, value)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return value
}

// Package search contains fixed-depth minimax and alpha-beta search over
// pkg/movegen-generated legal moves, evaluated with pkg/eval.
package search

import (
	"context"
	"math"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
)

// MateScore is the sentinel magnitude returned for a checkmated position.
// Chosen well above any reachable material evaluation so mates always
// dominate the comparison.
const MateScore int32 = 100_000

// negInf and posInf are the root search window, clamped one away from the
// true int32 extremes so negating either never overflows.
const (
	negInf = int32(math.MinInt32 + 1)
	posInf = int32(math.MaxInt32 - 1)
)

// TerminalScore scores a node with no legal moves for mover: checkmate
// resolves to MateScore signed by maximizing, stalemate to zero. Exported so
// pkg/parallel and pkg/twophase can score a root with no legal moves using
// the same convention as AlphaBeta and Minimax.
func TerminalScore(b *board.Board, mover board.Color, maximizing bool) int32 {
	if !b.IsInCheck(mover) {
		return 0
	}
	if maximizing {
		return -MateScore
	}
	return MateScore
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Search performs a root alpha-beta search to depth and returns the best
// move along with its score, both reported in the same White-perspective
// convention as Evaluate: White picks the move with the highest resulting
// value, Black the move with the lowest.
//
// If the side to move has no legal moves, Search returns the zero Move and
// TerminalScore's verdict (checkmate or stalemate) directly, without
// entering AlphaBeta.
func Search(ctx context.Context, b *board.Board, depth int) (board.Move, int32) {
	mover := b.SideToMove()
	maximizing := mover == board.White

	moves := movegen.GenerateLegal(b, mover)
	if len(moves) == 0 {
		return board.Move{}, TerminalScore(b, mover, maximizing)
	}

	best := moves[0]
	var bestScore int32
	if maximizing {
		bestScore = negInf
	} else {
		bestScore = posInf
	}

	run := &runAlphaBeta{}
	for _, m := range moves {
		undo := b.MakeMove(m)
		score := run.search(ctx, b, depth-1, negInf, posInf, !maximizing)
		b.UnmakeMove(m, undo)

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			best = m
		}
	}

	return best, bestScore
}

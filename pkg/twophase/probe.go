package twophase

import (
	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
)

// probed is one root move's node-counting probe result.
type probed struct {
	move  board.Move
	nodes uint64
}

// probeMove counts the nodes in m's subtree to depth ply, with no evaluation
// and no pruning — purely how expensive this branch is to search, not how
// good it is. A position with no legal continuations counts as 1, so a
// probe never reports a branch as free.
func probeMove(b *board.Board, m board.Move, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	undo := b.MakeMove(m)
	defer b.UnmakeMove(m, undo)

	moves := movegen.GenerateLegal(b, b.SideToMove())
	if len(moves) == 0 {
		return 1
	}

	var nodes uint64
	for _, child := range moves {
		nodes += probeMove(b, child, depth-1)
	}
	if nodes == 0 {
		nodes = 1
	}
	return nodes
}

// probeRootMoves probes every one of b's root legal moves to depth ply.
func probeRootMoves(b *board.Board, moves []board.Move, depth int) []probed {
	results := make([]probed, len(moves))
	for i, m := range moves {
		results[i] = probed{move: m, nodes: probeMove(b, m, depth)}
	}
	return results
}

// Package parallel fans a single-phase alpha-beta search out over a
// schedule.Pool: one root move per claimed slot, each scored against its own
// cloned board, reduced back to the single best (move, score).
package parallel

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/herohde/vantage/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// fault carries a worker's recovered panic across the errgroup boundary.
// Go panics cannot cross goroutine boundaries — an unrecovered panic in a
// pool worker crashes the whole process rather than unwinding into the
// caller's recover(). Each worker recovers locally and returns fault as an
// ordinary error; Search/SearchWithFault re-panics with the original value
// on the calling goroutine once the pool has drained, so that
// pkg/recovery's outer recover() observes the same panic it would have if
// the search had run inline.
type fault struct {
	value any
}

func (f *fault) Error() string {
	return fmt.Sprintf("parallel: worker fault: %v", f.value)
}

// Search runs a single-phase parallel search with no fault injection.
func Search(ctx context.Context, b *board.Board, depth int, cfg schedule.Config) (board.Move, int32, error) {
	return SearchWithFault(ctx, b, depth, cfg, lang.Optional[int]{})
}

// SearchWithFault fans b's root legal moves out over cfg's pool. If
// injectPanicAt is set, the worker that claims that root-move index performs
// a real 2-ply search on the child position (to simulate time spent) and
// then raises a fault, exactly once: an atomic flag created fresh for each
// call is test-and-cleared so at most one worker ever takes the injected
// path, even though which physical worker claims that index is unspecified.
//
// Result determinism: for a fixed (b, depth, cfg, injectPanicAt), the
// returned (move, score) equals the no-injection baseline whenever the fault
// is handled by a retry (see pkg/recovery) — ties in score are broken by a
// stable max-reduce that prefers the earlier root-move index.
func SearchWithFault(ctx context.Context, b *board.Board, depth int, cfg schedule.Config, injectPanicAt lang.Optional[int]) (board.Move, int32, error) {
	mover := b.SideToMove()
	maximizing := mover == board.White

	moves := movegen.GenerateLegal(b, mover)
	if len(moves) == 0 {
		return board.Move{}, search.TerminalScore(b, mover, maximizing), nil
	}

	var counter atomic.Int64
	var shouldPanic atomic.Bool
	if at, ok := injectPanicAt.V(); ok && at >= 0 && at < len(moves) {
		shouldPanic.Store(true)
	}

	scores := make([]int32, len(moves))
	pool := schedule.NewPool(ctx, cfg)
	for w := 0; w < pool.Size(); w++ {
		pool.Go(w, func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &fault{value: r}
				}
			}()

			for {
				i := int(counter.Add(1) - 1)
				if i >= len(moves) {
					return nil
				}
				m := moves[i]

				if at, ok := injectPanicAt.V(); ok && i == at && shouldPanic.CompareAndSwap(true, false) {
					clone := b.Clone()
					clone.MakeMove(m)
					search.AlphaBeta{}.Search(ctx, clone, 2) // simulate work before faulting
					panic(fmt.Sprintf("parallel: injected fault at root move %v (%v)", i, m))
				}

				clone := b.Clone()
				clone.MakeMove(m)
				score, _ := search.AlphaBeta{}.Search(ctx, clone, depth-1)
				scores[i] = score
			}
		})
	}

	if err := pool.Wait(); err != nil {
		if f, ok := err.(*fault); ok {
			panic(f.value)
		}
		return board.Move{}, 0, err
	}

	best := 0
	for i := 1; i < len(moves); i++ {
		if (maximizing && scores[i] > scores[best]) || (!maximizing && scores[i] < scores[best]) {
			best = i
		}
	}
	return moves[best], scores[best], nil
}

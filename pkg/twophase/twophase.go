// Package twophase splits root-move search across two QoS-biased pools: a
// probe pass classifies root moves as Heavy or Light by subtree size, Heavy
// moves search first on a performance-core-biased pool, then Light moves
// search on an efficiency-core-biased pool using phase 1's best score as a
// pruning floor.
package twophase

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/herohde/vantage/pkg/search"
)

const (
	negInf = int32(math.MinInt32 + 1)
	posInf = int32(math.MaxInt32 - 1)
)

// Config parameterizes the two-phase scheduler.
type Config struct {
	// ProbeDepth is how many ply the cheap node-counting probe explores.
	ProbeDepth int
	// PCoreThreads sizes phase 1's performance-core-biased pool.
	PCoreThreads int
	// ECoreThreads sizes phase 2's efficiency-core-biased pool.
	ECoreThreads int
	// HeavyRatio, in [0, 1], is the fraction of root moves (by probe rank,
	// rounded up, minimum 1) classified Heavy.
	HeavyRatio float64
	// LightThreshold, in [0, 1], is the share of total probed nodes the
	// Light bucket may carry before it is entirely promoted to Heavy.
	LightThreshold float64
}

// Metrics reports per-phase timings and bucket sizes for one Search call.
type Metrics struct {
	ProbeDuration  time.Duration
	Phase1Duration time.Duration
	Phase2Duration time.Duration
	TotalDuration  time.Duration
	HeavyCount     int
	LightCount     int
}

// Search runs the two-phase scheduler and discards its Metrics.
func Search(ctx context.Context, b *board.Board, depth int, cfg Config) (board.Move, int32, error) {
	m, score, _, err := SearchWithMetrics(ctx, b, depth, cfg)
	return m, score, err
}

// SearchWithMetrics runs the probe → classify → phase1(Heavy) →
// phase2(Light) → select pipeline described by Config and reports timings
// and bucket sizes alongside the result.
func SearchWithMetrics(ctx context.Context, b *board.Board, depth int, cfg Config) (board.Move, int32, Metrics, error) {
	start := time.Now()
	var metrics Metrics

	mover := b.SideToMove()
	maximizing := mover == board.White

	rootMoves := movegen.GenerateLegal(b, mover)
	if len(rootMoves) == 0 {
		metrics.TotalDuration = time.Since(start)
		return board.Move{}, search.TerminalScore(b, mover, maximizing), metrics, nil
	}

	probeStart := time.Now()
	probed := probeRootMoves(b, rootMoves, cfg.ProbeDepth)
	metrics.ProbeDuration = time.Since(probeStart)

	heavy, light := classify(probed, cfg.HeavyRatio, cfg.LightThreshold)
	metrics.HeavyCount = len(heavy)
	metrics.LightCount = len(light)

	if len(heavy) == 0 && len(light) == 0 {
		// Unreachable given classify's invariant (every probed move lands in
		// exactly one bucket), but a two-phase scheduler degrading to a
		// plain serial search is a safe, well-defined fallback.
		m, score := search.Search(ctx, b, depth)
		metrics.TotalDuration = time.Since(start)
		return m, score, metrics, nil
	}

	phase1Start := time.Now()
	pool1 := schedule.NewPool(ctx, schedule.Config{Policy: schedule.FastBias, Threads: cfg.PCoreThreads})
	heavyMoves := movesOf(heavy)
	bestHeavyMove, bestHeavyScore := searchBucket(ctx, b, heavyMoves, depth, pool1, negInf, posInf, maximizing)
	metrics.Phase1Duration = time.Since(phase1Start)

	if len(light) == 0 {
		metrics.TotalDuration = time.Since(start)
		return bestHeavyMove, bestHeavyScore, metrics, nil
	}

	phase2Start := time.Now()
	alpha, beta := negInf, posInf
	if maximizing {
		alpha = max32(negInf, bestHeavyScore)
	} else {
		beta = min32(posInf, bestHeavyScore)
	}
	pool2 := schedule.NewPool(ctx, schedule.Config{Policy: schedule.EfficientBias, Threads: cfg.ECoreThreads})
	lightMoves := movesOf(light)
	bestLightMove, bestLightScore := searchBucket(ctx, b, lightMoves, depth, pool2, alpha, beta, maximizing)
	metrics.Phase2Duration = time.Since(phase2Start)

	metrics.TotalDuration = time.Since(start)

	if (maximizing && bestLightScore > bestHeavyScore) || (!maximizing && bestLightScore < bestHeavyScore) {
		return bestLightMove, bestLightScore, metrics, nil
	}
	return bestHeavyMove, bestHeavyScore, metrics, nil
}

func movesOf(cms []ClassifiedMove) []board.Move {
	moves := make([]board.Move, len(cms))
	for i, cm := range cms {
		moves[i] = cm.Move
	}
	return moves
}

// searchBucket runs a parallel max/min-reduce alpha-beta search over moves
// on pool, within [alpha, beta], honoring the same stable-max-reduce
// tie-break as pkg/parallel.
func searchBucket(ctx context.Context, b *board.Board, moves []board.Move, depth int, pool *schedule.Pool, alpha, beta int32, maximizing bool) (board.Move, int32) {
	scores := make([]int32, len(moves))

	var counter atomic.Int64
	for w := 0; w < pool.Size(); w++ {
		pool.Go(w, func(ctx context.Context) error {
			for {
				i := int(counter.Add(1) - 1)
				if i >= len(moves) {
					return nil
				}
				clone := b.Clone()
				clone.MakeMove(moves[i])
				score, _ := search.AlphaBeta{}.SearchWindow(ctx, clone, depth-1, alpha, beta)
				scores[i] = score
			}
		})
	}
	_ = pool.Wait() // bucket workers are pure computation and never error

	best := 0
	for i := 1; i < len(moves); i++ {
		if (maximizing && scores[i] > scores[best]) || (!maximizing && scores[i] < scores[best]) {
			best = i
		}
	}
	return moves[best], scores[best]
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

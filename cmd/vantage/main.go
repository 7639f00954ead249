// vantage is a thin demonstration CLI over the fixed-depth search,
// scheduling and perft packages. Usage:
//
//	vantage -mode=search    -fen=... -depth=4
//	vantage -mode=parallel  -fen=... -depth=4 -policy=fast-bias -threads=4
//	vantage -mode=twophase  -fen=... -depth=4 -heavy-ratio=0.6
//	vantage -mode=perft     -fen=... -depth=5 [-divide] [-detailed]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/parallel"
	"github.com/herohde/vantage/pkg/perft"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/herohde/vantage/pkg/search"
	"github.com/herohde/vantage/pkg/twophase"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	mode   = flag.String("mode", "search", "One of: search, parallel, twophase, perft")
	fenStr = flag.String("fen", "", "Start position (default to standard starting position)")
	depth  = flag.Int("depth", 4, "Search depth")

	policy   = flag.String("policy", "none", "Pool policy for -mode=parallel: none, fast-bias, efficient-bias, mixed")
	threads  = flag.Int("threads", 4, "Worker count for -mode=parallel and -mode=perft's parallel detailed count")
	mixedRat = flag.Float64("mixed-ratio", 0.5, "Fraction of workers hinted fast, for -policy=mixed")

	pThreads = flag.Int("p-threads", 4, "Phase 1 (Heavy) pool size for -mode=twophase")
	eThreads = flag.Int("e-threads", 4, "Phase 2 (Light) pool size for -mode=twophase")
	heavy    = flag.Float64("heavy-ratio", 0.6, "Fraction of root moves classified Heavy, for -mode=twophase")
	light    = flag.Float64("light-threshold", 0.3, "Light-bucket node share that triggers full promotion, for -mode=twophase")
	probe    = flag.Int("probe-depth", 1, "Probe ply for -mode=twophase")

	divide   = flag.Bool("divide", false, "For -mode=perft: print per-root-move node counts")
	detailed = flag.Bool("detailed", false, "For -mode=perft: classify leaves (captures, checks, mates, ...)")

	showVersion = flag.Bool("version", false, "Print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: vantage [options]

VANTAGE is a fixed-depth chess search demonstrator with QoS-scheduled
parallel and two-phase search modes.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *showVersion {
		fmt.Printf("vantage %v\n", version)
		return
	}

	b, err := loadBoard(*fenStr)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *fenStr, err)
	}

	switch *mode {
	case "search":
		runSearch(ctx, b)
	case "parallel":
		runParallel(ctx, b)
	case "twophase":
		runTwoPhase(ctx, b)
	case "perft":
		runPerft(ctx, b)
	default:
		flag.Usage()
		logw.Exitf(ctx, "Unknown mode '%v'", *mode)
	}
}

func loadBoard(fen string) (*board.Board, error) {
	if fen == "" {
		return board.NewStartingBoard(), nil
	}
	return board.FromFEN(fen)
}

func runSearch(ctx context.Context, b *board.Board) {
	start := time.Now()
	m, score := search.Search(ctx, b, *depth)
	logw.Infof(ctx, "search depth=%v move=%v score=%v duration=%v", *depth, m, score, time.Since(start))
}

func parsePolicy(ctx context.Context, s string) schedule.Policy {
	switch s {
	case "none":
		return schedule.None
	case "fast-bias":
		return schedule.FastBias
	case "efficient-bias":
		return schedule.EfficientBias
	case "mixed":
		return schedule.Mixed
	default:
		logw.Exitf(ctx, "Unknown policy '%v'", s)
		return schedule.None
	}
}

func runParallel(ctx context.Context, b *board.Board) {
	cfg := schedule.Config{Policy: parsePolicy(ctx, *policy), Threads: *threads}
	if cfg.Policy == schedule.Mixed {
		cfg.MixedRatio = lang.Some(*mixedRat)
	}

	start := time.Now()
	m, score, err := parallel.Search(ctx, b, *depth, cfg)
	if err != nil {
		logw.Exitf(ctx, "Parallel search failed: %v", err)
	}
	logw.Infof(ctx, "parallel depth=%v cfg=%v move=%v score=%v duration=%v", *depth, cfg, m, score, time.Since(start))
}

func runTwoPhase(ctx context.Context, b *board.Board) {
	cfg := twophase.Config{
		ProbeDepth:     *probe,
		PCoreThreads:   *pThreads,
		ECoreThreads:   *eThreads,
		HeavyRatio:     *heavy,
		LightThreshold: *light,
	}

	start := time.Now()
	m, score, metrics, err := twophase.SearchWithMetrics(ctx, b, *depth, cfg)
	if err != nil {
		logw.Exitf(ctx, "Two-phase search failed: %v", err)
	}
	logw.Infof(ctx, "twophase depth=%v move=%v score=%v heavy=%v light=%v probe=%v phase1=%v phase2=%v total=%v",
		*depth, m, score, metrics.HeavyCount, metrics.LightCount, metrics.ProbeDuration, metrics.Phase1Duration, metrics.Phase2Duration, time.Since(start))
}

func runPerft(ctx context.Context, b *board.Board) {
	switch {
	case *detailed:
		cfg := schedule.Config{Policy: schedule.None, Threads: *threads}
		stats := perft.PerftDetailedParallel(ctx, b, *depth, cfg)
		logw.Infof(ctx, "perft-detailed depth=%v %+v", *depth, stats)
	case *divide:
		entries, total := perft.PerftDivide(b, *depth)
		for _, e := range entries {
			fmt.Printf("%v: %v\n", e.Move, e.Nodes)
		}
		logw.Infof(ctx, "perft-divide depth=%v total=%v", *depth, total)
	default:
		nodes := perft.Perft(b, *depth)
		logw.Infof(ctx, "perft depth=%v nodes=%v", *depth, nodes)
	}
}

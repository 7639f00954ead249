package perft_test

import (
	"context"
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/perft"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281, 4865609}

	for depth, n := range want {
		if depth+1 == 5 && testing.Short() {
			continue
		}
		b := board.NewStartingBoard()
		assert.Equal(t, n, perft.Perft(b, depth+1), "depth=%v", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{48, 2039, 97862, 4085603}

	for depth, n := range want {
		if depth+1 == 4 && testing.Short() {
			continue
		}
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, n, perft.Perft(b, depth+1), "depth=%v", depth+1)
	}
}

func TestPerftPositionThree(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	want := []uint64{14, 191, 2812, 43238, 674624}

	for depth, n := range want {
		if depth+1 >= 4 && testing.Short() {
			continue
		}
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, n, perft.Perft(b, depth+1), "depth=%v", depth+1)
	}
}

func TestPerftPromotionPosition(t *testing.T) {
	fen := "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	want := []uint64{24, 496, 9483}

	for depth, n := range want {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, n, perft.Perft(b, depth+1), "depth=%v", depth+1)
	}
}

func TestPerftStalemateIsZero(t *testing.T) {
	b, err := board.FromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), perft.Perft(b, 1))
}

func TestPerftDetailedStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 detailed perft is expensive")
	}

	b := board.NewStartingBoard()
	stats := perft.PerftDetailed(b, 4)

	assert.Equal(t, uint64(197281), stats.Nodes)
	assert.Equal(t, uint64(1576), stats.Captures)
	assert.Equal(t, uint64(0), stats.EnPassant)
	assert.Equal(t, uint64(0), stats.Castles)
	assert.Equal(t, uint64(0), stats.Promotions)
	assert.Equal(t, uint64(469), stats.Checks)
	assert.Equal(t, uint64(8), stats.Checkmates)
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	b := board.NewStartingBoard()
	entries, total := perft.PerftDivide(b, 3)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, uint64(8902), total)
	assert.Len(t, entries, 20)
}

func TestPerftDetailedParallelMatchesSerial(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 parallel perft is expensive")
	}

	b := board.NewStartingBoard()
	serial := perft.PerftDetailed(b.Clone(), 4)

	cfg := schedule.Config{Policy: schedule.Mixed, Threads: 4, MixedRatio: lang.Some(0.5)}
	parallel := perft.PerftDetailedParallel(context.Background(), b, 4, cfg)

	assert.Equal(t, serial, parallel)
}

func TestPerftDetailedParallelFallsBackBelowDepthFour(t *testing.T) {
	b := board.NewStartingBoard()
	serial := perft.PerftDetailed(b.Clone(), 2)
	parallel := perft.PerftDetailedParallel(context.Background(), b, 2, schedule.Config{Policy: schedule.None, Threads: 2})
	assert.Equal(t, serial, parallel)
}

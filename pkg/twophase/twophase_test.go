package twophase_test

import (
	"context"
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/search"
	"github.com/herohde/vantage/pkg/twophase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() twophase.Config {
	return twophase.Config{
		ProbeDepth:     1,
		PCoreThreads:   2,
		ECoreThreads:   2,
		HeavyRatio:     0.6,
		LightThreshold: 0.3,
	}
}

func TestSearchStartingPositionMatchesSerialScore(t *testing.T) {
	ctx := context.Background()

	_, wantScore := search.Search(ctx, board.NewStartingBoard(), 4)
	_, gotScore, err := twophase.Search(ctx, board.NewStartingBoard(), 4, defaultConfig())

	require.NoError(t, err)
	assert.Equal(t, wantScore, gotScore)
}

func TestSearchFindsMateInOneMatchingSerial(t *testing.T) {
	ctx := context.Background()
	fen := "k7/3R4/8/8/8/8/8/4K2R w - - 0 1"

	serial, err := board.FromFEN(fen)
	require.NoError(t, err)
	wantMove, wantScore := search.Search(ctx, serial, 2)

	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	gotMove, gotScore, err := twophase.Search(ctx, b, 2, defaultConfig())

	require.NoError(t, err)
	assert.Equal(t, wantScore, gotScore)
	assert.Equal(t, search.MateScore, gotScore)
	assert.Equal(t, wantMove, gotMove)
}

func TestSearchStalemateReturnsSentinelMove(t *testing.T) {
	b, err := board.FromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	m, score, err := twophase.Search(context.Background(), b, 1, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, board.Move{}, m)
	assert.Equal(t, int32(0), score)
}

func TestSearchWithMetricsBucketsPartitionRootMoves(t *testing.T) {
	b := board.NewStartingBoard()
	wantRootMoves := 20 // starting position legal move count

	_, _, metrics, err := twophase.SearchWithMetrics(context.Background(), b, 3, defaultConfig())

	require.NoError(t, err)
	assert.Equal(t, wantRootMoves, metrics.HeavyCount+metrics.LightCount)
	assert.Greater(t, metrics.HeavyCount, 0)
}

package parallel_test

import (
	"context"
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/parallel"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/herohde/vantage/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelSearchMatchesSerialBaseline(t *testing.T) {
	b := board.NewStartingBoard()
	wantMove, wantScore := search.Search(context.Background(), b, 3)

	cfg := schedule.Config{Policy: schedule.None, Threads: 4}
	gotMove, gotScore, err := parallel.Search(context.Background(), board.NewStartingBoard(), 3, cfg)

	require.NoError(t, err)
	assert.Equal(t, wantScore, gotScore)
	assert.Equal(t, wantMove, gotMove)
}

func TestParallelSearchStalemateReturnsSentinelMove(t *testing.T) {
	b, err := board.FromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	cfg := schedule.Config{Policy: schedule.None, Threads: 2}
	m, score, err := parallel.Search(context.Background(), b, 1, cfg)

	require.NoError(t, err)
	assert.Equal(t, board.Move{}, m)
	assert.Equal(t, int32(0), score)
}

func TestSearchWithFaultInjectionPanics(t *testing.T) {
	b := board.NewStartingBoard()
	cfg := schedule.Config{Policy: schedule.None, Threads: 4}

	assert.Panics(t, func() {
		_, _, _ = parallel.SearchWithFault(context.Background(), b, 3, cfg, lang.Some(0))
	})
}

func TestSearchWithFaultOutOfRangeIndexDoesNotPanic(t *testing.T) {
	b := board.NewStartingBoard()
	cfg := schedule.Config{Policy: schedule.None, Threads: 4}

	assert.NotPanics(t, func() {
		_, _, err := parallel.SearchWithFault(context.Background(), b, 2, cfg, lang.Some(10_000))
		assert.NoError(t, err)
	})
}

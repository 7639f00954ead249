package twophase

import (
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestClassifySingleMoveIsHeavy(t *testing.T) {
	probed := []probed{{move: board.Move{}, nodes: 42}}
	heavy, light := classify(probed, 0.6, 0.3)

	assert.Len(t, heavy, 1)
	assert.Empty(t, light)
	assert.Equal(t, Heavy, heavy[0].Phase)
}

func TestClassifySplitsTopRatioHeavy(t *testing.T) {
	// 5 moves, heavyRatio=0.6 -> ceil(5*0.6)=3 heavy, 2 light.
	probed := []probed{
		{move: board.Move{From: 0}, nodes: 100},
		{move: board.Move{From: 1}, nodes: 90},
		{move: board.Move{From: 2}, nodes: 80},
		{move: board.Move{From: 3}, nodes: 5},
		{move: board.Move{From: 4}, nodes: 1},
	}
	heavy, light := classify(probed, 0.6, 0.9) // high threshold: no promotion
	assert.Len(t, heavy, 3)
	assert.Len(t, light, 2)
	for _, cm := range heavy {
		assert.GreaterOrEqual(t, cm.Nodes, uint64(80))
	}
}

func TestClassifyPromotesExpensiveLightBucket(t *testing.T) {
	// Only the single top-ranked move is Heavy (heavyRatio=0.2 -> ceil(5*0.2)=1);
	// the other four, nearly as expensive, land in Light and carry 80% of the
	// total probed nodes — well past the 30% promotion threshold, so they
	// all get promoted to Heavy instead of starving on the E-core pool.
	probed := []probed{
		{move: board.Move{From: 0}, nodes: 1000},
		{move: board.Move{From: 1}, nodes: 999},
		{move: board.Move{From: 2}, nodes: 998},
		{move: board.Move{From: 3}, nodes: 997},
		{move: board.Move{From: 4}, nodes: 996},
	}
	heavy, light := classify(probed, 0.2, 0.3)
	assert.Empty(t, light)
	assert.Len(t, heavy, 5)
}

func TestClassifyEmptyInputReturnsEmptyBuckets(t *testing.T) {
	heavy, light := classify(nil, 0.6, 0.3)
	assert.Empty(t, heavy)
	assert.Empty(t, light)
}

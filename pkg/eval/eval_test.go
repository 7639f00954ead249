package eval_test

import (
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	b := board.NewStartingBoard()
	assert.Equal(t, int32(0), eval.Evaluate(b))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, eval.NominalValue(board.Queen), eval.Evaluate(b))

	b2, err := board.FromFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, eval.NominalValue(board.Rook), eval.Evaluate(b2))
}

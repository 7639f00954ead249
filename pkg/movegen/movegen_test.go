package movegen_test

import (
	"testing"

	"github.com/herohde/vantage/pkg/board"
	"github.com/herohde/vantage/pkg/movegen"
	"github.com/stretchr/testify/assert"
)

func countPerft(b *board.Board, c board.Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := movegen.GenerateLegal(b, c)
	if depth == 1 {
		return uint64(len(legal))
	}
	var nodes uint64
	for _, m := range legal {
		undo := b.MakeMove(m)
		nodes += countPerft(b, c.Opponent(), depth-1)
		b.UnmakeMove(m, undo)
	}
	return nodes
}

func TestGenerateStartingPositionMoveCount(t *testing.T) {
	b := board.NewStartingBoard()
	moves := movegen.Generate(b, board.White)
	assert.Equal(t, 20, len(moves))
}

func TestPerftStartingPosition(t *testing.T) {
	b := board.NewStartingBoard()
	assert.Equal(t, uint64(20), countPerft(b, board.White, 1))
	assert.Equal(t, uint64(400), countPerft(b, board.White, 2))
	assert.Equal(t, uint64(8902), countPerft(b, board.White, 3))
	if !testing.Short() {
		assert.Equal(t, uint64(197281), countPerft(b, board.White, 4))
	}
}

func TestGenerateCastleWhenPathClear(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	moves := movegen.Generate(b, board.White)

	var foundKingSide, foundQueenSide bool
	for _, m := range moves {
		if m.Special == board.Castle {
			if m.IsKingSideCastle() {
				foundKingSide = true
			} else {
				foundQueenSide = true
			}
		}
	}
	assert.True(t, foundKingSide)
	assert.True(t, foundQueenSide)
}

func TestGenerateCastleBlockedByCheck(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	moves := movegen.Generate(b, board.White)
	for _, m := range moves {
		assert.NotEqual(t, board.Castle, m.Special)
	}
}

func TestGenerateLegalFiltersPinnedMoves(t *testing.T) {
	// White king on e1, white rook pinned on e2 by black rook on e8; moving
	// the rook off the e-file would expose check, so it must be excluded.
	b, err := board.FromFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)

	legal := movegen.GenerateLegal(b, board.White)
	for _, m := range legal {
		if m.From == board.NewSquare(board.FileE, board.Rank2) {
			assert.Equal(t, board.FileE, m.To.File())
		}
	}
}

func TestGeneratePawnPromotionFanOut(t *testing.T) {
	b, err := board.FromFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)

	moves := movegen.Generate(b, board.White)
	count := 0
	for _, m := range moves {
		if m.From == board.NewSquare(board.FileA, board.Rank7) {
			assert.Equal(t, board.Promotion, m.Special)
			count++
		}
	}
	assert.Equal(t, 4, count)
}

// Package eval contains static position evaluation.
package eval

import "github.com/herohde/vantage/pkg/board"

// Evaluate returns the material balance of the position in centipawns from
// White's perspective: positive favors White, negative favors Black. The
// king is excluded (its presence is forced, so it carries no comparative
// information).
func Evaluate(b *board.Board) int32 {
	var score int32
	for t := board.Pawn; t <= board.Queen; t++ {
		white := int32(b.CountPieces(t, board.White))
		black := int32(b.CountPieces(t, board.Black))
		score += (white - black) * NominalValue(t)
	}
	return score
}

// NominalValue is the absolute nominal value of a piece type in centipawns.
// The king has no comparative value and returns 0.
func NominalValue(t board.PieceType) int32 {
	switch t {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

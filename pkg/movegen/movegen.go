// Package movegen generates pseudo-legal and legal moves for a position.
package movegen

import "github.com/herohde/vantage/pkg/board"

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	promotionPieces = [4]board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}
)

// Generate returns all pseudo-legal moves for color: targets and captures
// obeying piece movement rules and board occupancy, but not yet filtered
// for leaving the mover's own king in check.
func Generate(b *board.Board, c board.Color) []board.Move {
	var moves []board.Move

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.GetPiece(sq)
		if p.IsEmpty() || p.Color != c {
			continue
		}

		switch p.Type {
		case board.Pawn:
			moves = generatePawn(b, sq, c, moves)
		case board.Knight:
			moves = generateLeaper(b, sq, c, knightOffsets[:], moves)
		case board.King:
			moves = generateLeaper(b, sq, c, kingOffsets[:], moves)
		case board.Rook:
			moves = generateSlider(b, sq, c, rookDirs[:], moves)
		case board.Bishop:
			moves = generateSlider(b, sq, c, bishopDirs[:], moves)
		case board.Queen:
			moves = generateSlider(b, sq, c, rookDirs[:], moves)
			moves = generateSlider(b, sq, c, bishopDirs[:], moves)
		}
	}

	moves = generateCastles(b, c, moves)
	return moves
}

// GenerateLegal returns the subset of Generate's pseudo-legal moves that do
// not leave the mover's own king in check: each candidate is made, tested,
// and unmade in turn.
func GenerateLegal(b *board.Board, c board.Color) []board.Move {
	pseudo := Generate(b, c)

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		undo := b.MakeMove(m)
		if !b.IsInCheck(c) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m, undo)
	}
	return legal
}

func isBackRank(sq board.Square, c board.Color) bool {
	if c == board.White {
		return sq.Rank() == board.Rank8
	}
	return sq.Rank() == board.Rank1
}

func generatePawn(b *board.Board, sq board.Square, c board.Color, moves []board.Move) []board.Move {
	dr := 1
	startRank := board.Rank2
	epRank := board.Rank5
	if c == board.Black {
		dr = -1
		startRank = board.Rank7
		epRank = board.Rank4
	}

	if one, ok := step(sq, 0, dr); ok {
		if b.IsEmpty(one) {
			moves = appendPawnMove(moves, sq, one, c)

			if sq.Rank() == startRank {
				if two, ok := step(sq, 0, 2*dr); ok && b.IsEmpty(two) {
					moves = append(moves, board.Move{From: sq, To: two})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := step(sq, df, dr)
		if !ok {
			continue
		}
		target := b.GetPiece(to)
		if !target.IsEmpty() && target.Color != c {
			moves = appendPawnMove(moves, sq, to, c)
		}
	}

	if ep, ok := b.EnPassant(); ok && sq.Rank() == epRank {
		if board.FileDiff(sq, ep) == 1 && board.RankDiff(sq, ep) == 1 {
			moves = append(moves, board.Move{From: sq, To: ep, Special: board.EnPassant})
		}
	}

	return moves
}

func appendPawnMove(moves []board.Move, from, to board.Square, c board.Color) []board.Move {
	if isBackRank(to, c) {
		for _, promo := range promotionPieces {
			moves = append(moves, board.Move{From: from, To: to, Special: board.Promotion, Promotion: promo})
		}
		return moves
	}
	return append(moves, board.Move{From: from, To: to})
}

func generateLeaper(b *board.Board, sq board.Square, c board.Color, offsets [][2]int, moves []board.Move) []board.Move {
	for _, d := range offsets {
		to, ok := step(sq, d[0], d[1])
		if !ok {
			continue
		}
		target := b.GetPiece(to)
		if target.IsEmpty() || target.Color != c {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}
	return moves
}

func generateSlider(b *board.Board, sq board.Square, c board.Color, dirs [][2]int, moves []board.Move) []board.Move {
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := step(cur, d[0], d[1])
			if !ok {
				break
			}
			cur = to

			target := b.GetPiece(to)
			if target.IsEmpty() {
				moves = append(moves, board.Move{From: sq, To: to})
				continue
			}
			if target.Color != c {
				moves = append(moves, board.Move{From: sq, To: to})
			}
			break
		}
	}
	return moves
}

func generateCastles(b *board.Board, c board.Color, moves []board.Move) []board.Move {
	king, ok := b.FindKing(c)
	if !ok {
		return moves
	}
	opp := c.Opponent()

	type side struct {
		right               board.Castling
		rook, transit, dest board.Square
	}

	var sides [2]side
	if c == board.White {
		sides = [2]side{
			{board.WK, board.NewSquare(board.FileH, board.Rank1), board.NewSquare(board.FileF, board.Rank1), board.NewSquare(board.FileG, board.Rank1)},
			{board.WQ, board.NewSquare(board.FileA, board.Rank1), board.NewSquare(board.FileD, board.Rank1), board.NewSquare(board.FileC, board.Rank1)},
		}
	} else {
		sides = [2]side{
			{board.BK, board.NewSquare(board.FileH, board.Rank8), board.NewSquare(board.FileF, board.Rank8), board.NewSquare(board.FileG, board.Rank8)},
			{board.BQ, board.NewSquare(board.FileA, board.Rank8), board.NewSquare(board.FileD, board.Rank8), board.NewSquare(board.FileC, board.Rank8)},
		}
	}

	if b.IsInCheck(c) {
		return moves
	}

	for _, s := range sides {
		if !b.Castling().IsAllowed(s.right) {
			continue
		}
		rook := b.GetPiece(s.rook)
		if rook.Type != board.Rook || rook.Color != c {
			continue
		}
		if !squaresEmptyBetween(b, king, s.rook) {
			continue
		}
		if b.IsSquareAttacked(king, opp) || b.IsSquareAttacked(s.transit, opp) || b.IsSquareAttacked(s.dest, opp) {
			continue
		}
		moves = append(moves, board.Move{From: king, To: s.dest, Special: board.Castle})
	}

	return moves
}

func squaresEmptyBetween(b *board.Board, a, z board.Square) bool {
	lo, hi := a, z
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo + 1; sq < hi; sq++ {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// step offsets (df, dr) files/ranks from sq, rejecting off-board results and
// file wrap.
func step(sq board.Square, df, dr int) (board.Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return board.NewSquare(board.File(f), board.Rank(r)), true
}

// Package board contains the chess board representation, move
// application/restoration, and attack queries the rest of the module is
// built on.
package board

import "fmt"

// noEnPassant is the sentinel Square value meaning "no en passant target is
// set". NumSquares (64) is one past the valid range, so it can never collide
// with a real square.
const noEnPassant = NumSquares

// Board is a 64-square mailbox board plus the minimal game state needed to
// make/unmake moves and classify terminal positions: side to move, castling
// rights, en passant target, half-move clock, and full-move number.
//
// Board is a plain value-copyable struct (no pointers into itself), so a
// worker that wants an independent copy can simply dereference-and-assign;
// Clone makes that explicit at call sites.
type Board struct {
	squares [64]Piece

	sideToMove     Color
	castling       Castling
	enPassant      Square // noEnPassant if unset
	halfmoveClock  uint8
	fullmoveNumber uint16
}

// UndoRecord captures everything MakeMove mutates beyond the two squares
// touched by the move itself, so UnmakeMove can restore the board exactly.
type UndoRecord struct {
	Captured       Piece
	PrevEnPassant  Square
	PrevCastling   Castling
	PrevHalfmove   uint8
	PrevFullmove   uint16
	PrevSideToMove Color
}

// NewBoard returns an empty board in Clear's state: White to move, full
// castling rights, no en passant target, half-move clock 0, full-move 1.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewStartingBoard returns a board set up for the start of a game.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.SetupStartingPosition()
	return b
}

// Clone returns an independent copy of the board. Workers in the parallel
// search fan-out each own a Clone of the root board for the lifetime of
// their assigned root move.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) GetPiece(sq Square) Piece {
	return b.squares[sq]
}

func (b *Board) SetPiece(sq Square, p Piece) {
	b.squares[sq] = p
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq].IsEmpty()
}

func (b *Board) SideToMove() Color {
	return b.sideToMove
}

func (b *Board) SetSideToMove(c Color) {
	b.sideToMove = c
}

func (b *Board) Castling() Castling {
	return b.castling
}

func (b *Board) SetCastling(c Castling) {
	b.castling = c
}

// EnPassant returns the en passant target square and whether one is set.
func (b *Board) EnPassant() (Square, bool) {
	return b.enPassant, b.enPassant != noEnPassant
}

// SetEnPassant sets the en passant target square. SetEnPassant(0, false)
// (or any square with ok=false) clears it.
func (b *Board) SetEnPassant(sq Square, ok bool) {
	if !ok {
		b.enPassant = noEnPassant
		return
	}
	b.enPassant = sq
}

func (b *Board) HalfmoveClock() uint8 {
	return b.halfmoveClock
}

func (b *Board) SetHalfmoveClock(v uint8) {
	b.halfmoveClock = v
}

func (b *Board) FullmoveNumber() uint16 {
	return b.fullmoveNumber
}

func (b *Board) SetFullmoveNumber(v uint16) {
	b.fullmoveNumber = v
}

// Clear empties every square and resets the game state: White to move, full
// castling rights, no en passant target, half-move clock 0 and full-move
// number 1. Callers that want other state follow with the individual setters.
func (b *Board) Clear() {
	b.squares = [64]Piece{}
	b.sideToMove = White
	b.castling = FullCastlingRights
	b.enPassant = noEnPassant
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
}

// SetupStartingPosition resets the board to the standard starting position.
func (b *Board) SetupStartingPosition() {
	b.Clear()

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := ZeroFile; f < NumFiles; f++ {
		b.SetPiece(NewSquare(f, Rank1), NewPiece(backRank[f], White))
		b.SetPiece(NewSquare(f, Rank2), NewPiece(Pawn, White))
		b.SetPiece(NewSquare(f, Rank7), NewPiece(Pawn, Black))
		b.SetPiece(NewSquare(f, Rank8), NewPiece(backRank[f], Black))
	}
}

// FindKing returns the square of color's king, if present.
func (b *Board) FindKing(c Color) (Square, bool) {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		p := b.squares[sq]
		if p.Type == King && p.Color == c {
			return sq, true
		}
	}
	return 0, false
}

// CountPieces counts color's pieces of the given type on the board.
func (b *Board) CountPieces(t PieceType, c Color) uint8 {
	var n uint8
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		p := b.squares[sq]
		if p.Type == t && p.Color == c {
			n++
		}
	}
	return n
}

// IsInCheck reports whether color's king is attacked by the opponent.
// Equivalent by construction to IsSquareAttacked(king, opponent); see the
// attack-symmetry invariant covered in board_test.go.
func (b *Board) IsInCheck(c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, c.Opponent())
}

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// IsSquareAttacked reports whether sq is attacked by any piece of by. Rays
// are walked from sq outward using by's offsets (so pawn rays use the
// direction a by-colored pawn would have to stand in to hit sq), early-exit
// at the first occupied square, and reject file-wrap via an explicit
// file-difference check on every step.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.countAttackers(sq, by, true) > 0
}

// CountAttackers counts the pieces of color by that attack sq, using the
// same ray-walk as IsSquareAttacked.
func (b *Board) CountAttackers(sq Square, by Color) uint8 {
	return b.countAttackers(sq, by, false)
}

func (b *Board) countAttackers(sq Square, by Color, stopAtFirst bool) uint8 {
	var count uint8

	// Pawn attacks: a by-colored pawn attacks diagonally forward from its own
	// perspective, so we look one rank *behind* sq (from by's point of view)
	// on both adjacent files.
	pawnRank := -1
	if by == White {
		pawnRank = -1
	} else {
		pawnRank = 1
	}
	for _, df := range [2]int{-1, 1} {
		if from, ok := offsetSquare(sq, df, pawnRank); ok {
			if p := b.squares[from]; p.Type == Pawn && p.Color == by {
				count++
				if stopAtFirst {
					return count
				}
			}
		}
	}

	for _, d := range knightOffsets {
		if from, ok := offsetSquare(sq, d[0], d[1]); ok {
			if p := b.squares[from]; p.Type == Knight && p.Color == by {
				count++
				if stopAtFirst {
					return count
				}
			}
		}
	}

	for _, d := range kingOffsets {
		if from, ok := offsetSquare(sq, d[0], d[1]); ok {
			if p := b.squares[from]; p.Type == King && p.Color == by {
				count++
				if stopAtFirst {
					return count
				}
			}
		}
	}

	for _, d := range rookDirs {
		if n, ok := b.walkAttacker(sq, d[0], d[1], by, Rook, Queen); ok {
			count += n
			if stopAtFirst && count > 0 {
				return count
			}
		}
	}

	for _, d := range bishopDirs {
		if n, ok := b.walkAttacker(sq, d[0], d[1], by, Bishop, Queen); ok {
			count += n
			if stopAtFirst && count > 0 {
				return count
			}
		}
	}

	return count
}

// walkAttacker walks a ray from sq in direction (df, dr), stopping at the
// first occupied square. It reports 1 (found) if that square holds a by-color
// piece of either target type, else 0.
func (b *Board) walkAttacker(sq Square, df, dr int, by Color, t1, t2 PieceType) (uint8, bool) {
	cur := sq
	for {
		next, ok := offsetSquare(cur, df, dr)
		if !ok {
			return 0, true
		}
		cur = next

		p := b.squares[cur]
		if p.IsEmpty() {
			continue
		}
		if p.Color == by && (p.Type == t1 || p.Type == t2) {
			return 1, true
		}
		return 0, true
	}
}

// offsetSquare steps (df, dr) files/ranks from sq, rejecting both off-board
// results and file wrap (where the file delta doesn't match the requested
// step because the ray ran off one edge and back onto the other).
func offsetSquare(sq Square, df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// MakeMove applies m, which must be legal for the side to move (the piece at
// m.From must belong to SideToMove), and returns the UndoRecord needed to
// reverse it. Panics if a precondition is violated (no piece at From,
// promotion without a promotion type, missing castling rook); the
// legal-move filter in pkg/movegen guarantees these can't happen for
// generated moves, and pkg/recovery treats the panic as any other worker
// fault.
func (b *Board) MakeMove(m Move) UndoRecord {
	undo := UndoRecord{
		Captured:       b.squares[m.To],
		PrevEnPassant:  b.enPassant,
		PrevCastling:   b.castling,
		PrevHalfmove:   b.halfmoveClock,
		PrevFullmove:   b.fullmoveNumber,
		PrevSideToMove: b.sideToMove,
	}

	mover := b.squares[m.From]
	if mover.IsEmpty() {
		panic(fmt.Sprintf("make_move: no piece at %v", m.From))
	}

	b.SetPiece(m.From, NoPiece)

	placed := mover
	if m.Special == Promotion {
		if !m.Promotion.IsValid() {
			panic(fmt.Sprintf("make_move: promotion move %v without promotion piece type", m))
		}
		placed = NewPiece(m.Promotion, mover.Color)
	}
	b.SetPiece(m.To, placed)

	switch m.Special {
	case EnPassant:
		capSq := capturedPawnSquare(m.To, mover.Color)
		b.SetPiece(capSq, NoPiece)
	case Castle:
		rookFrom, rookTo := castleRookSquares(mover.Color, m.IsKingSideCastle())
		rook := b.squares[rookFrom]
		if rook.Type != Rook {
			panic(fmt.Sprintf("make_move: no rook at %v for castle %v", rookFrom, m))
		}
		b.SetPiece(rookFrom, NoPiece)
		b.SetPiece(rookTo, rook)
	}

	b.enPassant = noEnPassant
	if mover.Type == Pawn && RankDiff(m.From, m.To) == 2 {
		between := Square((int(m.From) + int(m.To)) / 2)
		b.enPassant = between
	}

	b.castling = b.castling.Clear(castlingClearedByCaptureOn(m.To, undo.Captured))
	b.castling = b.castling.Clear(castlingClearedByMoveFrom(m.From, mover))
	if mover.Type == King {
		if mover.Color == White {
			b.castling = b.castling.Clear(WK | WQ)
		} else {
			b.castling = b.castling.Clear(BK | BQ)
		}
	}

	if mover.Type == Pawn || !undo.Captured.IsEmpty() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.sideToMove = b.sideToMove.Opponent()
	if b.sideToMove == White {
		b.fullmoveNumber++
	}

	return undo
}

// UnmakeMove reverses m using the UndoRecord produced by the matching
// MakeMove call, restoring every field byte-exactly.
func (b *Board) UnmakeMove(m Move, undo UndoRecord) {
	placed := b.squares[m.To]

	restored := placed
	if m.Special == Promotion {
		restored = NewPiece(Pawn, placed.Color)
	}
	b.SetPiece(m.From, restored)
	b.SetPiece(m.To, undo.Captured)

	switch m.Special {
	case EnPassant:
		capSq := capturedPawnSquare(m.To, restored.Color)
		b.SetPiece(capSq, NewPiece(Pawn, restored.Color.Opponent()))
	case Castle:
		rookFrom, rookTo := castleRookSquares(restored.Color, m.IsKingSideCastle())
		rook := b.squares[rookTo]
		b.SetPiece(rookTo, NoPiece)
		b.SetPiece(rookFrom, rook)
	}

	b.sideToMove = undo.PrevSideToMove
	b.enPassant = undo.PrevEnPassant
	b.castling = undo.PrevCastling
	b.halfmoveClock = undo.PrevHalfmove
	b.fullmoveNumber = undo.PrevFullmove
}

func capturedPawnSquare(to Square, mover Color) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

func castleRookSquares(c Color, kingSide bool) (from, to Square) {
	switch {
	case c == White && kingSide:
		return NewSquare(FileH, Rank1), NewSquare(FileF, Rank1)
	case c == White && !kingSide:
		return NewSquare(FileA, Rank1), NewSquare(FileD, Rank1)
	case c == Black && kingSide:
		return NewSquare(FileH, Rank8), NewSquare(FileF, Rank8)
	default:
		return NewSquare(FileA, Rank8), NewSquare(FileD, Rank8)
	}
}

func castlingClearedByCaptureOn(to Square, captured Piece) Castling {
	if captured.IsEmpty() {
		return 0
	}
	return castlingForRookSquare(to)
}

func castlingClearedByMoveFrom(from Square, mover Piece) Castling {
	if mover.Type != Rook {
		return 0
	}
	return castlingForRookSquare(from)
}

func castlingForRookSquare(sq Square) Castling {
	switch sq {
	case NewSquare(FileA, Rank1):
		return WQ
	case NewSquare(FileH, Rank1):
		return WK
	case NewSquare(FileA, Rank8):
		return BQ
	case NewSquare(FileH, Rank8):
		return BK
	default:
		return 0
	}
}

func (b *Board) String() string {
	return b.ToFEN()
}

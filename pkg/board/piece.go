package board

import "strings"

// PieceType represents a chess piece kind without color. 3 bits.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return "."
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a piece type paired with its color. The zero value, NoPiece,
// represents an empty square so Board can use a plain [64]Piece mailbox.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the zero value Piece, representing an empty square.
var NoPiece = Piece{}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String renders the piece as a single FEN-style letter, upper-case for White.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		return strings.ToUpper(p.Type.String())
	}
	return p.Type.String()
}

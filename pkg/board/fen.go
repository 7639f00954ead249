package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a new Board. A FEN record nominally has
// six space-separated fields; the half-move clock and full-move number
// (fields 5 and 6) are tolerated as absent, in which case they default to 0
// and 1 respectively. Fewer than 4 or more than 6 fields is an error.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	b := NewBoard()
	b.Clear()

	// (1) Piece placement, from white's perspective: rank 8 down to rank 1,
	// within a rank file a through file h.

	r, f := Rank8, ZeroFile
	for _, ch := range []rune(parts[0]) {
		switch {
		case ch == '/':
			if f != NumFiles {
				return nil, fmt.Errorf("invalid rank length in FEN: '%v'", fen)
			}
			if r == ZeroRank {
				return nil, fmt.Errorf("too many ranks in FEN: '%v'", fen)
			}
			r--
			f = ZeroFile

		case unicode.IsDigit(ch):
			f += File(ch - '0')
			if f > NumFiles {
				return nil, fmt.Errorf("invalid rank length in FEN: '%v'", fen)
			}

		case unicode.IsLetter(ch):
			pt, ok := ParsePieceType(ch)
			if !ok || f >= NumFiles {
				return nil, fmt.Errorf("invalid piece '%v' in FEN: '%v'", ch, fen)
			}
			c := White
			if unicode.IsLower(ch) {
				c = Black
			}
			b.SetPiece(NewSquare(f, r), NewPiece(pt, c))
			f++

		default:
			return nil, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if r != ZeroRank || f != NumFiles {
		return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2) Active color.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}
	b.SetSideToMove(active)

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}
	b.SetCastling(castling)

	// (4) En passant target square.

	if parts[3] != "-" {
		sq, err := ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: '%v': %v", fen, err)
		}
		b.SetEnPassant(sq, true)
	} else {
		b.SetEnPassant(0, false)
	}

	// (5) Halfmove clock (optional, defaults to 0).

	if len(parts) > 4 {
		hm, err := strconv.Atoi(parts[4])
		if err != nil || hm < 0 {
			return nil, fmt.Errorf("invalid halfmove clock in FEN: '%v'", fen)
		}
		b.SetHalfmoveClock(uint8(hm))
	}

	// (6) Fullmove number (optional, defaults to 1).

	if len(parts) > 5 {
		fm, err := strconv.Atoi(parts[5])
		if err != nil || fm < 0 {
			return nil, fmt.Errorf("invalid fullmove number in FEN: '%v'", fen)
		}
		b.SetFullmoveNumber(uint16(fm))
	}

	return b, nil
}

// ToFEN encodes the board in FEN notation.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		blanks := 0
		for f := ZeroFile; f < NumFiles; f++ {
			p := b.GetPiece(NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == ZeroRank {
			break
		}
		sb.WriteString("/")
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), b.SideToMove(), b.Castling(), ep, b.HalfmoveClock(), b.FullmoveNumber())
}

func parseColor(str string) (Color, bool) {
	switch str {
	case "w", "W":
		return White, true
	case "b", "B":
		return Black, true
	default:
		return 0, false
	}
}

func parseCastling(str string) (Castling, bool) {
	var ret Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= WK
		case 'Q':
			ret |= WQ
		case 'k':
			ret |= BK
		case 'q':
			ret |= BQ
		default:
			return 0, false
		}
	}
	return ret, true
}

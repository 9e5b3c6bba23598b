package chessmg

// Kind is the colorless type of a piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Side owns a piece. White is true, Black is false.
type Side bool

const (
	White Side = true
	Black Side = false
)

// Other returns the opposing side.
func (s Side) Other() Side { return !s }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Piece is an immutable (kind, side) pair. The zero value is NoPiece.
type Piece struct {
	Kind Kind
	Side Side
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// IsZero reports whether p is NoPiece.
func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Glyph returns the display letter: uppercase for White, lowercase for Black,
// space for NoPiece. Knight uses N so it never collides with the king.
func (p Piece) Glyph() rune {
	if p.IsZero() {
		return ' '
	}
	return charFromPiece(p)
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(p Piece) rune {
	var ch rune
	switch p.Kind {
	case Pawn:
		ch = 'P'
	case Knight:
		ch = 'N'
	case Bishop:
		ch = 'B'
	case Rook:
		ch = 'R'
	case Queen:
		ch = 'Q'
	case King:
		ch = 'K'
	default:
		return '?'
	}
	if p.Side == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// pieceFromChar converts a FEN character to a piece. ok is false for anything
// that is not one of "PNBRQKpnbrqk".
func pieceFromChar(ch rune) (p Piece, ok bool) {
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Piece{Pawn, side}, true
	case 'N':
		return Piece{Knight, side}, true
	case 'B':
		return Piece{Bishop, side}, true
	case 'R':
		return Piece{Rook, side}, true
	case 'Q':
		return Piece{Queen, side}, true
	case 'K':
		return Piece{King, side}, true
	}
	return NoPiece, false
}

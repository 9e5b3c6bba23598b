package chessmg

// SpecialKind tags the extra board mutation a move performs after relocating
// the moving piece.
type SpecialKind uint8

const (
	SpecialNone SpecialKind = iota
	SpecialEnPassant
	SpecialCastle
	SpecialPromote
)

func (k SpecialKind) String() string {
	switch k {
	case SpecialEnPassant:
		return "en passant"
	case SpecialCastle:
		return "castle"
	case SpecialPromote:
		return "promote"
	default:
		return "none"
	}
}

// Special is the tagged side effect of a move. Only the fields belonging to
// Kind are meaningful:
//   - SpecialEnPassant: Captured is the square of the pawn taken.
//   - SpecialCastle: RookFrom and RookTo give the rook's relocation.
//   - SpecialPromote: Promote is the kind the pawn becomes.
type Special struct {
	Kind     SpecialKind
	Captured Coord
	RookFrom Coord
	RookTo   Coord
	Promote  Kind
}

// Move is a snapshot of a candidate move: the source and destination squares
// as observed at generation time plus its special side effect.
type Move struct {
	From    Square
	To      Square
	Special Special
}

// IsCapture reports whether the move takes a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.To.Occupied() || m.Special.Kind == SpecialEnPassant
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Special.Kind == SpecialEnPassant }

// String produces a coordinate representation of the move (e.g. "a2a4").
func (m Move) String() string {
	str := m.From.Coord.String() + m.To.Coord.String()
	if m.Special.Kind == SpecialPromote {
		str += string(charFromPiece(Piece{Kind: m.Special.Promote, Side: Black}))
	}
	return str
}

package chessmg

// KindFunc generates the moves of the piece standing on src. src is always
// occupied by a piece of the side to move.
type KindFunc func(b *Board, src Square) ([]Move, error)

// Generator dispatches move generation on piece kind. Pawns are built in;
// every other kind fails with a NotImplementedError unless a KindFunc has been
// registered for it with Handle.
type Generator struct {
	handlers map[Kind]KindFunc
}

// NewGenerator returns a generator that only knows pawns.
func NewGenerator() *Generator {
	return &Generator{handlers: make(map[Kind]KindFunc)}
}

// Handle registers fn for k. Registering for Pawn replaces the built-in rules.
func (g *Generator) Handle(k Kind, fn KindFunc) *Generator {
	g.handlers[k] = fn
	return g
}

var defaultGenerator = NewGenerator()

// Generate returns the moves of the piece on (row, col) using the built-in
// rules. See Generator.Generate.
func Generate(b *Board, row, col int) ([]Move, error) {
	return defaultGenerator.Generate(b, row, col)
}

// MustGenerate is Generate that panics on error.
func MustGenerate(b *Board, row, col int) []Move {
	moves, err := Generate(b, row, col)
	if err != nil {
		panic(err)
	}
	return moves
}

// GenerateMoves is the method form of Generate.
func (b *Board) GenerateMoves(row, col int) ([]Move, error) { return Generate(b, row, col) }

// Generate returns the moves available to the piece on (row, col). An empty
// square, or a piece of the side not to move, yields no moves and no error.
// On error the returned slice is nil; there is no fallback move list.
//
// Generation never mutates the board. Moves that leave the mover's own king
// attacked are not filtered out.
func (g *Generator) Generate(b *Board, row, col int) ([]Move, error) {
	src, err := b.SquareAt(row, col)
	if err != nil {
		return nil, err
	}
	if !src.Occupied() || src.Piece.Side != b.toMove {
		return []Move{}, nil
	}

	if fn, ok := g.handlers[src.Piece.Kind]; ok {
		return fn(b, src)
	}

	switch src.Piece.Kind {
	case Pawn:
		return b.pawnMoves(src)
	case Knight, Bishop, Rook, Queen, King:
		return nil, &NotImplementedError{Kind: src.Piece.Kind, At: src.Coord}
	default:
		panic("chessmg: square holds a piece of unknown kind")
	}
}

// pawnForward returns the advance direction, starting row, en passant row
// and last row of a pawn of side s.
func pawnForward(s Side) (dir Direction, startRow, epRow, lastRow int) {
	if s == White {
		return N, 6, 3, 0
	}
	return S, 1, 4, 7
}

func pawnDiagonals(s Side) [2]Direction {
	if s == White {
		return [2]Direction{NE, NW}
	}
	return [2]Direction{SW, SE}
}

func (b *Board) pawnMoves(src Square) ([]Move, error) {
	us := src.Piece.Side
	fwd, startRow, epRow, lastRow := pawnForward(us)
	if src.Coord.Row == lastRow {
		return nil, ErrUnreachablePawn
	}

	moves := make([]Move, 0, 4)

	// single push
	if m, ok := b.step(src, fwd, 1); ok && !m.To.Occupied() {
		moves = append(moves, m)
	}

	// double push; the square in between is not looked at
	if src.Coord.Row == startRow {
		if m, ok := b.step(src, fwd, 2); ok && !m.To.Occupied() {
			moves = append(moves, m)
		}
	}

	// Diagonals, forward-right then forward-left as the mover faces
	for _, diag := range pawnDiagonals(us) {
		m, ok := b.step(src, diag, 1)
		if !ok {
			continue
		}
		if m.To.Occupied() {
			if m.To.Piece.Side != us {
				moves = append(moves, m)
			}
			continue
		}
		if src.Coord.Row != epRow {
			continue
		}
		beside := Coord{Row: src.Coord.Row, Col: m.To.Coord.Col}
		if b.justDoubleStepped(beside, us.Other()) {
			m.Special = Special{Kind: SpecialEnPassant, Captured: beside}
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// justDoubleStepped reports whether the pawn of side them on c arrived there
// with a double push on the last ply: the previous snapshot shows it on its
// starting rank with c empty, and that starting square is empty now.
func (b *Board) justDoubleStepped(c Coord, them Side) bool {
	enemy := Piece{Kind: Pawn, Side: them}
	if b.grid[c.Row][c.Col].Piece != enemy {
		return false
	}
	prev, ok := b.history.previous()
	if !ok {
		return false
	}
	_, startRow, _, _ := pawnForward(them)
	return prev.PieceAt(startRow, c.Col) == enemy &&
		prev.PieceAt(c.Row, c.Col).IsZero() &&
		b.grid[startRow][c.Col].Piece.IsZero()
}

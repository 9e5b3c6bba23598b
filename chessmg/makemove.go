package chessmg

// Apply plays m on the board: the piece on m.From moves to m.To (capturing
// whatever stood there), the side to move flips, the move's special side
// effect runs, and the resulting position is appended to history.
//
// Apply re-reads the live board by coordinate and performs no legality check;
// moves that did not come from Generate are played as given.
func (b *Board) Apply(m Move) {
	from := m.From.Coord
	to := m.To.Coord

	b.setPiece(to, b.PieceAt(from.Row, from.Col))
	b.clearSquare(from)
	b.toMove = b.toMove.Other()

	switch m.Special.Kind {
	case SpecialEnPassant:
		b.clearSquare(m.Special.Captured)
	case SpecialPromote:
		moved := b.PieceAt(to.Row, to.Col)
		b.setPiece(to, Piece{Kind: m.Special.Promote, Side: moved.Side})
	case SpecialCastle:
		rook := b.PieceAt(m.Special.RookFrom.Row, m.Special.RookFrom.Col)
		b.clearSquare(m.Special.RookFrom)
		b.setPiece(m.Special.RookTo, rook)
	}

	b.history.push(b.Snapshot())
}

// Play generates the moves of the piece on (row, col) and applies the one at
// index. It returns the move played.
func (b *Board) Play(row, col, index int) (Move, error) {
	moves, err := Generate(b, row, col)
	if err != nil {
		return Move{}, err
	}
	if index < 0 || index >= len(moves) {
		return Move{}, &MoveIndexError{At: Coord{Row: row, Col: col}, Index: index, Count: len(moves)}
	}
	b.Apply(moves[index])
	return moves[index], nil
}

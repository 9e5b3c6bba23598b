package chessmg

// Grid is the 8x8 array of squares, indexed [row][col].
type Grid [8][8]Square

// Board represents the chess board state: piece placement, side to move and
// the history of positions reached so far.
type Board struct {
	// Squares indexed [row][col]; each square's Coord equals its index.
	grid Grid

	// Side to move (which player's turn it is)
	toMove Side

	// One snapshot per ply; history[k] is the position after k moves for boards
	// built with New.
	history History
}

// backRank lists the piece kinds of a back rank from the a-file to the h-file.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns the standard starting position with White to move. The start
// position is recorded as history[0].
func New() *Board {
	b := Empty()
	for col, k := range backRank {
		b.grid[0][col].Piece = Piece{Kind: k, Side: Black}
		b.grid[1][col].Piece = Piece{Kind: Pawn, Side: Black}
		b.grid[6][col].Piece = Piece{Kind: Pawn, Side: White}
		b.grid[7][col].Piece = Piece{Kind: k, Side: White}
	}
	b.history.push(b.Snapshot())
	return b
}

// Empty returns a board with no pieces, White to move and no history.
func Empty() *Board {
	b := &Board{toMove: White}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.grid[row][col] = newSquare(row, col)
		}
	}
	return b
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Side { return b.toMove }

// SquareAt returns the square at (row, col) or ErrOutOfRange.
func (b *Board) SquareAt(row, col int) (Square, error) {
	c := Coord{Row: row, Col: col}
	if !c.InBounds() {
		return Square{}, ErrOutOfRange
	}
	return b.grid[row][col], nil
}

// PieceAt returns the piece on (row, col). It panics like an index expression
// when the coordinate is off the board.
func (b *Board) PieceAt(row, col int) Piece { return b.grid[row][col].Piece }

// Grid returns a copy of the squares.
func (b *Board) Grid() Grid { return b.grid }

// History exposes the recorded snapshots read-only.
func (b *Board) History() *History { return &b.history }

// Snapshot copies the current grid and side to move. Snapshots never carry history.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{Grid: b.grid, ToMove: b.toMove}
}

// Clone returns an independent deep copy of the board, history included.
func (b *Board) Clone() *Board {
	c := &Board{grid: b.grid, toMove: b.toMove}
	c.history.snaps = append([]Snapshot(nil), b.history.snaps...)
	return c
}

// Hash returns the Zobrist key of the current position.
func (b *Board) Hash() uint64 { return computeZobrist(&b.grid, b.toMove) }

// String renders the board as FEN.
func (b *Board) String() string { return b.FEN() }

// setPiece places p on c without touching history or side to move. Only the
// executor and constructors use it.
func (b *Board) setPiece(c Coord, p Piece) { b.grid[c.Row][c.Col].Piece = p }

// clearSquare removes any piece from c.
func (b *Board) clearSquare(c Coord) { b.grid[c.Row][c.Col].Piece = NoPiece }

package chessmg

import "fmt"

// Coord addresses a grid cell. Row 0 is rank 8 (Black's back rank), Col 0 is the a-file.
type Coord struct {
	Row int
	Col int
}

// InBounds reports whether both coordinates lie in [0,7].
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

// Add returns c shifted by d repeated mul times.
func (c Coord) Add(d Direction, mul int) Coord {
	return Coord{Row: c.Row + d.DRow*mul, Col: c.Col + d.DCol*mul}
}

// String gives the algebraic name of the cell, e.g. (6,0) -> "a2".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{'a' + byte(c.Col), '8' - byte(c.Row)})
}

// Square is one cell of the grid as seen at a point in time.
type Square struct {
	Piece Piece
	Light bool
	Coord Coord
}

// Occupied reports whether a piece stands on the square.
func (s Square) Occupied() bool { return !s.Piece.IsZero() }

func newSquare(row, col int) Square {
	return Square{
		Light: (row+col)%2 == 0,
		Coord: Coord{Row: row, Col: col},
	}
}

// Direction is a unit step on the grid.
type Direction struct {
	DRow int
	DCol int
}

// N points toward row 0, the direction White pawns advance.
var (
	N  = Direction{-1, 0}
	S  = Direction{1, 0}
	E  = Direction{0, 1}
	W  = Direction{0, -1}
	NE = Direction{-1, 1}
	NW = Direction{-1, -1}
	SE = Direction{1, 1}
	SW = Direction{1, -1}
)

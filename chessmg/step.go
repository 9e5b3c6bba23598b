package chessmg

// step projects dir*mul from src and returns a plain move onto the live
// destination square. ok is false when the destination is off the board.
// Legality beyond bounds is left to the caller.
func (b *Board) step(src Square, dir Direction, mul int) (m Move, ok bool) {
	to := src.Coord.Add(dir, mul)
	if !to.InBounds() {
		return Move{}, false
	}
	return Move{From: src, To: b.grid[to.Row][to.Col]}, true
}

// stepSet describes how a piece kind moves: the unit directions it may take and
// how many times each may be repeated (0 = until blocked).
type stepSet struct {
	dirs   []Direction
	repeat int
}

// kindSteps lists the step sets of the kinds the default generator does not cover.
var kindSteps = map[Kind]stepSet{
	Knight: {dirs: []Direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}, repeat: 1},
	Bishop: {dirs: []Direction{NE, NW, SE, SW}},
	Rook:   {dirs: []Direction{N, S, E, W}},
	Queen:  {dirs: []Direction{N, S, E, W, NE, NW, SE, SW}},
	King:   {dirs: []Direction{N, S, E, W, NE, NW, SE, SW}, repeat: 1},
}

// Rays walks the step set of k from src and returns every destination reached:
// empty squares, and the first square holding an opposing piece in each
// direction. It is the building block for KindFunc extensions and returns nil
// for kinds without a step set (Pawn, NoKind).
func Rays(b *Board, src Square, k Kind) []Move {
	set, ok := kindSteps[k]
	if !ok {
		return nil
	}
	var moves []Move
	for _, dir := range set.dirs {
		for mul := 1; set.repeat == 0 || mul <= set.repeat; mul++ {
			m, ok := b.step(src, dir, mul)
			if !ok {
				break
			}
			if m.To.Occupied() {
				if m.To.Piece.Side != src.Piece.Side {
					moves = append(moves, m)
				}
				break
			}
			moves = append(moves, m)
		}
	}
	return moves
}

package chessmg

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN builds a board from a FEN string. Only piece placement, side to move
// and the en passant field are used; castling rights and clocks are ignored.
//
// When the FEN names an en passant target, the position before the double
// push is reconstructed and recorded as the first snapshot, so the capture is
// generated exactly as it would be after playing the push on the board.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}
	if err := validatePlacement(fields[0]); err != nil {
		return nil, err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// dragontoothmg indexes squares a1=0 .. h8=63 and expects all six fields.
	dt := dragontoothmg.ParseFen(fields[0] + " " + fields[1] + " - - 0 1")

	b := Empty()
	for sq := 0; sq < 64; sq++ {
		p, ok := pieceOnBit(&dt.White, White, sq)
		if !ok {
			p, _ = pieceOnBit(&dt.Black, Black, sq)
		}
		b.setPiece(Coord{Row: 7 - sq/8, Col: sq % 8}, p)
	}
	b.toMove = Black
	if dt.Wtomove {
		b.toMove = White
	}

	if len(fields) > 3 && fields[3] != "-" {
		prev, err := b.beforeDoublePush(fields[3])
		if err != nil {
			return nil, err
		}
		b.history.push(prev)
	}
	b.history.push(b.Snapshot())
	return b, nil
}

// MustFromFEN is FromFEN that panics on invalid input.
func MustFromFEN(fen string) *Board {
	b, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

func pieceOnBit(bbs *dragontoothmg.Bitboards, side Side, sq int) (Piece, bool) {
	bit := uint64(1) << uint(sq)
	if bbs.All&bit == 0 {
		return NoPiece, false
	}
	switch {
	case bbs.Pawns&bit != 0:
		return Piece{Pawn, side}, true
	case bbs.Knights&bit != 0:
		return Piece{Knight, side}, true
	case bbs.Bishops&bit != 0:
		return Piece{Bishop, side}, true
	case bbs.Rooks&bit != 0:
		return Piece{Rook, side}, true
	case bbs.Queens&bit != 0:
		return Piece{Queen, side}, true
	case bbs.Kings&bit != 0:
		return Piece{King, side}, true
	}
	return NoPiece, false
}

// validatePlacement checks the piece placement field; dragontoothmg does not
// reject malformed placements on its own.
func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for _, rankStr := range ranks {
		if len(rankStr) == 0 {
			return fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if _, ok := pieceFromChar(ch); !ok {
				return fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q does not have 8 columns", ErrInvalidFEN, rankStr)
		}
	}
	return nil
}

// beforeDoublePush reconstructs the position preceding the double push that
// created the en passant target ep.
func (b *Board) beforeDoublePush(ep string) (Snapshot, error) {
	target, err := parseCoord(ep)
	if err != nil {
		return Snapshot{}, err
	}
	them := b.toMove.Other()
	fwd, startRow, _, _ := pawnForward(them)
	if target.Row != startRow+fwd.DRow {
		return Snapshot{}, fmt.Errorf("%w: en passant square %s does not match side to move", ErrInvalidFEN, ep)
	}
	landing := target.Add(fwd, 1)
	start := target.Add(fwd, -1)
	pawn := Piece{Kind: Pawn, Side: them}
	if b.grid[landing.Row][landing.Col].Piece != pawn ||
		b.grid[target.Row][target.Col].Occupied() ||
		b.grid[start.Row][start.Col].Occupied() {
		return Snapshot{}, fmt.Errorf("%w: no pawn could have double-pushed past %s", ErrInvalidFEN, ep)
	}

	prev := Snapshot{Grid: b.grid, ToMove: them}
	prev.Grid[landing.Row][landing.Col].Piece = NoPiece
	prev.Grid[start.Row][start.Col].Piece = pawn
	return prev, nil
}

func parseCoord(alg string) (Coord, error) {
	if len(alg) != 2 {
		return Coord{}, fmt.Errorf("%w: invalid square %q", ErrInvalidFEN, alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coord{}, fmt.Errorf("%w: square %q out of range", ErrInvalidFEN, alg)
	}
	return Coord{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// FEN produces the FEN string of the snapshot. Castling and en passant fields
// are always "-" and the clocks are "0 1".
func (s Snapshot) FEN() string {
	return s.placement() + " " + sideChar(s.ToMove) + " - - 0 1"
}

// FEN produces the FEN string of the board, including the en passant target
// when the last ply was a double push.
func (b *Board) FEN() string {
	ep := "-"
	fwd, _, landingRow, _ := pawnForward(b.toMove)
	for col := 0; col < 8; col++ {
		landing := Coord{Row: landingRow, Col: col}
		if b.justDoubleStepped(landing, b.toMove.Other()) {
			ep = landing.Add(fwd, 1).String()
			break
		}
	}
	return b.Snapshot().placement() + " " + sideChar(b.toMove) + " - " + ep + " 0 1"
}

func (s Snapshot) placement() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		emptyCount := 0
		for col := 0; col < 8; col++ {
			p := s.Grid[row][col].Piece
			if p.IsZero() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func sideChar(s Side) string {
	if s == White {
		return "w"
	}
	return "b"
}

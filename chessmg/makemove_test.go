package chessmg_test

import (
	"errors"
	"testing"

	mg "chess-rules/chessmg"
)

func TestApplyFlipsSideAndRecordsSnapshot(t *testing.T) {
	b := mg.New()
	moves, err := mg.Generate(b, 6, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, side := range []mg.Side{mg.Black, mg.White} {
		before := b.History().Len()
		b.Apply(moves[len(moves)-1])
		if b.SideToMove() != side {
			t.Fatalf("side to move: got %v want %v", b.SideToMove(), side)
		}
		if b.History().Len() != before+1 {
			t.Fatalf("history grew by %d", b.History().Len()-before)
		}
		last, _ := b.History().Last()
		if last != b.Snapshot() {
			t.Fatalf("last snapshot does not match the board")
		}
		moves, err = mg.Generate(b, 1, 4)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
	}
	if got := b.PieceAt(4, 4); got != (mg.Piece{Kind: mg.Pawn, Side: mg.White}) {
		t.Fatalf("e4: got %v", got)
	}
	if got := b.PieceAt(3, 4); got != (mg.Piece{Kind: mg.Pawn, Side: mg.Black}) {
		t.Fatalf("e5: got %v", got)
	}
	if !b.PieceAt(6, 4).IsZero() || !b.PieceAt(1, 4).IsZero() {
		t.Fatalf("source squares not cleared")
	}
}

func TestApplyKeepsEarlierSnapshots(t *testing.T) {
	b := mg.New()
	start := b.Snapshot()
	mustPlay(t, b, 6, 3, 4, 3)
	mustPlay(t, b, 1, 3, 3, 3)
	first, _ := b.History().At(0)
	if first != start {
		t.Fatalf("history[0] changed after moves")
	}
	second, _ := b.History().At(1)
	if second.PieceAt(4, 3).Kind != mg.Pawn || second.ToMove != mg.Black {
		t.Fatalf("history[1] is not the position after d4: %s", second.FEN())
	}
	if _, ok := b.History().At(3); ok {
		t.Fatalf("At(3) should be out of range with three snapshots")
	}
}

func TestApplyCaptureReplacesPiece(t *testing.T) {
	b := mg.MustFromFEN("4k3/8/8/4n3/3P4/8/8/4K3 w - - 0 1")
	mustPlay(t, b, 4, 3, 3, 4)
	if got := b.PieceAt(3, 4); got != (mg.Piece{Kind: mg.Pawn, Side: mg.White}) {
		t.Fatalf("e5 after capture: got %v", got)
	}
}

func TestApplyPromoteSpecial(t *testing.T) {
	b := mg.MustFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	src, _ := b.SquareAt(1, 1)
	dst, _ := b.SquareAt(0, 1)
	m := mg.Move{From: src, To: dst, Special: mg.Special{Kind: mg.SpecialPromote, Promote: mg.Queen}}
	if m.String() != "b7b8q" {
		t.Fatalf("move string: %q", m.String())
	}
	b.Apply(m)
	if got := b.PieceAt(0, 1); got != (mg.Piece{Kind: mg.Queen, Side: mg.White}) {
		t.Fatalf("b8 after promotion: got %v", got)
	}
}

func TestApplyCastleSpecial(t *testing.T) {
	b := mg.MustFromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	king, _ := b.SquareAt(7, 4)
	dst, _ := b.SquareAt(7, 6)
	b.Apply(mg.Move{From: king, To: dst, Special: mg.Special{
		Kind:     mg.SpecialCastle,
		RookFrom: mg.Coord{Row: 7, Col: 7},
		RookTo:   mg.Coord{Row: 7, Col: 5},
	}})
	if b.PieceAt(7, 6).Kind != mg.King || b.PieceAt(7, 5).Kind != mg.Rook || !b.PieceAt(7, 7).IsZero() {
		t.Fatalf("castle not applied: %s", b.FEN())
	}
}

func TestPlayReplaysIndexedMoves(t *testing.T) {
	b := mg.New()
	seq := [][3]int{{6, 0, 1}, {1, 1, 1}, {4, 0, 1}, {1, 0, 1}, {3, 1, 1}}
	var last mg.Move
	for _, s := range seq {
		m, err := b.Play(s[0], s[1], s[2])
		if err != nil {
			t.Fatalf("Play(%v): %v", s, err)
		}
		last = m
	}
	if !last.IsEnPassant() {
		t.Fatalf("final move should be the en passant capture, got %s", last)
	}
	if b.FEN() != "rnbqkbnr/2pppppp/P7/8/8/8/1PPPPPPP/RNBQKBNR b - - 0 1" {
		t.Fatalf("unexpected position %q", b.FEN())
	}
	if b.History().Len() != len(seq)+1 {
		t.Fatalf("history length: got %d", b.History().Len())
	}
}

func TestPlayBadIndex(t *testing.T) {
	b := mg.New()
	_, err := b.Play(6, 0, 2)
	var ie *mg.MoveIndexError
	if !errors.As(err, &ie) || ie.Count != 2 {
		t.Fatalf("expected MoveIndexError with 2 moves, got %v", err)
	}
	if b.History().Len() != 1 || b.SideToMove() != mg.White {
		t.Fatalf("failed Play changed the board")
	}
	if _, err := b.Play(7, 6, 0); !errors.Is(err, mg.ErrNotImplemented) {
		t.Fatalf("Play on a knight: expected ErrNotImplemented, got %v", err)
	}
}

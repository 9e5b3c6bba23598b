package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	mg "chess-rules/chessmg"
	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	verbose := flag.Bool("v", false, "Print every pawn, not only divergences")
	flag.Parse()

	ours, err := pawnTargets(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessmg: %v\n", err)
		os.Exit(2)
	}
	ref, err := gooseTargets(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goosemg: %v\n", err)
		os.Exit(2)
	}

	diffs := compare(ours, ref)
	squares := maps.Keys(ours)
	for sq := range ref {
		if _, ok := ours[sq]; !ok {
			squares = append(squares, sq)
		}
	}
	slices.Sort(squares)
	for _, sq := range squares {
		_, bad := diffs[sq]
		if !bad && !*verbose {
			continue
		}
		mark := "ok"
		if bad {
			mark = "DIFF"
		}
		fmt.Printf("%s: %-4s chessmg [%s] goosemg [%s]\n", sq, mark,
			strings.Join(ours[sq], " "), strings.Join(ref[sq], " "))
	}
	fmt.Printf("Pawns: %d \tDivergent: %d\n", len(squares), len(diffs))
	if len(diffs) > 0 {
		os.Exit(1)
	}
}

// pawnTargets maps each pawn of the side to move to its sorted destinations.
func pawnTargets(fen string) (map[string][]string, error) {
	b, err := mg.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(row, col)
			if p.Kind != mg.Pawn || p.Side != b.SideToMove() {
				continue
			}
			moves, err := mg.Generate(b, row, col)
			if err != nil {
				return nil, err
			}
			from := mg.Coord{Row: row, Col: col}.String()
			out[from] = []string{}
			for _, m := range moves {
				out[from] = append(out[from], m.To.Coord.String())
			}
			slices.Sort(out[from])
		}
	}
	return out, nil
}

// gooseTargets does the same from goosemg's legal moves; promotions collapse to
// their destination.
func gooseTargets(fen string) (map[string][]string, error) {
	b, err := goose.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for _, m := range b.GenerateMoves() {
		if m.MovedPiece().Type() != goose.PieceTypePawn {
			continue
		}
		from := squareName(int(m.From()))
		to := squareName(int(m.To()))
		if !slices.Contains(out[from], to) {
			out[from] = append(out[from], to)
		}
	}
	for _, v := range out {
		slices.Sort(v)
	}
	return out, nil
}

// squareName converts a1=0 .. h8=63 indexing to algebraic.
func squareName(sq int) string {
	return string([]byte{'a' + byte(sq%8), '1' + byte(sq/8)})
}

func compare(ours, ref map[string][]string) map[string]struct{} {
	diffs := make(map[string]struct{})
	for sq, dst := range ours {
		if !slices.Equal(dst, ref[sq]) {
			diffs[sq] = struct{}{}
		}
	}
	for sq, dst := range ref {
		if _, ok := ours[sq]; !ok && len(dst) > 0 {
			diffs[sq] = struct{}{}
		}
	}
	return diffs
}

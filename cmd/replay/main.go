package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mg "chess-rules/chessmg"
)

// demoMoves plays a4, b5, axb5, a5 and bxa6 e.p.
const demoMoves = "6,0,1;1,1,1;4,0,1;1,0,1;3,1,1"

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	moves := flag.String("moves", demoMoves, "Plies as row,col,index triples separated by ';'")
	delay := flag.Duration("delay", time.Second, "Pause after each printed position")
	fenOut := flag.Bool("fen-out", false, "Print the FEN after every ply")
	flag.Parse()

	plies, err := parsePlies(*moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-moves: %v\n", err)
		os.Exit(2)
	}

	board, err := mg.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	show := func() {
		render(os.Stdout, board)
		if *fenOut {
			fmt.Println(board.FEN())
		}
		fmt.Println()
		time.Sleep(*delay)
	}

	show()
	for i, p := range plies {
		m, err := board.Play(p.row, p.col, p.index)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ply %d (%d,%d #%d): %v\n", i+1, p.row, p.col, p.index, err)
			os.Exit(2)
		}
		fmt.Printf("%d. %s", i+1, m)
		if m.IsEnPassant() {
			fmt.Print(" e.p.")
		}
		fmt.Println()
		show()
	}
}

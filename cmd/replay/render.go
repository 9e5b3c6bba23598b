package main

import (
	"bufio"
	"io"

	mg "chess-rules/chessmg"
)

// render writes one block per rank, row 0 first: a separator line, then a
// bracketed glyph per square.
func render(w io.Writer, b *mg.Board) {
	bw := bufio.NewWriter(w)
	grid := b.Grid()
	for row := range grid {
		bw.WriteString("========================\n")
		for _, sq := range grid[row] {
			bw.WriteByte('|')
			bw.WriteRune(sq.Piece.Glyph())
			bw.WriteByte('|')
		}
		bw.WriteByte('\n')
	}
	bw.Flush()
}

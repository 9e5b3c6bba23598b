package chessmg

import "math/rand"

// Zobrist hashing tables for pieces and side to move.
var zobristPiece [2][7][64]uint64 // indexed by side (0 = white), kind, square
var zobristSide uint64            // Zobrist key for side to move (Black to move)

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed so keys are stable across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for side := 0; side < 2; side++ {
		for k := Pawn; k <= King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[side][k][sq] = rnd.Uint64()
			}
		}
	}

	zobristSide = rnd.Uint64()
}

func sideIndex(s Side) int {
	if s == White {
		return 0
	}
	return 1
}

// computeZobrist calculates the Zobrist hash for a grid and side to move.
func computeZobrist(g *Grid, toMove Side) uint64 {
	var key uint64

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g[row][col].Piece
			if p.IsZero() {
				continue
			}
			key ^= zobristPiece[sideIndex(p.Side)][p.Kind][row*8+col]
		}
	}

	// Only XOR if Black to move
	if toMove == Black {
		key ^= zobristSide
	}
	return key
}

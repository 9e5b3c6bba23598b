package chessmg

// Snapshot is a self-contained copy of a position kept in history.
type Snapshot struct {
	Grid   Grid
	ToMove Side
}

// PieceAt returns the piece on (row, col) in the snapshot.
func (s Snapshot) PieceAt(row, col int) Piece { return s.Grid[row][col].Piece }

// Hash returns the Zobrist key of the snapshot.
func (s Snapshot) Hash() uint64 { return computeZobrist(&s.Grid, s.ToMove) }

// History is an append-only arena of snapshots indexed by ply.
type History struct {
	snaps []Snapshot
}

func (h *History) push(s Snapshot) { h.snaps = append(h.snaps, s) }

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.snaps) }

// At returns the snapshot recorded at ply, or ok=false when ply is out of range.
func (h *History) At(ply int) (s Snapshot, ok bool) {
	if ply < 0 || ply >= len(h.snaps) {
		return Snapshot{}, false
	}
	return h.snaps[ply], true
}

// Last returns the most recent snapshot.
func (h *History) Last() (Snapshot, bool) { return h.At(len(h.snaps) - 1) }

// previous returns the snapshot before the most recent one. It needs at least
// two entries.
func (h *History) previous() (Snapshot, bool) { return h.At(len(h.snaps) - 2) }

// Repetitions counts the snapshots whose Zobrist key equals hash.
func (h *History) Repetitions(hash uint64) int {
	n := 0
	for i := range h.snaps {
		if h.snaps[i].Hash() == hash {
			n++
		}
	}
	return n
}

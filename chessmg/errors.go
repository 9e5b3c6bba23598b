package chessmg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is matched by every NotImplementedError.
	ErrNotImplemented = errors.New("move generation not implemented")
	// ErrUnreachablePawn reports a pawn standing on its farthest rank, which
	// cannot happen once promotion is played.
	ErrUnreachablePawn = errors.New("pawn on its last rank")
	ErrOutOfRange      = errors.New("coordinate out of range")
	ErrInvalidFEN      = errors.New("invalid FEN")
)

// NotImplementedError is returned when generation is requested for a kind the
// generator does not cover.
type NotImplementedError struct {
	Kind Kind
	At   Coord
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s on %s: %s", e.Kind, e.At, ErrNotImplemented)
}

func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

// MoveIndexError is returned by Play when the requested index does not select
// one of the generated moves.
type MoveIndexError struct {
	At    Coord
	Index int
	Count int
}

func (e *MoveIndexError) Error() string {
	return fmt.Sprintf("move %d requested on %s, only %d generated", e.Index, e.At, e.Count)
}

// Package hanoi solves the Towers of Hanoi puzzle.
// Moves are produced in the order of the classic recursive decomposition:
// move n-1 disks out of the way, move disk n, move the n-1 disks back on top.
package hanoi

import (
	"errors"
	"fmt"
	"strconv"

	apperrors "github.com/zorak1103/hanoi/internal/errors"
)

// MaxDisks is the largest accepted disk count; MoveCount stays within a uint64.
const MaxDisks = 63

// Common errors
var (
	ErrInvalidDiskCount = errors.New("invalid disk count")
	ErrInvalidPegs      = errors.New("invalid peg labels")
)

// Peg is a free-form label naming one of the three positions.
type Peg string

// Pegs names the three pegs taking part in a solve.
type Pegs struct {
	Source      Peg `json:"source" yaml:"source"`
	Auxiliary   Peg `json:"auxiliary" yaml:"auxiliary"`
	Destination Peg `json:"destination" yaml:"destination"`
}

// DefaultPegs returns the conventional A/B/C labels.
func DefaultPegs() Pegs {
	return Pegs{Source: "A", Auxiliary: "B", Destination: "C"}
}

// Validate checks that every label is non-empty and that the labels are distinct.
func (p Pegs) Validate() error {
	labels := []struct {
		role string
		peg  Peg
	}{
		{"source", p.Source},
		{"auxiliary", p.Auxiliary},
		{"destination", p.Destination},
	}

	for _, l := range labels {
		if l.peg == "" {
			return &apperrors.InvalidArgumentError{
				Argument: l.role + " peg",
				Value:    "",
				Err:      fmt.Errorf("%w: label must not be empty", ErrInvalidPegs),
			}
		}
	}

	if p.Source == p.Auxiliary || p.Source == p.Destination || p.Auxiliary == p.Destination {
		return &apperrors.InvalidArgumentError{
			Argument: "pegs",
			Value:    fmt.Sprintf("%s/%s/%s", p.Source, p.Auxiliary, p.Destination),
			Err:      fmt.Errorf("%w: labels must be distinct", ErrInvalidPegs),
		}
	}
	return nil
}

// Move relocates the top disk of one peg onto another.
// Disk is the rank of the moved disk, 1 being the smallest.
type Move struct {
	Disk int `json:"disk" yaml:"disk"`
	From Peg `json:"from" yaml:"from"`
	To   Peg `json:"to" yaml:"to"`
}

// String renders the move as a human-readable instruction.
func (m Move) String() string {
	return fmt.Sprintf("Move disk %d from %s to %s", m.Disk, m.From, m.To)
}

// EmitFunc receives each move as it is produced.
// Returning an error stops the solve.
type EmitFunc func(Move) error

// ValidateDiskCount rejects counts outside [0, MaxDisks].
func ValidateDiskCount(n int) error {
	if n < 0 || n > MaxDisks {
		return &apperrors.InvalidArgumentError{
			Argument: "disks",
			Value:    strconv.Itoa(n),
			Err:      fmt.Errorf("%w: must be between 0 and %d", ErrInvalidDiskCount, MaxDisks),
		}
	}
	return nil
}

// Solve emits, in order, the moves transferring n disks from pegs.Source to
// pegs.Destination. A zero disk count emits nothing. Arguments are checked
// before the first move is emitted.
func Solve(n int, pegs Pegs, emit EmitFunc) error {
	if err := ValidateDiskCount(n); err != nil {
		return err
	}
	if err := pegs.Validate(); err != nil {
		return err
	}

	if err := solve(n, pegs.Source, pegs.Auxiliary, pegs.Destination, emit); err != nil {
		return fmt.Errorf("solve %d disks from %s to %s: %w", n, pegs.Source, pegs.Destination, err)
	}
	return nil
}

func solve(n int, from, via, to Peg, emit EmitFunc) error {
	if n == 0 {
		return nil
	}
	if err := solve(n-1, from, to, via, emit); err != nil {
		return err
	}
	if err := emit(Move{Disk: n, From: from, To: to}); err != nil {
		return err
	}
	return solve(n-1, via, from, to, emit)
}

// frame is one pending unit of work for SolveIterative. A frame with
// expanded set emits its own disk move instead of splitting further.
type frame struct {
	n             int
	from, via, to Peg
	expanded      bool
}

// SolveIterative produces the same sequence as Solve using an explicit stack,
// so stack usage stays bounded regardless of n.
func SolveIterative(n int, pegs Pegs, emit EmitFunc) error {
	if err := ValidateDiskCount(n); err != nil {
		return err
	}
	if err := pegs.Validate(); err != nil {
		return err
	}

	stack := make([]frame, 0, 2*n+1)
	if n > 0 {
		stack = append(stack, frame{n: n, from: pegs.Source, via: pegs.Auxiliary, to: pegs.Destination})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			if err := emit(Move{Disk: f.n, From: f.from, To: f.to}); err != nil {
				return fmt.Errorf("solve %d disks from %s to %s: %w", n, pegs.Source, pegs.Destination, err)
			}
			continue
		}

		// Pushed in reverse: second half, middle move, first half.
		if f.n > 1 {
			stack = append(stack, frame{n: f.n - 1, from: f.via, via: f.from, to: f.to})
		}
		stack = append(stack, frame{n: f.n, from: f.from, via: f.via, to: f.to, expanded: true})
		if f.n > 1 {
			stack = append(stack, frame{n: f.n - 1, from: f.from, via: f.to, to: f.via})
		}
	}
	return nil
}

// Moves collects the full move sequence for n disks.
func Moves(n int, pegs Pegs) ([]Move, error) {
	var moves []Move
	err := Solve(n, pegs, func(m Move) error {
		moves = append(moves, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moves, nil
}

// MoveCount returns 2^n - 1, the number of moves a solve of n disks produces.
func MoveCount(n int) (uint64, error) {
	if err := ValidateDiskCount(n); err != nil {
		return 0, err
	}
	return 1<<uint(n) - 1, nil
}

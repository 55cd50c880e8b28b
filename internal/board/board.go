// Package board keeps an explicit three-peg model of the puzzle so that a
// move sequence can be replayed and checked against the ordering rule.
package board

import (
	"errors"
	"fmt"

	apperrors "github.com/zorak1103/hanoi/internal/errors"
	"github.com/zorak1103/hanoi/internal/hanoi"
)

// Common errors
var (
	ErrIllegalMove = errors.New("illegal move")
)

// Board holds the disks on each peg, bottom first.
type Board struct {
	disks int
	pegs  hanoi.Pegs
	stack map[hanoi.Peg][]int
	moves int
}

// New returns a board with n disks stacked on the source peg, largest at the bottom.
func New(n int, pegs hanoi.Pegs) (*Board, error) {
	if err := hanoi.ValidateDiskCount(n); err != nil {
		return nil, err
	}
	if err := pegs.Validate(); err != nil {
		return nil, err
	}

	source := make([]int, 0, n)
	for d := n; d >= 1; d-- {
		source = append(source, d)
	}

	return &Board{
		disks: n,
		pegs:  pegs,
		stack: map[hanoi.Peg][]int{
			pegs.Source:      source,
			pegs.Auxiliary:   {},
			pegs.Destination: {},
		},
	}, nil
}

// Apply performs a single move. The board is left unchanged when the move is rejected.
func (b *Board) Apply(m hanoi.Move) error {
	from, ok := b.stack[m.From]
	if !ok {
		return fmt.Errorf("%w: unknown peg %q", ErrIllegalMove, m.From)
	}
	to, ok := b.stack[m.To]
	if !ok {
		return fmt.Errorf("%w: unknown peg %q", ErrIllegalMove, m.To)
	}
	if m.From == m.To {
		return fmt.Errorf("%w: source and destination are both %q", ErrIllegalMove, m.From)
	}
	if len(from) == 0 {
		return fmt.Errorf("%w: peg %q is empty", ErrIllegalMove, m.From)
	}

	top := from[len(from)-1]
	if top != m.Disk {
		return fmt.Errorf("%w: top of %q is disk %d, not disk %d", ErrIllegalMove, m.From, top, m.Disk)
	}
	if len(to) > 0 && to[len(to)-1] < top {
		return fmt.Errorf("%w: disk %d cannot rest on disk %d", ErrIllegalMove, top, to[len(to)-1])
	}

	b.stack[m.From] = from[:len(from)-1]
	b.stack[m.To] = append(to, top)
	b.moves++
	return nil
}

// Emitter returns an EmitFunc that applies each produced move to the board,
// so a solver can be checked while it runs. The first illegal move stops the
// solve with an *apperrors.IllegalMoveError carrying its position.
func (b *Board) Emitter() hanoi.EmitFunc {
	return func(m hanoi.Move) error {
		index := b.moves
		if err := b.Apply(m); err != nil {
			return &apperrors.IllegalMoveError{
				Index:  index,
				Move:   m.String(),
				Reason: "replay failed",
				Err:    err,
			}
		}
		return nil
	}
}

// MovesApplied returns how many moves have been accepted so far.
func (b *Board) MovesApplied() int {
	return b.moves
}

// Solved reports whether every disk sits on the destination peg in order.
func (b *Board) Solved() bool {
	dest := b.stack[b.pegs.Destination]
	if len(dest) != b.disks {
		return false
	}
	for i, d := range dest {
		if d != b.disks-i {
			return false
		}
	}
	return true
}

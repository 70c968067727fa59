// Package reorder moves elements inside ordered sequences without touching the
// caller's slice. It backs drag-and-drop list reordering and field order
// presets.
package reorder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an index or name does not address an
// element of the input sequence.
var ErrInvalidArgument = errors.New("reorder: invalid argument")

// Move returns a copy of list with the element at from removed and reinserted
// at to. Both indices refer to positions in the original list. The input is
// never mutated and the result never shares its backing array.
func Move[T any](list []T, from, to int) ([]T, error) {
	n := len(list)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: source index %d out of range [0,%d)", ErrInvalidArgument, from, n)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("%w: target index %d out of range [0,%d)", ErrInvalidArgument, to, n)
	}

	out := make([]T, n)
	if from == to {
		copy(out, list)
		return out, nil
	}

	moved := list[from]
	if from < to {
		copy(out, list[:from])
		copy(out[from:], list[from+1:to+1])
		out[to] = moved
		copy(out[to+1:], list[to+1:])
		return out, nil
	}

	copy(out, list[:to])
	out[to] = moved
	copy(out[to+1:], list[to:from])
	copy(out[from+1:], list[from+1:])
	return out, nil
}

// MoveName moves the entry called name so it takes the current position of
// before. It is the name-keyed form of Move used for field order presets.
func MoveName(order []string, name, before string) ([]string, error) {
	from := indexOf(order, name)
	if from < 0 {
		return nil, fmt.Errorf("%w: unknown entry %q", ErrInvalidArgument, name)
	}
	to := indexOf(order, before)
	if to < 0 {
		return nil, fmt.Errorf("%w: unknown entry %q", ErrInvalidArgument, before)
	}
	return Move(order, from, to)
}

func indexOf(order []string, name string) int {
	for idx, entry := range order {
		if entry == name {
			return idx
		}
	}
	return -1
}

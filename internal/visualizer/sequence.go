// Package visualizer implements the bounded integer sequences behind the
// interactive simulators. Every operation leaves its input untouched and
// returns the sequence the caller should commit.
package visualizer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Capacity is the maximum length of any simulated sequence.
const Capacity = 8

// BaseAddress and WordSize lay out the simulated array memory.
const (
	BaseAddress = 1000
	WordSize    = 4
)

// Access is the result of reading an array cell.
type Access struct {
	Index      int
	Value      int
	Address    int
	Complexity string
}

// AddressOf returns the simulated memory address of cell i.
func AddressOf(i int) int {
	return BaseAddress + WordSize*i
}

// AccessByIndex reads seq[i].
func AccessByIndex(seq []int, i int) (Access, error) {
	if i < 0 || i >= len(seq) {
		return Access{}, fmt.Errorf("access %d of %d: %w", i, len(seq), ErrOutOfRange)
	}
	return Access{
		Index:      i,
		Value:      seq[i],
		Address:    AddressOf(i),
		Complexity: "O(1)",
	}, nil
}

func appendBounded(seq []int, v int) ([]int, error) {
	if len(seq) >= Capacity {
		return nil, fmt.Errorf("append %d: %w", v, ErrCapacityExceeded)
	}
	out := make([]int, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, v), nil
}

// PushEnd pushes v on top of a stack.
func PushEnd(seq []int, v int) ([]int, error) {
	return appendBounded(seq, v)
}

// EnqueueEnd adds v at the rear of a queue.
func EnqueueEnd(seq []int, v int) ([]int, error) {
	return appendBounded(seq, v)
}

// AppendEnd adds v as the tail node of a list.
func AppendEnd(seq []int, v int) ([]int, error) {
	return appendBounded(seq, v)
}

// PopEnd removes the top of a stack.
func PopEnd(seq []int) (int, []int, error) {
	if len(seq) == 0 {
		return 0, nil, fmt.Errorf("pop: %w", ErrUnderflow)
	}
	last := len(seq) - 1
	return seq[last], slices.Clone(seq[:last]), nil
}

// DequeueFront removes the front of a queue.
func DequeueFront(seq []int) (int, []int, error) {
	if len(seq) == 0 {
		return 0, nil, fmt.Errorf("dequeue: %w", ErrUnderflow)
	}
	return seq[0], slices.Clone(seq[1:]), nil
}

// Peek returns the top of a stack without removing it.
func Peek(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("peek: %w", ErrUnderflow)
	}
	return seq[len(seq)-1], nil
}

// RemoveByValue deletes the earliest element equal to v.
func RemoveByValue(seq []int, v int) ([]int, error) {
	i := slices.Index(seq, v)
	if i < 0 {
		return nil, fmt.Errorf("remove %d: %w", v, ErrNotFound)
	}
	out := slices.Clone(seq)
	return slices.Delete(out, i, i+1), nil
}

// ParseValue converts widget input into an integer.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty input: %w", ErrInvalidNumber)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidNumber)
	}
	return n, nil
}

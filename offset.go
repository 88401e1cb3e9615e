package stateful

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tychoish/stateful/ers"
)

// OffsetState is the state of an OffsetMachine: the number of
// elements remaining until the machine emits. A Remaining of zero (the
// zero value, and the initial state) means the machine is ready to
// detect a match; a positive Remaining means a countdown is active.
type OffsetState struct {
	Remaining int `json:"remaining" yaml:"remaining"`
}

// Ready returns true when no countdown is active.
func (s OffsetState) Ready() bool { return s.Remaining == 0 }

// Validate returns an error for negative countdowns.
func (s OffsetState) Validate() error {
	return ers.When(s.Remaining < 0, ers.Wrapf(ErrInvalidState, "negative countdown %d", s.Remaining))
}

func (s OffsetState) String() string {
	if s.Ready() {
		return "ready"
	}
	return fmt.Sprintf("counting(%d)", s.Remaining)
}

// OffsetMachine is the Machine behind NthElementAfter. Construct
// machines with NewOffsetMachine, which validates the offset.
type OffsetMachine[T any] struct {
	offset int
	parent Predicate[T]
}

// NewOffsetMachine constructs a machine that emits offset elements
// after each match of the parent predicate. The offset must be a
// positive integer that fits in an int; otherwise NewOffsetMachine
// returns an error rooted in ErrInvalidOffset.
func NewOffsetMachine[T any, N constraints.Integer](offset N, parent Predicate[T]) (OffsetMachine[T], error) {
	if offset <= 0 || N(int(offset)) != offset || int(offset) <= 0 {
		return OffsetMachine[T]{}, ers.Wrapf(ErrInvalidOffset, "offset %d", offset)
	}
	return OffsetMachine[T]{offset: int(offset), parent: parent}, nil
}

// Offset returns the configured offset.
func (m OffsetMachine[T]) Offset() int { return m.offset }

// Step counts down an active countdown without evaluating the parent
// predicate, and returns true when the countdown reaches zero. When
// no countdown is active, a match of the parent predicate starts one;
// the matching element itself is never selected.
func (m OffsetMachine[T]) Step(ctx context.Context, state OffsetState, value T, index int) (OffsetState, bool) {
	if state.Remaining > 0 {
		state.Remaining--
		return state, state.Remaining == 0
	}

	if m.parent(ctx, value, index) {
		return OffsetState{Remaining: m.offset}, false
	}
	return state, false
}

// MakeNthElementAfter is the non-panicking form of NthElementAfter,
// and returns an error rooted in ErrInvalidOffset when the offset is
// not positive.
func MakeNthElementAfter[T any, N constraints.Integer](offset N, parentPredicate Predicate[T]) (Predicate[T], error) {
	m, err := NewOffsetMachine(offset, parentPredicate)
	if err != nil {
		return nil, err
	}
	return NewDetector[T, OffsetState](m).Predicate(), nil
}

// NthElementAfter returns a predicate that selects the element offset
// positions after an element for which the parent predicate is true.
//
// The predicate is greedy: while it is counting down towards the
// element it will select, the parent predicate is not evaluated, so
// matches inside that window are ignored and do not restart or extend
// the countdown. The predicate is repeatable: the element after the
// one it selects can start a new countdown.
//
//	isThree := MakePredicate(func(x int) bool { return x == 3 })
//	Filter(ctx, []int{2, 3, 0, 7, 4, 3, 5, -8}, NthElementAfter(2, isThree))
//	// => [7 -8]
//
// NthElementAfter panics with an error rooted in both ErrInvalidOffset
// and ErrInvariantViolation if the offset is not positive. Use
// MakeNthElementAfter to handle the error instead.
func NthElementAfter[T any, N constraints.Integer](offset N, parentPredicate Predicate[T]) Predicate[T] {
	return must(MakeNthElementAfter(offset, parentPredicate))
}

// TrueOneAfter returns a predicate that selects the element directly
// after each element for which the parent predicate is true. It is
// equivalent to NthElementAfter(1, parentPredicate): the element
// directly after a match is always selected, and is never itself
// considered a match.
func TrueOneAfter[T any](parentPredicate Predicate[T]) Predicate[T] {
	return NthElementAfter(1, parentPredicate)
}

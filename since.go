package stateful

import "context"

// SinceState is the state of a SinceMachine: whether the parent
// predicate has matched. The zero value is the initial state.
type SinceState struct {
	Matched bool `json:"matched" yaml:"matched"`
}

func (s SinceState) String() string {
	if s.Matched {
		return "matched"
	}
	return "waiting"
}

// SinceMachine is the Machine behind TrueSince. Once the parent
// predicate matches, it is never evaluated again.
type SinceMachine[T any] struct {
	Parent Predicate[T]
}

func (m SinceMachine[T]) Step(ctx context.Context, state SinceState, value T, index int) (SinceState, bool) {
	if state.Matched {
		return state, true
	}
	if m.Parent(ctx, value, index) {
		return SinceState{Matched: true}, true
	}
	return state, false
}

// TrueSince returns a predicate that is false until the parent
// predicate first matches, and true for the matching element and
// every element after it.
func TrueSince[T any](parentPredicate Predicate[T]) Predicate[T] {
	return NewDetector[T, SinceState](SinceMachine[T]{Parent: parentPredicate}).Predicate()
}

package stateful

import "context"

// EdgeState is the state of a ChangeMachine: the last result of the
// wrapped predicate. The zero value, Off, is the initial state.
type EdgeState struct {
	On bool `json:"on" yaml:"on"`
}

func (s EdgeState) String() string {
	if s.On {
		return "on"
	}
	return "off"
}

// ChangeMachine is the Machine behind OnChange.
type ChangeMachine[T any] struct {
	Parent Predicate[T]
}

// Step evaluates the parent predicate and returns true when its result
// differs from the result recorded in the state.
func (m ChangeMachine[T]) Step(ctx context.Context, state EdgeState, value T, index int) (EdgeState, bool) {
	result := m.Parent(ctx, value, index)
	if result == state.On {
		return state, false
	}
	return EdgeState{On: result}, true
}

// OnChange returns a predicate that is true for every element where the
// result of the parent predicate differs from its result for the
// previous element: both when the parent becomes true and when it
// becomes false again. Before the first element the parent is
// considered false, so the first element is only selected if the
// parent is true for it.
//
//	isThree := MakePredicate(func(x int) bool { return x == 3 })
//	Mask(ctx, []int{2, 3, 3, 3, 4, 3, 5, -8}, OnChange(isThree))
//	// => [false true false false true true true false]
func OnChange[T any](parent Predicate[T]) Predicate[T] {
	return NewDetector[T, EdgeState](ChangeMachine[T]{Parent: parent}).Predicate()
}

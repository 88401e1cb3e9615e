package stateful

import "context"

// ToggleState is the state of a ToggleMachine: whether the machine is
// inside a block. The zero value is the initial (outside) state.
type ToggleState struct {
	On bool `json:"on" yaml:"on"`
}

func (s ToggleState) String() string {
	if s.On {
		return "on"
	}
	return "off"
}

// ToggleMachine is the Machine behind SwitchTrueFalse. Outside of a
// block only ForTrue is evaluated; inside a block only ForFalse is
// evaluated.
type ToggleMachine[T any] struct {
	ForTrue  Predicate[T]
	ForFalse Predicate[T]
}

func (m ToggleMachine[T]) Step(ctx context.Context, state ToggleState, value T, index int) (ToggleState, bool) {
	if !state.On {
		if m.ForTrue(ctx, value, index) {
			return ToggleState{On: true}, true
		}
		return state, false
	}

	if m.ForFalse(ctx, value, index) {
		return ToggleState{}, false
	}
	return state, true
}

// SwitchTrueFalse returns a predicate that selects blocks of
// elements: a block starts with (and includes) an element for which
// predicateForTrue is true, and ends before (and excludes) the next
// element for which predicateForFalse is true. The predicate can
// switch on and off any number of times.
//
// Only one of the two predicates sees each element: predicateForTrue
// while the switch is off, and predicateForFalse while it is on.
//
//	isZero := MakePredicate(func(x int) bool { return x == 0 })
//	isMinusOne := MakePredicate(func(x int) bool { return x == -1 })
//	Filter(ctx, []int{2, 1, 0, 4, 9, -1, 7, 0, 3}, SwitchTrueFalse(isZero, isMinusOne))
//	// => [0 4 9 0 3]
func SwitchTrueFalse[T any](predicateForTrue, predicateForFalse Predicate[T]) Predicate[T] {
	return NewDetector[T, ToggleState](ToggleMachine[T]{
		ForTrue:  predicateForTrue,
		ForFalse: predicateForFalse,
	}).Predicate()
}

// Package stateful provides combinators that wrap element predicates
// and produce new predicates that carry private state across the
// elements of a single, in-order traversal of a sequence.
//
// A Predicate tests one element of a sequence, given the element's
// value and its position. The combinators in this package (OnChange,
// SwitchTrueFalse, NthElementAfter, TrueSince, and TrueOneAfter) each
// return a new predicate instance: calling the same instance for
// successive elements advances its state, and the state of two
// instances, produced by two calls to a combinator, is never shared.
// Reusing an instance for a second traversal carries the state of the
// first traversal into the second; obtain a new instance for every
// traversal.
//
// Stateful predicates are not safe for concurrent use.
//
// The state machines that back the combinators are exported (see
// Machine and Detector) so that the state of a traversal can be
// inspected, serialized, and resumed.
package stateful

import "context"

// Predicate tests one element of a sequence. The context is provided
// by the caller and is passed unchanged to any predicates that the
// predicate wraps. The index is the zero-based position of the
// element in the sequence.
type Predicate[T any] func(ctx context.Context, value T, index int) bool

// NewPredicate is a convenience function to avoid the extra cast when
// creating new predicate values.
func NewPredicate[T any](fn func(context.Context, T, int) bool) Predicate[T] { return fn }

// MakePredicate converts a function that only inspects the value of an
// element into a Predicate.
func MakePredicate[T any](fn func(T) bool) Predicate[T] {
	return func(_ context.Context, value T, _ int) bool { return fn(value) }
}

// MakeIndexed converts a function that inspects the value and the
// position of an element, but not the context, into a Predicate.
func MakeIndexed[T any](fn func(T, int) bool) Predicate[T] {
	return func(_ context.Context, value T, index int) bool { return fn(value, index) }
}

// Test calls the predicate.
func (pf Predicate[T]) Test(ctx context.Context, value T, index int) bool { return pf(ctx, value, index) }

// Check calls the predicate with a context that will never be
// canceled.
func (pf Predicate[T]) Check(value T, index int) bool { return pf(context.Background(), value, index) }

// Bind returns a function that calls the predicate with the provided
// context, for use with the functions in the irt package, or any
// other operation that takes an indexed callback.
func (pf Predicate[T]) Bind(ctx context.Context) func(T, int) bool {
	return func(value T, index int) bool { return pf(ctx, value, index) }
}

// Not returns a predicate that inverts the result of the predicate.
func (pf Predicate[T]) Not() Predicate[T] {
	return func(ctx context.Context, value T, index int) bool { return !pf(ctx, value, index) }
}

// And returns a predicate that is true when the predicate and all of
// the others are true. The predicates are evaluated in order and
// evaluation stops at the first false result: stateful predicates
// after that point do not observe the element. Nil predicates are
// ignored.
func (pf Predicate[T]) And(others ...Predicate[T]) Predicate[T] {
	all := join(pf, others)
	return func(ctx context.Context, value T, index int) bool {
		for _, p := range all {
			if !p(ctx, value, index) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when the predicate or any of the
// others are true. The predicates are evaluated in order and
// evaluation stops at the first true result: stateful predicates
// after that point do not observe the element. Nil predicates are
// ignored.
func (pf Predicate[T]) Or(others ...Predicate[T]) Predicate[T] {
	all := join(pf, others)
	return func(ctx context.Context, value T, index int) bool {
		for _, p := range all {
			if p(ctx, value, index) {
				return true
			}
		}
		return false
	}
}

// PreHook returns a predicate that calls the hook before every call
// to the predicate.
func (pf Predicate[T]) PreHook(op func()) Predicate[T] {
	return func(ctx context.Context, value T, index int) bool { op(); return pf(ctx, value, index) }
}

// PostHook returns a predicate that passes the result of every call
// to the predicate to the hook, before returning it.
func (pf Predicate[T]) PostHook(op func(bool)) Predicate[T] {
	return func(ctx context.Context, value T, index int) bool {
		out := pf(ctx, value, index)
		op(out)
		return out
	}
}

func join[T any](first Predicate[T], rest []Predicate[T]) []Predicate[T] {
	out := make([]Predicate[T], 0, len(rest)+1)
	for _, p := range append([]Predicate[T]{first}, rest...) {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

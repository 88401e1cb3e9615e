package stateful

import (
	"context"
	"iter"

	"github.com/tychoish/stateful/irt"
)

// Filter returns the elements of the slice for which the predicate is
// true. The predicate is called once for every element, in order.
func Filter[T any](ctx context.Context, sl []T, pf Predicate[T]) []T {
	return irt.Collect(irt.Keep(irt.Slice(sl), pf.Bind(ctx)))
}

// Mask returns the result of the predicate for every element of the
// slice. The predicate is called once for every element, in order.
func Mask[T any](ctx context.Context, sl []T, pf Predicate[T]) []bool {
	return irt.Collect(irt.Mark(irt.Slice(sl), pf.Bind(ctx)), 0, len(sl))
}

// Select returns a sequence of the elements of the input sequence for
// which the predicate is true. The predicate is called lazily, as the
// returned sequence is consumed. Because stateful predicates are
// consumed by a traversal, the returned sequence should only be
// iterated once.
func Select[T any](ctx context.Context, seq iter.Seq[T], pf Predicate[T]) iter.Seq[T] {
	return irt.Keep(seq, pf.Bind(ctx))
}

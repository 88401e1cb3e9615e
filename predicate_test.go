package stateful

import (
	"context"
	"testing"

	"github.com/tychoish/stateful/assert"
	"github.com/tychoish/stateful/assert/check"
	"github.com/tychoish/stateful/testt"
)

type ctxKey struct{}

func equalTo[T comparable](target T) Predicate[T] {
	return MakePredicate(func(v T) bool { return v == target })
}

func counting[T any](count *int, pf Predicate[T]) Predicate[T] {
	return pf.PreHook(func() { *count++ })
}

func TestPredicate(t *testing.T) {
	ctx := testt.Context(t)

	t.Run("Constructors", func(t *testing.T) {
		isThree := MakePredicate(func(v int) bool { return v == 3 })
		check.True(t, isThree.Check(3, 0))
		check.False(t, isThree.Check(4, 0))

		odd := MakeIndexed(func(_ string, idx int) bool { return idx%2 == 1 })
		assert.EqualItems(t, Mask(ctx, []string{"a", "b", "c"}, odd), []bool{false, true, false})

		withCtx := NewPredicate(func(ctx context.Context, v int, _ int) bool { return ctx.Value(ctxKey{}) == v })
		check.True(t, withCtx.Test(context.WithValue(ctx, ctxKey{}, 42), 42, 0))
		check.False(t, withCtx.Test(ctx, 42, 0))
	})
	t.Run("Bind", func(t *testing.T) {
		pf := NewPredicate(func(ctx context.Context, _ string, idx int) bool { return ctx.Value(ctxKey{}) == idx })
		fn := pf.Bind(context.WithValue(ctx, ctxKey{}, 1))
		check.False(t, fn("a", 0))
		check.True(t, fn("b", 1))
	})
	t.Run("Not", func(t *testing.T) {
		isThree := equalTo(3)
		check.True(t, isThree.Not().Check(4, 0))
		check.False(t, isThree.Not().Check(3, 0))
	})
	t.Run("And", func(t *testing.T) {
		positive := MakePredicate(func(v int) bool { return v > 0 })
		even := MakePredicate(func(v int) bool { return v%2 == 0 })
		both := positive.And(even, nil)
		assert.EqualItems(t, Filter(ctx, []int{-2, 1, 2, 3, 4}, both), []int{2, 4})

		t.Run("ShortCircuit", func(t *testing.T) {
			calls := 0
			pf := positive.And(counting(&calls, even))
			assert.EqualItems(t, Mask(ctx, []int{-1, -2, 2}, pf), []bool{false, false, true})
			assert.Equal(t, calls, 1)
		})
	})
	t.Run("Or", func(t *testing.T) {
		isOne := equalTo(1)
		isTwo := equalTo(2)
		assert.EqualItems(t, Filter(ctx, []int{1, 2, 3, 1}, isOne.Or(isTwo)), []int{1, 2, 1})

		calls := 0
		pf := isOne.Or(nil, counting(&calls, isTwo))
		assert.EqualItems(t, Mask(ctx, []int{1, 1, 3}, pf), []bool{true, true, false})
		assert.Equal(t, calls, 1)
	})
	t.Run("Hooks", func(t *testing.T) {
		var order []string
		var results []bool
		pf := equalTo(3).
			PreHook(func() { order = append(order, "pre") }).
			PostHook(func(out bool) { order = append(order, "post"); results = append(results, out) })

		assert.EqualItems(t, Mask(ctx, []int{3, 4}, pf), []bool{true, false})
		assert.EqualItems(t, order, []string{"pre", "post", "pre", "post"})
		assert.EqualItems(t, results, []bool{true, false})
	})
}

func TestSequences(t *testing.T) {
	ctx := testt.Context(t)
	isEven := MakePredicate(func(v int) bool { return v%2 == 0 })

	t.Run("Filter", func(t *testing.T) {
		assert.EqualItems(t, Filter(ctx, []int{3, 2, 5, 7, 4, 1}, isEven), []int{2, 4})
		out := Filter(ctx, nil, isEven)
		assert.True(t, out != nil)
		assert.Equal(t, len(out), 0)
	})
	t.Run("Mask", func(t *testing.T) {
		assert.EqualItems(t, Mask(ctx, []int{3, 2, 5, 7, 4, 1}, isEven), []bool{false, true, false, false, true, false})
	})
	t.Run("Select", func(t *testing.T) {
		seq := Select(ctx, func(yield func(int) bool) {
			for _, v := range []int{2, 3, 0, 7, 4, 3, 5, -8} {
				if !yield(v) {
					return
				}
			}
		}, NthElementAfter(2, equalTo(3)))

		var out []int
		for v := range seq {
			out = append(out, v)
		}
		assert.EqualItems(t, out, []int{7, -8})
	})
	t.Run("SelectStopsEarly", func(t *testing.T) {
		calls := 0
		seq := Select(ctx, func(yield func(int) bool) {
			for v := range 10 {
				if !yield(v) {
					return
				}
			}
		}, counting(&calls, isEven))
		for v := range seq {
			if v == 2 {
				break
			}
		}
		assert.Equal(t, calls, 3)
	})
}

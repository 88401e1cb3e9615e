// Package irt, for iterator tools, provides the small set of
// in-order sequence operations that indexed predicates are applied
// with. It has zero dependencies on other packages in this module.
//
// Every operation visits the elements of its input exactly once, in
// order, passing the zero-based position of the element alongside
// its value, and stops pulling from the input as soon as the consumer
// stops iterating.
package irt

import (
	"iter"
	"slices"
)

func Slice[T any](sl []T) iter.Seq[T]    { return slices.Values(sl) }
func Args[T any](items ...T) iter.Seq[T] { return Slice(items) }

// Collect gathers a sequence into a slice. The optional arguments
// set the initial length and capacity of the slice, as with make.
func Collect[T any](seq iter.Seq[T], args ...int) []T {
	size := idxorz(0, args)
	return slices.AppendSeq(make([]T, size, max(size, idxorz(1, args))), seq)
}

// Indexed pairs each element of the sequence with its zero-based
// position.
func Indexed[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for value := range seq {
			if !yield(idx, value) {
				return
			}
			idx++
		}
	}
}

// Keep yields the elements for which the predicate returns true. The
// predicate is called for every element that the consumer pulls, in
// order, including the ones that are not yielded.
func Keep[T any](seq iter.Seq[T], prd func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx, value := range Indexed(seq) {
			if prd(value, idx) && !yield(value) {
				return
			}
		}
	}
}

// Remove is the inverse of Keep, and yields the elements for which
// the predicate returns false.
func Remove[T any](seq iter.Seq[T], prd func(T, int) bool) iter.Seq[T] {
	return Keep(seq, func(v T, idx int) bool { return !prd(v, idx) })
}

// Mark yields the result of the predicate for every element of the
// sequence.
func Mark[T any](seq iter.Seq[T], prd func(T, int) bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for idx, value := range Indexed(seq) {
			if !yield(prd(value, idx)) {
				return
			}
		}
	}
}

// Zip yields each element of the sequence with the result of the
// predicate for that element.
func Zip[T any](seq iter.Seq[T], prd func(T, int) bool) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for idx, value := range Indexed(seq) {
			if !yield(value, prd(value, idx)) {
				return
			}
		}
	}
}

func idxorz[E any, S ~[]E](idx int, sl S) (zero E) {
	if idx < len(sl) {
		return sl[idx]
	}
	return zero
}

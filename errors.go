package stateful

import "github.com/tychoish/stateful/ers"

const (
	// ErrInvalidOffset is returned (or, by NthElementAfter and
	// TrueOneAfter, raised) for offsets that are not positive
	// integers that fit in an int.
	ErrInvalidOffset ers.Error = "offset must be a positive integer"

	// ErrInvalidState is returned by Resume for states that the
	// machine can never reach.
	ErrInvalidState ers.Error = "invalid detector state"

	// ErrInvariantViolation is the root of all panics raised by
	// functions in this package.
	ErrInvariantViolation ers.Error = "invariant violation"
)

// must panics if the error is non-nil, with an error that wraps both
// the error and ErrInvariantViolation.
func must[T any](out T, err error) T {
	if err != nil {
		panic(ers.Join(err, ErrInvariantViolation))
	}
	return out
}

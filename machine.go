package stateful

import (
	"context"
	"fmt"
	"log/slog"
)

// Machine describes the transition function of a stateful predicate.
// Step is called once per element with the state produced by the
// previous call (or the initial state), and returns the next state
// and the result of the predicate for the element. Step does not
// retain or modify anything: all state is in the values it is passed
// and returns.
//
// The zero value of every state type in this package is the initial
// state of its machine.
type Machine[T any, S comparable] interface {
	Step(ctx context.Context, state S, value T, index int) (S, bool)
}

// Detector owns a Machine and its current state, and is the stateful
// predicate instance that the combinators in this package return
// (via the Predicate method.) The state of a detector only changes
// when the detector is tested against an element.
//
// Detectors are not safe for concurrent use.
type Detector[T any, S comparable] struct {
	machine Machine[T, S]
	state   S
	logger  *slog.Logger
}

// NewDetector constructs a detector in the initial (zero) state of
// the machine.
func NewDetector[T any, S comparable](m Machine[T, S]) *Detector[T, S] {
	return &Detector[T, S]{machine: m}
}

// Resume constructs a detector that continues from a state previously
// returned by the State method of another detector for the same
// machine. If the state type has a Validate() error method, Resume
// returns its error for states that the machine can never reach.
func Resume[T any, S comparable](m Machine[T, S], state S) (*Detector[T, S], error) {
	if v, ok := any(state).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &Detector[T, S]{machine: m, state: state}, nil
}

// WithLogger configures the detector to write a debug record to the
// logger for every state transition. Passing a nil logger disables
// logging. WithLogger returns the detector.
func (d *Detector[T, S]) WithLogger(logger *slog.Logger) *Detector[T, S] { d.logger = logger; return d }

// State returns the current state of the detector.
func (d *Detector[T, S]) State() S { return d.state }

// Predicate returns the detector's Test method as a Predicate.
func (d *Detector[T, S]) Predicate() Predicate[T] { return d.Test }

// Test advances the detector by one element and returns the result of
// the machine for that element. If the machine (or a predicate that
// it wraps) panics, the state of the detector is unchanged.
func (d *Detector[T, S]) Test(ctx context.Context, value T, index int) bool {
	next, out := d.machine.Step(ctx, d.state, value, index)
	if d.logger != nil && next != d.state {
		d.logger.DebugContext(ctx, "state transition",
			slog.String("machine", fmt.Sprintf("%T", d.machine)),
			slog.Int("index", index),
			slog.Any("from", d.state),
			slog.Any("to", next),
			slog.Bool("result", out),
		)
	}
	d.state = next
	return out
}

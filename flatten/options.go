// SPDX-License-Identifier: MIT

// Package flatten: functional configuration for Flatten and CreateFlatten.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Contract:
//   - Option values that the caller may legitimately compute at runtime
//     (a depth read from a config file) are NOT validated by panicking;
//     the offending value is recorded and gatherOptions reports it as
//     ErrInvalidOption before any traversal starts.
//   - Option values that can only be wrong through programmer error
//     (a nil copy function) panic in the constructor.
//   - Options are applied in order; the last writer wins.

package flatten

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultDepth descends through every nested level.
	DefaultDepth = Unbounded

	// DefaultMatrix treats the input as irregular (generic traversal).
	DefaultMatrix = false

	// DefaultCopy aliases leaf values instead of deep copying them.
	DefaultCopy = false
)

const panicCopyFuncNil = "flatten: WithCopyFunc(nil)"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	depth  Depth    // DefaultDepth
	matrix bool     // DefaultMatrix
	copy   bool     // DefaultCopy
	copyFn CopyFunc // DeepCopy unless overridden

	err error // first invalid option value, reported by gatherOptions
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		depth:  DefaultDepth,
		matrix: DefaultMatrix,
		copy:   DefaultCopy,
		copyFn: DeepCopy,
	}
}

// WithDepth limits flattening to d nested levels. d == 0 returns the input
// untouched. A negative d is reported as ErrInvalidOption by the entry point;
// use WithUnboundedDepth to lift the limit explicitly.
func WithDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.setErr(fmt.Errorf("WithDepth(%d): depth must be a non-negative integer: %w", d, ErrInvalidOption))
			return
		}
		o.depth = Depth(d)
	}
}

// WithUnboundedDepth removes the depth limit (the default).
func WithUnboundedDepth() Option {
	return func(o *Options) { o.depth = Unbounded }
}

// WithMatrix asserts that the input is rectangular. Flatten then infers the
// shape from the first element of each level and runs a ShapeFlattener.
func WithMatrix(on bool) Option {
	return func(o *Options) { o.matrix = on }
}

// WithCopy requests that every retained element be deep copied.
func WithCopy(on bool) Option {
	return func(o *Options) { o.copy = on }
}

// WithCopyFunc replaces the deep-copy procedure used when copy is enabled.
// It does not enable copying by itself. Panics on nil.
func WithCopyFunc(fn CopyFunc) Option {
	if fn == nil {
		panic(panicCopyFuncNil)
	}

	return func(o *Options) { o.copyFn = fn }
}

// setErr keeps the first recorded option error.
func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// gatherOptions applies opts over the defaults and reports the first invalid value.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// boundCopy returns the copy procedure to bind, or nil when copy is off.
func (o Options) boundCopy() CopyFunc {
	if !o.copy {
		return nil
	}

	return o.copyFn
}

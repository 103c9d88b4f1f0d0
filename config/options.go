// File: options.go
// Role: Functional-options configuration for the optimizer loop (C7),
//       grounded in the teacher's builder/options.go convention: a
//       small Options struct, Option constructors that validate and panic on
//       meaningless input, and a New constructor that applies them in order.
package config

import "math/rand"

// Options bounds and seeds one strategy.Optimizer run.
type Options struct {
	// MaxIterations caps the optimizer loop. Zero means unbounded — the core
	// itself never imposes a bound (spec.md §4.5); this is purely an
	// external, caller-supplied guard.
	MaxIterations int

	// Seed drives any randomized Simplifier (e.g. RandomizedCompound) used
	// by the strategy built around these Options.
	Seed int64

	// Verbose records whether debug-level logging was requested. Nothing in
	// this package or in strategy.Optimizer reads it; zxlog's level changes
	// only through zxlog.SetVerbose.
	Verbose bool

	// StopOnInvalid halts the optimizer loop on the first ValidationFailure
	// instead of continuing past it (spec.md §9's third Open Question
	// leaves this choice to the caller; false reproduces the documented
	// default behavior of continuing regardless).
	StopOnInvalid bool
}

// Option customizes an Options value before a run.
type Option func(*Options)

// WithMaxIterations sets the loop bound. Panics on a negative value, since a
// negative iteration count has no meaningful interpretation.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("config: WithMaxIterations(negative)")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithSeed sets the RNG seed used by randomized simplifiers.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithVerbose toggles debug-level logging.
func WithVerbose(verbose bool) Option {
	return func(o *Options) { o.Verbose = verbose }
}

// WithStopOnInvalid toggles halting the loop on the first ValidationFailure.
func WithStopOnInvalid(stop bool) Option {
	return func(o *Options) { o.StopOnInvalid = stop }
}

// New builds an Options value from zero or more Option values, applied in
// order.
//
// Complexity: O(len(opts)).
func New(opts ...Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Rand returns a *rand.Rand seeded from o.Seed, for callers building a
// strategy.RandomizedCompound from these Options.
func (o Options) Rand() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

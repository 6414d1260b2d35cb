// SPDX-License-Identifier: MIT
// Package mcmc: functional options.
//
// Option constructors validate their arguments and panic on meaningless
// input; the sampler itself never panics on user data.

package mcmc

import "go.uber.org/zap"

// Reference configuration.
const (
	DefaultChainLength   = 60000
	DefaultAcceptLow     = 0.01
	DefaultAcceptHigh    = 0.70
	DefaultMaxRestarts   = 20
	DefaultScaleLimit    = 2.0
	DefaultProgressEvery = 1000
	DefaultRHatThreshold = 1.1
)

// Progress is delivered to the progress callback while a chain runs.
type Progress struct {
	Attempt   int // zero-based restart counter
	Iteration int // completed iterations in this attempt
	Length    int // target chain length
}

// Options configures a Sampler.
type Options struct {
	// Seed selects the random stream; 0 means a fixed default.
	Seed int64

	// ChainLength is the number of outer iterations (accepted-history length).
	ChainLength int

	// AcceptLow and AcceptHigh bound the per-parameter acceptance rate;
	// a rate at or beyond either bound restarts the run.
	AcceptLow, AcceptHigh float64

	// MaxRestarts caps the number of restarts after the first attempt.
	MaxRestarts int

	// ScaleLimit c bounds the global scale factor to [1/c, c].
	ScaleLimit float64

	// RecordMoves keeps the per-move (all-proposals) histories.
	RecordMoves bool

	// RHatThreshold is the potential scale reduction below which Diagnose
	// reports convergence.
	RHatThreshold float64

	// Logger receives chain lifecycle events.
	Logger *zap.Logger

	// Progress, if non-nil, is called every ProgressEvery iterations. Under
	// Diagnose it is called from two goroutines.
	Progress      func(Progress)
	ProgressEvery int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference configuration with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Seed:          0,
		ChainLength:   DefaultChainLength,
		AcceptLow:     DefaultAcceptLow,
		AcceptHigh:    DefaultAcceptHigh,
		MaxRestarts:   DefaultMaxRestarts,
		ScaleLimit:    DefaultScaleLimit,
		RecordMoves:   true,
		RHatThreshold: DefaultRHatThreshold,
		Logger:        zap.NewNop(),
		ProgressEvery: DefaultProgressEvery,
	}
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithChainLength sets the number of iterations per chain. Panics if n <= 0.
func WithChainLength(n int) Option {
	if n <= 0 {
		panic("mcmc: WithChainLength(n<=0)")
	}

	return func(o *Options) { o.ChainLength = n }
}

// WithAcceptanceBounds sets the convergence monitor's rate window.
// Panics unless 0 <= low < high <= 1.
func WithAcceptanceBounds(low, high float64) Option {
	if !(low >= 0 && low < high && high <= 1) {
		panic("mcmc: WithAcceptanceBounds requires 0 <= low < high <= 1")
	}

	return func(o *Options) { o.AcceptLow, o.AcceptHigh = low, high }
}

// WithMaxRestarts caps the restart loop. Panics if n < 0.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic("mcmc: WithMaxRestarts(n<0)")
	}

	return func(o *Options) { o.MaxRestarts = n }
}

// WithScaleLimit sets c in the scale-move range [1/c, c]. Panics if c <= 1.
func WithScaleLimit(c float64) Option {
	if !(c > 1) {
		panic("mcmc: WithScaleLimit(c<=1)")
	}

	return func(o *Options) { o.ScaleLimit = c }
}

// WithoutMoveHistory drops the per-move histories to save memory; only the
// per-iteration accepted histories are kept.
func WithoutMoveHistory() Option {
	return func(o *Options) { o.RecordMoves = false }
}

// WithRHatThreshold sets the Diagnose convergence threshold. Panics if t <= 1.
func WithRHatThreshold(t float64) Option {
	if !(t > 1) {
		panic("mcmc: WithRHatThreshold(t<=1)")
	}

	return func(o *Options) { o.RHatThreshold = t }
}

// WithLogger installs a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mcmc: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithProgress installs a progress callback fired every `every` iterations.
// Panics on a nil callback or every <= 0.
func WithProgress(every int, fn func(Progress)) Option {
	if fn == nil || every <= 0 {
		panic("mcmc: WithProgress requires fn != nil and every > 0")
	}

	return func(o *Options) { o.Progress, o.ProgressEvery = fn, every }
}

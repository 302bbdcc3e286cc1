// SPDX-License-Identifier: MIT
// Package ihvp: functional options shared by both backends.
//
// Contract:
//   - Options are immutable after construction of a backend.
//   - With* constructors panic only on nonsensical values (programmer error).
//   - Defaults are documented constants.

package ihvp

import (
	"io"
	"log"
	"math"
)

const (
	// DefaultIterations is the conjugate-gradient iteration cap per query.
	DefaultIterations = 100

	// DefaultTolerance stops conjugate gradient once ‖r‖ ≤ tol·‖b‖.
	DefaultTolerance = 1e-10

	// DefaultWorkers is the number of goroutines computing per-sample
	// Hessian products inside one batch.
	DefaultWorkers = 1

	// DefaultRCond selects the pseudo-inverse cutoff max(P,P)·ε.
	DefaultRCond = 0.0
)

const (
	panicIterations = "ihvp: WithIterations: n must be > 0"
	panicTolerance  = "ihvp: WithTolerance: tol must be finite and >= 0"
	panicWorkers    = "ihvp: WithWorkers: n must be > 0"
	panicRCond      = "ihvp: WithRCond: rcond must be finite and >= 0"
)

// Option configures a backend.
type Option func(*options)

type options struct {
	logger        *log.Logger
	iterations    int
	tolerance     float64
	workers       int
	rcond         float64
	extractorName string
}

func gatherOptions(opts []Option) options {
	o := options{
		logger:     log.New(io.Discard, "", 0),
		iterations: DefaultIterations,
		tolerance:  DefaultTolerance,
		workers:    DefaultWorkers,
		rcond:      DefaultRCond,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithLogger routes progress messages to l. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIterations sets the conjugate-gradient iteration cap.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterations)
	}

	return func(o *options) { o.iterations = n }
}

// WithTolerance sets the relative residual at which conjugate gradient
// stops before the iteration cap. Zero disables early stopping except on
// exact breakdown.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolerance)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithWorkers sets how many goroutines compute per-sample Hessian products
// within a batch. Results are reduced in sample order, so the output does
// not depend on n.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkers)
	}

	return func(o *options) { o.workers = n }
}

// WithRCond sets the relative singular-value cutoff of the pseudo-inverse.
func WithRCond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicRCond)
	}

	return func(o *options) { o.rcond = rcond }
}

// WithExtractorName selects the ConjugateGradient split point by layer
// name; it takes precedence over the numeric extractor layer.
func WithExtractorName(name string) Option {
	return func(o *options) { o.extractorName = name }
}

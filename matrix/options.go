// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// The package has no per-call option surface; kernels read these constants
// directly so that every caller sees the same numeric behaviour.

package matrix

const (
	// DefaultValidateNaNInf makes Dense.Set reject NaN/±Inf.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the absolute tolerance used by symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultRTol and DefaultATol are the AllClose tolerances used by
	// helpers that do not take explicit ones.
	DefaultRTol = 1e-9
	DefaultATol = 1e-12

	// machineEpsilon is the float64 unit roundoff (2^-52).
	machineEpsilon = 2.220446049250313e-16
)

// Zero values for accumulators; named to keep intent visible at call sites.
const (
	ZeroSum  = 0.0
	NormZero = 0.0
)

// SPDX-License-Identifier: MIT

// Package matrix: public Matrix contract.
package matrix

// Matrix is the minimal mutable 2-D float64 surface the kernels accept.
// Influence code mostly hands around P×n matrices whose columns are
// per-sample vectors; *Dense is the only implementation in this module and
// the kernels copy any other implementation into a Dense once before
// looping.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads (i, j); out-of-range indices yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes (i, j); out-of-range indices yield ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

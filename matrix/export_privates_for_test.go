// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported kernels.
//
// Purpose:
//   - Expose the ew* micro-kernels and numeric constants to matrix_test only,
//     so the *Dense fast path can be checked against the asDense fallback
//     taken by other Matrix implementations.

// MachineEpsilon_TestOnly is the unit roundoff used by DefaultRCond.
const MachineEpsilon_TestOnly = machineEpsilon

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleCols(X, scale)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AsDense_TestOnly forwards to asDense.
func AsDense_TestOnly(m Matrix) (*Dense, error) { return asDense(m) }

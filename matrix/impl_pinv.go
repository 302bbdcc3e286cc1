// SPDX-License-Identifier: MIT

// Package matrix - Moore–Penrose pseudo-inverse.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opPinv = "PseudoInverse"

// DefaultRCond returns the singular-value cutoff used when PseudoInverse is
// called with rcond <= 0: max(rows, cols)·ε.
func DefaultRCond(rows, cols int) float64 {
	return float64(max(rows, cols)) * machineEpsilon
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ of an r×c matrix.
// MAIN DESCRIPTION:
//   - A⁺ = V·Σ⁺·Uᵀ where A = U·Σ·Vᵀ is the thin SVD and Σ⁺ inverts every
//     singular value above rcond·σ_max and zeroes the rest.
//
// Implementation:
//   - Stage 1: copy A into gonum and factorize (mat.SVDThin).
//   - Stage 2: scale the columns of V by 1/σ_k (or 0 below the cutoff).
//   - Stage 3: multiply by Uᵀ and copy back into a c×r Dense.
//
// Behavior highlights:
//   - Singular and rank-deficient inputs are fine; the result is the
//     minimum-norm least-squares inverse.
//   - For a symmetric input the result is symmetric up to roundoff.
//
// Inputs:
//   - m: any non-nil matrix.
//   - rcond: relative cutoff; values <= 0 select DefaultRCond(r, c).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite rcond), ErrSVDFailed.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func PseudoInverse(m Matrix, rcond float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) {
		return nil, matrixErrorf(opPinv, ErrNaNInf)
	}
	if rcond <= 0 {
		rcond = DefaultRCond(m.Rows(), m.Cols())
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrSVDFailed)
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var cutoff float64
	if len(sigma) > 0 {
		cutoff = rcond * sigma[0] // values are sorted in decreasing order
	}
	rowsV, _ := v.Dims()
	var (
		i, k int
		inv  float64
	)
	for k = range sigma {
		inv = 0
		if sigma[k] > cutoff {
			inv = 1 / sigma[k]
		}
		for i = 0; i < rowsV; i++ {
			v.Set(i, k, v.At(i, k)*inv)
		}
	}

	var pinv mat.Dense
	pinv.Mul(&v, u.T())

	out, err := fromGonum(&pinv)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - element-wise micro-kernels shared by the public facades.
//
// Every kernel validates, allocates one result and walks the flat buffer
// in row-major order.

package matrix

import "math"

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	if err := ValidateVecLen(scale, X.Cols()); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	out, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	var i, j, base int
	for i = 0; i < src.r; i++ {
		base = i * src.c
		for j = 0; j < src.c; j++ {
			out.data[base+j] = src.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalised to their absolute value; non-finite
// tolerances are rejected with ErrNaNInf.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

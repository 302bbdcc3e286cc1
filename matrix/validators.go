// SPDX-License-Identifier: MIT

// Package matrix - shared shape and numeric checks.
//
// Kernels delegate every precondition here so that a shape mistake in an
// influence pipeline (a gradient matrix with the wrong parameter count, an
// eval stream paired with the wrong train stream) reports the offending
// dimensions rather than a bare sentinel. The checks allocate nothing and
// the symmetry scan touches only the upper triangle.

package matrix

import (
	"fmt"
	"math"
)

// shapeErrorf wraps err with the validator name and the shapes involved.
func shapeErrorf(check string, err error, dims ...int) error {
	if len(dims) == 0 {
		return fmt.Errorf("%s: %w", check, err)
	}

	return fmt.Errorf("%s %v: %w", check, dims, err)
}

// IsNil reports whether m is absent, either a nil interface or a nil *Dense.
func IsNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil returns ErrNilMatrix if m is nil or a nil *Dense.
func ValidateNotNil(m Matrix) error {
	if IsNil(m) {
		return shapeErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions. Both must be
// non-nil; ValidateBinarySameShape adds the nil checks.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf("ValidateSameShape", ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// ValidateSquare returns ErrNonSquare when Rows() != Cols().
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return shapeErrorf("ValidateSquare", ErrNonSquare, m.Rows(), m.Cols())
	}

	return nil
}

// ValidateVecLen ensures x is non-nil with exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	switch {
	case x == nil:
		return shapeErrorf("ValidateVecLen", ErrNilMatrix)
	case len(x) != n:
		return shapeErrorf("ValidateVecLen", ErrDimensionMismatch, len(x), n)
	}

	return nil
}

// ValidateBinarySameShape checks that a and b are non-nil and equally shaped.
func ValidateBinarySameShape(a, b Matrix) error {
	if IsNil(a) || IsNil(b) {
		return shapeErrorf("ValidateBinarySameShape", ErrNilMatrix)
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil checks that m is non-nil and square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| <= |tol| over the upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite tol), ErrAsymmetry.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return shapeErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // in range after the square check
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return shapeErrorf("ValidateSymmetric", ErrAsymmetry, i, j)
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if IsNil(a) || IsNil(b) {
		return shapeErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return shapeErrorf("ValidateMulCompatible", ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

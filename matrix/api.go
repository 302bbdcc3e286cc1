// SPDX-License-Identifier: MIT

// Package matrix - public facades: constructors and compositions over the
// kernels. Facades hold no loops of their own beyond trivial fills.

package matrix

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Used to remove the roundoff asymmetry of accumulated Hessians.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, 0.5)
}

// ColSums returns c where c[j] = Σ_i m[i,j], computed as mᵀ·1.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	ones := make([]float64, m.Rows())
	for i := range ones {
		ones[i] = 1
	}

	return MatTVec(m, ones)
}

// ColNormsL2 returns the Euclidean norm of every column.
func ColNormsL2(m Matrix) ([]float64, error) { return colNormsL2(m) }

// NormalizeColsL2 returns a copy of X with every column scaled to unit L2
// norm, plus the original norms. All-zero columns are left as zeros.
func NormalizeColsL2(X Matrix) (*Dense, []float64, error) { return normalizeColsL2(X) }

// ColDots returns the column-wise inner products ⟨a[:,j], b[:,j]⟩.
// Shapes must match.
func ColDots(a, b Matrix) ([]float64, error) { return colDots(a, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are taken by absolute value.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

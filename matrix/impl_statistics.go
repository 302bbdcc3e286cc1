// SPDX-License-Identifier: MIT
// Package matrix - column statistics.
//
// Influence matrices hold one vector per column, so normalisation here is
// column-wise: each column is divided by its own L2 norm.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opColNormsL2       = "ColNormsL2"
	opNormalizeColsL2  = "NormalizeColsL2"
	normalizeUnitScale = 1.0
)

// colNormsL2 returns ‖X[:,j]‖₂ for every column j.
func colNormsL2(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColNormsL2, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColNormsL2, err)
	}
	sq := make([]float64, src.c)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			v = src.data[i*src.c+j]
			sq[j] += v * v
		}
	}
	for j = range sq {
		sq[j] = math.Sqrt(sq[j])
	}

	return sq, nil
}

// normalizeColsL2 scales each column to unit L2 norm.
// Implementation:
//   - Stage 1: compute per-column L2 norms.
//   - Stage 2: build scale factors 1/norm; zero columns get scale 1 and stay zero.
//   - Stage 3: apply ewScaleCols to produce a normalized copy.
//
// Returns the normalized copy and the original norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) + O(c).
func normalizeColsL2(X Matrix) (*Dense, []float64, error) {
	norms, err := colNormsL2(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColsL2, err)
	}
	scale := make([]float64, len(norms))
	for j, n := range norms {
		if n > NormZero {
			scale[j] = 1 / n
		} else {
			scale[j] = normalizeUnitScale
		}
	}
	Y, err := ewScaleCols(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColsL2, err)
	}

	return Y, norms, nil
}

// colDots returns out[j] = ⟨A[:,j], B[:,j]⟩ for same-shaped A, B.
func colDots(a, b Matrix) ([]float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf("ColDots", err)
	}
	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf("ColDots", err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf("ColDots", err)
	}
	out := make([]float64, at.r)
	for j := 0; j < at.r; j++ {
		out[j] = floats.Dot(at.data[j*at.c:(j+1)*at.c], bt.data[j*bt.c:(j+1)*bt.c])
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - building matrices from vectors and other matrices.

package matrix

import "fmt"

const (
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opHStack      = "HStack"
)

// FromRows builds an n×d matrix whose i-th row is rows[i].
// All rows must share one positive length (ErrDimensionMismatch otherwise).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	out, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if err = out.SetRow(i, row); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
	}

	return out, nil
}

// FromColumns builds a d×n matrix whose j-th column is cols[j].
// All columns must share one positive length (ErrDimensionMismatch otherwise).
func FromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 {
		return nil, matrixErrorf(opFromColumns, ErrInvalidDimensions)
	}
	out, err := NewDense(len(cols[0]), len(cols))
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	for j, col := range cols {
		if err = out.SetCol(j, col); err != nil {
			return nil, matrixErrorf(opFromColumns, err)
		}
	}

	return out, nil
}

// HStack concatenates matrices left to right. All parts must have the
// same number of rows; the column order of the result follows parts.
func HStack(parts ...Matrix) (*Dense, error) {
	if len(parts) == 0 {
		return nil, matrixErrorf(opHStack, ErrInvalidDimensions)
	}
	rows, cols := -1, 0
	for k, p := range parts {
		if err := ValidateNotNil(p); err != nil {
			return nil, matrixErrorf(opHStack, fmt.Errorf("part %d: %w", k, err))
		}
		if rows >= 0 && p.Rows() != rows {
			return nil, matrixErrorf(opHStack, fmt.Errorf("part %d: %w", k, ErrDimensionMismatch))
		}
		rows = p.Rows()
		cols += p.Cols()
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	var (
		off, i int
		src    *Dense
	)
	for _, p := range parts {
		if src, err = asDense(p); err != nil {
			return nil, matrixErrorf(opHStack, err)
		}
		for i = 0; i < rows; i++ {
			copy(out.data[i*cols+off:i*cols+off+src.c], src.data[i*src.c:(i+1)*src.c])
		}
		off += src.c
	}

	return out, nil
}

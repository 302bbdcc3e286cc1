// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// toGonum copies m into a freshly allocated gonum Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	src, err := asDense(m)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)

	return mat.NewDense(src.r, src.c, buf), nil
}

// fromGonum copies a gonum matrix into a package Dense.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

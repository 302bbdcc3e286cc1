// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/MurphLaws/influenciae/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps a Dense so kernels cannot take the *Dense fast path.
type hide struct{ m *matrix.Dense }

func (h hide) Rows() int                     { return h.m.Rows() }
func (h hide) Cols() int                     { return h.m.Cols() }
func (h hide) At(i, j int) (float64, error)  { return h.m.At(i, j) }
func (h hide) Set(i, j int, v float64) error { return h.m.Set(i, j, v) }
func (h hide) Clone() matrix.Matrix          { return hide{h.m.CloneDense()} }

func TestAsDenseFallbackCopies(t *testing.T) {
	t.Parallel()
	X := MustDense(t, 2, 2, 1, 2, 3, 4)

	same, err := matrix.AsDense_TestOnly(X)
	require.NoError(t, err)
	assert.Same(t, X, same)

	cp, err := matrix.AsDense_TestOnly(hide{X})
	require.NoError(t, err)
	assert.NotSame(t, X, cp)
	assert.Equal(t, X.RawData(), cp.RawData())
}

func TestEwScaleColsFastAndFallbackMatch(t *testing.T) {
	t.Parallel()
	X := MustDense(t, 2, 3, 1, 2, 3, 10, 20, 30)
	scale := []float64{2, 0, -1}

	fast, err := matrix.EwScaleCols_TestOnly(X, scale)
	require.NoError(t, err)
	slow, err := matrix.EwScaleCols_TestOnly(hide{X}, scale)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 0, -3, 20, 0, -30}, fast.RawData())
	assert.Equal(t, fast.RawData(), slow.RawData())

	_, err = matrix.EwScaleCols_TestOnly(X, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEwAllCloseTruthTable(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 1, 3, 1, 2, 3)
	b := MustDense(t, 1, 3, 1, 2, 3.001)

	cases := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact tolerance too tight", 0, 0, false},
		{"atol covers gap", 0, 1e-2, true},
		{"rtol covers gap", 1e-3, 0, true},
		{"negative tolerances normalised", -1e-3, -1e-9, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.EwAllClose_TestOnly(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			slow, err := matrix.EwAllClose_TestOnly(hide{a}, hide{b}, tc.rtol, tc.atol)
			require.NoError(t, err)
			assert.Equal(t, got, slow)
		})
	}
}

func TestEwAllCloseErrors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 1, 2, 1, 2)

	_, err := matrix.EwAllClose_TestOnly(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.EwAllClose_TestOnly(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.EwAllClose_TestOnly(a, MustDense(t, 2, 1, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.EwAllClose_TestOnly(nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

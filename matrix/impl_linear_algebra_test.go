package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/MurphLaws/influenciae/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 4, 3, 2, 1)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 5, 5}, sum.RawData())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -1, 1, 3}, diff.RawData())

	_, err = matrix.Add(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, []float64{58, 64, 139, 154}, p.RawData())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.RawData())

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4, -6, -8, -10, -12}, s.RawData())
	require.Equal(t, 1.0, MustAt(t, a, 0, 0)) // operand untouched
}

func TestMatVecAndMatTVec(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	z, err := matrix.MatTVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, z)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatTVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSymmetrize(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 4, 3)
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 3, 3}, s.RawData())

	_, err = matrix.Symmetrize(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEigenSymmetric(t *testing.T) {
	t.Parallel()
	// Eigenvalues of [[2,1],[1,2]] are 1 and 3.
	a := MustDense(t, 2, 2, 2, 1, 1, 2)
	vals, vecs, err := matrix.Eigen(a, matrix.DefaultEpsilon)
	require.NoError(t, err)
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	require.InDelta(t, 1.0, sorted[0], 1e-12)
	require.InDelta(t, 3.0, sorted[1], 1e-12)

	// A·v = λ·v for every returned pair.
	for k, lambda := range vals {
		v, err := vecs.Col(k)
		require.NoError(t, err)
		av, err := matrix.MatVec(a, v)
		require.NoError(t, err)
		for i := range v {
			require.InDelta(t, lambda*v[i], av[i], 1e-10)
		}
	}
}

func TestEigenRejectsAsymmetric(t *testing.T) {
	_, _, err := matrix.Eigen(MustDense(t, 2, 2, 1, 2, 3, 4), 1e-9)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, 2, 2, 1, 0, 0, 1), math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

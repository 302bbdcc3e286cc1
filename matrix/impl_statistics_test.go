package matrix_test

import (
	"math"
	"testing"

	"github.com/MurphLaws/influenciae/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColsL2(t *testing.T) {
	t.Parallel()
	// Columns: (3,4) norm 5, (0,0) zero, (1,0) norm 1.
	x := MustDense(t, 2, 3,
		3, 0, 1,
		4, 0, 0)
	y, norms, err := matrix.NormalizeColsL2(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 1}, norms)

	after, err := matrix.ColNormsL2(y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, after[0], 1e-15)
	assert.Equal(t, 0.0, after[1])
	assert.InDelta(t, 1.0, after[2], 1e-15)

	for _, v := range y.RawData() {
		assert.False(t, math.IsNaN(v))
	}
	assert.Equal(t, 3.0, MustAt(t, x, 0, 0)) // input untouched
}

func TestColSumsAndDots(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 1, 0, 1, 1)

	s, err := matrix.ColSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, s)

	d, err := matrix.ColDots(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, d)

	_, err = matrix.ColDots(a, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := MustDense(t, 1, 2, 1, 2)
	b := MustDense(t, 1, 2, 1+1e-12, 2)
	ok, err := matrix.AllClose(a, b, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, MustDense(t, 1, 2, 1.1, 2), 1e-9, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

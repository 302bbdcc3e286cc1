package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/MurphLaws/influenciae"
	"github.com/MurphLaws/influenciae/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, influenciae.ErrShape)
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()
	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	src[0] = 100 // the matrix owns a copy
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err = matrix.NewDenseFrom(2, 2, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestRowColAccess(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	require.NoError(t, m.SetCol(0, []float64{-1, -4}))
	require.Equal(t, -4.0, MustAt(t, m, 1, 0))

	require.NoError(t, m.SetRow(0, []float64{7, 8, 9}))
	require.Equal(t, 8.0, MustAt(t, m, 0, 1))

	require.ErrorIs(t, m.SetCol(0, []float64{1}), matrix.ErrDimensionMismatch)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	c := m.CloneDense()
	require.NoError(t, c.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestApply(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, []float64{10, 20, 30, 40}, m.RawData())

	err := m.Apply(func(i, j int, v float64) float64 { return v / 0 })
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
}

func TestString(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4.5)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

package data_test

import (
	"errors"
	"testing"

	"github.com/MurphLaws/influenciae/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeKeepsBatchSize(t *testing.T) {
	t.Parallel()
	ds, err := data.New(points(7), 3)
	require.NoError(t, err)

	sub, err := data.Take(ds, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Len())
	assert.Equal(t, 3, sub.Spec().BatchSize)
	assert.Equal(t, 0.0, sub.Samples()[0].Input[0])

	all, err := data.Take(ds, 100)
	require.NoError(t, err)
	assert.Equal(t, 7, all.Len())
}

func TestShuffleIsSeeded(t *testing.T) {
	t.Parallel()
	ds, err := data.New(points(10), 4)
	require.NoError(t, err)

	a, err := data.Shuffle(ds, 42)
	require.NoError(t, err)
	b, err := data.Shuffle(ds, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Samples(), b.Samples())
	assert.ElementsMatch(t, ds.Samples(), a.Samples())

	// The source keeps its order.
	assert.Equal(t, 0.0, ds.Samples()[0].Input[0])
}

func TestRebatchAndMap(t *testing.T) {
	t.Parallel()
	ds, err := data.New(points(5), 5)
	require.NoError(t, err)

	rb, err := data.Rebatch(ds, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, rb.Cardinality())

	doubled, err := data.Map(rb, func(s data.Sample) (data.Sample, error) {
		return data.Sample{Input: []float64{2 * s.Input[0]}, Label: s.Label}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, doubled.Spec().BatchSize)
	assert.Equal(t, 1, doubled.Spec().InputDim)
	assert.Equal(t, 8.0, doubled.Samples()[4].Input[0])

	boom := errors.New("boom")
	_, err = data.Map(rb, func(data.Sample) (data.Sample, error) { return data.Sample{}, boom })
	require.ErrorIs(t, err, boom)
}

func TestBatchHelpers(t *testing.T) {
	b := data.Batch(points(2))
	assert.Equal(t, [][]float64{{0, 1}, {1, 1}}, b.Inputs())

	c := b.Clone()
	c[0].Input[0] = 99
	assert.Equal(t, 0.0, b[0].Input[0])
}

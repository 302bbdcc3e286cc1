package data_test

import (
	"testing"

	"github.com/MurphLaws/influenciae"
	"github.com/MurphLaws/influenciae/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(n int) []data.Sample {
	out := make([]data.Sample, n)
	for i := range out {
		out[i] = data.Sample{Input: []float64{float64(i), 1}, Label: []float64{float64(2 * i)}}
	}

	return out
}

func TestSliceBatchesWithRemainder(t *testing.T) {
	t.Parallel()
	ds, err := data.New(points(5), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Cardinality())
	assert.Equal(t, data.Spec{InputDim: 2, LabelDim: 1, BatchSize: 2, Batched: true}, ds.Spec())

	var sizes []int
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		sizes = append(sizes, len(b))
	}
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, 5, data.Size(ds))
}

func TestSliceIsReplayable(t *testing.T) {
	t.Parallel()
	ds, err := data.New(points(4), 3)
	require.NoError(t, err)

	first := data.Collect(ds)
	second := data.Collect(ds)
	assert.Equal(t, first, second)

	// Two live iterators do not interfere.
	a, b := ds.Iter(), ds.Iter()
	ba, _ := a.Next()
	bb, _ := b.Next()
	assert.Equal(t, ba, bb)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	_, err := data.New(points(2), 0)
	require.ErrorIs(t, err, data.ErrBatchSize)
	require.ErrorIs(t, err, influenciae.ErrConfiguration)

	_, err = data.New(nil, 2)
	require.ErrorIs(t, err, data.ErrEmpty)

	bad := points(2)
	bad[1].Input = []float64{1}
	_, err = data.New(bad, 2)
	require.ErrorIs(t, err, data.ErrInconsistentSample)
	require.ErrorIs(t, err, influenciae.ErrShape)
}

func TestAssertBatched(t *testing.T) {
	t.Parallel()
	ub, err := data.Unbatched(points(3))
	require.NoError(t, err)
	require.ErrorIs(t, data.AssertBatched(ub), data.ErrNotBatched)
	require.ErrorIs(t, data.AssertBatched(ub), influenciae.ErrShape)
	require.ErrorIs(t, data.AssertBatched(nil), data.ErrNilDataset)
	var absent *data.Slice
	require.ErrorIs(t, data.AssertBatched(absent), data.ErrNilDataset)
	assert.True(t, data.IsNil(absent))

	ds, err := data.New(points(3), 1)
	require.NoError(t, err)
	require.NoError(t, data.AssertBatched(ds))
}

func TestFromVectorsAndBatch(t *testing.T) {
	t.Parallel()
	vs, err := data.FromVectors([][]float64{{1, 2}, {3, 4}, {5, 6}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, vs.Spec().LabelDim)
	assert.Equal(t, 2, vs.Cardinality())

	one, err := data.FromBatch(data.Batch(points(4)))
	require.NoError(t, err)
	assert.Equal(t, 1, one.Cardinality())
	assert.Equal(t, 4, one.Len())
}

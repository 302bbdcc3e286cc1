package ihvp_test

import (
	"math/rand"
	"testing"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
	"github.com/MurphLaws/influenciae/model"
	"github.com/stretchr/testify/require"
)

// linearFixture is y = w·x + b over three features (P = 4) with six
// training points in batches of two.
func linearFixture(t *testing.T) (*model.Sequential, *data.Slice) {
	t.Helper()
	net, err := model.NewSequential(3, model.SquaredError{}, model.NewDense(3, 1))
	require.NoError(t, err)
	require.NoError(t, net.SetParams([]float64{0.5, -0.25, 1, 0.1}))

	samples := []data.Sample{
		{Input: []float64{1, 0, 2}, Label: []float64{1}},
		{Input: []float64{0, 1, -1}, Label: []float64{-1}},
		{Input: []float64{2, 1, 0}, Label: []float64{0.5}},
		{Input: []float64{-1, 2, 1}, Label: []float64{2}},
		{Input: []float64{0.5, -1, 3}, Label: []float64{0}},
		{Input: []float64{1, 1, 1}, Label: []float64{1.5}},
	}
	ds, err := data.New(samples, 2)
	require.NoError(t, err)

	return net, ds
}

// linearHessian is (1/N)·Σ z zᵀ with z = [x; 1].
func linearHessian(t *testing.T, ds data.Dataset) *matrix.Dense {
	t.Helper()
	h, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	all := data.Collect(ds)
	raw := h.RawData()
	for _, s := range all {
		z := append(append([]float64(nil), s.Input...), 1)
		for i := range z {
			for j := range z {
				raw[i*4+j] += z[i] * z[j] / float64(len(all))
			}
		}
	}

	return h
}

// mlpFixture is Dense(3,4) → Tanh → Dense(4,2) with squared error and
// eight training points in batches of three.
func mlpFixture(t *testing.T) (*model.Sequential, *data.Slice) {
	t.Helper()
	net, err := model.NewSequential(3, model.SquaredError{},
		&model.Dense{In: 3, Out: 4, Name: "features"},
		&model.Tanh{Name: "act"},
		&model.Dense{In: 4, Out: 2, Name: "head"},
	)
	require.NoError(t, err)
	net.Init(5)

	rng := rand.New(rand.NewSource(17))
	samples := make([]data.Sample, 8)
	for i := range samples {
		x := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		samples[i] = data.Sample{Input: x, Label: []float64{rng.NormFloat64(), rng.NormFloat64()}}
	}
	ds, err := data.New(samples, 3)
	require.NoError(t, err)

	return net, ds
}

func requireClose(t *testing.T, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

package influence_test

import (
	"math/rand"
	"testing"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/model"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var linearParams = []float64{0.5, -0.25, 1, 0.1}

// linearFixture is y = w·x + b over three features (P = 4) with six
// training points in batches of two.
func linearFixture(t *testing.T) (*model.Sequential, *data.Slice) {
	t.Helper()
	net, err := model.NewSequential(3, model.SquaredError{}, model.NewDense(3, 1))
	require.NoError(t, err)
	require.NoError(t, net.SetParams(linearParams))

	ds, err := data.New([]data.Sample{
		{Input: []float64{1, 0, 2}, Label: []float64{1}},
		{Input: []float64{0, 1, -1}, Label: []float64{-1}},
		{Input: []float64{2, 1, 0}, Label: []float64{0.5}},
		{Input: []float64{-1, 2, 1}, Label: []float64{2}},
		{Input: []float64{0.5, -1, 3}, Label: []float64{0}},
		{Input: []float64{1, 1, 1}, Label: []float64{1.5}},
	}, 2)
	require.NoError(t, err)

	return net, ds
}

// augmented returns z = [x; 1].
func augmented(s data.Sample) []float64 {
	return append(append([]float64(nil), s.Input...), 1)
}

// linearGradient is (w·x + b − y)·z for the linear fixture.
func linearGradient(s data.Sample) *mat.VecDense {
	z := augmented(s)
	r := -s.Label[0]
	for i, w := range linearParams {
		r += w * z[i]
	}
	g := mat.NewVecDense(len(z), z)
	g.ScaleVec(r, g)

	return g
}

// linearHessian is (1/N)·Σ z zᵀ over ds.
func linearHessian(ds data.Dataset) *mat.Dense {
	all := data.Collect(ds)
	h := mat.NewDense(4, 4, nil)
	for _, s := range all {
		z := mat.NewVecDense(4, augmented(s))
		h.RankOne(h, 1/float64(len(all)), z, z)
	}

	return h
}

// quadratic is aᵀ·H⁻¹·b.
func quadratic(t *testing.T, h *mat.Dense, a, b *mat.VecDense) float64 {
	t.Helper()
	var x mat.VecDense
	require.NoError(t, x.SolveVec(h, b))

	return mat.Dot(a, &x)
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

// SPDX-License-Identifier: MIT

package influence

import (
	"fmt"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/ihvp"
	"github.com/MurphLaws/influenciae/matrix"
	"github.com/MurphLaws/influenciae/model"
	"github.com/MurphLaws/influenciae/topk"
	"gonum.org/v1/gonum/floats"
)

// Calculator computes influence estimates through one IHVP backend. It is
// safe for sequential use; the backend's Hessian state is never mutated.
type Calculator struct {
	backend ihvp.IHVP
	opts    options
}

// New wraps an existing backend. Only WithNormalize and WithLogger affect
// a Calculator; backend-building options are ignored here.
func New(backend ihvp.IHVP, opts ...Option) (*Calculator, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}

	return &Calculator{backend: backend, opts: gatherOptions(opts)}, nil
}

// NewFromDataset builds the backend selected by WithBackend from net and
// train, then wraps it.
//
// Implementation:
//   - Stage 1: with WithShuffleSeed, shuffle train deterministically.
//   - Stage 2: with WithHessianSamples(n), keep the first n samples.
//   - Stage 3: ihvp.NewExact on the subset, or ihvp.NewConjugateGradient
//     split at WithExtractorLayer.
//
// Errors:
//   - ErrUnknownKind plus every error of the chosen backend constructor.
func NewFromDataset(net model.Splitter, train data.Dataset, opts ...Option) (*Calculator, error) {
	o := gatherOptions(opts)
	if o.kind != KindExact && o.kind != KindCGD {
		return nil, fmt.Errorf("kind %d: %w", o.kind, ErrUnknownKind)
	}
	if err := data.AssertBatched(train); err != nil {
		return nil, err
	}

	subset := train
	if o.shuffle {
		s, err := data.Shuffle(subset, o.seed)
		if err != nil {
			return nil, err
		}
		subset = s
	}
	if o.hessianSamples > 0 {
		s, err := data.Take(subset, o.hessianSamples)
		if err != nil {
			return nil, err
		}
		subset = s
	}
	if o.hessianBatch > 0 {
		s, err := data.Rebatch(subset, o.hessianBatch)
		if err != nil {
			return nil, err
		}
		subset = s
	}

	backendOpts := append([]ihvp.Option{ihvp.WithLogger(o.logger)}, o.ihvpOpts...)
	var (
		backend ihvp.IHVP
		err     error
	)
	switch o.kind {
	case KindCGD:
		backend, err = ihvp.NewConjugateGradient(net, o.extractorLayer, subset, backendOpts...)
	default:
		backend, err = ihvp.NewExact(net, subset, nil, backendOpts...)
	}
	if err != nil {
		return nil, err
	}
	o.logger.Printf("influence: %s backend over %d parameters", o.kind, backend.ParamCount())

	return &Calculator{backend: backend, opts: o}, nil
}

// Backend returns the wrapped IHVP backend.
func (c *Calculator) Backend() ihvp.IHVP { return c.backend }

// ComputeInfluence returns one influence vector per point of ds (the IHVP
// of its loss gradient), in input order, normalised under WithNormalize.
func (c *Calculator) ComputeInfluence(ds data.Dataset) (*matrix.Dense, error) {
	out, err := c.backend.ComputeIHVP(ds, true)
	if err != nil {
		return nil, err
	}

	return c.normalize(out)
}

// ComputeInfluenceBatch is ComputeInfluence for one in-memory batch.
func (c *Calculator) ComputeInfluenceBatch(b data.Batch) (*matrix.Dense, error) {
	out, err := c.backend.ComputeIHVPBatch(b, true)
	if err != nil {
		return nil, err
	}

	return c.normalize(out)
}

func (c *Calculator) normalize(m *matrix.Dense) (*matrix.Dense, error) {
	if !c.opts.normalize {
		return m, nil
	}
	out, _, err := matrix.NormalizeColsL2(m)

	return out, err
}

// ComputeInfluenceValues returns, for the i-th training point and the i-th
// evaluation point, ∇L(eval_i)ᵀ·H⁻¹·∇L(train_i). A nil eval pairs train
// with itself. Training batches are streamed one at a time; evaluation
// samples are consumed in step regardless of either set's batch size.
//
// Errors:
//   - ErrSizeMismatch when the sets differ in sample count.
//   - data.ErrNotBatched and backend errors.
func (c *Calculator) ComputeInfluenceValues(train, eval data.Dataset) ([]float64, error) {
	eval, err := pairDatasets(train, eval)
	if err != nil {
		return nil, err
	}

	evalStream := newSampleStream(eval)
	var out []float64
	it := train.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		if len(b) == 0 {
			continue
		}
		infl, err := c.ComputeInfluenceBatch(b)
		if err != nil {
			return nil, err
		}
		evalBatch := evalStream.next(len(b))
		grads, err := c.backend.Gradients(evalBatch)
		if err != nil {
			return nil, err
		}
		gt, err := matrix.Transpose(grads)
		if err != nil {
			return nil, err
		}
		vals, err := matrix.ColDots(gt, infl)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	c.opts.logger.Printf("influence: %d influence values", len(out))

	return out, nil
}

// ComputeInfluenceGroup returns the P×1 influence vector of removing every
// point of group at once: H⁻¹·Σ_i ∇L(z_i), normalised under WithNormalize.
func (c *Calculator) ComputeInfluenceGroup(group data.Dataset) (*matrix.Dense, error) {
	g, err := c.gradientSum(group)
	if err != nil {
		return nil, err
	}
	out, err := c.backend.ComputeIHVPBatch(data.Batch{{Input: g}}, false)
	if err != nil {
		return nil, err
	}

	return c.normalize(out)
}

// ComputeInfluenceValuesGroup returns (Σ_j ∇L(eval_j))ᵀ·H⁻¹·Σ_i ∇L(train_i),
// the joint influence of the training group on the evaluation group. A nil
// eval uses train; otherwise both groups must hold the same number of
// samples (ErrSizeMismatch).
func (c *Calculator) ComputeInfluenceValuesGroup(train, eval data.Dataset) (float64, error) {
	eval, err := pairDatasets(train, eval)
	if err != nil {
		return 0, err
	}
	infl, err := c.ComputeInfluenceGroup(train)
	if err != nil {
		return 0, err
	}
	g, err := c.gradientSum(eval)
	if err != nil {
		return 0, err
	}
	v, err := infl.Col(0)
	if err != nil {
		return 0, err
	}

	return floats.Dot(g, v), nil
}

// pairDatasets defaults eval to train and checks that both are batched and
// equally sized.
func pairDatasets(train, eval data.Dataset) (data.Dataset, error) {
	if data.IsNil(eval) {
		eval = train
	}
	if err := data.AssertBatched(train); err != nil {
		return nil, err
	}
	if err := data.AssertBatched(eval); err != nil {
		return nil, err
	}
	if nt, ne := data.Size(train), data.Size(eval); nt != ne {
		return nil, fmt.Errorf("train %d, eval %d: %w", nt, ne, ErrSizeMismatch)
	}

	return eval, nil
}

// gradientSum streams ds and sums its per-sample gradients.
func (c *Calculator) gradientSum(ds data.Dataset) ([]float64, error) {
	if err := data.AssertBatched(ds); err != nil {
		return nil, err
	}
	sum := make([]float64, c.backend.ParamCount())
	seen := 0
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		if len(b) == 0 {
			continue
		}
		g, err := c.backend.Gradients(b)
		if err != nil {
			return nil, err
		}
		cs, err := matrix.ColSums(g)
		if err != nil {
			return nil, err
		}
		floats.Add(sum, cs)
		seen += len(b)
	}
	if seen == 0 {
		return nil, ihvp.ErrEmptyDataset
	}

	return sum, nil
}

// TopK returns, for every query point, the k training points with the
// largest influence score ∇L(query)ᵀ·infl(train), scores descending.
//
// Implementation:
//   - Stage 1: query gradients once (q×P).
//   - Stage 2: per training batch, influence vectors (P×B), scores
//     q×B by one matrix product, merged into a topk.Accumulator.
//   - Stage 3: read out the accumulator.
//
// Only k entries per query are held between batches. Fewer than k results
// are returned when train has fewer than k samples.
//
// Errors:
//   - ErrEmptyQuery, topk.ErrCapacity (k ≤ 0), data.ErrNotBatched and
//     backend errors.
func (c *Calculator) TopK(query data.Batch, train data.Dataset, k int) ([][]float64, [][]data.Sample, error) {
	if len(query) == 0 {
		return nil, nil, ErrEmptyQuery
	}
	if err := data.AssertBatched(train); err != nil {
		return nil, nil, err
	}
	acc, err := topk.New[data.Sample](len(query), k)
	if err != nil {
		return nil, nil, err
	}
	qg, err := c.backend.Gradients(query)
	if err != nil {
		return nil, nil, err
	}

	batches := 0
	it := train.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		if len(b) == 0 {
			continue
		}
		infl, err := c.ComputeInfluenceBatch(b)
		if err != nil {
			return nil, nil, err
		}
		scores, err := matrix.Mul(qg, infl)
		if err != nil {
			return nil, nil, err
		}
		if err = acc.AddShared(scores, b); err != nil {
			return nil, nil, err
		}
		batches++
	}
	c.opts.logger.Printf("influence: top-%d over %d batches for %d queries", k, batches, len(query))

	scores, samples := acc.Get()

	return scores, samples, nil
}

// SPDX-License-Identifier: MIT

package ihvp

import (
	"fmt"
	"sync"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
	"github.com/MurphLaws/influenciae/model"
	"gonum.org/v1/gonum/floats"
)

// ConjugateGradient answers IHVP queries by solving H·x = q with a
// fixed-iteration conjugate-gradient loop over the parameters of a tail
// sub-network. The Hessian is never formed: each operator application
// streams the frozen feature-map dataset once.
type ConjugateGradient struct {
	head        model.Extractor
	tail        model.Model
	features    data.Dataset
	n           int // training samples in one pass
	cardinality int // batches in one pass
	opts        options

	mu        sync.Mutex
	residuals []float64
}

// NewConjugateGradient splits net at extractorLayer (or at the layer named
// by WithExtractorName), runs the head once over train to build the
// feature-map dataset with the same batch size, and records the sample
// count and cardinality used to weight every Hessian application.
//
// Errors:
//   - ErrNilModel, ErrExtractorLayer (configuration; also when the tail
//     has no parameters).
//   - data.ErrNotBatched, ErrEmptyDataset (shape).
func NewConjugateGradient(net model.Splitter, extractorLayer int, train data.Dataset, opts ...Option) (*ConjugateGradient, error) {
	if net == nil {
		return nil, ErrNilModel
	}
	if err := data.AssertBatched(train); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	if o.extractorName != "" {
		idx, err := net.LayerIndex(o.extractorName)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExtractorLayer, err)
		}
		extractorLayer = idx
	}
	if extractorLayer < 0 || extractorLayer >= net.NumLayers() {
		return nil, fmt.Errorf("layer %d of %d: %w", extractorLayer, net.NumLayers(), ErrExtractorLayer)
	}
	head, tail, err := net.Split(extractorLayer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractorLayer, err)
	}
	if tail.ParamCount() == 0 {
		return nil, fmt.Errorf("layer %d leaves no trainable tail: %w", extractorLayer, ErrExtractorLayer)
	}

	features, err := data.Map(train, func(s data.Sample) (data.Sample, error) {
		f, err := head.Evaluate(s.Input)
		if err != nil {
			return data.Sample{}, err
		}

		return data.Sample{Input: f, Label: s.Label}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ihvp: feature map: %w", err)
	}

	c := &ConjugateGradient{
		head:        head,
		tail:        tail,
		features:    features,
		n:           features.Len(),
		cardinality: features.Cardinality(),
		opts:        o,
	}
	if c.n == 0 {
		return nil, ErrEmptyDataset
	}
	o.logger.Printf("ihvp: cg: feature map of %d samples in %d batches, %d tail parameters",
		c.n, c.cardinality, tail.ParamCount())

	return c, nil
}

// ParamCount returns P', the tail's parameter count.
func (c *ConjugateGradient) ParamCount() int { return c.tail.ParamCount() }

// Dim implements Operator.
func (c *ConjugateGradient) Dim() int { return c.tail.ParamCount() }

// Apply implements Operator: it returns the mean training Hessian of the
// tail applied to x, (1/N)·Σ_i H_i·x, from exactly one pass of
// cardinality batches over a fresh iterator.
func (c *ConjugateGradient) Apply(x []float64) ([]float64, error) {
	if len(x) != c.Dim() {
		return nil, fmt.Errorf("direction %d want %d: %w", len(x), c.Dim(), ErrVectorLen)
	}
	acc := make([]float64, len(x))
	it := c.features.Iter()
	for k := 0; k < c.cardinality; k++ {
		b, ok := it.Next()
		if !ok {
			return nil, fmt.Errorf("batch %d of %d: %w", k, c.cardinality, ErrShortDataset)
		}
		parts, err := parallelMap(len(b), c.opts.workers, func(i int) ([]float64, error) {
			return c.tail.HVP(b[i], x)
		})
		if err != nil {
			return nil, fmt.Errorf("ihvp: cg: batch %d: %w", k, err)
		}
		sumInto(acc, parts)
	}
	floats.Scale(1/float64(c.n), acc)

	return acc, nil
}

// Solve runs the configured conjugate-gradient loop for one right-hand
// side and returns the full residual history.
func (c *ConjugateGradient) Solve(b []float64) (Result, error) {
	return Solve(c, b, c.opts.iterations, c.opts.tolerance)
}

// Gradients maps b through the frozen head and returns the tail's
// per-sample gradients (len(b)×P').
func (c *ConjugateGradient) Gradients(b data.Batch) (*matrix.Dense, error) {
	mapped := make(data.Batch, len(b))
	for i, s := range b {
		f, err := c.head.Evaluate(s.Input)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		mapped[i] = data.Sample{Input: f, Label: s.Label}
	}

	return c.tail.PerSampleGradient(mapped)
}

// ComputeIHVP solves H·x = q for every query of ds. Residuals afterwards
// holds the final residual of every column.
func (c *ConjugateGradient) ComputeIHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error) {
	var all []float64
	out, err := streamColumns(ds, func(b data.Batch) (*matrix.Dense, error) {
		block, res, err := c.solveBatch(b, useGradient)
		all = append(all, res...)
		return block, err
	})
	if err != nil {
		return nil, err
	}
	c.setResiduals(all)

	return out, nil
}

// ComputeIHVPBatch solves H·x = q for every query of b.
func (c *ConjugateGradient) ComputeIHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error) {
	out, res, err := c.solveBatch(b, useGradient)
	if err != nil {
		return nil, err
	}
	c.setResiduals(res)

	return out, nil
}

func (c *ConjugateGradient) solveBatch(b data.Batch, useGradient bool) (*matrix.Dense, []float64, error) {
	q, err := queryColumns(b, useGradient, c.Dim(), c.Gradients)
	if err != nil {
		return nil, nil, err
	}
	cols := make([][]float64, q.Cols())
	res := make([]float64, q.Cols())
	for j := range cols {
		rhs, err := q.Col(j)
		if err != nil {
			return nil, nil, err
		}
		r, err := c.Solve(rhs)
		if err != nil {
			return nil, nil, err
		}
		cols[j], res[j] = r.X, r.Residual()
		c.opts.logger.Printf("ihvp: cg: query %d solved in %d iterations, residual %.3e", j, r.Iterations, r.Residual())
	}
	out, err := matrix.FromColumns(cols)
	if err != nil {
		return nil, nil, err
	}

	return out, res, nil
}

// ComputeHVP applies the matrix-free Hessian to every query of ds.
func (c *ConjugateGradient) ComputeHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error) {
	return streamColumns(ds, func(b data.Batch) (*matrix.Dense, error) {
		return c.ComputeHVPBatch(b, useGradient)
	})
}

// ComputeHVPBatch applies the matrix-free Hessian to every query of b.
func (c *ConjugateGradient) ComputeHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error) {
	q, err := queryColumns(b, useGradient, c.Dim(), c.Gradients)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, q.Cols())
	for j := range cols {
		x, err := q.Col(j)
		if err != nil {
			return nil, err
		}
		if cols[j], err = c.Apply(x); err != nil {
			return nil, err
		}
	}

	return matrix.FromColumns(cols)
}

// Residuals returns the final residual norm of every column produced by
// the most recent ComputeIHVP or ComputeIHVPBatch call.
func (c *ConjugateGradient) Residuals() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]float64(nil), c.residuals...)
}

func (c *ConjugateGradient) setResiduals(r []float64) {
	c.mu.Lock()
	c.residuals = r
	c.mu.Unlock()
}

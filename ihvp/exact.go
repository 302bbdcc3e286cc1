// SPDX-License-Identifier: MIT

package ihvp

import (
	"fmt"
	"sync"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
	"github.com/MurphLaws/influenciae/model"
)

// Exact answers IHVP queries with the pseudo-inverse of the materialised
// mean Hessian.
//
// Exactly one source supplies the Hessian: a training dataset (streamed
// once at construction) or a precomputed matrix. The inverse is computed
// eagerly; when only the inverse is retained, the Hessian is re-derived
// from it on first use and cached. Neither is mutated after construction.
type Exact struct {
	model model.Model
	p     int
	opts  options

	inverse *matrix.Dense

	mu      sync.Mutex
	hessian *matrix.Dense // nil until first needed on the dataset path
}

// NewExact builds the backend from m and exactly one of train and hessian.
//
// Implementation:
//   - Stage 1: validate the source combination (ErrBackendArgs) and shapes.
//   - Stage 2 (dataset): stream every batch, sum per-sample Hessians
//     (column j of H_i is m.HVP(sample_i, e_j)), divide by the sample count
//     and symmetrize to remove roundoff asymmetry.
//   - Stage 3: Moore–Penrose pseudo-inverse once, with the WithRCond cutoff.
//
// Errors:
//   - ErrNilModel, ErrBackendArgs (configuration).
//   - data.ErrNotBatched, ErrEmptyDataset, ErrVectorLen (shape).
//
// Complexity:
//   - Time O(N·P·c_hvp + P³), where c_hvp is one HVP; Space O(B·P² + P²)
//     for batch size B.
func NewExact(m model.Model, train data.Dataset, hessian matrix.Matrix, opts ...Option) (*Exact, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	noTrain, noHessian := data.IsNil(train), matrix.IsNil(hessian)
	if noTrain == noHessian {
		return nil, ErrBackendArgs
	}
	e := &Exact{model: m, p: m.ParamCount(), opts: gatherOptions(opts)}

	var source *matrix.Dense
	if !noHessian {
		if hessian.Rows() != e.p || hessian.Cols() != e.p {
			return nil, fmt.Errorf("hessian %dx%d for %d parameters: %w", hessian.Rows(), hessian.Cols(), e.p, ErrVectorLen)
		}
		h, err := matrix.Symmetrize(hessian)
		if err != nil {
			return nil, fmt.Errorf("ihvp: exact: %w", err)
		}
		e.hessian, source = h, h
	} else {
		h, err := e.meanHessian(train)
		if err != nil {
			return nil, err
		}
		source = h
	}

	inv, err := matrix.PseudoInverse(source, e.opts.rcond)
	if err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}
	e.inverse = inv
	e.opts.logger.Printf("ihvp: exact: inverted %dx%d hessian", e.p, e.p)

	return e, nil
}

// meanHessian streams train and returns (1/N)·Σ_i H_i.
func (e *Exact) meanHessian(train data.Dataset) (*matrix.Dense, error) {
	if err := data.AssertBatched(train); err != nil {
		return nil, err
	}
	acc, err := matrix.NewDense(e.p, e.p)
	if err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}
	sum := acc.RawData()

	var n, batches int
	it := train.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		parts, err := parallelMap(len(b), e.opts.workers, func(i int) ([]float64, error) {
			return e.sampleHessian(b[i])
		})
		if err != nil {
			return nil, fmt.Errorf("ihvp: exact: batch %d: %w", batches, err)
		}
		sumInto(sum, parts)
		n += len(b)
		batches++
	}
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	e.opts.logger.Printf("ihvp: exact: accumulated hessian over %d samples in %d batches", n, batches)

	mean, err := matrix.Scale(acc, 1/float64(n))
	if err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}

	return matrix.Symmetrize(mean)
}

// sampleHessian returns H_s flattened row-major, one HVP per basis vector.
func (e *Exact) sampleHessian(s data.Sample) ([]float64, error) {
	h := make([]float64, e.p*e.p)
	basis := make([]float64, e.p)
	for j := 0; j < e.p; j++ {
		basis[j] = 1
		col, err := e.model.HVP(s, basis)
		basis[j] = 0
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			h[i*e.p+j] = v
		}
	}

	return h, nil
}

// ParamCount returns P.
func (e *Exact) ParamCount() int { return e.p }

// Gradients returns the per-sample gradients of the full model.
func (e *Exact) Gradients(b data.Batch) (*matrix.Dense, error) {
	return e.model.PerSampleGradient(b)
}

// ComputeIHVP returns inverse·q for every query of ds, batch by batch.
func (e *Exact) ComputeIHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error) {
	return streamColumns(ds, func(b data.Batch) (*matrix.Dense, error) {
		return e.ComputeIHVPBatch(b, useGradient)
	})
}

// ComputeIHVPBatch returns inverse·Q for the p×n query matrix Q of b.
func (e *Exact) ComputeIHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error) {
	q, err := queryColumns(b, useGradient, e.p, e.Gradients)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(e.inverse, q)
}

// ComputeHVP returns H·q for every query of ds.
func (e *Exact) ComputeHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error) {
	return streamColumns(ds, func(b data.Batch) (*matrix.Dense, error) {
		return e.ComputeHVPBatch(b, useGradient)
	})
}

// ComputeHVPBatch returns H·Q for the query matrix Q of b.
func (e *Exact) ComputeHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error) {
	h, err := e.lazyHessian()
	if err != nil {
		return nil, err
	}
	q, err := queryColumns(b, useGradient, e.p, e.Gradients)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(h, q)
}

// lazyHessian returns the cached Hessian, deriving it as pinv(inverse) on
// first use.
func (e *Exact) lazyHessian() (*matrix.Dense, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.hessian != nil {
		return e.hessian, nil
	}
	h, err := matrix.PseudoInverse(e.inverse, e.opts.rcond)
	if err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}
	if h, err = matrix.Symmetrize(h); err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}
	e.hessian = h
	e.opts.logger.Printf("ihvp: exact: derived hessian from cached inverse")

	return h, nil
}

// Hessian returns a copy of the mean Hessian.
func (e *Exact) Hessian() (*matrix.Dense, error) {
	h, err := e.lazyHessian()
	if err != nil {
		return nil, err
	}

	return h.CloneDense(), nil
}

// InverseHessian returns a copy of the pseudo-inverse.
func (e *Exact) InverseHessian() *matrix.Dense { return e.inverse.CloneDense() }

// Spectrum returns the eigenvalues of the mean Hessian in ascending order.
// Near-zero or negative values explain ill-conditioned influence estimates.
func (e *Exact) Spectrum() ([]float64, error) {
	h, err := e.lazyHessian()
	if err != nil {
		return nil, err
	}
	vals, _, err := matrix.Eigen(h, matrix.DefaultEpsilon)
	if err != nil {
		return nil, fmt.Errorf("ihvp: exact: %w", err)
	}

	return vals, nil
}

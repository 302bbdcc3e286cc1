// SPDX-License-Identifier: MIT

package ihvp

import (
	"fmt"
	"sync"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
	"gonum.org/v1/gonum/floats"
)

// IHVP is the capability set shared by the Exact and ConjugateGradient
// backends. All results have one column per query point in input order.
//
// With useGradient the query samples are (input, label) pairs and each is
// replaced by its loss gradient first; otherwise every sample's Input is
// taken as a raw vector of length ParamCount.
type IHVP interface {
	// ParamCount returns the dimension of the parameter space the backend
	// works in (P for Exact, the tail's P' for ConjugateGradient).
	ParamCount() int

	// Gradients returns the len(b)×ParamCount per-sample loss gradients in
	// the backend's parameter space.
	Gradients(b data.Batch) (*matrix.Dense, error)

	// ComputeIHVP returns H⁻¹·q for every query q of a batched dataset.
	ComputeIHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error)

	// ComputeIHVPBatch is ComputeIHVP for one in-memory batch.
	ComputeIHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error)

	// ComputeHVP returns H·q for every query q of a batched dataset.
	ComputeHVP(ds data.Dataset, useGradient bool) (*matrix.Dense, error)

	// ComputeHVPBatch is ComputeHVP for one in-memory batch.
	ComputeHVPBatch(b data.Batch, useGradient bool) (*matrix.Dense, error)
}

var (
	_ IHVP = (*Exact)(nil)
	_ IHVP = (*ConjugateGradient)(nil)
)

// streamColumns applies perBatch to every batch of ds and concatenates the
// resulting column blocks left to right.
func streamColumns(ds data.Dataset, perBatch func(data.Batch) (*matrix.Dense, error)) (*matrix.Dense, error) {
	if err := data.AssertBatched(ds); err != nil {
		return nil, err
	}
	var parts []matrix.Matrix
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		if len(b) == 0 {
			continue
		}
		block, err := perBatch(b)
		if err != nil {
			return nil, err
		}
		parts = append(parts, block)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyDataset
	}

	return matrix.HStack(parts...)
}

// queryColumns turns a batch into the p×n matrix of its query vectors.
func queryColumns(b data.Batch, useGradient bool, p int, gradients func(data.Batch) (*matrix.Dense, error)) (*matrix.Dense, error) {
	if len(b) == 0 {
		return nil, ErrEmptyDataset
	}
	if useGradient {
		g, err := gradients(b)
		if err != nil {
			return nil, err
		}

		return matrix.Transpose(g)
	}
	for i, s := range b {
		if len(s.Input) != p {
			return nil, fmt.Errorf("vector %d has length %d, want %d: %w", i, len(s.Input), p, ErrVectorLen)
		}
	}

	return matrix.FromColumns(b.Inputs())
}

// parallelMap evaluates fn for i in [0, n) on up to workers goroutines and
// returns the results indexed by i. The first error in index order wins.
func parallelMap(n, workers int, fn func(i int) ([]float64, error)) ([][]float64, error) {
	out := make([][]float64, n)
	errs := make([]error, n)
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if out[i], errs[i] = fn(i); errs[i] != nil {
				return nil, errs[i]
			}
		}

		return out, nil
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(workers, n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				out[i], errs[i] = fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// sumInto adds every vector of parts to dst in index order.
func sumInto(dst []float64, parts [][]float64) {
	for _, p := range parts {
		floats.Add(dst, p)
	}
}

// SPDX-License-Identifier: MIT

package data

import "fmt"

// Slice is an in-memory Dataset over a fixed slice of samples.
type Slice struct {
	samples []Sample
	spec    Spec
}

var _ Dataset = (*Slice)(nil)

// New builds a batched dataset over samples with the given batch size.
// The sample slice is copied; the vectors inside it are shared and must
// not be mutated afterwards.
//
// Errors: ErrBatchSize, ErrEmpty, ErrInconsistentSample.
func New(samples []Sample, batchSize int) (*Slice, error) {
	if batchSize <= 0 {
		return nil, ErrBatchSize
	}

	return newSlice(samples, batchSize, true)
}

// Unbatched wraps samples as a dataset that reports Batched == false.
// Its iterator yields one sample per batch; components that require
// batched input reject it through AssertBatched.
func Unbatched(samples []Sample) (*Slice, error) {
	return newSlice(samples, 1, false)
}

// FromVectors builds a batched dataset of raw vectors (no labels), the
// input form for IHVP/HVP queries that skip gradient computation.
func FromVectors(vectors [][]float64, batchSize int) (*Slice, error) {
	samples := make([]Sample, len(vectors))
	for i, v := range vectors {
		samples[i] = Sample{Input: v}
	}

	return New(samples, batchSize)
}

// FromBatch wraps one batch as a single-batch dataset.
func FromBatch(b Batch) (*Slice, error) {
	return New(b, max(len(b), 1))
}

func newSlice(samples []Sample, batchSize int, batched bool) (*Slice, error) {
	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	in, lbl := len(samples[0].Input), len(samples[0].Label)
	for i, s := range samples {
		if len(s.Input) != in || len(s.Label) != lbl {
			return nil, fmt.Errorf("sample %d: %w", i, ErrInconsistentSample)
		}
	}

	return &Slice{
		samples: append([]Sample(nil), samples...),
		spec:    Spec{InputDim: in, LabelDim: lbl, BatchSize: batchSize, Batched: batched},
	}, nil
}

// Iter returns a fresh iterator over consecutive batches.
func (d *Slice) Iter() Iterator {
	return &sliceIter{samples: d.samples, size: d.spec.BatchSize}
}

// Cardinality returns ceil(len / batchSize).
func (d *Slice) Cardinality() int {
	return (len(d.samples) + d.spec.BatchSize - 1) / d.spec.BatchSize
}

// Spec returns the element layout.
func (d *Slice) Spec() Spec { return d.spec }

// Len returns the number of samples.
func (d *Slice) Len() int { return len(d.samples) }

// Samples returns a copy of the sample slice.
func (d *Slice) Samples() []Sample { return append([]Sample(nil), d.samples...) }

type sliceIter struct {
	samples []Sample
	size    int
	pos     int
}

func (it *sliceIter) Next() (Batch, bool) {
	if it.pos >= len(it.samples) {
		return nil, false
	}
	end := min(it.pos+it.size, len(it.samples))
	b := Batch(it.samples[it.pos:end:end])
	it.pos = end

	return b, true
}

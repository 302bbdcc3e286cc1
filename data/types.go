// SPDX-License-Identifier: MIT

package data

// Sample is one (input, label) pair. Vector datasets leave Label nil.
type Sample struct {
	Input []float64
	Label []float64
}

// Clone returns a deep copy of s.
func (s Sample) Clone() Sample {
	out := Sample{}
	if s.Input != nil {
		out.Input = append([]float64(nil), s.Input...)
	}
	if s.Label != nil {
		out.Label = append([]float64(nil), s.Label...)
	}

	return out
}

// Batch is an ordered group of samples.
type Batch []Sample

// Inputs returns the input vectors of b in order. The vectors are shared.
func (b Batch) Inputs() [][]float64 {
	out := make([][]float64, len(b))
	for i, s := range b {
		out[i] = s.Input
	}

	return out
}

// Clone deep-copies every sample of b.
func (b Batch) Clone() Batch {
	out := make(Batch, len(b))
	for i, s := range b {
		out[i] = s.Clone()
	}

	return out
}

// Spec describes the element layout of a dataset.
type Spec struct {
	InputDim  int  // length of every Sample.Input
	LabelDim  int  // length of every Sample.Label (0 for vector datasets)
	BatchSize int  // size of every batch except possibly the last
	Batched   bool // false for datasets that must not be consumed batch-wise
}

// Iterator yields batches until it returns ok == false.
type Iterator interface {
	Next() (b Batch, ok bool)
}

// Dataset is a replayable, batched sequence of samples.
//
// Iter must return a fresh iterator positioned at the first batch on every
// call, and two passes must yield the same batches in the same order.
// Cardinality reports the number of batches one pass yields.
type Dataset interface {
	Iter() Iterator
	Cardinality() int
	Spec() Spec
}

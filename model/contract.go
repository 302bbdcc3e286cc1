// SPDX-License-Identifier: MIT

package model

import (
	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
)

// Model is the read-only differentiation oracle over a flattened
// parameter vector of length ParamCount. Implementations must be safe for
// concurrent calls; none of the methods mutate parameters.
type Model interface {
	// ParamCount returns P.
	ParamCount() int

	// Evaluate runs the forward pass on one input.
	Evaluate(input []float64) ([]float64, error)

	// Loss returns the per-sample loss.
	Loss(s data.Sample) (float64, error)

	// PerSampleGradient returns the len(b)×P matrix whose i-th row is the
	// loss gradient of b[i].
	PerSampleGradient(b data.Batch) (*matrix.Dense, error)

	// HVP returns H_s·v where H_s is the loss Hessian of sample s.
	HVP(s data.Sample, v []float64) ([]float64, error)
}

// Extractor maps raw inputs to frozen feature vectors.
type Extractor interface {
	Evaluate(input []float64) ([]float64, error)
}

// Splitter is a Model that can be cut into a head and a tail at a layer
// boundary. Split(at) puts layers [0, at) in the head and [at, NumLayers)
// in the tail; the tail keeps the loss.
type Splitter interface {
	Model
	NumLayers() int
	LayerIndex(name string) (int, error)
	Split(at int) (head Extractor, tail Model, err error)
}

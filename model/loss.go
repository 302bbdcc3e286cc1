// SPDX-License-Identifier: MIT

package model

import "math"

// Loss scores a network output against a label and supplies the first
// derivative and its directional derivative with respect to the output.
type Loss interface {
	// Value returns the per-sample loss.
	Value(out, label []float64) float64

	// Grad returns ∂L/∂out and, when rout is non-nil, R{∂L/∂out} for the
	// output direction rout.
	Grad(out, rout, label []float64) (g, rg []float64)
}

// SquaredError is L = ½‖out − label‖².
type SquaredError struct{}

func (SquaredError) Value(out, label []float64) float64 {
	var s float64
	for i := range out {
		d := out[i] - label[i]
		s += d * d
	}

	return s / 2
}

func (SquaredError) Grad(out, rout, label []float64) ([]float64, []float64) {
	g := make([]float64, len(out))
	for i := range out {
		g[i] = out[i] - label[i]
	}
	if rout == nil {
		return g, nil
	}

	return g, append([]float64(nil), rout...)
}

// SoftmaxCrossEntropy is L = −Σ label_k·log softmax(out)_k. Labels need not
// be one-hot; the gradient is softmax(out)·Σlabel − label.
type SoftmaxCrossEntropy struct{}

func softmax(out []float64) []float64 {
	peak := math.Inf(-1)
	for _, v := range out {
		peak = math.Max(peak, v)
	}
	s := make([]float64, len(out))
	var z float64
	for i, v := range out {
		s[i] = math.Exp(v - peak)
		z += s[i]
	}
	for i := range s {
		s[i] /= z
	}

	return s
}

func (SoftmaxCrossEntropy) Value(out, label []float64) float64 {
	peak := math.Inf(-1)
	for _, v := range out {
		peak = math.Max(peak, v)
	}
	var z float64
	for _, v := range out {
		z += math.Exp(v - peak)
	}
	lse := peak + math.Log(z)
	var l float64
	for k, t := range label {
		l -= t * (out[k] - lse)
	}

	return l
}

func (SoftmaxCrossEntropy) Grad(out, rout, label []float64) ([]float64, []float64) {
	s := softmax(out)
	var mass float64
	for _, t := range label {
		mass += t
	}
	g := make([]float64, len(out))
	for k := range out {
		g[k] = s[k]*mass - label[k]
	}
	if rout == nil {
		return g, nil
	}
	// R{s} = s ⊙ (R{out} − ⟨s, R{out}⟩)
	var sr float64
	for k := range out {
		sr += s[k] * rout[k]
	}
	rg := make([]float64, len(out))
	for k := range out {
		rg[k] = mass * s[k] * (rout[k] - sr)
	}

	return g, rg
}

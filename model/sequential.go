// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/MurphLaws/influenciae/data"
	"github.com/MurphLaws/influenciae/matrix"
)

// Sequential is a chain of layers closed by an optional loss.
// It is immutable after construction apart from SetParams and Init, which
// must not run concurrently with other calls.
type Sequential struct {
	inputDim int
	layers   []Layer
	names    []string
	offsets  []int // offsets[i]: start of layer i in params; offsets[len] == len(params)
	dims     []int // dims[i]: input length of layer i; dims[len]: output length
	params   []float64
	loss     Loss
}

var (
	_ Model     = (*Sequential)(nil)
	_ Splitter  = (*Sequential)(nil)
	_ Extractor = (*Sequential)(nil)
)

// NewSequential chains layers for inputs of length inputDim. A nil loss
// yields a network usable only as an Extractor. Parameters start at zero;
// call Init or SetParams before use.
//
// Errors: ErrLayerChain, ErrDuplicateLayer.
func NewSequential(inputDim int, loss Loss, layers ...Layer) (*Sequential, error) {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.LayerName()
		if names[i] == "" {
			names[i] = fmt.Sprintf("%s_%d", l.kind(), i)
		}
	}

	return build(inputDim, loss, layers, names, nil)
}

func build(inputDim int, loss Loss, layers []Layer, names []string, params []float64) (*Sequential, error) {
	if inputDim <= 0 {
		return nil, fmt.Errorf("input dim %d: %w", inputDim, ErrLayerChain)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateLayer)
		}
		seen[name] = struct{}{}
	}

	n := &Sequential{
		inputDim: inputDim,
		layers:   append([]Layer(nil), layers...),
		names:    append([]string(nil), names...),
		offsets:  make([]int, len(layers)+1),
		dims:     make([]int, len(layers)+1),
		loss:     loss,
	}
	n.dims[0] = inputDim
	var err error
	for i, l := range layers {
		if n.dims[i+1], err = l.OutputDim(n.dims[i]); err != nil {
			return nil, fmt.Errorf("layer %q: %w", names[i], err)
		}
		n.offsets[i+1] = n.offsets[i] + l.ParamCount()
	}
	n.params = make([]float64, n.offsets[len(layers)])
	copy(n.params, params)

	return n, nil
}

// NumLayers returns the number of layers.
func (n *Sequential) NumLayers() int { return len(n.layers) }

// LayerNames returns the resolved layer names in order.
func (n *Sequential) LayerNames() []string { return append([]string(nil), n.names...) }

// LayerIndex resolves a layer name to its index.
func (n *Sequential) LayerIndex(name string) (int, error) {
	for i, got := range n.names {
		if got == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownLayer)
}

// ParamCount returns the length of the flattened parameter vector.
func (n *Sequential) ParamCount() int { return len(n.params) }

// InputDim returns the expected input length.
func (n *Sequential) InputDim() int { return n.inputDim }

// OutputDim returns the output length.
func (n *Sequential) OutputDim() int { return n.dims[len(n.layers)] }

// Params returns a copy of the flattened parameters.
func (n *Sequential) Params() []float64 { return append([]float64(nil), n.params...) }

// SetParams overwrites the flattened parameters.
func (n *Sequential) SetParams(p []float64) error {
	if len(p) != len(n.params) {
		return fmt.Errorf("got %d want %d: %w", len(p), len(n.params), ErrParamLen)
	}
	copy(n.params, p)

	return nil
}

// Init draws Dense weights from the Glorot uniform distribution with a
// fixed seed and zeroes the biases.
func (n *Sequential) Init(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i, l := range n.layers {
		d, ok := l.(*Dense)
		if !ok {
			continue
		}
		p := n.params[n.offsets[i]:n.offsets[i+1]]
		limit := math.Sqrt(6 / float64(d.In+d.Out))
		for k := 0; k < d.In*d.Out; k++ {
			p[k] = (2*rng.Float64() - 1) * limit
		}
		for k := d.In * d.Out; k < len(p); k++ {
			p[k] = 0
		}
	}
}

// Evaluate runs the forward pass.
func (n *Sequential) Evaluate(input []float64) ([]float64, error) {
	if len(input) != n.inputDim {
		return nil, fmt.Errorf("got %d want %d: %w", len(input), n.inputDim, ErrInputDim)
	}
	x := input
	for i, l := range n.layers {
		x, _ = l.forward(n.layerParams(i), nil, x, nil).output()
	}

	return append([]float64(nil), x...), nil
}

// Loss returns the per-sample loss.
func (n *Sequential) Loss(s data.Sample) (float64, error) {
	if err := n.checkSample(s); err != nil {
		return 0, err
	}
	out, err := n.Evaluate(s.Input)
	if err != nil {
		return 0, err
	}

	return n.loss.Value(out, s.Label), nil
}

// Gradient returns ∂L/∂θ for one sample.
func (n *Sequential) Gradient(s data.Sample) ([]float64, error) {
	if err := n.checkSample(s); err != nil {
		return nil, err
	}
	g, _ := n.backprop(s, nil)

	return g, nil
}

// PerSampleGradient returns the len(b)×P matrix of per-sample gradients.
func (n *Sequential) PerSampleGradient(b data.Batch) (*matrix.Dense, error) {
	if len(b) == 0 {
		return nil, ErrEmptyBatch
	}
	out, err := matrix.NewDense(len(b), len(n.params))
	if err != nil {
		return nil, fmt.Errorf("model: gradient matrix: %w", err)
	}
	for i, s := range b {
		g, err := n.Gradient(s)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if err = out.SetRow(i, g); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return out, nil
}

// HVP returns H_s·v via one R-forward and one R-backward pass.
func (n *Sequential) HVP(s data.Sample, v []float64) ([]float64, error) {
	if err := n.checkSample(s); err != nil {
		return nil, err
	}
	if len(v) != len(n.params) {
		return nil, fmt.Errorf("direction %d want %d: %w", len(v), len(n.params), ErrParamLen)
	}
	_, hv := n.backprop(s, v)

	return hv, nil
}

// Split returns layers [0, at) as the head and [at, NumLayers) as the tail.
// Both halves copy their share of the current parameters.
func (n *Sequential) Split(at int) (Extractor, Model, error) {
	head, tail, err := n.SplitSequential(at)
	if err != nil {
		return nil, nil, err
	}

	return head, tail, nil
}

// SplitSequential is Split with concrete result types.
func (n *Sequential) SplitSequential(at int) (*Sequential, *Sequential, error) {
	if at < 0 || at >= len(n.layers) {
		return nil, nil, fmt.Errorf("index %d of %d layers: %w", at, len(n.layers), ErrSplitIndex)
	}
	cut := n.offsets[at]
	head, err := build(n.inputDim, nil, n.layers[:at], n.names[:at], n.params[:cut])
	if err != nil {
		return nil, nil, err
	}
	tail, err := build(n.dims[at], n.loss, n.layers[at:], n.names[at:], n.params[cut:])
	if err != nil {
		return nil, nil, err
	}

	return head, tail, nil
}

func (n *Sequential) layerParams(i int) []float64 {
	return n.params[n.offsets[i]:n.offsets[i+1]]
}

func (n *Sequential) checkSample(s data.Sample) error {
	if n.loss == nil {
		return ErrNoLoss
	}
	if len(s.Input) != n.inputDim {
		return fmt.Errorf("got %d want %d: %w", len(s.Input), n.inputDim, ErrInputDim)
	}
	if len(s.Label) != n.OutputDim() {
		return fmt.Errorf("got %d want %d: %w", len(s.Label), n.OutputDim(), ErrLabelDim)
	}

	return nil
}

// backprop returns the gradient and, when v is non-nil, R_v{gradient} = H·v.
func (n *Sequential) backprop(s data.Sample, v []float64) (grad, hv []float64) {
	tapes := make([]tape, len(n.layers))
	x := s.Input
	var rx []float64
	if v != nil {
		rx = make([]float64, n.inputDim) // inputs do not depend on θ
	}
	var rp []float64
	for i, l := range n.layers {
		if v != nil {
			rp = v[n.offsets[i]:n.offsets[i+1]]
		}
		tapes[i] = l.forward(n.layerParams(i), rp, x, rx)
		x, rx = tapes[i].output()
	}

	gy, rgy := n.loss.Grad(x, rx, s.Label)
	grad = make([]float64, len(n.params))
	if v != nil {
		hv = make([]float64, len(n.params))
	}
	var rgp []float64
	for i := len(n.layers) - 1; i >= 0; i-- {
		if v != nil {
			rp = v[n.offsets[i]:n.offsets[i+1]]
			rgp = hv[n.offsets[i]:n.offsets[i+1]]
		}
		gy, rgy = tapes[i].backward(n.layerParams(i), rp, gy, rgy, grad[n.offsets[i]:n.offsets[i+1]], rgp)
	}

	return grad, hv
}

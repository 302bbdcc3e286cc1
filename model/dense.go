// SPDX-License-Identifier: MIT

package model

import "fmt"

// Dense is the affine layer y = W·x + b with W of shape Out×In.
// Its parameters are W in row-major order followed by b.
type Dense struct {
	In, Out int
	Name    string
}

// NewDense returns an unnamed Dense layer.
func NewDense(in, out int) *Dense { return &Dense{In: in, Out: out} }

func (d *Dense) LayerName() string { return d.Name }
func (d *Dense) ParamCount() int   { return d.In*d.Out + d.Out }
func (d *Dense) kind() string      { return "dense" }

func (d *Dense) OutputDim(in int) (int, error) {
	if d.In <= 0 || d.Out <= 0 || in != d.In {
		return 0, fmt.Errorf("dense %dx%d fed %d: %w", d.Out, d.In, in, ErrLayerChain)
	}

	return d.Out, nil
}

func (d *Dense) forward(p, rp, x, rx []float64) tape {
	w, b := p[:d.In*d.Out], p[d.In*d.Out:]
	y := make([]float64, d.Out)
	var ry []float64
	if rp != nil {
		ry = make([]float64, d.Out)
	}
	var (
		o, i int
		acc  float64
		row  []float64
	)
	for o = 0; o < d.Out; o++ {
		row = w[o*d.In : (o+1)*d.In]
		acc = b[o]
		for i = 0; i < d.In; i++ {
			acc += row[i] * x[i]
		}
		y[o] = acc
	}
	if rp != nil {
		// R{y} = R{W}·x + W·R{x} + R{b}
		rw, rb := rp[:d.In*d.Out], rp[d.In*d.Out:]
		for o = 0; o < d.Out; o++ {
			acc = rb[o]
			for i = 0; i < d.In; i++ {
				acc += rw[o*d.In+i] * x[i]
				if rx != nil {
					acc += w[o*d.In+i] * rx[i]
				}
			}
			ry[o] = acc
		}
	}

	return &denseTape{layer: d, x: x, rx: rx, y: y, ry: ry}
}

type denseTape struct {
	layer        *Dense
	x, rx, y, ry []float64
}

func (t *denseTape) output() ([]float64, []float64) { return t.y, t.ry }

func (t *denseTape) backward(p, rp, gy, rgy, gp, rgp []float64) ([]float64, []float64) {
	in, out := t.layer.In, t.layer.Out
	w := p[:in*out]
	gx := make([]float64, in)
	var (
		o, i int
		g    float64
	)
	for o = 0; o < out; o++ {
		g = gy[o]
		for i = 0; i < in; i++ {
			gp[o*in+i] += g * t.x[i]
			gx[i] += w[o*in+i] * g
		}
		gp[in*out+o] += g
	}
	if rgp == nil {
		return gx, nil
	}

	// R{gW} = R{gy}·xᵀ + gy·R{x}ᵀ ; R{gx} = R{W}ᵀ·gy + Wᵀ·R{gy}
	rw := rp[:in*out]
	rgx := make([]float64, in)
	var rg float64
	for o = 0; o < out; o++ {
		g, rg = gy[o], rgy[o]
		for i = 0; i < in; i++ {
			rgp[o*in+i] += rg * t.x[i]
			if t.rx != nil {
				rgp[o*in+i] += g * t.rx[i]
			}
			rgx[i] += rw[o*in+i]*g + w[o*in+i]*rg
		}
		rgp[in*out+o] += rg
	}

	return gx, rgx
}

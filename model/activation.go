// SPDX-License-Identifier: MIT

package model

import "math"

// Tanh applies tanh element-wise. It has no parameters.
type Tanh struct{ Name string }

// Sigmoid applies the logistic function element-wise. It has no parameters.
type Sigmoid struct{ Name string }

func (a *Tanh) LayerName() string             { return a.Name }
func (a *Tanh) ParamCount() int               { return 0 }
func (a *Tanh) OutputDim(in int) (int, error) { return in, nil }
func (a *Tanh) kind() string                  { return "tanh" }

func (a *Sigmoid) LayerName() string             { return a.Name }
func (a *Sigmoid) ParamCount() int               { return 0 }
func (a *Sigmoid) OutputDim(in int) (int, error) { return in, nil }
func (a *Sigmoid) kind() string                  { return "sigmoid" }

// pointwise describes an element-wise activation by f, f' and f″ written
// in terms of the output y.
type pointwise struct {
	f   func(x float64) float64
	df  func(y float64) float64
	d2f func(y float64) float64
}

var (
	tanhFn = pointwise{
		f:   math.Tanh,
		df:  func(y float64) float64 { return 1 - y*y },
		d2f: func(y float64) float64 { return -2 * y * (1 - y*y) },
	}
	sigmoidFn = pointwise{
		f:   func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		df:  func(y float64) float64 { return y * (1 - y) },
		d2f: func(y float64) float64 { return y * (1 - y) * (1 - 2*y) },
	}
)

func (a *Tanh) forward(_, _, x, rx []float64) tape    { return tanhFn.forward(x, rx) }
func (a *Sigmoid) forward(_, _, x, rx []float64) tape { return sigmoidFn.forward(x, rx) }

func (fn pointwise) forward(x, rx []float64) tape {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = fn.f(v)
	}
	t := &pointwiseTape{fn: fn, y: y, rx: rx}
	if rx != nil {
		t.ry = make([]float64, len(x))
		for i := range y {
			t.ry[i] = fn.df(y[i]) * rx[i]
		}
	}

	return t
}

type pointwiseTape struct {
	fn        pointwise
	y, rx, ry []float64
}

func (t *pointwiseTape) output() ([]float64, []float64) { return t.y, t.ry }

// backward: gx = gy·f'(x); R{gx} = R{gy}·f'(x) + gy·f″(x)·R{x}.
func (t *pointwiseTape) backward(_, _, gy, rgy, _, _ []float64) ([]float64, []float64) {
	gx := make([]float64, len(gy))
	for i := range gy {
		gx[i] = gy[i] * t.fn.df(t.y[i])
	}
	if rgy == nil {
		return gx, nil
	}
	rgx := make([]float64, len(gy))
	for i := range gy {
		rgx[i] = rgy[i] * t.fn.df(t.y[i])
		if t.rx != nil {
			rgx[i] += gy[i] * t.fn.d2f(t.y[i]) * t.rx[i]
		}
	}

	return gx, rgx
}

// SPDX-License-Identifier: MIT

package model

// Layer is one stage of a Sequential network. Layers hold no parameter
// storage of their own: the network passes each layer its slice of the
// flattened parameter vector (p) and, for Hessian-vector products, the
// matching slice of the direction (rp).
type Layer interface {
	// LayerName returns the user-assigned name or "" for an automatic one.
	LayerName() string

	// ParamCount returns the number of parameters owned by the layer.
	ParamCount() int

	// OutputDim returns the output length for an input of length in, or
	// ErrLayerChain if the layer cannot accept it.
	OutputDim(in int) (int, error)

	kind() string

	// forward runs the layer on x with directional derivative rx. rp is nil
	// on plain forward and gradient passes.
	forward(p, rp, x, rx []float64) tape
}

// tape is the record a layer leaves for its reverse pass.
type tape interface {
	// output returns y and R{y} (nil when the pass carries no direction).
	output() (y, ry []float64)

	// backward takes ∂L/∂y and R{∂L/∂y}, adds ∂L/∂p into gp and R{∂L/∂p}
	// into rgp, and returns ∂L/∂x and R{∂L/∂x}. rgy, rgp and the returned
	// rgx are nil on gradient-only passes.
	backward(p, rp, gy, rgy, gp, rgp []float64) (gx, rgx []float64)
}

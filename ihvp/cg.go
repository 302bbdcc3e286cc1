// SPDX-License-Identifier: MIT

package ihvp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operator applies a symmetric linear map to vectors of length Dim.
type Operator interface {
	Dim() int
	Apply(x []float64) ([]float64, error)
}

// Result is the outcome of one conjugate-gradient solve.
type Result struct {
	X          []float64 // approximate solution of A·x = b
	Iterations int       // operator applications performed
	Residuals  []float64 // ‖b − A·x_k‖ for k = 0..Iterations
}

// Residual returns the final residual norm.
func (r Result) Residual() float64 { return r.Residuals[len(r.Residuals)-1] }

// Solve runs at most maxIter conjugate-gradient iterations on A·x = b
// starting from x₀ = 0.
//
// Implementation:
//   - Stage 1: r = p = b, record ‖r‖.
//   - Stage 2: per iteration α = ‖r‖²/⟨p, A·p⟩, x += α·p, r −= α·A·p,
//     β = ‖r_new‖²/‖r‖², p = r + β·p; record ‖r‖.
//
// Behavior highlights:
//   - Stops early only when ‖r‖ ≤ tol·‖b‖ or ⟨p, A·p⟩ == 0 (breakdown).
//     Non-convergence is not an error; inspect Residuals.
//   - b = 0 returns x = 0 without applying the operator.
//
// Errors:
//   - ErrVectorLen when len(b) != op.Dim(); operator errors verbatim.
func Solve(op Operator, b []float64, maxIter int, tol float64) (Result, error) {
	n := op.Dim()
	if len(b) != n {
		return Result{}, fmt.Errorf("rhs %d want %d: %w", len(b), n, ErrVectorLen)
	}
	x := make([]float64, n)
	r := append([]float64(nil), b...)
	p := append([]float64(nil), b...)
	rs := floats.Dot(r, r)
	stop := tol * floats.Norm(b, 2)
	res := Result{X: x, Residuals: []float64{floats.Norm(r, 2)}}

	for k := 0; k < maxIter; k++ {
		if res.Residual() <= stop {
			break
		}
		ap, err := op.Apply(p)
		if err != nil {
			return Result{}, err
		}
		pap := floats.Dot(p, ap)
		if pap == 0 {
			break
		}
		alpha := rs / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		rsNew := floats.Dot(r, r)
		res.Iterations++
		res.Residuals = append(res.Residuals, floats.Norm(r, 2))

		// p = r + β·p
		floats.Scale(rsNew/rs, p)
		floats.Add(p, r)
		rs = rsNew
	}

	return res, nil
}

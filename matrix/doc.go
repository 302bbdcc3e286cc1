// Package matrix offers dense row-major float64 matrices and the linear
// algebra needed by influence estimation.
//
// The matrix package provides:
//
//   - Dense with error-returning accessors (At/Set/Row/Col/SetCol) and a
//     NaN/Inf rejection policy.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, MatTVec, Symmetrize.
//   - Decompositions backed by gonum: Eigen (symmetric) and PseudoInverse
//     (Moore–Penrose via SVD, with a relative singular-value cutoff).
//   - Column utilities: FromColumns, HStack, ColNormsL2, NormalizeColsL2, ColDots.
//   - Encode/Decode: a msgpack snapshot used to hand a precomputed Hessian
//     from one process to another.
//
// All kernels allocate their result and never mutate operands. Errors are
// package sentinels wrapped with an operation tag; shape-class sentinels also
// match influenciae.ErrShape.
package matrix

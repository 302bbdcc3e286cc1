// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels (possibly
// wrapped with an operation tag) and tests check them via errors.Is.
// Shape-class sentinels additionally wrap influenciae.ErrShape so callers
// outside the package can match the coarse kind without importing matrix.

package matrix

import (
	"errors"
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", influenciae.ErrShape)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", influenciae.ErrShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", influenciae.ErrShape)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", influenciae.ErrShape)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// beyond the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that the symmetric eigensolver did not converge.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

	// ErrDecode marks a malformed or incompatible serialized matrix.
	ErrDecode = errors.New("matrix: cannot decode matrix")
)

// SPDX-License-Identifier: MIT

package influence

import (
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrNilBackend marks a Calculator constructed without a backend.
	ErrNilBackend = fmt.Errorf("influence: backend is nil: %w", influenciae.ErrConfiguration)

	// ErrUnknownKind marks a backend kind NewFromDataset cannot build.
	ErrUnknownKind = fmt.Errorf("influence: unknown backend kind: %w", influenciae.ErrConfiguration)

	// ErrSizeMismatch marks paired training and evaluation sets with
	// different sample counts.
	ErrSizeMismatch = fmt.Errorf("influence: paired datasets differ in size: %w", influenciae.ErrSizeMismatch)

	// ErrEmptyQuery marks a TopK call without query points.
	ErrEmptyQuery = fmt.Errorf("influence: no query points: %w", influenciae.ErrShape)
)

// SPDX-License-Identifier: MIT

package data

import (
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrNotBatched is returned when a batched dataset is required but an
	// unbatched one was supplied.
	ErrNotBatched = fmt.Errorf("data: dataset is not batched: %w", influenciae.ErrShape)

	// ErrInconsistentSample marks a sample whose input or label length
	// differs from the first sample of the dataset.
	ErrInconsistentSample = fmt.Errorf("data: inconsistent sample shape: %w", influenciae.ErrShape)

	// ErrEmpty marks a dataset constructor called without samples.
	ErrEmpty = fmt.Errorf("data: no samples: %w", influenciae.ErrShape)

	// ErrBatchSize marks a non-positive batch size.
	ErrBatchSize = fmt.Errorf("data: batch size must be > 0: %w", influenciae.ErrConfiguration)

	// ErrNilDataset marks a nil Dataset argument.
	ErrNilDataset = fmt.Errorf("data: dataset is nil: %w", influenciae.ErrConfiguration)
)

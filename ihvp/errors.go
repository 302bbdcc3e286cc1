// SPDX-License-Identifier: MIT

package ihvp

import (
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrBackendArgs is returned by NewExact unless exactly one of a
	// training dataset and a precomputed Hessian is supplied.
	ErrBackendArgs = fmt.Errorf("ihvp: exactly one of dataset or hessian is required: %w", influenciae.ErrConfiguration)

	// ErrNilModel marks a nil model argument.
	ErrNilModel = fmt.Errorf("ihvp: model is nil: %w", influenciae.ErrConfiguration)

	// ErrExtractorLayer marks an extractor layer that cannot split the model.
	ErrExtractorLayer = fmt.Errorf("ihvp: invalid extractor layer: %w", influenciae.ErrConfiguration)

	// ErrVectorLen marks a query vector or Hessian whose size does not
	// match the backend's parameter count.
	ErrVectorLen = fmt.Errorf("ihvp: length does not match parameter count: %w", influenciae.ErrShape)

	// ErrEmptyDataset marks a dataset that yielded no samples.
	ErrEmptyDataset = fmt.Errorf("ihvp: dataset holds no samples: %w", influenciae.ErrShape)

	// ErrShortDataset marks a replay that ended before its reported cardinality.
	ErrShortDataset = fmt.Errorf("ihvp: dataset ended before its cardinality: %w", influenciae.ErrShape)
)

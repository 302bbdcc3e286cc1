// SPDX-License-Identifier: MIT

package topk

import (
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrCapacity marks a non-positive k or row count.
	ErrCapacity = fmt.Errorf("topk: k and rows must be > 0: %w", influenciae.ErrConfiguration)

	// ErrRowCount marks a score or payload matrix whose row count differs
	// from the accumulator's.
	ErrRowCount = fmt.Errorf("topk: row count mismatch: %w", influenciae.ErrShape)

	// ErrPayloadShape marks a payload row whose width differs from its
	// score row.
	ErrPayloadShape = fmt.Errorf("topk: payload shape mismatch: %w", influenciae.ErrShape)
)

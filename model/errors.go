// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/MurphLaws/influenciae"
)

var (
	// ErrInputDim marks an input vector whose length differs from the
	// network's input dimension.
	ErrInputDim = fmt.Errorf("model: input length mismatch: %w", influenciae.ErrShape)

	// ErrLabelDim marks a label whose length differs from the network output.
	ErrLabelDim = fmt.Errorf("model: label length mismatch: %w", influenciae.ErrShape)

	// ErrParamLen marks a parameter or direction vector of the wrong length.
	ErrParamLen = fmt.Errorf("model: parameter vector length mismatch: %w", influenciae.ErrShape)

	// ErrLayerChain marks consecutive layers whose dimensions do not connect.
	ErrLayerChain = fmt.Errorf("model: layer dimensions do not chain: %w", influenciae.ErrConfiguration)

	// ErrNoLoss marks a gradient request on a network without a loss.
	ErrNoLoss = fmt.Errorf("model: network has no loss: %w", influenciae.ErrConfiguration)

	// ErrSplitIndex marks a split point outside [0, NumLayers).
	ErrSplitIndex = fmt.Errorf("model: split index out of range: %w", influenciae.ErrConfiguration)

	// ErrUnknownLayer marks a layer name that the network does not contain.
	ErrUnknownLayer = fmt.Errorf("model: unknown layer: %w", influenciae.ErrConfiguration)

	// ErrDuplicateLayer marks two layers sharing one name.
	ErrDuplicateLayer = fmt.Errorf("model: duplicate layer name: %w", influenciae.ErrConfiguration)

	// ErrEmptyBatch marks a gradient request over zero samples.
	ErrEmptyBatch = fmt.Errorf("model: empty batch: %w", influenciae.ErrShape)
)

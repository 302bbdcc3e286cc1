// SPDX-License-Identifier: MIT

package influenciae

import "errors"

// Cross-package error kinds. Subpackages define their own, more specific
// sentinels and wrap one of these so callers can match either level:
//
//	errors.Is(err, ihvp.ErrBackendArgs)          // precise
//	errors.Is(err, influenciae.ErrConfiguration) // coarse
var (
	// ErrConfiguration marks invalid construction arguments: conflicting or
	// missing inputs, out-of-range layer indices, non-positive k.
	ErrConfiguration = errors.New("influenciae: configuration error")

	// ErrShape marks data whose structure is unusable, such as an unbatched
	// dataset where a batched one is required or mismatched vector lengths.
	ErrShape = errors.New("influenciae: shape error")

	// ErrSizeMismatch marks paired datasets whose sample counts differ.
	ErrSizeMismatch = errors.New("influenciae: size mismatch")
)

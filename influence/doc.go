// SPDX-License-Identifier: MIT

// Package influence turns inverse-Hessian-vector products into influence
// estimates for training points.
//
// A Calculator wraps any ihvp.IHVP backend and offers:
//
//   - ComputeInfluence: H⁻¹·∇L(z) per point, the first-order change of the
//     parameters if z were removed from training (up to sign and 1/N).
//   - ComputeInfluenceValues: ∇L(z_eval)ᵀ·H⁻¹·∇L(z_train) for paired points.
//     With the evaluation set defaulting to the training set this is a
//     Cook's-distance style self-influence score.
//   - ComputeInfluenceGroup / ComputeInfluenceValuesGroup: the same for the
//     joint removal of a whole group, reducing gradients before the
//     inverse-Hessian product so cross terms are kept.
//   - TopK: the k most influential training points per query, streamed
//     batch by batch through a bounded accumulator.
//
// With WithNormalize every influence vector is scaled to unit L2 norm
// before it is combined, giving relative instead of absolute influence.
//
// NewFromDataset builds the backend from a model and training set in one
// step, optionally estimating the Hessian on a seeded random subset.
package influence

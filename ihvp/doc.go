// Package ihvp computes inverse-Hessian-vector products (IHVPs) and
// Hessian-vector products (HVPs) of a model's mean training loss.
//
// Two interchangeable backends implement IHVP:
//
//   - Exact materialises the P×P mean Hessian by streaming the training set
//     once, pseudo-inverts it once (O(P³)) and answers every query with a
//     matrix product. Suitable for moderate P only.
//   - ConjugateGradient never forms the Hessian. It freezes a head
//     sub-network into a feature-map dataset, restricts differentiation to
//     the tail's P' parameters and solves H·x = g per query with a
//     fixed-iteration conjugate-gradient loop; every iteration applies the
//     Hessian matrix-free by streaming the feature-map dataset once.
//
// Results are P×n matrices with one column per query point, in input order.
//
// Mean convention: every Hessian (materialised or applied) is the average
// over the training samples, H·x = (1/N)·Σ_i H_i·x, accumulated batch by
// batch and scaled once by 1/N.
package ihvp

// Package model supplies the differentiation oracle consumed by the IHVP
// backends: per-sample loss gradients and exact Hessian-vector products.
//
// Sequential is a feed-forward network of Dense, Tanh and Sigmoid layers
// closed by a Loss. Gradients come from a reverse pass. Hessian-vector
// products come from Pearlmutter's R-operator: the forward pass carries a
// directional derivative R{·} seeded with the direction v on the
// parameters, and the reverse pass differentiates the gradient along it.
// The result is H·v for one sample without ever forming H.
//
// Parameters are flattened layer by layer; within a Dense layer the weight
// matrix (Out×In, row-major) precedes the bias. Every gradient, direction
// and HVP uses that ordering.
//
// A Sequential splits at any layer boundary into a head (feature
// extractor) and a tail that keeps the loss, so influence can be computed
// over the tail's parameters only.
package model

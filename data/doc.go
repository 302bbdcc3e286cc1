// Package data provides samples, batches and replayable batched datasets.
//
// A Dataset is an iterator factory: every call to Iter starts a fresh pass
// from the first batch, so components that must stream the training set
// many times (Hessian accumulation, one pass per conjugate-gradient step)
// can do so without any reset protocol. Batches have a fixed size except
// for a possible final remainder.
//
// Samples are read-only once handed to a dataset. Helpers that derive new
// datasets (Take, Shuffle, Rebatch, Map) materialise their result as a
// *Slice and never mutate the source.
package data

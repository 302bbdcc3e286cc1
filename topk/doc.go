// SPDX-License-Identifier: MIT

// Package topk keeps, independently for every query row, the k
// highest-scoring (score, payload) pairs seen across a stream of batches.
//
// Each row is a bounded min-heap of capacity k whose root is the current
// worst survivor, so a batch of width B costs O(B·log k) per row and
// memory never exceeds k entries per row.
//
// Ordering:
//   - Higher scores rank first.
//   - Equal scores rank by arrival: the entry added earlier wins, whether
//     it arrived in an earlier AddAll call or earlier in the same row.
//   - NaN scores rank below every number.
//
// The final score lists do not depend on the order in which batches are
// fed; only the payload order among tied scores can change.
package topk

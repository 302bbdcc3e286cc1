// SPDX-License-Identifier: MIT

package topk

import "math"

// entry is one candidate with its raw score; seq is its global arrival number.
type entry[T any] struct {
	score   float64
	seq     uint64
	payload T
}

// key maps NaN below every number so comparisons stay total.
func key(score float64) float64 {
	if math.IsNaN(score) {
		return math.Inf(-1)
	}

	return score
}

// worse reports whether a ranks strictly below b.
func worse[T any](a, b entry[T]) bool {
	if ka, kb := key(a.score), key(b.score); ka != kb {
		return ka < kb
	}

	return a.seq > b.seq
}

// rowHeap is a min-heap of entries ordered by worse, so the root is the
// entry to evict next.
type rowHeap[T any] []entry[T]

func (h rowHeap[T]) Len() int { return len(h) }

func (h rowHeap[T]) Less(i, j int) bool { return worse(h[i], h[j]) }

func (h rowHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *rowHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *rowHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

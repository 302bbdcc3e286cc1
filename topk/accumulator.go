// SPDX-License-Identifier: MIT

package topk

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/MurphLaws/influenciae/matrix"
)

// Accumulator holds the running top-k of every row. It is not safe for
// concurrent use.
type Accumulator[T any] struct {
	k    int
	rows []rowHeap[T]
	seq  uint64
}

// New returns an empty accumulator for rows query rows keeping k entries
// each. Returns ErrCapacity when rows or k is not positive.
func New[T any](rows, k int) (*Accumulator[T], error) {
	if rows <= 0 || k <= 0 {
		return nil, fmt.Errorf("rows=%d k=%d: %w", rows, k, ErrCapacity)
	}
	a := &Accumulator[T]{k: k, rows: make([]rowHeap[T], rows)}
	for i := range a.rows {
		a.rows[i] = make(rowHeap[T], 0, k)
	}

	return a, nil
}

// K returns the per-row capacity.
func (a *Accumulator[T]) K() int { return a.k }

// Rows returns the number of query rows.
func (a *Accumulator[T]) Rows() int { return len(a.rows) }

// Len returns how many entries row i currently holds.
func (a *Accumulator[T]) Len(i int) int { return len(a.rows[i]) }

// AddAll merges one batch. Row i of scores pairs element-wise with row i of
// payloads; entries are stamped in row-major order, so within a row the
// left-most of two equal scores wins.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrRowCount, ErrPayloadShape. Nothing is merged
//     when an error is returned.
func (a *Accumulator[T]) AddAll(scores matrix.Matrix, payloads [][]T) error {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return fmt.Errorf("topk: AddAll: %w", err)
	}
	if scores.Rows() != len(a.rows) || len(payloads) != len(a.rows) {
		return fmt.Errorf("scores %d, payloads %d, accumulator %d: %w",
			scores.Rows(), len(payloads), len(a.rows), ErrRowCount)
	}
	for i, p := range payloads {
		if len(p) != scores.Cols() {
			return fmt.Errorf("row %d: %d payloads for %d scores: %w", i, len(p), scores.Cols(), ErrPayloadShape)
		}
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = range a.rows {
		for j = 0; j < scores.Cols(); j++ {
			if v, err = scores.At(i, j); err != nil {
				return fmt.Errorf("topk: AddAll: %w", err)
			}
			a.offer(i, entry[T]{score: v, seq: a.seq, payload: payloads[i][j]})
			a.seq++
		}
	}

	return nil
}

// AddShared merges one batch whose payloads are the same for every row,
// the common case of scoring one training batch against all queries.
func (a *Accumulator[T]) AddShared(scores matrix.Matrix, payload []T) error {
	payloads := make([][]T, len(a.rows))
	for i := range payloads {
		payloads[i] = payload
	}

	return a.AddAll(scores, payloads)
}

func (a *Accumulator[T]) offer(row int, e entry[T]) {
	h := &a.rows[row]
	if h.Len() < a.k {
		heap.Push(h, e)
		return
	}
	if worse((*h)[0], e) {
		(*h)[0] = e
		heap.Fix(h, 0)
	}
}

// Get returns, per row, the surviving scores in descending order and the
// matching payloads. Rows hold min(k, entries seen) elements. The
// accumulator is left unchanged.
func (a *Accumulator[T]) Get() ([][]float64, [][]T) {
	scores := make([][]float64, len(a.rows))
	payloads := make([][]T, len(a.rows))
	for i, h := range a.rows {
		sorted := append([]entry[T](nil), h...)
		sort.Slice(sorted, func(x, y int) bool { return worse(sorted[y], sorted[x]) })
		scores[i] = make([]float64, len(sorted))
		payloads[i] = make([]T, len(sorted))
		for j, e := range sorted {
			scores[i][j], payloads[i][j] = e.score, e.payload
		}
	}

	return scores, payloads
}

// Reset drops every entry while keeping the shape.
func (a *Accumulator[T]) Reset() {
	for i := range a.rows {
		a.rows[i] = a.rows[i][:0]
	}
	a.seq = 0
}

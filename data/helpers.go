// SPDX-License-Identifier: MIT

package data

import (
	"fmt"
	"math/rand"
)

// IsNil reports whether ds is absent, either a nil interface or a nil *Slice.
func IsNil(ds Dataset) bool {
	if ds == nil {
		return true
	}
	s, ok := ds.(*Slice)

	return ok && s == nil
}

// AssertBatched returns ErrNilDataset or ErrNotBatched when ds cannot be
// consumed batch-wise.
func AssertBatched(ds Dataset) error {
	if IsNil(ds) {
		return ErrNilDataset
	}
	if !ds.Spec().Batched {
		return ErrNotBatched
	}

	return nil
}

// Size counts the samples of one full pass.
func Size(ds Dataset) int {
	n := 0
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		n += len(b)
	}

	return n
}

// Collect gathers one full pass into a single batch.
func Collect(ds Dataset) Batch {
	var out Batch
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		out = append(out, b...)
	}

	return out
}

// Take returns the first n samples of ds, keeping its batch size.
// n larger than the dataset keeps every sample.
func Take(ds Dataset, n int) (*Slice, error) {
	if err := AssertBatched(ds); err != nil {
		return nil, err
	}
	all := Collect(ds)
	if n < len(all) {
		all = all[:n]
	}

	return New(all, ds.Spec().BatchSize)
}

// Shuffle returns the samples of ds in a seeded pseudo-random order,
// keeping its batch size. The same seed always yields the same order.
func Shuffle(ds Dataset, seed int64) (*Slice, error) {
	if err := AssertBatched(ds); err != nil {
		return nil, err
	}
	all := Collect(ds)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	return New(all, ds.Spec().BatchSize)
}

// Rebatch returns the samples of ds regrouped into batches of batchSize.
func Rebatch(ds Dataset, batchSize int) (*Slice, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	return New(Collect(ds), batchSize)
}

// Map applies fn to every sample of ds and returns the results as a
// dataset with the same batch size.
func Map(ds Dataset, fn func(Sample) (Sample, error)) (*Slice, error) {
	if err := AssertBatched(ds); err != nil {
		return nil, err
	}
	var out []Sample
	idx := 0
	it := ds.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		for _, s := range b {
			m, err := fn(s)
			if err != nil {
				return nil, fmt.Errorf("data: map sample %d: %w", idx, err)
			}
			out = append(out, m)
			idx++
		}
	}

	return New(out, ds.Spec().BatchSize)
}

// SPDX-License-Identifier: MIT

package influence

import "github.com/MurphLaws/influenciae/data"

// sampleStream re-slices a dataset's batches into arbitrary chunk sizes.
type sampleStream struct {
	it  data.Iterator
	buf data.Batch
}

func newSampleStream(ds data.Dataset) *sampleStream {
	return &sampleStream{it: ds.Iter()}
}

// next returns up to n further samples; fewer only at the end of the data.
func (s *sampleStream) next(n int) data.Batch {
	for len(s.buf) < n {
		b, ok := s.it.Next()
		if !ok {
			break
		}
		s.buf = append(s.buf, b...)
	}
	n = min(n, len(s.buf))
	out := append(data.Batch(nil), s.buf[:n]...)
	s.buf = s.buf[n:]

	return out
}

// SPDX-License-Identifier: MIT

package influence

import (
	"io"
	"log"

	"github.com/MurphLaws/influenciae/ihvp"
)

// Kind selects the backend NewFromDataset builds.
type Kind int

const (
	// KindExact materialises and pseudo-inverts the mean Hessian.
	KindExact Kind = iota

	// KindCGD solves with matrix-free conjugate gradient on a tail
	// sub-network.
	KindCGD
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindCGD:
		return "cgd"
	default:
		return "unknown"
	}
}

const (
	panicHessianSamples   = "influence: WithHessianSamples: n must be > 0"
	panicHessianBatchSize = "influence: WithHessianBatchSize: size must be > 0"
)

// Option configures a Calculator or NewFromDataset.
type Option func(*options)

type options struct {
	normalize      bool
	logger         *log.Logger
	kind           Kind
	hessianSamples int // 0 = whole training set
	hessianBatch   int // 0 = keep the training batch size
	shuffle        bool
	seed           int64
	extractorLayer int
	ihvpOpts       []ihvp.Option
}

func gatherOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard, "", 0), kind: KindExact}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithNormalize scales every influence vector to unit L2 norm. Zero
// vectors stay zero.
func WithNormalize(on bool) Option {
	return func(o *options) { o.normalize = on }
}

// WithLogger routes progress messages to l; NewFromDataset also hands it to
// the backend. A nil logger keeps the default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBackend selects the backend kind for NewFromDataset (default
// KindExact).
func WithBackend(k Kind) Option {
	return func(o *options) { o.kind = k }
}

// WithHessianSamples estimates the Hessian from the first n training
// samples only (after shuffling, if WithShuffleSeed is set).
func WithHessianSamples(n int) Option {
	if n <= 0 {
		panic(panicHessianSamples)
	}

	return func(o *options) { o.hessianSamples = n }
}

// WithHessianBatchSize regroups the Hessian samples into batches of size
// before the backend streams them. The exact backend holds one P×P block
// per sample of a batch, so smaller batches bound its peak memory.
func WithHessianBatchSize(size int) Option {
	if size <= 0 {
		panic(panicHessianBatchSize)
	}

	return func(o *options) { o.hessianBatch = size }
}

// WithShuffleSeed shuffles the training set with seed before the Hessian
// subset is taken.
func WithShuffleSeed(seed int64) Option {
	return func(o *options) {
		o.shuffle = true
		o.seed = seed
	}
}

// WithExtractorLayer sets the head/tail split for KindCGD.
func WithExtractorLayer(i int) Option {
	return func(o *options) { o.extractorLayer = i }
}

// WithIHVPOptions forwards options to the backend constructor. They are
// applied after the logger, so an explicit ihvp.WithLogger wins.
func WithIHVPOptions(opts ...ihvp.Option) Option {
	return func(o *options) { o.ihvpOpts = append(o.ihvpOpts, opts...) }
}

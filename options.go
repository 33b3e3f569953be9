package prewitt

import (
	"runtime"

	"github.com/gogpu/prewitt/internal/image"
)

// Option configures a detection run.
//
// Example:
//
//	// GOMAXPROCS workers, one chunk per worker
//	out, stats, err := prewitt.Detect(in)
//
//	// 8 workers sharing 64 chunks
//	out, stats, err := prewitt.Detect(in, prewitt.WithThreads(8), prewitt.WithChunks(64))
type Option func(*options)

// options holds the configuration of a run.
type options struct {
	threads int

	// chunks defaults to threads unless set explicitly.
	chunks    int
	hasChunks bool

	// format overrides the output format chosen from the file extension.
	format    image.Format
	hasFormat bool

	// fitMaxShade widens the max shade of PGM output to hold 8-bit gradients.
	fitMaxShade bool
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		threads: runtime.GOMAXPROCS(0),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasChunks {
		o.chunks = o.threads
	}
	return o
}

// WithThreads sets the number of worker goroutines. Must be at least 1.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithChunks sets the number of row chunks the image is split into.
// Must be at least 1. Chunks beyond the image height are empty.
func WithChunks(n int) Option {
	return func(o *options) {
		o.chunks = n
		o.hasChunks = true
	}
}

// WithOutputFormat forces the output format used by DetectFile instead of
// deriving it from the output file extension.
func WithOutputFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.hasFormat = true
	}
}

// WithFitMaxShade makes DetectFile declare a max shade of at least 255 in
// PGM output, so files with a smaller input max shade can be read back.
// By default PGM output keeps the input max shade even though gradients
// reach 255.
func WithFitMaxShade() Option {
	return func(o *options) {
		o.fitMaxShade = true
	}
}

package link

import (
	"runtime"

	"github.com/foundrylink/namelink/logging"
)

// ProgressFunc is called as queries finish scoring: done is the number of
// unique query names completed so far, total is the number of unique query
// names in the run.
type ProgressFunc func(done, total int)

// ReferenceFunc scores a and b with an independent implementation, used
// only to log the kernel's divergence from a trusted reference when
// diagnostics are enabled. It never gates which matches are emitted.
type ReferenceFunc func(a, b string) float64

// Options configures one ScoreAll run.
type Options struct {
	// Workers bounds how many unique queries are scored concurrently. 0
	// selects runtime.GOMAXPROCS(0).
	Workers int

	// BufferBytes sets each output file's write buffer size. Values below
	// 64 KiB are raised to 64 KiB.
	BufferBytes int

	// Logger receives the driver's structured warnings: output-file close
	// failures and reference divergence. A nil Logger disables logging.
	Logger *logging.Logger

	// Progress is called after each unique query finishes, if non-nil.
	Progress ProgressFunc

	// Reference, if set, is used to log the kernel's divergence from a
	// trusted Jaro-Winkler implementation for every pair that reaches the
	// minimum score. This is a diagnostic aid, not a correctness gate.
	Reference ReferenceFunc
}

// DefaultOptions returns sensible defaults: one worker per logical CPU, a
// 64 KiB output buffer, no progress callback, no reference comparison.
func DefaultOptions() Options {
	return Options{
		Workers:     runtime.GOMAXPROCS(0),
		BufferBytes: 64 * 1024,
	}
}

func (o Options) workerCount() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func (o Options) bufferBytes() int {
	const minBuffer = 64 * 1024
	if o.BufferBytes < minBuffer {
		return minBuffer
	}
	return o.BufferBytes
}

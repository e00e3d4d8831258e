// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import "github.com/rs/zerolog"

// DefaultBufferSize is the reader capacity and writer spill threshold used when
// no size option is given.
const DefaultBufferSize = 8192

// ReaderOption configures a BufReader at construction.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	size int
}

// WithReaderSize sets the fixed capacity of the read buffer.
// Non-positive sizes select DefaultBufferSize.
func WithReaderSize(n int) ReaderOption {
	return func(c *readerConfig) { c.size = n }
}

func newReaderConfig(opts []ReaderOption) readerConfig {
	c := readerConfig{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.size <= 0 {
		c.size = DefaultBufferSize
	}
	return c
}

// WriterOption configures a BufWriter at construction.
type WriterOption func(*writerConfig)

type writerConfig struct {
	threshold int
	logger    zerolog.Logger
}

// WithThreshold sets the spill threshold of the write buffer. The same value
// reserves the buffer's capacity and decides when a write overflows.
// Non-positive values select DefaultBufferSize.
func WithThreshold(n int) WriterOption {
	return func(c *writerConfig) { c.threshold = n }
}

// WithLogger sets the logger used to report failures that cannot be returned,
// such as a failed final drain in Close. The default logger discards output.
func WithLogger(l zerolog.Logger) WriterOption {
	return func(c *writerConfig) { c.logger = l }
}

func newWriterConfig(opts []WriterOption) writerConfig {
	c := writerConfig{threshold: DefaultBufferSize, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.threshold <= 0 {
		c.threshold = DefaultBufferSize
	}
	return c
}

// CopyOption configures Copy.
type CopyOption func(*copyConfig)

type copyConfig struct {
	buf    []byte
	policy RetryPolicy
	logger zerolog.Logger
}

// WithBuffer stages Copy through buf. A nil or empty buf selects a
// DefaultBufferSize buffer.
func WithBuffer(buf []byte) CopyOption {
	return func(c *copyConfig) { c.buf = buf }
}

// WithPolicy makes Copy consult p when an endpoint reports a retryable kind
// (Interrupted or WouldBlock). Without a policy such errors are returned.
func WithPolicy(p RetryPolicy) CopyOption {
	return func(c *copyConfig) { c.policy = p }
}

// WithCopyLogger sets the logger Copy uses to trace retry decisions.
func WithCopyLogger(l zerolog.Logger) CopyOption {
	return func(c *copyConfig) { c.logger = l }
}

func newCopyConfig(opts []CopyOption) copyConfig {
	c := copyConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.buf) == 0 {
		c.buf = make([]byte, DefaultBufferSize)
	}
	return c
}

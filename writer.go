// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"github.com/rs/zerolog"
)

// slotState is the ownership state of a BufWriter's endpoint.
type slotState uint8

const (
	slotPresent slotState = iota
	slotClosed
)

// endpointSlot holds the wrapped Writer until it is relinquished.
type endpointSlot struct {
	state slotState
	w     Writer
}

func (s *endpointSlot) get() (Writer, error) {
	if s.state == slotClosed {
		return nil, ErrClosed
	}
	return s.w, nil
}

func (s *endpointSlot) relinquish() Writer {
	w := s.w
	s.state, s.w = slotClosed, nil
	return w
}

// BufWriter coalesces small writes to a Writer.
//
// Writes are appended to a buffer until the buffered length plus the next
// write would exceed the threshold; then the buffer is drained to the endpoint
// first. A write of at least the threshold goes straight to the endpoint after
// the drain. Data reaches the endpoint only on overflow, Flush, IntoInner or
// Close.
//
// A BufWriter is not safe for concurrent use.
type BufWriter struct {
	slot      endpointSlot
	buf       []byte
	threshold int
	logger    zerolog.Logger
}

// NewWriter returns a BufWriter that owns w.
func NewWriter(w Writer, opts ...WriterOption) *BufWriter {
	c := newWriterConfig(opts)
	return &BufWriter{
		slot:      endpointSlot{state: slotPresent, w: w},
		buf:       make([]byte, 0, c.threshold),
		threshold: c.threshold,
		logger:    c.logger,
	}
}

// Write buffers p and reports len(p) accepted, or forwards p directly when it
// is at least the threshold. Bytes already buffered are drained to the
// endpoint before p is placed if they would otherwise overflow.
//
// On a drain failure the error is returned with n == 0 and p is not buffered.
// After Close or IntoInner, Write returns ErrClosed.
func (b *BufWriter) Write(p []byte) (n int, err error) {
	w, err := b.slot.get()
	if err != nil {
		return 0, err
	}
	if len(b.buf)+len(p) > b.threshold {
		if err := b.drain(w); err != nil {
			return 0, err
		}
		if len(p) >= b.threshold {
			return w.Write(p)
		}
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString is like Write for a string.
func (b *BufWriter) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// drain submits the buffer to w until it is empty.
//
// The portion accepted before a failure is consumed from the buffer. A write
// that accepts zero bytes without an error is a WriteZero error; the same
// slice is never submitted twice.
func (b *BufWriter) drain(w Writer) error {
	written := 0
	defer func() { b.consume(written) }()
	for written < len(b.buf) {
		n, err := w.Write(b.buf[written:])
		if n < 0 || n > len(b.buf)-written {
			return Errorf(InvalidData, "bufx: writer returned invalid count %d for %d bytes", n, len(b.buf)-written)
		}
		written += n
		if err != nil {
			return err
		}
		if n == 0 {
			return Errorf(WriteZero, "bufx: endpoint accepted 0 of %d buffered bytes", len(b.buf)-written)
		}
	}
	return nil
}

func (b *BufWriter) consume(n int) {
	if n == 0 {
		return
	}
	rest := copy(b.buf, b.buf[n:])
	b.buf = b.buf[:rest]
}

// Flush drains the buffer and then flushes the endpoint (Flush, or Sync for
// endpoints such as files) so it can reach its own backing store. The endpoint
// is flushed on every call, since it may hold bytes of its own; a second Flush
// with no intervening writes has nothing to drain and writes nothing.
func (b *BufWriter) Flush() error {
	w, err := b.slot.get()
	if err != nil {
		return err
	}
	return b.flush(w)
}

func (b *BufWriter) flush(w Writer) error {
	if err := b.drain(w); err != nil {
		return err
	}
	return flushEndpoint(w)
}

// IntoInner drains the buffer and gives up ownership of the endpoint,
// returning it. If the drain fails the writer keeps the endpoint and the
// error is returned. The endpoint is not flushed or closed.
func (b *BufWriter) IntoInner() (Writer, error) {
	w, err := b.slot.get()
	if err != nil {
		return nil, err
	}
	if err := b.drain(w); err != nil {
		return nil, err
	}
	return b.slot.relinquish(), nil
}

// Close makes a best-effort final flush, relinquishes the endpoint and closes
// it if it is a Closer. The endpoint is relinquished even when the flush
// fails; bytes still buffered at that point are dropped and the failure is
// logged and returned. Close on a closed writer returns nil.
func (b *BufWriter) Close() error {
	w, err := b.slot.get()
	if err != nil {
		return nil
	}
	ferr := b.flush(w)
	if ferr != nil {
		b.logger.Warn().Err(ferr).Int("buffered", len(b.buf)).Msg("bufx: final drain failed, dropping buffered bytes")
	}
	b.buf = b.buf[:0]
	b.slot.relinquish()
	if c, ok := w.(Closer); ok {
		if cerr := c.Close(); cerr != nil && ferr == nil {
			return cerr
		}
	}
	return ferr
}

// Buffered returns the number of bytes waiting in the buffer.
func (b *BufWriter) Buffered() int { return len(b.buf) }

// Available returns how many more bytes can be buffered before the next write
// overflows the threshold.
func (b *BufWriter) Available() int { return b.threshold - len(b.buf) }

// Threshold returns the spill threshold.
func (b *BufWriter) Threshold() int { return b.threshold }

var (
	_ Writer  = (*BufWriter)(nil)
	_ Flusher = (*BufWriter)(nil)
	_ Closer  = (*BufWriter)(nil)
)

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

// BufReader adds read-ahead buffering to a Reader.
//
// Small reads are served from a fixed-capacity buffer refilled by one
// underlying Read per buffer-full. A read of at least the buffer's capacity,
// issued while the buffer is exhausted, bypasses the buffer and goes straight
// to the wrapped Reader.
//
// BufReader never loops to fill p: like any Reader it may return fewer bytes
// than requested. Use io.ReadFull for fill-to-completion.
//
// A BufReader is not safe for concurrent use.
type BufReader struct {
	rd  Reader
	buf []byte
	pos int // next byte to deliver
	end int // number of valid bytes in buf; 0 <= pos <= end <= len(buf)
	err error
}

// NewReader returns a BufReader that owns rd.
func NewReader(rd Reader, opts ...ReaderOption) *BufReader {
	c := newReaderConfig(opts)
	return &BufReader{rd: rd, buf: make([]byte, c.size)}
}

// Read reads up to len(p) bytes into p.
//
// When the buffer is exhausted and len(p) is at least Size, the call is
// forwarded to the wrapped Reader with p and its result returned unchanged.
// Otherwise the buffer is refilled with a single underlying Read and as much
// of it as fits is copied into p. On both paths a count outside [0, len] of
// the slice handed to the wrapped Reader is an InvalidData error. Errors from
// the wrapped Reader are returned unchanged; if it returns bytes together with an error, the bytes are
// delivered first and the error on the next call that needs a refill.
func (b *BufReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		if b.Buffered() > 0 {
			return 0, nil
		}
		return 0, b.readErr()
	}
	if b.pos == b.end {
		if b.err != nil {
			return 0, b.readErr()
		}
		if len(p) >= len(b.buf) {
			n, err = b.rd.Read(p)
			if n < 0 || n > len(p) {
				return 0, invalidReadCount(n, len(p))
			}
			return n, err
		}
		n, err := b.rd.Read(b.buf)
		if n < 0 || n > len(b.buf) {
			return 0, invalidReadCount(n, len(b.buf))
		}
		b.pos, b.end = 0, n
		if n == 0 {
			return 0, err
		}
		b.err = err
	}

	n = copy(p, b.buf[b.pos:b.end])
	b.pos += n
	return n, nil
}

func invalidReadCount(n, size int) error {
	return Errorf(InvalidData, "bufx: reader returned invalid count %d for %d-byte buffer", n, size)
}

func (b *BufReader) readErr() error {
	err := b.err
	b.err = nil
	return err
}

// Buffered returns the number of bytes that can be read from the buffer
// without touching the wrapped Reader.
func (b *BufReader) Buffered() int { return b.end - b.pos }

// Size returns the capacity of the buffer.
func (b *BufReader) Size() int { return len(b.buf) }

// Reset discards buffered data and any pending error and switches to rd.
func (b *BufReader) Reset(rd Reader) {
	b.rd = rd
	b.pos, b.end = 0, 0
	b.err = nil
}

var _ Reader = (*BufReader)(nil)

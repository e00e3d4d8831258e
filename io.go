// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"io"
)

// Copy copies from src to dst until src reports end-of-data or an error
// occurs, and returns the number of bytes dst accepted.
//
// Each chunk read from src is submitted to dst until fully accepted; a write
// that accepts zero bytes without an error is a WriteZero error. A read
// returning (0, nil) ends the copy with a nil error rather than spinning.
// io.EOF from src is not an error.
//
// Errors classifying as Interrupted or WouldBlock are returned unless a
// policy is supplied with WithPolicy and asks for a retry. Copy does not
// flush dst.
func Copy(dst Writer, src Reader, opts ...CopyOption) (written int64, err error) {
	c := newCopyConfig(opts)
	buf := c.buf

	for {
		nr, er := src.Read(buf)
		if nr < 0 || nr > len(buf) {
			return written, Errorf(InvalidData, "bufx: reader returned invalid count %d for %d-byte buffer", nr, len(buf))
		}
		if nr > 0 {
			off := 0
			for off < nr {
				nw, ew := dst.Write(buf[off:nr])
				if nw < 0 || nw > nr-off {
					return written, Errorf(InvalidData, "bufx: writer returned invalid count %d for %d bytes", nw, nr-off)
				}
				off += nw
				written += int64(nw)
				if ew != nil {
					if c.retry(OpCopyWrite, ew) {
						continue
					}
					return written, ew
				}
				if nw == 0 {
					return written, Errorf(WriteZero, "bufx: endpoint accepted 0 of %d copied bytes", nr-off)
				}
			}
			c.progress()
		}

		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			if c.retry(OpCopyRead, er) {
				continue
			}
			return written, er
		}

		if nr == 0 {
			return written, nil
		}
	}
}

// retry consults the policy for a retryable err and yields when it says so.
func (c *copyConfig) retry(op Op, err error) bool {
	if c.policy == nil || !IsRetryable(err) {
		return false
	}
	k := KindOf(err)
	if c.policy.Decide(op, k) != PolicyRetry {
		return false
	}
	c.logger.Debug().Str("op", op.String()).Str("kind", k.String()).Msg("bufx: retrying copy step")
	c.policy.Yield(op)
	return true
}

func (c *copyConfig) progress() {
	if p, ok := c.policy.(progressor); ok {
		p.progress()
	}
}

// Sink returns a Writer that accepts and discards every byte.
func Sink() Writer { return sink{} }

type sink struct{}

func (sink) Write(p []byte) (int, error) { return len(p), nil }

func (sink) WriteString(s string) (int, error) { return len(s), nil }

func (sink) Flush() error { return nil }

// Empty returns a Reader that is always at end-of-data.
func Empty() Reader { return empty{} }

type empty struct{}

func (empty) Read([]byte) (int, error) { return 0, io.EOF }

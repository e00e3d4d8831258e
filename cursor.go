// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import "io"

// Cursor is an in-memory endpoint over a byte slice with a position.
//
// Reads consume from the position; writes overwrite at the position and grow
// the slice as needed. Seeking past the end is allowed; a later write fills
// the gap with zeros.
type Cursor struct {
	buf []byte
	pos int64
}

// NewCursor returns a Cursor over buf positioned at 0. The Cursor takes
// ownership of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.pos >= int64(len(c.buf)) {
		return 0, io.EOF
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += int64(n)
	return n, nil
}

func (c *Cursor) Write(p []byte) (int, error) {
	end := c.pos + int64(len(p))
	if end > int64(len(c.buf)) {
		if end > int64(cap(c.buf)) {
			grown := make([]byte, len(c.buf), max(end, 2*int64(cap(c.buf))))
			copy(grown, c.buf)
			c.buf = grown
		}
		clear(c.buf[len(c.buf):end])
		c.buf = c.buf[:end]
	}
	n := copy(c.buf[c.pos:], p)
	c.pos += int64(n)
	return n, nil
}

// Seek sets the position for the next Read or Write.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = c.pos
	case io.SeekEnd:
		base = int64(len(c.buf))
	default:
		return c.pos, Errorf(InvalidInput, "bufx: invalid whence %d", whence)
	}
	pos := base + offset
	if pos < 0 {
		return c.pos, Errorf(InvalidInput, "bufx: seek to negative position %d", pos)
	}
	c.pos = pos
	return pos, nil
}

// Bytes returns the whole underlying slice, independent of the position.
func (c *Cursor) Bytes() []byte { return c.buf }

// Position returns the current position.
func (c *Cursor) Position() int64 { return c.pos }

// Len returns the number of bytes between the position and the end.
func (c *Cursor) Len() int {
	if c.pos >= int64(len(c.buf)) {
		return 0
	}
	return len(c.buf) - int(c.pos)
}

var _ ReadWriteSeeker = (*Cursor)(nil)

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"io"
)

// Reader is the readable-stream capability a BufReader wraps.
//
// Read places up to len(p) bytes into p and returns how many it placed,
// 0 <= n <= len(p). A Reader may under-fill p even when more data will follow.
// End-of-data is reported as (0, EOF); a Reader should not return (0, nil)
// except when len(p) == 0.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is the writable-stream capability a BufWriter wraps.
//
// Write accepts up to len(p) bytes and returns how many it accepted,
// 0 <= n <= len(p). Endpoints in this package may accept a prefix of p without
// an error; BufWriter and Copy keep submitting the remainder.
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Flusher is implemented by endpoints that buffer internally and can push
// that state to stable storage.
//
// BufWriter.Flush forwards to Flush after draining its own buffer.
type Flusher interface {
	Flush() error
}

// Syncer is implemented by endpoints with a durability sync, such as *os.File.
// It is used by BufWriter.Flush when the endpoint is not a Flusher.
type Syncer interface {
	Sync() error
}

// Closer is an alias of io.Closer.
type Closer = io.Closer

// ReadWriteSeeker is an alias of io.ReadWriteSeeker.
type ReadWriteSeeker = io.ReadWriteSeeker

// EOF is returned by Read when no more input is available.
var EOF = io.EOF

// flushEndpoint pushes endpoint-level buffering to stable state, if w has any.
func flushEndpoint(w Writer) error {
	switch f := w.(type) {
	case Flusher:
		return f.Flush()
	case Syncer:
		return f.Sync()
	default:
		return nil
	}
}

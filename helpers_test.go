// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx_test

import (
	"bytes"
	"errors"
	"io"
)

var errBoom = errors.New("boom")

// sourceReader serves data in chunks of at most limit bytes (0: no limit)
// and records the length of every destination it was handed.
type sourceReader struct {
	data  []byte
	limit int
	calls []int
	last  []byte
}

func (r *sourceReader) Read(p []byte) (int, error) {
	r.calls = append(r.calls, len(p))
	r.last = p
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	q := p
	if r.limit > 0 && len(q) > r.limit {
		q = q[:r.limit]
	}
	n := copy(q, r.data)
	r.data = r.data[n:]
	return n, nil
}

// scriptedReader returns scripted (bytes, err) pairs, then EOF.
type scriptedReader struct {
	steps []struct {
		b   []byte
		err error
	}
	i int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	if s.i >= len(s.steps) {
		return 0, io.EOF
	}
	st := s.steps[s.i]
	s.i++
	n := copy(p, st.b)
	return n, st.err
}

// recordingWriter keeps every slice it was handed and accepts at most limit
// bytes per call (0: no limit).
type recordingWriter struct {
	limit int
	calls [][]byte
	data  bytes.Buffer
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.calls = append(w.calls, append([]byte(nil), p...))
	q := p
	if w.limit > 0 && len(q) > w.limit {
		q = q[:w.limit]
	}
	return w.data.Write(q)
}

// zeroWriter accepts nothing and reports no error.
type zeroWriter struct{ calls int }

func (w *zeroWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, nil
}

// errWriter accepts up to n bytes and then fails with err.
type errWriter struct {
	n     int
	err   error
	calls int
	data  bytes.Buffer
}

func (w *errWriter) Write(p []byte) (int, error) {
	w.calls++
	n := min(w.n, len(p))
	w.data.Write(p[:n])
	return n, w.err
}

// flushRecorder is a Flusher endpoint counting both kinds of calls.
type flushRecorder struct {
	recordingWriter
	flushes  int
	flushErr error
	closed   bool
}

func (w *flushRecorder) Flush() error {
	w.flushes++
	return w.flushErr
}

func (w *flushRecorder) Close() error {
	w.closed = true
	return nil
}

// syncRecorder is a Syncer endpoint, like *os.File.
type syncRecorder struct {
	recordingWriter
	syncs int
}

func (w *syncRecorder) Sync() error {
	w.syncs++
	return nil
}

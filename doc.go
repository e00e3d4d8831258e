// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bufx provides buffered I/O over plain byte-stream endpoints and an
// error taxonomy that classifies operating-system failures into portable
// kinds.
//
// Buffering
//   - BufReader batches small reads into one underlying Read per buffer-full
//     and forwards reads of at least its capacity straight to the endpoint.
//   - BufWriter coalesces small writes, drains its buffer on overflow with a
//     partial-write loop, and forwards large writes directly.
//
// Both wrappers are themselves a Reader or Writer, so they compose. Neither is
// safe for concurrent use, and neither retries Interrupted; that belongs to
// the layer owning the system-call loop (File does it for EINTR).
//
// Errors
//
// Error carries a raw OS code, a bare Kind, or a Kind plus cause. Errors from
// a wrapped endpoint pass through the wrappers unchanged. The buffering core
// makes its own errors only for WriteZero, when an endpoint accepts zero bytes
// while a drain still has data, for InvalidData, when an endpoint reports an
// impossible count, and ErrClosed after the writer gave up its endpoint.
//
// Endpoints
//
// File (unix), Stdin/Stdout/Stderr, Cursor, Sink and Empty implement the
// capability interfaces. Copy moves bytes between any Reader and Writer with
// an optional RetryPolicy.
package bufx

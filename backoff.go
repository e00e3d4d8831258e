// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"time"
)

const (
	// DefaultBackoffBase is the first sleep of a Backoff (500µs).
	DefaultBackoffBase = 500 * time.Microsecond

	// DefaultBackoffMax caps a single sleep (100ms).
	DefaultBackoffMax = 100 * time.Millisecond
)

// Backoff is a linear, block-based sleep sequence with ±12.5% jitter, used by
// BackoffPolicy while an endpoint keeps reporting WouldBlock.
//
// Waits are grouped into blocks: block n holds n sleeps of base×n, capped at
// max. The zero value uses DefaultBackoffBase and DefaultBackoffMax.
type Backoff struct {
	block int // 1-indexed, 0 before first Wait
	step  int // sleeps taken in the current block
	base  time.Duration
	max   time.Duration
	seed  uint64
}

// Wait sleeps for the current duration with jitter and advances the sequence.
func (b *Backoff) Wait() {
	if b.block == 0 {
		b.block = 1
		if b.seed == 0 {
			b.seed = uint64(time.Now().UnixNano()) | 1
		}
	}
	time.Sleep(b.jitter(b.Duration()))

	b.step++
	if b.step >= b.block {
		b.step = 0
		b.block++
	}
}

// jitter applies ±12.5% from an xorshift sequence.
func (b *Backoff) jitter(d time.Duration) time.Duration {
	b.seed ^= b.seed << 13
	b.seed ^= b.seed >> 7
	b.seed ^= b.seed << 17
	r := int64(b.seed>>32) % 256
	return d + time.Duration(int64(d)*(r-128)/1024)
}

// SetBase sets the first sleep and the per-block increment.
func (b *Backoff) SetBase(d time.Duration) { b.base = d }

// SetMax caps a single sleep.
func (b *Backoff) SetMax(d time.Duration) { b.max = d }

// Reset restarts the sequence at block 1.
func (b *Backoff) Reset() { b.block, b.step = 0, 0 }

// Block returns the current block number, starting at 1.
func (b *Backoff) Block() int {
	if b.block == 0 {
		return 1
	}
	return b.block
}

// Duration returns the current sleep without jitter.
func (b *Backoff) Duration() time.Duration {
	base, max := b.base, b.max
	if base <= 0 {
		base = DefaultBackoffBase
	}
	if max <= 0 {
		max = DefaultBackoffMax
	}
	d := time.Duration(b.Block()) * base
	if d > max {
		return max
	}
	return d
}

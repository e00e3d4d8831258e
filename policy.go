// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import "runtime"

// Op identifies which side of a Copy reported a retryable error.
type Op uint8

const (
	OpCopyRead Op = iota
	OpCopyWrite
)

func (op Op) String() string {
	switch op {
	case OpCopyRead:
		return "CopyRead"
	case OpCopyWrite:
		return "CopyWrite"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells Copy whether to return to the caller or try again.
type PolicyAction uint8

const (
	// PolicyReturn means: return the error to the caller.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: call Yield, then repeat the operation.
	PolicyRetry
)

// RetryPolicy decides how Copy reacts to retryable kinds (Interrupted,
// WouldBlock). The buffered wrappers never consult a policy; retrying is a
// choice made by whoever owns the copy loop.
//
// If Decide returns PolicyRetry, Copy calls Yield(op) and repeats the
// operation. A Yield that does not wait may spin.
type RetryPolicy interface {
	Yield(op Op)
	Decide(op Op, k Kind) PolicyAction
}

// PolicyFunc adapts plain functions to RetryPolicy.
//
// Nil fields default to runtime.Gosched for YieldFunc and PolicyReturn for
// DecideFunc.
type PolicyFunc struct {
	YieldFunc  func(op Op)
	DecideFunc func(op Op, k Kind) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) Decide(op Op, k Kind) PolicyAction {
	if p.DecideFunc != nil {
		return p.DecideFunc(op, k)
	}
	return PolicyReturn
}

// ReturnPolicy never retries.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) Decide(Op, Kind) PolicyAction { return PolicyReturn }

// InterruptPolicy retries Interrupted on either side immediately and returns
// every other kind. This is the usual policy for blocking descriptors, where
// EINTR only means a signal arrived mid-call.
type InterruptPolicy struct{}

func (InterruptPolicy) Yield(Op) {}

func (InterruptPolicy) Decide(_ Op, k Kind) PolicyAction {
	if k == Interrupted {
		return PolicyRetry
	}
	return PolicyReturn
}

// BackoffPolicy retries both Interrupted and WouldBlock. Interrupted is
// retried at once; WouldBlock waits on Backoff first. The Backoff is reset
// after every operation that made progress.
type BackoffPolicy struct {
	Backoff *Backoff

	last Kind
}

// NewBackoffPolicy returns a BackoffPolicy with a zero-value Backoff.
func NewBackoffPolicy() *BackoffPolicy {
	return &BackoffPolicy{Backoff: &Backoff{}}
}

func (p *BackoffPolicy) Decide(_ Op, k Kind) PolicyAction {
	switch k {
	case Interrupted, WouldBlock:
		p.last = k
		return PolicyRetry
	default:
		return PolicyReturn
	}
}

func (p *BackoffPolicy) Yield(Op) {
	if p.last != WouldBlock {
		return
	}
	if p.Backoff == nil {
		p.Backoff = &Backoff{}
	}
	p.Backoff.Wait()
}

// progress resets the wait sequence. Copy calls it after a successful step.
func (p *BackoffPolicy) progress() {
	if p.Backoff != nil {
		p.Backoff.Reset()
	}
}

// progressor is implemented by policies that track forward progress.
type progressor interface{ progress() }

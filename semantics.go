// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import "io"

// Outcome is a coarse classification of an I/O result.
//
// OutcomeOK:        no error.
// OutcomeEOF:       the stream ended (io.EOF itself).
// OutcomeRetryable: Interrupted or WouldBlock; the call may succeed if repeated.
// OutcomeFailure:   any other error.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeEOF
	OutcomeRetryable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeEOF:
		return "EOF"
	case OutcomeRetryable:
		return "Retryable"
	default:
		return "Failure"
	}
}

// IsRetryable reports whether err classifies as Interrupted or WouldBlock.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case Interrupted, WouldBlock:
		return true
	default:
		return false
	}
}

// Classify maps err to an Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case err == io.EOF:
		return OutcomeEOF
	case IsRetryable(err):
		return OutcomeRetryable
	default:
		return OutcomeFailure
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	pkgerrors "github.com/pkg/errors"
)

// Kind is a portable classification of a failure, independent of the
// operating system's raw numeric error code.
//
// Kinds are ordered and comparable, so they can be used as map keys and in
// test assertions.
type Kind uint8

const (
	NotFound Kind = iota
	PermissionDenied
	ConnectionRefused
	ConnectionReset
	ConnectionAborted
	NotConnected
	AddrInUse
	AddrNotAvailable
	BrokenPipe
	AlreadyExists
	WouldBlock
	InvalidInput
	InvalidData
	TimedOut
	WriteZero
	Interrupted
	UnexpectedEOF
	Other
)

var kindNames = [...]string{
	NotFound:          "NotFound",
	PermissionDenied:  "PermissionDenied",
	ConnectionRefused: "ConnectionRefused",
	ConnectionReset:   "ConnectionReset",
	ConnectionAborted: "ConnectionAborted",
	NotConnected:      "NotConnected",
	AddrInUse:         "AddrInUse",
	AddrNotAvailable:  "AddrNotAvailable",
	BrokenPipe:        "BrokenPipe",
	AlreadyExists:     "AlreadyExists",
	WouldBlock:        "WouldBlock",
	InvalidInput:      "InvalidInput",
	InvalidData:       "InvalidData",
	TimedOut:          "TimedOut",
	WriteZero:         "WriteZero",
	Interrupted:       "Interrupted",
	UnexpectedEOF:     "UnexpectedEOF",
	Other:             "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// repr discriminates the three shapes an Error can take.
type repr uint8

const (
	reprOS repr = iota
	reprSimple
	reprCustom
)

// Error is the error type produced by bufx endpoints and buffered wrappers.
//
// An Error is one of:
//   - a raw platform error code, classified on every Kind call;
//   - a bare Kind with no further context;
//   - a Kind paired with an underlying cause.
//
// Errors returned by a wrapped endpoint are never re-wrapped by the buffered
// wrappers; only endpoints and helpers in this package construct Errors.
type Error struct {
	repr  repr
	code  int
	kind  Kind
	cause error
}

// New returns an Error of kind k carrying cause.
// If cause is nil, New is equivalent to FromKind(k).
func New(k Kind, cause error) *Error {
	if cause == nil {
		return FromKind(k)
	}
	return &Error{repr: reprCustom, kind: k, cause: cause}
}

// Errorf returns an Error of kind k whose cause is formatted from format and
// args. The cause records the stack at the call site.
func Errorf(k Kind, format string, args ...any) *Error {
	return &Error{repr: reprCustom, kind: k, cause: pkgerrors.Errorf(format, args...)}
}

// FromKind returns a bare Error of kind k.
func FromKind(k Kind) *Error {
	return &Error{repr: reprSimple, kind: k}
}

// FromRawOSError returns an Error holding the platform error code.
func FromRawOSError(code int) *Error {
	return &Error{repr: reprOS, code: code}
}

// LastOSError captures the platform error code carried by err, the error just
// returned by a failing system call. Go reports errno through the returned
// error rather than thread-local state, so err must be the value returned by
// that call, before any other call can replace it.
//
// If err carries no platform code it is lifted with FromError.
func LastOSError(err error) *Error {
	if errno, ok := err.(syscall.Errno); ok {
		return FromRawOSError(int(errno))
	}
	return FromError(err)
}

// FromError lifts err into the taxonomy.
//
// A nil err returns nil. An err that already is (or wraps) an *Error is
// returned as that *Error, unchanged, even when it is a nil *Error. A bare syscall.Errno becomes a raw
// OS error; anything else becomes a Kind plus err as cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errno, ok := err.(syscall.Errno); ok {
		return FromRawOSError(int(errno))
	}
	return New(classifyError(err), err)
}

func classifyError(err error) Kind {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return decodeKind(int(errno))
	}
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return UnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		return WriteZero
	case errors.Is(err, io.ErrClosedPipe), errors.Is(err, fs.ErrClosed):
		return BrokenPipe
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return TimedOut
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return InvalidInput
	}
	return Other
}

// Kind reports the classification of e. Raw OS codes are looked up in the
// platform table on each call. A nil *Error is Other.
func (e *Error) Kind() Kind {
	if e == nil {
		return Other
	}
	switch e.repr {
	case reprOS:
		return decodeKind(e.code)
	default:
		return e.kind
	}
}

// RawOSError returns the platform error code when e was built from one.
func (e *Error) RawOSError() (int, bool) {
	if e != nil && e.repr == reprOS {
		return e.code, true
	}
	return 0, false
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.repr {
	case reprOS:
		return fmt.Sprintf("%s (os error %d)", errnoString(e.code), e.code)
	case reprSimple:
		return e.kind.String()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the cause of a kind-plus-cause Error, or the syscall.Errno of
// a raw OS Error so that errors.Is(err, fs.ErrNotExist) and similar work.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.repr {
	case reprOS:
		return syscall.Errno(e.code)
	case reprCustom:
		return e.cause
	default:
		return nil
	}
}

// Is matches a bare-kind target by Kind and a raw OS target by code.
//
//	errors.Is(err, bufx.FromKind(bufx.NotFound))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	switch t.repr {
	case reprSimple:
		return e.Kind() == t.kind
	case reprOS:
		return e.repr == reprOS && e.code == t.code
	default:
		return e == t
	}
}

// KindOf classifies err. It returns Other for nil.
func KindOf(err error) Kind {
	if err == nil {
		return Other
	}
	return FromError(err).Kind()
}

// IsKind reports whether err is non-nil and classifies as k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// ErrClosed is returned by BufWriter operations after the endpoint has been
// relinquished by Close or IntoInner.
var ErrClosed = New(BrokenPipe, pkgerrors.Wrap(fs.ErrClosed, "bufx: writer"))

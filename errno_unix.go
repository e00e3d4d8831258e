// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx

import "golang.org/x/sys/unix"

// EWOULDBLOCK equals EAGAIN on every supported unix and is covered by it.
var errnoKinds = map[unix.Errno]Kind{
	unix.ECONNREFUSED:  ConnectionRefused,
	unix.ECONNRESET:    ConnectionReset,
	unix.ECONNABORTED:  ConnectionAborted,
	unix.EPERM:         PermissionDenied,
	unix.EACCES:        PermissionDenied,
	unix.EPIPE:         BrokenPipe,
	unix.ENOTCONN:      NotConnected,
	unix.EAGAIN:        WouldBlock,
	unix.ENOENT:        NotFound,
	unix.EEXIST:        AlreadyExists,
	unix.EADDRINUSE:    AddrInUse,
	unix.EADDRNOTAVAIL: AddrNotAvailable,
	unix.EINTR:         Interrupted,
	unix.ETIMEDOUT:     TimedOut,
	unix.EINVAL:        InvalidInput,
}

func decodeKind(code int) Kind {
	if k, ok := errnoKinds[unix.Errno(code)]; ok {
		return k
	}
	return Other
}

func errnoString(code int) string {
	return unix.Errno(code).Error()
}

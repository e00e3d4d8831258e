// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package bufx

import (
	"io/fs"
	"syscall"
)

// Winsock and Win32 codes not exported by package syscall.
const (
	errorFileExists       syscall.Errno = 80
	errorInvalidParameter syscall.Errno = 87
	errorSemTimeout       syscall.Errno = 121
	errorNoData           syscall.Errno = 232
	waitTimeout           syscall.Errno = 258
	wsaEINTR              syscall.Errno = 10004
	wsaEACCES             syscall.Errno = 10013
	wsaEINVAL             syscall.Errno = 10022
	wsaEWOULDBLOCK        syscall.Errno = 10035
	wsaEADDRINUSE         syscall.Errno = 10048
	wsaEADDRNOTAVAIL      syscall.Errno = 10049
	wsaECONNABORTED       syscall.Errno = 10053
	wsaECONNRESET         syscall.Errno = 10054
	wsaENOTCONN           syscall.Errno = 10057
	wsaETIMEDOUT          syscall.Errno = 10060
	wsaECONNREFUSED       syscall.Errno = 10061
)

var errnoKinds = map[syscall.Errno]Kind{
	syscall.ERROR_FILE_NOT_FOUND:  NotFound,
	syscall.ERROR_PATH_NOT_FOUND:  NotFound,
	syscall.ERROR_ACCESS_DENIED:   PermissionDenied,
	wsaEACCES:                     PermissionDenied,
	syscall.ERROR_ALREADY_EXISTS:  AlreadyExists,
	errorFileExists:               AlreadyExists,
	syscall.ERROR_BROKEN_PIPE:     BrokenPipe,
	errorNoData:                   BrokenPipe,
	errorInvalidParameter:         InvalidInput,
	wsaEINVAL:                     InvalidInput,
	errorSemTimeout:               TimedOut,
	waitTimeout:                   TimedOut,
	wsaETIMEDOUT:                  TimedOut,
	wsaEINTR:                      Interrupted,
	wsaEWOULDBLOCK:                WouldBlock,
	wsaEADDRINUSE:                 AddrInUse,
	wsaEADDRNOTAVAIL:              AddrNotAvailable,
	wsaECONNABORTED:               ConnectionAborted,
	wsaECONNRESET:                 ConnectionReset,
	wsaENOTCONN:                   NotConnected,
	wsaECONNREFUSED:               ConnectionRefused,
}

// decodeKind maps a Win32 or Winsock code to a Kind. Codes outside the table
// fall back to the fs sentinels syscall.Errno knows about.
func decodeKind(code int) Kind {
	errno := syscall.Errno(code)
	if k, ok := errnoKinds[errno]; ok {
		return k
	}
	switch {
	case errno.Is(fs.ErrNotExist):
		return NotFound
	case errno.Is(fs.ErrPermission):
		return PermissionDenied
	case errno.Is(fs.ErrExist):
		return AlreadyExists
	case errno.Timeout():
		return TimedOut
	}
	return Other
}

func errnoString(code int) string {
	return syscall.Errno(code).Error()
}

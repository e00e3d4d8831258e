// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"code.hybscloud.com/bufx"
)

func TestFromRawOSError_Classifies(t *testing.T) {
	cases := []struct {
		errno unix.Errno
		kind  bufx.Kind
	}{
		{unix.ENOENT, bufx.NotFound},
		{unix.EACCES, bufx.PermissionDenied},
		{unix.EPERM, bufx.PermissionDenied},
		{unix.ECONNREFUSED, bufx.ConnectionRefused},
		{unix.ECONNRESET, bufx.ConnectionReset},
		{unix.EPIPE, bufx.BrokenPipe},
		{unix.ENOTCONN, bufx.NotConnected},
		{unix.EAGAIN, bufx.WouldBlock},
		{unix.EWOULDBLOCK, bufx.WouldBlock},
		{unix.EINTR, bufx.Interrupted},
		{unix.EEXIST, bufx.AlreadyExists},
		{unix.ENOSPC, bufx.Other},
	}
	for _, tc := range cases {
		t.Run(tc.errno.Error(), func(t *testing.T) {
			e := bufx.FromRawOSError(int(tc.errno))
			assert.Equal(t, tc.kind, e.Kind())
			assert.Equal(t, tc.kind, e.Kind(), "repeated classification is stable")
			code, ok := e.RawOSError()
			assert.True(t, ok)
			assert.Equal(t, int(tc.errno), code)
		})
	}
	assert.Equal(t, bufx.Other, bufx.FromRawOSError(99999).Kind())
}

func TestError_OSDisplay(t *testing.T) {
	e := bufx.FromRawOSError(int(unix.ENOENT))
	assert.Equal(t, fmt.Sprintf("%s (os error %d)", unix.ENOENT.Error(), int(unix.ENOENT)), e.Error())
}

func TestError_OSMatching(t *testing.T) {
	e := bufx.FromRawOSError(int(unix.ENOENT))
	assert.True(t, errors.Is(e, fs.ErrNotExist))
	assert.True(t, errors.Is(e, unix.ENOENT))
	assert.True(t, errors.Is(e, bufx.FromRawOSError(int(unix.ENOENT))))
	assert.True(t, errors.Is(e, bufx.FromKind(bufx.NotFound)))
	assert.False(t, errors.Is(e, bufx.FromRawOSError(int(unix.EACCES))))
}

func TestLastOSError(t *testing.T) {
	e := bufx.LastOSError(unix.EAGAIN)
	assert.Equal(t, bufx.WouldBlock, e.Kind())
	_, ok := e.RawOSError()
	assert.True(t, ok)

	pe := &fs.PathError{Op: "open", Path: "/nope", Err: unix.ENOENT}
	e = bufx.LastOSError(pe)
	assert.Equal(t, bufx.NotFound, e.Kind())
	assert.Contains(t, e.Error(), "/nope")
	assert.True(t, errors.Is(e, fs.ErrNotExist))
}

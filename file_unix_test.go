// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/bufx"
)

func TestFile_BufferedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	want := bytes.Repeat([]byte("0123456789abcdef"), 1000)

	f, err := bufx.Create(path)
	require.NoError(t, err)
	w := bufx.NewWriter(f, bufx.WithThreshold(1024))
	for off := 0; off < len(want); off += 100 {
		_, err := w.Write(want[off:min(off+100, len(want))])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	in, err := bufx.Open(path)
	require.NoError(t, err)
	defer in.Close()
	got, err := io.ReadAll(bufx.NewReader(in, bufx.WithReaderSize(256)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFile_OpenMissing(t *testing.T) {
	_, err := bufx.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, bufx.NotFound, bufx.KindOf(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFile_OpenNeedsAccess(t *testing.T) {
	_, err := bufx.OpenOptions{Create: true}.Open(filepath.Join(t.TempDir(), "x"))
	assert.Equal(t, bufx.InvalidInput, bufx.KindOf(err))
}

func TestFile_CreateMissingParent(t *testing.T) {
	_, err := bufx.Create(filepath.Join(t.TempDir(), "no", "such", "dir", "f"))
	assert.True(t, bufx.IsKind(err, bufx.NotFound))
}

func TestFile_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	f, err := bufx.OpenOptions{Append: true}.Open(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, f.Flush())
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(got))
}

func TestFile_Closed(t *testing.T) {
	f, err := bufx.Create(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.NoError(t, f.Close())

	_, err = f.Write([]byte("x"))
	assert.Equal(t, bufx.BrokenPipe, bufx.KindOf(err))
	assert.True(t, errors.Is(err, fs.ErrClosed))
	_, err = f.Read(make([]byte, 1))
	assert.True(t, errors.Is(err, fs.ErrClosed))
	assert.Error(t, f.Flush())
}

func TestFile_ReadOnWriteOnlyIsOSError(t *testing.T) {
	f, err := bufx.Create(filepath.Join(t.TempDir(), "wo"))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Read(make([]byte, 4))
	require.Error(t, err)
	var e *bufx.Error
	require.True(t, errors.As(err, &e))
	_, ok := e.RawOSError()
	assert.True(t, ok, "descriptor failures carry the raw code")
}

func TestStdio(t *testing.T) {
	assert.Equal(t, 0, bufx.Stdin().Fd())
	assert.Equal(t, 1, bufx.Stdout().Fd())
	assert.Equal(t, 2, bufx.Stderr().Fd())
	assert.Same(t, bufx.Stdout(), bufx.Stdout())

	assert.NoError(t, bufx.Stdout().Flush())
	assert.NoError(t, bufx.Stderr().Close())
	_, err := bufx.Stderr().Write(nil)
	assert.NoError(t, err, "standard streams stay open")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n")
	require.NoError(t, os.WriteFile(path, []byte("xyz"), 0o644))
	osf, err := os.Open(path)
	require.NoError(t, err)
	defer osf.Close()

	f := bufx.NewFile(int(osf.Fd()), path)
	assert.Equal(t, path, f.Name())
	p := make([]byte, 8)
	n, err := f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "xyz", string(p[:n]))
}

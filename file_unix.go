// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx

import (
	"io"
	"io/fs"

	"golang.org/x/sys/unix"
)

// OpenOptions selects how Open opens a path. At least one of Read and Write
// must be set.
type OpenOptions struct {
	Read     bool
	Write    bool
	Append   bool
	Create   bool
	Truncate bool

	// Mode is the permission for a created file. Zero means 0644.
	Mode uint32
}

func (o OpenOptions) flags() (int, error) {
	var flags int
	switch {
	case o.Read && (o.Write || o.Append):
		flags = unix.O_RDWR
	case o.Write || o.Append:
		flags = unix.O_WRONLY
	case o.Read:
		flags = unix.O_RDONLY
	default:
		return 0, Errorf(InvalidInput, "bufx: open needs read or write access")
	}
	if o.Append {
		flags |= unix.O_APPEND
	}
	if o.Create {
		flags |= unix.O_CREAT
	}
	if o.Truncate {
		flags |= unix.O_TRUNC
	}
	return flags | unix.O_CLOEXEC, nil
}

// Open opens path with the options in o.
func (o OpenOptions) Open(path string) (*File, error) {
	flags, err := o.flags()
	if err != nil {
		return nil, err
	}
	mode := o.Mode
	if mode == 0 {
		mode = 0o644
	}
	var fd int
	for {
		fd, err = unix.Open(path, flags, mode)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return nil, FromError(&fs.PathError{Op: "open", Path: path, Err: err})
	}
	return &File{fd: fd, name: path}, nil
}

// Open opens path for reading.
func Open(path string) (*File, error) {
	return OpenOptions{Read: true}.Open(path)
}

// Create creates or truncates path for writing.
func Create(path string) (*File, error) {
	return OpenOptions{Write: true, Create: true, Truncate: true}.Open(path)
}

// File is a raw file descriptor endpoint. Read and Write map to single
// read(2)/write(2) calls; Flush is fsync(2).
//
// File owns the system-call retry loop: EINTR is retried here and never
// surfaces as Interrupted. Other failures are returned as raw OS Errors.
// Write may accept a prefix of p without an error.
type File struct {
	fd     int
	name   string
	std    bool // standard stream: not synced, not closed
	closed bool
}

// NewFile returns a File that owns fd.
func NewFile(fd int, name string) *File {
	return &File{fd: fd, name: name}
}

// Read reads up to len(p) bytes. It returns (0, EOF) at end of file.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, FromError(fs.ErrClosed)
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, LastOSError(err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write writes up to len(p) bytes with a single write(2).
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, FromError(fs.ErrClosed)
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Write(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, LastOSError(err)
		}
		return n, nil
	}
}

// Flush syncs the file to its backing store. It is a no-op on the standard
// streams.
func (f *File) Flush() error {
	if f.closed {
		return FromError(fs.ErrClosed)
	}
	if f.std {
		return nil
	}
	for {
		err := unix.Fsync(f.fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return LastOSError(err)
		}
		return nil
	}
}

// Close closes the descriptor. Closing twice returns nil. The standard
// streams are never closed.
func (f *File) Close() error {
	if f.closed || f.std {
		return nil
	}
	f.closed = true
	if err := unix.Close(f.fd); err != nil {
		return LastOSError(err)
	}
	return nil
}

// Fd returns the descriptor.
func (f *File) Fd() int { return f.fd }

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

var (
	_ Reader  = (*File)(nil)
	_ Writer  = (*File)(nil)
	_ Flusher = (*File)(nil)
	_ Closer  = (*File)(nil)
)

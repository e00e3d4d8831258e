// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx

var (
	stdin  = &File{fd: 0, name: "/dev/stdin", std: true}
	stdout = &File{fd: 1, name: "/dev/stdout", std: true}
	stderr = &File{fd: 2, name: "/dev/stderr", std: true}
)

// Stdin returns the process's standard input.
func Stdin() *File { return stdin }

// Stdout returns the process's standard output. Wrap it in a BufWriter to
// coalesce small writes.
func Stdout() *File { return stdout }

// Stderr returns the process's standard error.
func Stderr() *File { return stderr }

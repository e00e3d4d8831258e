// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

// Command bufcat concatenates files to standard output or a file through
// bufx's buffered reader and writer.
//
// Usage:
//
//	bufcat [flags] [file ...]
//
// With no file, or when file is -, bufcat reads standard input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package bufx

import "strconv"

func decodeKind(int) Kind { return Other }

func errnoString(code int) string { return "errno " + strconv.Itoa(code) }

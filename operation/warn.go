// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"os"
)

// Warn receives diagnostic messages for conditions that are suspicious but
// not errors, such as tensor products whose factors reuse wires. It writes
// to stderr by default; tests replace it to capture messages.
var Warn = func(msg string) {
	fmt.Fprintln(os.Stderr, "pennylane: "+msg)
}

func warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

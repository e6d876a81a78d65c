// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/dime10/pennylane/internal/backend/cpu"
	"github.com/dime10/pennylane/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of every operation the
// operator algebra needs, including the dense eigensolvers used for
// eigenvalue fallbacks and Hermitian diagonalization.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/dime10/pennylane/backend/cpu"
//	    "github.com/dime10/pennylane/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Matrix(2, 2, []complex128{0, 1, 1, 0})
//	    eig := backend.Eigvals(x)
//	    _ = eig
//	}
func New() *Backend {
	return internalcpu.New()
}

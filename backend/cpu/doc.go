// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for operator representations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float and complex dtypes (float32, float64, complex64, complex128)
//   - NumPy-compatible broadcasting
//   - Dense eigensolvers: shifted QR for general matrices, Jacobi for
//     Hermitian matrices
//
// # Basic Usage
//
//	import (
//	    "github.com/dime10/pennylane/backend/cpu"
//	    "github.com/dime10/pennylane/operation"
//	    "github.com/dime10/pennylane/ops"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    rx := ops.NewRX(0.5, 0)
//	    mat, err := operation.Matrix(rx, backend)
//	    _, _ = mat, err
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates its
// own result and does not share mutable state, except for the documented
// in-place fast path on uniquely owned, untracked inputs.
package cpu

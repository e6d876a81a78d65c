// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric arrays backing quantum operator
// representations.
//
// # Overview
//
// Every representation an operator produces (matrices, eigenvalues,
// Heisenberg transformations) is stored in this package's types:
//   - RawTensor: dtype-tagged n-dimensional array with reference-counted
//     buffers
//   - Tensor[T, B]: type-safe generic view over a RawTensor
//   - COO: sparse matrix in coordinate format
//   - Backend: interface for the numeric engine computing on RawTensor
//
// # Basic Usage
//
//	import (
//	    "github.com/dime10/pennylane/backend/cpu"
//	    "github.com/dime10/pennylane/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Matrix(2, 2, []complex128{0, 1, 1, 0})
//	    sq := backend.MatMul(x, x) // identity
//	    _ = sq
//	}
//
// # Complex Data
//
// Quantum gates are unitary over the complex numbers, so complex64 and
// complex128 are first-class dtypes alongside float32 and float64. Real
// tensors promote to their complex counterpart when multiplied by a complex
// scalar; see Backend.MulScalar.
//
// # Gradient Tracking
//
// RawTensor carries a requiresGrad flag marking trainable gate parameters.
// Backends propagate the flag from inputs to outputs, so any value derived
// from a trainable parameter is itself marked trainable.
package tensor

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Operator representations are computed against this interface so the same
// operator objects work on any numeric engine.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//
// All methods operate on RawTensor and propagate dtype and the requiresGrad
// flag from inputs to outputs. Invalid inputs (shape or dtype mismatches)
// are programmer errors and panic.
//
// Example:
//
//	import (
//	    "github.com/dime10/pennylane/tensor"
//	    "github.com/dime10/pennylane/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Matrix(2, 2, []complex128{0, 1, 1, 0})
//	z := tensor.Matrix(2, 2, []complex128{1, 0, 0, -1})
//	zx := backend.Kron(z, x)
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MulScalar multiplies every element by a Go scalar. Complex scalars
	// promote real tensors to the matching complex dtype.
	MulScalar(t *RawTensor, scalar any) *RawTensor

	// MatMul computes the 2-d matrix product a @ b.
	MatMul(a, b *RawTensor) *RawTensor

	// Kron computes the Kronecker product of two matrices.
	Kron(a, b *RawTensor) *RawTensor

	// TensorDot contracts axesA of a against axesB of b, generalizing
	// matrix multiplication to arbitrary-rank tensors.
	TensorDot(a, b *RawTensor, axesA, axesB []int) *RawTensor

	// Reshape returns a tensor with the same elements and a new shape.
	Reshape(t *RawTensor, shape Shape) *RawTensor

	// Transpose permutes axes. With no axes given the order is reversed;
	// for a matrix this is the ordinary transpose.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Conj returns the element-wise complex conjugate.
	Conj(t *RawTensor) *RawTensor

	// Real extracts the real part, narrowing to the matching real dtype.
	Real(t *RawTensor) *RawTensor

	// Round rounds element-wise to the given number of decimal places
	// (complex values round both components).
	Round(t *RawTensor, decimals int) *RawTensor

	// Cast converts the tensor to a different dtype.
	Cast(t *RawTensor, dtype DataType) *RawTensor

	// Eigvals computes the eigenvalues of a general square matrix.
	Eigvals(t *RawTensor) *RawTensor

	// Eigh computes the eigendecomposition of a Hermitian matrix: real
	// eigenvalues in ascending order and the matrix of column eigenvectors.
	Eigh(t *RawTensor) (*RawTensor, *RawTensor)

	// Name returns the backend identifier, e.g. "CPU".
	Name() string

	// Device returns the device this backend computes on.
	Device() Device
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/dime10/pennylane/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, complex64, complex128.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
	GPU Device = tensor.GPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 2} is a two-by-two matrix; Shape{} is a scalar.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, complex64, complex128).
// B is the backend implementation.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Eye creates a 2D identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []complex128{0, 1, 1, 0}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Full, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Raw creation helpers. Gate parameters and matrices are built from these.

// Scalar wraps a float64 in a 0-dimensional Float64 tensor. This is the
// standard currency for real gate parameters such as rotation angles.
func Scalar(v float64) *RawTensor {
	return tensor.Scalar(v)
}

// ScalarC wraps a complex128 in a 0-dimensional Complex128 tensor.
func ScalarC(v complex128) *RawTensor {
	return tensor.ScalarC(v)
}

// FromFloat64 creates a Float64 tensor from a slice and shape.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(data, shape)
}

// FromComplex128 creates a Complex128 tensor from a slice and shape.
func FromComplex128(data []complex128, shape Shape) (*RawTensor, error) {
	return tensor.FromComplex128(data, shape)
}

// Matrix creates an n-by-m Complex128 matrix from row-major data. It panics
// when the data length does not match; gate definitions rely on this for
// their fixed-size canonical matrices.
func Matrix(n, m int, data []complex128) *RawTensor {
	return tensor.Matrix(n, m, data)
}

// Vector creates a 1-d Float64 tensor from the given data.
func Vector(data []float64) *RawTensor {
	return tensor.Vector(data)
}

// VectorC creates a 1-d Complex128 tensor from the given data.
func VectorC(data []complex128) *RawTensor {
	return tensor.VectorC(data)
}

// RawZeros creates a zero-filled raw tensor, panicking on invalid shapes.
func RawZeros(shape Shape, dtype DataType) *RawTensor {
	return tensor.RawZeros(shape, dtype)
}

// RawEye creates an n-by-n identity matrix of the given dtype.
func RawEye(n int, dtype DataType) *RawTensor {
	return tensor.RawEye(n, dtype)
}

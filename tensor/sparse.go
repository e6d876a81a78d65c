// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/dime10/pennylane/internal/tensor"
)

// COO is a sparse matrix in coordinate format: parallel slices of row
// indices, column indices and complex values. Sparse observables and the
// sparse representation of tensor products use this type.
type COO = tensor.COO

// NewCOO creates an empty sparse matrix with the given dimensions.
func NewCOO(numRows, numCols int) (*COO, error) {
	return tensor.NewCOO(numRows, numCols)
}

// SparseEye creates a sparse n-by-n identity matrix.
func SparseEye(n int) *COO {
	return tensor.SparseEye(n)
}

// FromDense converts a dense matrix to coordinate format, skipping zeros.
func FromDense(t *RawTensor) (*COO, error) {
	return tensor.FromDense(t)
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/backend/cpu"
	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
)

// assertComplexEqual checks a complex128 tensor element-wise against the
// expected values, comparing real and imaginary parts separately.
func assertComplexEqual(t *testing.T, got *tensor.RawTensor, want []complex128) {
	t.Helper()
	require.Equal(t, tensor.Complex128, got.DType(), "expected a complex128 tensor")
	data := got.AsComplex128()
	require.Len(t, data, len(want), "tensor size mismatch")
	for i := range want {
		assert.InDelta(t, real(want[i]), real(data[i]), 1e-10, "element %d (real)", i)
		assert.InDelta(t, imag(want[i]), imag(data[i]), 1e-10, "element %d (imag)", i)
	}
}

// assertFloatEqual checks a float64 tensor element-wise against the expected
// values.
func assertFloatEqual(t *testing.T, got *tensor.RawTensor, want []float64) {
	t.Helper()
	require.Equal(t, tensor.Float64, got.DType(), "expected a float64 tensor")
	data := got.AsFloat64()
	require.Len(t, data, len(want), "tensor size mismatch")
	for i := range want {
		assert.InDelta(t, want[i], data[i], 1e-10, "element %d", i)
	}
}

// matrixOf resolves the canonical matrix of an operator through the
// representation dispatcher, failing the test on any error.
func matrixOf(t *testing.T, op operation.Operator) *tensor.RawTensor {
	t.Helper()
	m, err := operation.Matrix(op, cpu.New())
	require.NoError(t, err, "matrix of %s", op.Name())
	return m
}

// circuitMatrix multiplies the matrices of a gate sequence in circuit order,
// so the first gate in the slice is applied first.
func circuitMatrix(t *testing.T, dim int, gates []operation.Operator) *tensor.RawTensor {
	t.Helper()
	b := cpu.New()
	u := tensor.RawEye(dim, tensor.Complex128)
	for _, g := range gates {
		m, err := operation.Matrix(g, b)
		require.NoError(t, err, "matrix of %s", g.Name())
		u = b.MatMul(m, u)
	}
	return u
}

// conjugate computes u @ m @ u^dagger on the cpu backend.
func conjugate(b tensor.Backend, u, m *tensor.RawTensor) *tensor.RawTensor {
	return b.MatMul(b.MatMul(u, m), b.Conj(b.Transpose(u)))
}

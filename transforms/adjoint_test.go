// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transforms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/backend/cpu"
	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/ops"
	"github.com/dime10/pennylane/queuing"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/transforms"
	"github.com/dime10/pennylane/wires"
)

func TestAdjoint_ReversesAndAdjoints(t *testing.T) {
	circuit := []operation.Operator{
		ops.NewRX(0.3, 0),
		ops.NewS(0),
		ops.NewRY(0.5, 0),
	}

	adj, err := transforms.Adjoint(circuit)
	require.NoError(t, err)
	require.Len(t, adj, 3)

	require.IsType(t, &ops.RY{}, adj[0])
	assert.InDelta(t, -0.5, adj[0].Data()[0].AsFloat64()[0], 1e-12)
	require.IsType(t, &ops.S{}, adj[1])
	assert.True(t, adj[1].(*ops.S).Inverse())
	require.IsType(t, &ops.RX{}, adj[2])
	assert.InDelta(t, -0.3, adj[2].Data()[0].AsFloat64()[0], 1e-12)

	undone := sequenceMatrix(t, append(append([]operation.Operator{}, circuit...), adj...))
	assertMatrixEqual(t, undone, tensor.RawEye(2, tensor.Complex128))
}

func TestAdjoint_DecomposesWhenNeeded(t *testing.T) {
	emb, err := ops.NewAngleEmbedding([]float64{0.1, 0.2, 0.3}, "X", "a", "b", "c")
	require.NoError(t, err)

	adj, err := transforms.Adjoint([]operation.Operator{emb})
	require.NoError(t, err)

	require.Len(t, adj, 3)
	for i, angle := range []float64{-0.3, -0.2, -0.1} {
		require.IsType(t, &ops.RX{}, adj[i])
		assert.InDelta(t, angle, adj[i].Data()[0].AsFloat64()[0], 1e-12)
	}
	assert.Equal(t, wires.Wires{"c"}, adj[0].Wires())
	assert.Equal(t, wires.Wires{"a"}, adj[2].Wires())
}

func TestAdjoint_UndefinedPropagates(t *testing.T) {
	h, err := ops.NewHermitian(ops.PauliXMatrix(), 0)
	require.NoError(t, err)

	_, err = transforms.Adjoint([]operation.Operator{h})
	assert.ErrorIs(t, err, operation.ErrAdjointUndefined)
	assert.ErrorIs(t, err, operation.ErrDecompositionUndefined)
}

func TestAdjoint_EmptyList(t *testing.T) {
	adj, err := transforms.Adjoint(nil)
	require.NoError(t, err)
	assert.Empty(t, adj)
}

func TestAdjoint_UndoesExpandedTape(t *testing.T) {
	rot := ops.NewRot(0.1, 0.2, 0.3, 0)
	tape, err := queuing.Expand(rot)
	require.NoError(t, err)

	adj, err := transforms.Adjoint(tape.Operations())
	require.NoError(t, err)

	undone := sequenceMatrix(t, append(tape.Operations(), adj...))
	assertMatrixEqual(t, undone, tensor.RawEye(2, tensor.Complex128))
}

// sequenceMatrix multiplies the matrices of a gate sequence in circuit
// order.
func sequenceMatrix(t *testing.T, seq []operation.Operator) *tensor.RawTensor {
	t.Helper()
	b := cpu.New()
	u := tensor.RawEye(2, tensor.Complex128)
	for _, op := range seq {
		m, err := operation.Matrix(op, b)
		require.NoError(t, err, "matrix of %s", op.Name())
		u = b.MatMul(m, u)
	}
	return u
}

func assertMatrixEqual(t *testing.T, got, want *tensor.RawTensor) {
	t.Helper()
	require.Equal(t, tensor.Complex128, got.DType())
	gv, wv := got.AsComplex128(), want.AsComplex128()
	require.Len(t, gv, len(wv))
	for i := range wv {
		assert.InDelta(t, real(wv[i]), real(gv[i]), 1e-10, "element %d (real)", i)
		assert.InDelta(t, imag(wv[i]), imag(gv[i]), 1e-10, "element %d (imag)", i)
	}
}

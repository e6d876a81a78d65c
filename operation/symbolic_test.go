// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/backend/cpu"
	"github.com/dime10/pennylane/operation"
)

func TestNewAdjointed_RequiresBase(t *testing.T) {
	_, err := operation.NewAdjointed(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrInvalidConstruction)
	assert.Contains(t, err.Error(), "symbolic operator needs a base operator")
}

func TestAdjointed_ForwardsToBase(t *testing.T) {
	base := newRotGate("RX", 0.3, 2)
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	assert.Equal(t, "Adjoint(RX)", a.Name())
	assert.Equal(t, base.Wires(), a.Wires())
	assert.Equal(t, 1, a.NumParams())
	require.Len(t, a.Data(), 1)
	assert.Same(t, base.Data()[0], a.Data()[0])
	assert.Same(t, base, a.Base())
}

func TestAdjointed_Label(t *testing.T) {
	base := newRotGate("RX", 0.3, 0)
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	assert.Equal(t, "RX†", a.Label(-1, ""))
}

func TestAdjointed_HashDiffersFromBase(t *testing.T) {
	base := newRotGate("RX", 0.3, 0)
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	assert.NotEqual(t, base.Hash(), a.Hash())
}

func TestAdjointed_Hyperparameters(t *testing.T) {
	base := newRotGate("RX", 0.3, 0)
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	assert.Same(t, base, a.Hyperparameters()["base"])
}

func TestAdjointed_AdjointUnwraps(t *testing.T) {
	base := newRotGate("RX", 0.3, 0)
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	inner, err := operation.Adjoint(a)
	require.NoError(t, err)
	assert.Same(t, base, inner)
}

func TestAdjointed_Matrix(t *testing.T) {
	b := cpu.New()
	base := newMatGate("S", 0, []complex128{1, 0, 0, 1i})
	a, err := operation.NewAdjointed(base)
	require.NoError(t, err)

	m, err := operation.Matrix(a, b)
	require.NoError(t, err)
	assertComplexEqual(t, m, []complex128{1, 0, 0, -1i})
}

func TestAdjointed_MatrixUndefinedBase(t *testing.T) {
	b := cpu.New()
	a, err := operation.NewAdjointed(newDummyGate("DummyOp", 0))
	require.NoError(t, err)

	_, err = operation.Matrix(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrMatrixUndefined)
}

func TestOperationDerivative(t *testing.T) {
	b := cpu.New()
	theta := 0.3
	g := newPhaseGate(theta, 0)

	d, err := operation.OperationDerivative(g, b)
	require.NoError(t, err)

	// d/dtheta diag(1, e^{i theta}) = diag(0, i e^{i theta})
	want := complex(-math.Sin(theta), math.Cos(theta))
	assertComplexEqual(t, d, []complex128{0, 0, 0, want})
}

func TestOperationDerivative_Inverted(t *testing.T) {
	b := cpu.New()
	theta := 0.3
	g := newPhaseGate(theta, 0)
	g.Inv()

	d, err := operation.OperationDerivative(g, b)
	require.NoError(t, err)

	// d/dtheta diag(1, e^{-i theta}) = diag(0, -i e^{-i theta})
	want := complex(-math.Sin(theta), -math.Cos(theta))
	assertComplexEqual(t, d, []complex128{0, 0, 0, want})
}

func TestOperationDerivative_SingleParameterOnly(t *testing.T) {
	b := cpu.New()
	g := newDummyGate("CNOT", 0, 1)

	_, err := operation.OperationDerivative(g, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrInvalidConstruction)
	assert.Contains(t, err.Error(), "needs an operation with a single parameter; CNOT has 0")
}

func TestOperationDerivative_RequiresGenerator(t *testing.T) {
	b := cpu.New()
	g := newRotGate("RX", 0.3, 0)

	_, err := operation.OperationDerivative(g, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrGeneratorUndefined)
}

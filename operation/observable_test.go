// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
)

func TestObservable_ReturnType(t *testing.T) {
	x := newPauliX(0)
	assert.Equal(t, operation.ReturnType(""), x.ReturnType(), "unattached by default")

	x.SetReturnType(operation.Expectation)
	assert.Equal(t, operation.Expectation, x.ReturnType())
}

func TestReturnTypeValues(t *testing.T) {
	assert.Equal(t, operation.ReturnType("expval"), operation.Expectation)
	assert.Equal(t, operation.ReturnType("var"), operation.Variance)
	assert.Equal(t, operation.ReturnType("sample"), operation.Sample)
	assert.Equal(t, operation.ReturnType("probs"), operation.Probability)
	assert.Equal(t, operation.ReturnType("state"), operation.State)
}

func TestAdd_MergesEqualTerms(t *testing.T) {
	h, err := operation.Add(newPauliX(0), newPauliX(0))
	require.NoError(t, err)

	require.Len(t, h.Coeffs(), 1)
	assert.InDelta(t, 2, h.Coeffs()[0], 1e-12)
	assert.Equal(t, "PauliX", h.Observables()[0].Name())
}

func TestAdd_KeepsDistinctTerms(t *testing.T) {
	h, err := operation.Add(newPauliX(0), newPauliZ(1))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1}, h.Coeffs())
	require.Len(t, h.Observables(), 2)
}

func TestScale(t *testing.T) {
	h, err := operation.Scale(1.5, newPauliZ(0))
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5}, h.Coeffs())
	assert.Equal(t, "PauliZ", h.Observables()[0].Name())
}

func TestSub_CancelsToNothing(t *testing.T) {
	h, err := operation.Sub(newPauliX(0), newPauliX(0))
	require.NoError(t, err)

	assert.Empty(t, h.Coeffs(), "x - x leaves no terms")
}

func TestSub_KeepsDistinctTerms(t *testing.T) {
	h, err := operation.Sub(newPauliX(0), newPauliZ(0))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -1}, h.Coeffs())
}

func TestCompare_EqualObservables(t *testing.T) {
	eq, err := operation.Compare(newPauliX(0), newPauliX(0))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompare_DifferentWires(t *testing.T) {
	eq, err := operation.Compare(newPauliX(0), newPauliX(1))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompare_DifferentObservables(t *testing.T) {
	eq, err := operation.Compare(newPauliX(0), newPauliZ(0))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompare_ParameterSensitive(t *testing.T) {
	a := newHerm(0, tensor.Matrix(2, 2, []complex128{1, 0, 0, -1}))
	same := newHerm(0, tensor.Matrix(2, 2, []complex128{1, 0, 0, -1}))
	other := newHerm(0, tensor.Matrix(2, 2, []complex128{1, 0, 0, 2}))

	eq, err := operation.Compare(a, same)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = operation.Compare(a, other)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompare_IdentityPaddingIgnored(t *testing.T) {
	padded, err := operation.NewTensor(newPauliX(0), operation.NewIdentity(1))
	require.NoError(t, err)

	eq, err := operation.Compare(padded, newPauliX(0))
	require.NoError(t, err)
	assert.True(t, eq, "identity factors drop out of the comparison")
}

func TestCompare_FactorOrderIgnored(t *testing.T) {
	ab, err := operation.NewTensor(newPauliX(0), newPauliZ(1))
	require.NoError(t, err)
	ba, err := operation.NewTensor(newPauliZ(1), newPauliX(0))
	require.NoError(t, err)

	eq, err := operation.Compare(ab, ba)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompare_Identities(t *testing.T) {
	eq, err := operation.Compare(operation.NewIdentity(0), operation.NewIdentity(3))
	require.NoError(t, err)
	assert.True(t, eq, "identities compare equal regardless of wires")
}

func TestCompare_HamiltonianAgainstObservable(t *testing.T) {
	h, err := operation.NewHamiltonian([]float64{1}, []operation.Observable{newPauliX(0)})
	require.NoError(t, err)

	eq, err := operation.Compare(h, newPauliX(0))
	require.NoError(t, err)
	assert.True(t, eq)

	scaled, err := operation.NewHamiltonian([]float64{2}, []operation.Observable{newPauliX(0)})
	require.NoError(t, err)
	eq, err = operation.Compare(scaled, newPauliX(0))
	require.NoError(t, err)
	assert.False(t, eq, "coefficients matter")
}

func TestCompare_ObservableAgainstHamiltonian(t *testing.T) {
	h, err := operation.NewHamiltonian([]float64{1}, []operation.Observable{newPauliZ(2)})
	require.NoError(t, err)

	eq, err := operation.Compare(newPauliZ(2), h)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompare_Hamiltonians(t *testing.T) {
	a, err := operation.NewHamiltonian([]float64{2, 1}, []operation.Observable{newPauliX(0), newPauliZ(1)})
	require.NoError(t, err)
	b, err := operation.NewHamiltonian([]float64{1, 2}, []operation.Observable{newPauliZ(1), newPauliX(0)})
	require.NoError(t, err)

	eq, err := operation.Compare(a, b)
	require.NoError(t, err)
	assert.True(t, eq, "term order is irrelevant")

	c, err := operation.NewHamiltonian([]float64{2, -1}, []operation.Observable{newPauliX(0), newPauliZ(1)})
	require.NoError(t, err)
	eq, err = operation.Compare(a, c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompare_RejectsNonObservables(t *testing.T) {
	_, err := operation.Compare(newDummyGate("DummyGate", 0), newPauliX(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "can only compare observables, tensor products and Hamiltonians; got DummyGate")
}

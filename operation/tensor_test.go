// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/backend/cpu"
	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/wires"
)

func TestNewTensor_FlattensNestedProducts(t *testing.T) {
	inner, err := operation.NewTensor(newPauliZ(1), newPauliX(2))
	require.NoError(t, err)

	outer, err := operation.NewTensor(newPauliX(0), inner)
	require.NoError(t, err)

	assert.Equal(t, "PauliX @ PauliZ @ PauliX", outer.Name())
	require.Len(t, outer.Observables(), 3)
}

func TestNewTensor_Empty(t *testing.T) {
	_, err := operation.NewTensor()
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrInvalidConstruction)
	assert.Contains(t, err.Error(), "at least one observable")
}

func TestNewTensor_RejectsHamiltonians(t *testing.T) {
	h, err := operation.NewHamiltonian([]float64{1}, []operation.Observable{newPauliX(0)})
	require.NoError(t, err)

	_, err = operation.NewTensor(newPauliZ(1), h)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "can only perform tensor products between observables; got Hamiltonian")
}

func TestNewTensor_RejectsGates(t *testing.T) {
	_, err := operation.NewTensor(newPauliX(0), newDummyGate("DummyGate", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "can only perform tensor products between observables")
}

func TestTensor_MatmulAppendsInPlace(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(0))
	require.NoError(t, err)

	same, err := tt.Matmul(newPauliZ(1))
	require.NoError(t, err)
	assert.Same(t, tt, same)
	require.Len(t, tt.Observables(), 2)
	assert.Equal(t, wires.Wires{0, 1}, tt.Wires())
}

func TestTensor_WiresKeepConstructionOrder(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(2), newPauliZ(0))
	require.NoError(t, err)
	assert.Equal(t, wires.Wires{2, 0}, tt.Wires())
}

func TestTensor_LabelAndHash(t *testing.T) {
	a, err := operation.NewTensor(newPauliX(0), newPauliZ(1))
	require.NoError(t, err)
	b, err := operation.NewTensor(newPauliX(0), newPauliZ(1))
	require.NoError(t, err)
	c, err := operation.NewTensor(newPauliX(0), newPauliX(1))
	require.NoError(t, err)

	assert.Equal(t, "PauliX⊗PauliZ", a.Label(-1, ""))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestTensorEigvals_StandardObservables(t *testing.T) {
	b := cpu.New()
	tt, err := operation.NewTensor(newPauliZ(0), newPauliZ(1))
	require.NoError(t, err)

	ev, err := operation.Eigvals(tt, b)
	require.NoError(t, err)
	assertFloatEqual(t, ev, []float64{1, -1, -1, 1})
}

func TestTensorEigvals_Memoized(t *testing.T) {
	b := cpu.New()
	tt, err := operation.NewTensor(newPauliZ(0), newPauliX(1))
	require.NoError(t, err)

	first, err := tt.CanonicalEigvals(b)
	require.NoError(t, err)
	second, err := tt.CanonicalEigvals(b)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestTensorEigvals_MatmulInvalidatesMemo(t *testing.T) {
	b := cpu.New()
	tt, err := operation.NewTensor(newPauliZ(0))
	require.NoError(t, err)

	first, err := tt.CanonicalEigvals(b)
	require.NoError(t, err)
	assertFloatEqual(t, first, []float64{1, -1})

	_, err = tt.Matmul(newPauliZ(1))
	require.NoError(t, err)
	second, err := tt.CanonicalEigvals(b)
	require.NoError(t, err)
	assertFloatEqual(t, second, []float64{1, -1, -1, 1})
}

func TestTensorEigvals_MixedFactorsSortedByWires(t *testing.T) {
	b := cpu.New()

	// Constituents are ordered by wire label before combining, so both
	// constructions share one spectrum.
	ab, err := operation.NewTensor(newProjector(1), newPauliX(0))
	require.NoError(t, err)
	ba, err := operation.NewTensor(newPauliX(0), newProjector(1))
	require.NoError(t, err)

	want := []float64{0, 1, 0, -1}
	ev, err := ab.CanonicalEigvals(b)
	require.NoError(t, err)
	assertFloatEqual(t, ev, want)

	ev, err = ba.CanonicalEigvals(b)
	require.NoError(t, err)
	assertFloatEqual(t, ev, want)
}

func TestTensor_DiagonalizingGatesConcatenate(t *testing.T) {
	b := cpu.New()
	tt, err := operation.NewTensor(newPauliX(0), newPauliZ(1))
	require.NoError(t, err)

	gates, err := operation.DiagonalizingGates(tt, b)
	require.NoError(t, err)
	require.Len(t, gates, 2)
	assert.True(t, gates[0].Wires().Contains(0))
	assert.True(t, gates[1].Wires().Contains(1))
}

func TestTensorMatrix_KronOfFactors(t *testing.T) {
	b := cpu.New()
	tt, err := operation.NewTensor(newPauliZ(0), newPauliX(1))
	require.NoError(t, err)

	m, err := operation.Matrix(tt, b)
	require.NoError(t, err)
	assertComplexEqual(t, m, []complex128{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, -1,
		0, 0, -1, 0,
	})
}

func TestTensorMatrix_MergesConsecutiveFactorsOnSameWires(t *testing.T) {
	b := cpu.New()
	warned := captureWarnings(t)
	tt, err := operation.NewTensor(newPauliZ(0), newPauliZ(0))
	require.NoError(t, err)

	m, err := operation.Matrix(tt, b)
	require.NoError(t, err)
	assertComplexEqual(t, m, []complex128{1, 0, 0, 1})
	assert.Empty(t, *warned, "a clean square stays silent")
}

func TestTensorMatrix_WarnsOnRepeatedWires(t *testing.T) {
	b := cpu.New()
	warned := captureWarnings(t)
	tt, err := operation.NewTensor(newPauliX(0), newPauliZ(1), newPauliX(0))
	require.NoError(t, err)

	m, err := operation.Matrix(tt, b)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Shape()[0], "non-consecutive repeats are not merged")
	require.Len(t, *warned, 1)
	assert.Contains(t, (*warned)[0], "not compatible with its wire subspace size")
}

func TestTensorMatrix_WarnsOnPartialOverlap(t *testing.T) {
	b := cpu.New()
	warned := captureWarnings(t)
	wide := newObs2("TwoQubitObs", 0, 1, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	tt, err := operation.NewTensor(wide, newPauliZ(1))
	require.NoError(t, err)

	_, err = operation.Matrix(tt, b)
	require.NoError(t, err)
	require.Len(t, *warned, 1)
	assert.Contains(t, (*warned)[0], "partially overlapping wires")
}

func TestTensorSparseMatrix_Product(t *testing.T) {
	tt, err := operation.NewTensor(newPauliZ(0), newPauliX(1))
	require.NoError(t, err)

	coo, err := operation.SparseMatrix(tt)
	require.NoError(t, err)
	assertComplexEqual(t, coo.ToDense(), []complex128{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, -1,
		0, 0, -1, 0,
	})
}

func TestTensorSparseMatrix_IdentityFillsFreeSlots(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(1))
	require.NoError(t, err)

	coo, err := tt.SparseMatrix(0, 1)
	require.NoError(t, err)
	assertComplexEqual(t, coo.ToDense(), []complex128{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

func TestTensorSparseMatrix_MultiWireFactor(t *testing.T) {
	cz := make([]complex128, 16)
	cz[0], cz[5], cz[10], cz[15] = 1, 1, 1, -1
	wide := newObs2("TwoQubitObs", 0, 1, cz)
	tt, err := operation.NewTensor(wide, newPauliZ(2))
	require.NoError(t, err)

	coo, err := tt.SparseMatrix()
	require.NoError(t, err)
	want := make([]complex128, 64)
	for i, d := range []complex128{1, -1, 1, -1, 1, -1, -1, 1} {
		want[i*8+i] = d
	}
	assertComplexEqual(t, coo.ToDense(), want)
}

func TestTensorSparseMatrix_RejectsNonConsecutiveWires(t *testing.T) {
	wide := newObs2("TwoQubitObs", 0, 2, make([]complex128, 16))
	tt, err := operation.NewTensor(wide)
	require.NoError(t, err)

	_, err = tt.SparseMatrix(0, 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrStructuralConstraint)
	assert.Contains(t, err.Error(), "factors act on consecutive wires")
}

func TestTensorSparseMatrix_RejectsMissingWires(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(5))
	require.NoError(t, err)

	_, err = tt.SparseMatrix(0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrStructuralConstraint)
	assert.Contains(t, err.Error(), "wire 5 of PauliX is not in the requested order")
}

func TestTensorPrune_AllIdentities(t *testing.T) {
	tt, err := operation.NewTensor(operation.NewIdentity(4), operation.NewIdentity(7))
	require.NoError(t, err)

	pruned := tt.Prune()
	id, ok := pruned.(*operation.Identity)
	require.True(t, ok, "nothing but identities collapses to one identity")
	assert.Equal(t, wires.Wires{4}, id.Wires())
}

func TestTensorPrune_SingleSurvivor(t *testing.T) {
	x := newPauliX(1)
	tt, err := operation.NewTensor(operation.NewIdentity(0), x)
	require.NoError(t, err)

	pruned := tt.Prune()
	assert.Same(t, x, pruned)
}

func TestTensorPrune_SmallerProduct(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(0), operation.NewIdentity(1), newPauliZ(2))
	require.NoError(t, err)

	pruned := tt.Prune()
	smaller, ok := pruned.(*operation.Tensor)
	require.True(t, ok)
	assert.Equal(t, "PauliX @ PauliZ", smaller.Name())
}

func TestTensorPrune_CarriesReturnType(t *testing.T) {
	tt, err := operation.NewTensor(newPauliX(0), operation.NewIdentity(1))
	require.NoError(t, err)
	tt.SetReturnType(operation.Expectation)

	assert.Equal(t, operation.Expectation, tt.Prune().ReturnType())
}

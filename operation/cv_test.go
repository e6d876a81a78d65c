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
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

func TestSupportsHeisenberg(t *testing.T) {
	assert.True(t, operation.SupportsHeisenberg(newCVRotation(0.1, 0)))
	assert.True(t, operation.SupportsHeisenberg(newQuadX(0)))
	assert.False(t, operation.SupportsHeisenberg(newDummyGate("Kerr", 0)))
}

func TestSupportsParameterShift(t *testing.T) {
	assert.True(t, operation.SupportsParameterShift(newCVRotation(0.1, 0)))

	finite := newCVRotation(0.1, 0)
	finite.SetGradMethod(operation.GradFinite)
	assert.False(t, operation.SupportsParameterShift(finite), "finite differences disqualify")

	assert.False(t, operation.SupportsParameterShift(newRotGate("RX", 0.1, 0)), "qubit gates have no Heisenberg picture")
	assert.False(t, operation.SupportsParameterShift(newQuadX(0)), "observables are not differentiated")
}

func TestCVObservable_EvOrder(t *testing.T) {
	var first operation.CVObservable = newQuadX(0)
	assert.Equal(t, 1, first.EvOrder())

	var second operation.CVObservable = newNumberOperator(0)
	assert.Equal(t, 2, second.EvOrder())
}

func TestHeisenbergExpand_Vector(t *testing.T) {
	b := cpu.New()
	q := newQuadX(1)
	u, err := q.HeisenbergRep(nil)
	require.NoError(t, err)

	out, err := operation.HeisenbergExpand(q, b, u, wires.Wires{0, 1, 2})
	require.NoError(t, err)
	assertFloatEqual(t, out, []float64{0, 0, 0, 1, 0, 0, 0})
}

func TestHeisenbergExpand_SameModeCountPassesThrough(t *testing.T) {
	b := cpu.New()
	q := newQuadX(3)
	u, err := q.HeisenbergRep(nil)
	require.NoError(t, err)

	out, err := operation.HeisenbergExpand(q, b, u, wires.Wires{3})
	require.NoError(t, err)
	assert.Same(t, u, out)
}

func TestHeisenbergExpand_EmptyOrderPassesThrough(t *testing.T) {
	b := cpu.New()
	q := newQuadX(0)
	u, err := q.HeisenbergRep(nil)
	require.NoError(t, err)

	out, err := operation.HeisenbergExpand(q, b, u, nil)
	require.NoError(t, err)
	assert.Same(t, u, out)
}

func TestHeisenbergExpand_GateMatrix(t *testing.T) {
	b := cpu.New()
	phi := 0.7
	g := newCVRotation(phi, 1)
	u, err := g.HeisenbergRep(g.Parameters())
	require.NoError(t, err)

	out, err := operation.HeisenbergExpand(g, b, u, wires.Wires{0, 1})
	require.NoError(t, err)

	c, s := math.Cos(phi), math.Sin(phi)
	assertFloatEqual(t, out, []float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, c, -s,
		0, 0, 0, s, c,
	})
}

func TestHeisenbergExpand_ObservableMatrixSeedsZeros(t *testing.T) {
	b := cpu.New()
	n := newNumberOperator(0)
	u, err := n.HeisenbergRep(nil)
	require.NoError(t, err)

	out, err := operation.HeisenbergExpand(n, b, u, wires.Wires{0, 1})
	require.NoError(t, err)

	// Unlike gates, observables leave untouched modes at zero.
	assertFloatEqual(t, out, []float64{
		-0.5, 0, 0, 0, 0,
		0, 0.25, 0, 0, 0,
		0, 0, 0.25, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
}

func TestHeisenbergExpand_WrongSize(t *testing.T) {
	b := cpu.New()
	q := newQuadX(0)

	_, err := operation.HeisenbergExpand(q, b, tensor.Vector([]float64{0, 1, 0, 0, 0}), wires.Wires{0, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrStructuralConstraint)
	assert.Contains(t, err.Error(), "Heisenberg matrix is the wrong size 5")
}

func TestHeisenbergExpand_RejectsHigherRanks(t *testing.T) {
	b := cpu.New()
	q := newQuadX(0)
	cube, err := tensor.FromFloat64(make([]float64, 27), tensor.Shape{3, 3, 3})
	require.NoError(t, err)

	_, err = operation.HeisenbergExpand(q, b, cube, wires.Wires{0, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrStructuralConstraint)
	assert.Contains(t, err.Error(), "only order-1 and order-2 arrays supported")
}

func TestHeisenbergExpand_MissingWires(t *testing.T) {
	b := cpu.New()
	q := newQuadX(5)
	u, err := q.HeisenbergRep(nil)
	require.NoError(t, err)

	_, err = operation.HeisenbergExpand(q, b, u, wires.Wires{0, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, operation.ErrStructuralConstraint)
	assert.Contains(t, err.Error(), "are missing from the wire order")
}

func TestHeisenbergTr(t *testing.T) {
	b := cpu.New()
	phi := 0.3
	g := newCVRotation(phi, 0)

	u, err := operation.HeisenbergTr(g, b, wires.Wires{0}, false)
	require.NoError(t, err)

	c, s := math.Cos(phi), math.Sin(phi)
	assertFloatEqual(t, u, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func TestHeisenbergTr_InverseNegatesParameter(t *testing.T) {
	b := cpu.New()
	phi := 0.3
	g := newCVRotation(phi, 0)

	u, err := operation.HeisenbergTr(g, b, wires.Wires{0}, true)
	require.NoError(t, err)

	c, s := math.Cos(phi), math.Sin(phi)
	assertFloatEqual(t, u, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
	assert.Equal(t, phi, g.Data()[0].AsFloat64()[0], "the stored parameter stays untouched")
}

func TestHeisenbergTr_NotGaussian(t *testing.T) {
	b := cpu.New()
	g := newMatGate("Kerr", 0, []complex128{1, 0, 0, 1})

	_, err := operation.HeisenbergTr(g, b, wires.Wires{0}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kerr is not a Gaussian operation, or is missing the Heisenberg representation")
}

func TestHeisenbergPD(t *testing.T) {
	b := cpu.New()
	phi := 0.3
	g := newCVRotation(phi, 0)

	pd, err := operation.HeisenbergPD(g, b, 0)
	require.NoError(t, err)

	// The shift rule is exact for the rotation: d/dphi of the 2x2 block.
	c, s := math.Cos(phi), math.Sin(phi)
	assertFloatEqual(t, pd, []float64{
		0, 0, 0,
		0, -s, -c,
		0, c, -s,
	})
	assert.Equal(t, phi, g.Data()[0].AsFloat64()[0])
}

func TestHeisenbergPD_RequiresGaussianOperation(t *testing.T) {
	b := cpu.New()

	_, err := operation.HeisenbergPD(newRotGate("RX", 0.1, 0), b, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Gaussian operation")

	_, err = operation.HeisenbergPD(newQuadX(0), b, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Gaussian operation")
}

func TestHeisenbergObs(t *testing.T) {
	b := cpu.New()
	q := newQuadX(1)

	u, err := operation.HeisenbergObs(q, b, wires.Wires{0, 1})
	require.NoError(t, err)
	assertFloatEqual(t, u, []float64{0, 0, 0, 1, 0})
}

func TestHeisenbergObs_NotGaussian(t *testing.T) {
	b := cpu.New()

	_, err := operation.HeisenbergObs(newDummyObs("FockState", 0), b, wires.Wires{0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Gaussian operation")
}

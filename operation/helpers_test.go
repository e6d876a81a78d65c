// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

func assertComplexEqual(t *testing.T, got *tensor.RawTensor, want []complex128) {
	t.Helper()
	require.Equal(t, tensor.Complex128, got.DType(), "dtype")
	data := got.AsComplex128()
	require.Len(t, data, len(want), "element count")
	for i := range want {
		assert.InDelta(t, real(want[i]), real(data[i]), 1e-10, "element %d (real)", i)
		assert.InDelta(t, imag(want[i]), imag(data[i]), 1e-10, "element %d (imag)", i)
	}
}

func assertFloatEqual(t *testing.T, got *tensor.RawTensor, want []float64) {
	t.Helper()
	require.Equal(t, tensor.Float64, got.DType(), "dtype")
	data := got.AsFloat64()
	require.Len(t, data, len(want), "element count")
	for i := range want {
		assert.InDelta(t, want[i], data[i], 1e-10, "element %d", i)
	}
}

// captureWarnings redirects Warn into a slice for the duration of the test.
func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	var msgs []string
	old := operation.Warn
	operation.Warn = func(msg string) { msgs = append(msgs, msg) }
	t.Cleanup(func() { operation.Warn = old })
	return &msgs
}

// obsFixture is a single-qubit observable with a dense matrix and a known
// spectrum, standing in for the concrete observables of the gate library.
type obsFixture struct {
	operation.ObservableBase
	mat []complex128
	eig []float64
}

func newObs(name string, w wires.Wire, mat []complex128, eig []float64) *obsFixture {
	o := &obsFixture{mat: mat, eig: eig}
	if err := operation.InitObservable(&o.ObservableBase, name, nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return o
}

func newPauliX(w wires.Wire) *obsFixture {
	return newObs("PauliX", w, []complex128{0, 1, 1, 0}, []float64{1, -1})
}

func newPauliZ(w wires.Wire) *obsFixture {
	return newObs("PauliZ", w, []complex128{1, 0, 0, -1}, []float64{1, -1})
}

// newProjector is |1><1|, a non-standard observable with spectrum (0, 1).
func newProjector(w wires.Wire) *obsFixture {
	return newObs("Projector", w, []complex128{0, 0, 0, 1}, []float64{0, 1})
}

func (o *obsFixture) CanonicalMatrix() (*tensor.RawTensor, error) {
	return tensor.Matrix(2, 2, o.mat), nil
}

func (o *obsFixture) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector(o.eig), nil
}

func (o *obsFixture) DiagonalizingGates(tensor.Backend) ([]operation.Operator, error) {
	return []operation.Operator{newDummyGate("BasisRotation", o.Wires()[0])}, nil
}

// obs2Fixture is a two-qubit observable with a dense matrix.
type obs2Fixture struct {
	operation.ObservableBase
	mat []complex128
}

func newObs2(name string, w1, w2 wires.Wire, mat []complex128) *obs2Fixture {
	o := &obs2Fixture{mat: mat}
	if err := operation.InitObservable(&o.ObservableBase, name, nil, wires.Wires{w1, w2}, 0, 2); err != nil {
		panic(err)
	}
	return o
}

func (o *obs2Fixture) CanonicalMatrix() (*tensor.RawTensor, error) {
	return tensor.Matrix(4, 4, o.mat), nil
}

// hermObs carries its matrix as a parameter, like the Hermitian observable.
type hermObs struct {
	operation.ObservableBase
}

func newHerm(w wires.Wire, mat *tensor.RawTensor) *hermObs {
	o := &hermObs{}
	if err := operation.InitObservable(&o.ObservableBase, "Hermitian", []*tensor.RawTensor{mat}, wires.Wires{w}, 1, 1); err != nil {
		panic(err)
	}
	return o
}

func (o *hermObs) CanonicalMatrix() (*tensor.RawTensor, error) {
	return o.Data()[0], nil
}

// dummyObs is an observable with no representations.
type dummyObs struct {
	operation.ObservableBase
}

func newDummyObs(name string, ws ...wires.Wire) *dummyObs {
	o := &dummyObs{}
	if err := operation.InitObservable(&o.ObservableBase, name, nil, wires.Wires(ws), 0, operation.AnyWires); err != nil {
		panic(err)
	}
	return o
}

// dummyGate is an operation with no representations.
type dummyGate struct {
	operation.GateBase
}

func newDummyGate(name string, ws ...wires.Wire) *dummyGate {
	g := &dummyGate{}
	if err := operation.InitGate(&g.GateBase, name, nil, wires.Wires(ws), 0, operation.AnyWires); err != nil {
		panic(err)
	}
	return g
}

// matGate is a parameter-free operation defined by its dense matrix.
type matGate struct {
	operation.GateBase
	mat []complex128
}

func newMatGate(name string, w wires.Wire, mat []complex128) *matGate {
	g := &matGate{mat: mat}
	if err := operation.InitGate(&g.GateBase, name, nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return g
}

func (g *matGate) CanonicalMatrix() (*tensor.RawTensor, error) {
	return tensor.Matrix(2, 2, g.mat), nil
}

// eigGate declares its spectrum but no matrix.
type eigGate struct {
	operation.GateBase
	eig []complex128
}

func newEigGate(name string, w wires.Wire, eig []complex128) *eigGate {
	g := &eigGate{eig: eig}
	if err := operation.InitGate(&g.GateBase, name, nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return g
}

func (g *eigGate) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.VectorC(g.eig), nil
}

// rotGate is a one-parameter gate differentiated with the shift rule.
type rotGate struct {
	operation.GateBase
}

func newRotGate(name string, theta float64, w wires.Wire) *rotGate {
	g := &rotGate{}
	if err := operation.InitGate(&g.GateBase, name, []*tensor.RawTensor{tensor.Scalar(theta)}, wires.Wires{w}, 1, 1); err != nil {
		panic(err)
	}
	g.SetGradMethod(operation.GradAnalytic)
	return g
}

// phaseGate is diag(1, e^{i theta}) with generator |1><1|.
type phaseGate struct {
	operation.GateBase
}

func newPhaseGate(theta float64, w wires.Wire) *phaseGate {
	g := &phaseGate{}
	if err := operation.InitGate(&g.GateBase, "PhaseShift", []*tensor.RawTensor{tensor.Scalar(theta)}, wires.Wires{w}, 1, 1); err != nil {
		panic(err)
	}
	g.SetGradMethod(operation.GradAnalytic)
	return g
}

func (g *phaseGate) CanonicalMatrix() (*tensor.RawTensor, error) {
	theta := g.Data()[0].AsFloat64()[0]
	phase := complex(math.Cos(theta), math.Sin(theta))
	return tensor.Matrix(2, 2, []complex128{1, 0, 0, phase}), nil
}

func (g *phaseGate) Generator() (operation.Operator, error) {
	return newProjector(g.Wires()[0]), nil
}

// decompGate expands into a fixed sequence of simpler gates.
type decompGate struct {
	operation.GateBase
	steps []operation.Operator
}

func newDecompGate(name string, w wires.Wire, steps ...operation.Operator) *decompGate {
	g := &decompGate{steps: steps}
	if err := operation.InitGate(&g.GateBase, name, nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return g
}

func (g *decompGate) Decomposition() ([]operation.Operator, error) {
	return g.steps, nil
}

// krausChannel is amplitude damping with a fixed decay probability.
type krausChannel struct {
	operation.GateBase
	gamma float64
}

func newKrausChannel(gamma float64, w wires.Wire) *krausChannel {
	k := &krausChannel{gamma: gamma}
	if err := operation.InitGate(&k.GateBase, "AmplitudeDamping", nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return k
}

func (k *krausChannel) KrausMatrices() ([]*tensor.RawTensor, error) {
	damp := complex(math.Sqrt(1-k.gamma), 0)
	jump := complex(math.Sqrt(k.gamma), 0)
	return []*tensor.RawTensor{
		tensor.Matrix(2, 2, []complex128{1, 0, 0, damp}),
		tensor.Matrix(2, 2, []complex128{0, jump, 0, 0}),
	}, nil
}

// sparseObs serves its matrix in COO form.
type sparseObs struct {
	operation.ObservableBase
	mat []complex128
}

func newSparseObs(name string, w wires.Wire, mat []complex128) *sparseObs {
	o := &sparseObs{mat: mat}
	if err := operation.InitObservable(&o.ObservableBase, name, nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return o
}

func (o *sparseObs) SparseMatrix() (*tensor.COO, error) {
	return tensor.FromDense(tensor.Matrix(2, 2, o.mat))
}

// cvRotation rotates one mode's quadratures, the simplest Gaussian gate.
type cvRotation struct {
	operation.GateBase
}

func newCVRotation(phi float64, w wires.Wire) *cvRotation {
	g := &cvRotation{}
	if err := operation.InitGate(&g.GateBase, "Rotation", []*tensor.RawTensor{tensor.Scalar(phi)}, wires.Wires{w}, 1, 1); err != nil {
		panic(err)
	}
	g.SetGradMethod(operation.GradAnalytic)
	return g
}

func (g *cvRotation) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	phi := params[0].AsFloat64()[0]
	c, s := math.Cos(phi), math.Sin(phi)
	return tensor.FromFloat64([]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}, tensor.Shape{3, 3})
}

// cvQuadX is the position quadrature, first order in (x, p).
type cvQuadX struct {
	operation.ObservableBase
}

func newQuadX(w wires.Wire) *cvQuadX {
	o := &cvQuadX{}
	if err := operation.InitObservable(&o.ObservableBase, "QuadX", nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return o
}

func (o *cvQuadX) HeisenbergRep([]*tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{0, 1, 0}), nil
}

func (o *cvQuadX) EvOrder() int { return 1 }

// cvNumber is the photon number operator, second order in (x, p).
type cvNumber struct {
	operation.ObservableBase
}

func newNumberOperator(w wires.Wire) *cvNumber {
	o := &cvNumber{}
	if err := operation.InitObservable(&o.ObservableBase, "NumberOperator", nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err)
	}
	return o
}

func (o *cvNumber) HeisenbergRep([]*tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.FromFloat64([]float64{
		-0.5, 0, 0,
		0, 0.25, 0,
		0, 0, 0.25,
	}, tensor.Shape{3, 3})
}

func (o *cvNumber) EvOrder() int { return 2 }

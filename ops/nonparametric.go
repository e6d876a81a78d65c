// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"
	"math/cmplx"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// S is the quarter-turn phase gate diag(1, i).
type S struct {
	operation.GateBase
}

var (
	_ operation.Operation        = (*S)(nil)
	_ operation.HasMatrix        = (*S)(nil)
	_ operation.HasEigvals       = (*S)(nil)
	_ operation.HasDecomposition = (*S)(nil)
	_ operation.HasAdjoint       = (*S)(nil)
)

// NewS creates an S gate on one wire.
func NewS(w wires.Wire) *S {
	s := &S{}
	mustInitGate(&s.GateBase, "S", nil, wires.Wires{w}, 0, 1)
	s.SetBasis("Z")
	return s
}

// SMatrix returns the S gate matrix.
func SMatrix() *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		1, 0,
		0, 1i,
	})
}

func (s *S) CanonicalMatrix() (*tensor.RawTensor, error) {
	return SMatrix(), nil
}

func (s *S) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.VectorC([]complex128{1, 1i}), nil
}

func (s *S) Decomposition() ([]operation.Operator, error) {
	return []operation.Operator{NewPhaseShift(math.Pi/2, s.Wires()[0])}, nil
}

// Adjoint returns an inverted copy; S is not self-adjoint.
func (s *S) Adjoint() (operation.Operator, error) {
	a := NewS(s.Wires()[0])
	a.SetInverse(!s.Inverse())
	return a, nil
}

// T is the eighth-turn phase gate diag(1, exp(i pi/4)).
type T struct {
	operation.GateBase
}

var (
	_ operation.Operation        = (*T)(nil)
	_ operation.HasMatrix        = (*T)(nil)
	_ operation.HasEigvals       = (*T)(nil)
	_ operation.HasDecomposition = (*T)(nil)
	_ operation.HasAdjoint       = (*T)(nil)
)

// NewT creates a T gate on one wire.
func NewT(w wires.Wire) *T {
	t := &T{}
	mustInitGate(&t.GateBase, "T", nil, wires.Wires{w}, 0, 1)
	t.SetBasis("Z")
	return t
}

// TMatrix returns the T gate matrix.
func TMatrix() *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, math.Pi/4)),
	})
}

func (t *T) CanonicalMatrix() (*tensor.RawTensor, error) {
	return TMatrix(), nil
}

func (t *T) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.VectorC([]complex128{1, cmplx.Exp(complex(0, math.Pi/4))}), nil
}

func (t *T) Decomposition() ([]operation.Operator, error) {
	return []operation.Operator{NewPhaseShift(math.Pi/4, t.Wires()[0])}, nil
}

// Adjoint returns an inverted copy; T is not self-adjoint.
func (t *T) Adjoint() (operation.Operator, error) {
	a := NewT(t.Wires()[0])
	a.SetInverse(!t.Inverse())
	return a, nil
}

// CNOT is the controlled NOT gate. The first wire is the control.
type CNOT struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*CNOT)(nil)
	_ operation.HasMatrix  = (*CNOT)(nil)
	_ operation.HasAdjoint = (*CNOT)(nil)
)

// NewCNOT creates a CNOT with the given control and target wires.
func NewCNOT(control, target wires.Wire) (*CNOT, error) {
	c := &CNOT{}
	if err := operation.InitGate(&c.GateBase, "CNOT", nil, wires.Wires{control, target}, 0, 2); err != nil {
		return nil, err
	}
	c.SetBasis("X")
	return c, nil
}

// CNOTMatrix returns the CNOT matrix with the control on the first wire.
func CNOTMatrix() *tensor.RawTensor {
	return tensor.Matrix(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

func (c *CNOT) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CNOTMatrix(), nil
}

// Adjoint returns a fresh CNOT; the gate is self-adjoint.
func (c *CNOT) Adjoint() (operation.Operator, error) {
	return NewCNOT(c.Wires()[0], c.Wires()[1])
}

// CZ is the controlled phase-flip gate, symmetric in its wires.
type CZ struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*CZ)(nil)
	_ operation.HasMatrix  = (*CZ)(nil)
	_ operation.HasEigvals = (*CZ)(nil)
	_ operation.HasAdjoint = (*CZ)(nil)
)

// NewCZ creates a CZ on the given wire pair.
func NewCZ(control, target wires.Wire) (*CZ, error) {
	c := &CZ{}
	if err := operation.InitGate(&c.GateBase, "CZ", nil, wires.Wires{control, target}, 0, 2); err != nil {
		return nil, err
	}
	c.SetBasis("Z")
	return c, nil
}

// CZMatrix returns the CZ matrix.
func CZMatrix() *tensor.RawTensor {
	return tensor.Matrix(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
}

func (c *CZ) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CZMatrix(), nil
}

func (c *CZ) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, 1, 1, -1}), nil
}

// Adjoint returns a fresh CZ; the gate is self-adjoint.
func (c *CZ) Adjoint() (operation.Operator, error) {
	return NewCZ(c.Wires()[0], c.Wires()[1])
}

// SWAP exchanges the states of two wires.
type SWAP struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*SWAP)(nil)
	_ operation.HasMatrix  = (*SWAP)(nil)
	_ operation.HasAdjoint = (*SWAP)(nil)
)

// NewSWAP creates a SWAP on the given wire pair.
func NewSWAP(w0, w1 wires.Wire) (*SWAP, error) {
	s := &SWAP{}
	if err := operation.InitGate(&s.GateBase, "SWAP", nil, wires.Wires{w0, w1}, 0, 2); err != nil {
		return nil, err
	}
	return s, nil
}

// SWAPMatrix returns the SWAP matrix.
func SWAPMatrix() *tensor.RawTensor {
	return tensor.Matrix(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}

func (s *SWAP) CanonicalMatrix() (*tensor.RawTensor, error) {
	return SWAPMatrix(), nil
}

// Adjoint returns a fresh SWAP; the gate is self-adjoint.
func (s *SWAP) Adjoint() (operation.Operator, error) {
	return NewSWAP(s.Wires()[0], s.Wires()[1])
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// PauliX is the bit-flip gate and the sigma_x observable.
type PauliX struct {
	observableGate
}

var (
	_ operation.Operation             = (*PauliX)(nil)
	_ operation.Observable            = (*PauliX)(nil)
	_ operation.HasMatrix             = (*PauliX)(nil)
	_ operation.HasEigvals            = (*PauliX)(nil)
	_ operation.HasDiagonalizingGates = (*PauliX)(nil)
	_ operation.HasDecomposition      = (*PauliX)(nil)
	_ operation.HasAdjoint            = (*PauliX)(nil)
)

// NewPauliX creates a PauliX on one wire.
func NewPauliX(w wires.Wire) *PauliX {
	p := &PauliX{}
	mustInitGate(&p.GateBase, "PauliX", nil, wires.Wires{w}, 0, 1)
	p.SetBasis("X")
	return p
}

// PauliXMatrix returns the Pauli X matrix.
func PauliXMatrix() *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		0, 1,
		1, 0,
	})
}

func (p *PauliX) CanonicalMatrix() (*tensor.RawTensor, error) {
	return PauliXMatrix(), nil
}

func (p *PauliX) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, -1}), nil
}

// DiagonalizingGates rotates the X eigenbasis onto the computational basis
// with a Hadamard.
func (p *PauliX) DiagonalizingGates(tensor.Backend) ([]operation.Operator, error) {
	return []operation.Operator{NewHadamard(p.Wires()[0])}, nil
}

// Decomposition expresses the gate through rotations, up to global phase
// bookkeeping by the surrounding phase shifts.
func (p *PauliX) Decomposition() ([]operation.Operator, error) {
	w := p.Wires()[0]
	return []operation.Operator{
		NewPhaseShift(math.Pi/2, w),
		NewRX(math.Pi, w),
		NewPhaseShift(math.Pi/2, w),
	}, nil
}

// Adjoint returns a fresh PauliX; the gate is self-adjoint.
func (p *PauliX) Adjoint() (operation.Operator, error) {
	return NewPauliX(p.Wires()[0]), nil
}

func (p *PauliX) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "X"
	}
	return p.GateBase.Label(decimals, baseLabel)
}

// PauliY is the bit-and-phase-flip gate and the sigma_y observable.
type PauliY struct {
	observableGate
}

var (
	_ operation.Operation             = (*PauliY)(nil)
	_ operation.Observable            = (*PauliY)(nil)
	_ operation.HasMatrix             = (*PauliY)(nil)
	_ operation.HasEigvals            = (*PauliY)(nil)
	_ operation.HasDiagonalizingGates = (*PauliY)(nil)
	_ operation.HasDecomposition      = (*PauliY)(nil)
	_ operation.HasAdjoint            = (*PauliY)(nil)
)

// NewPauliY creates a PauliY on one wire.
func NewPauliY(w wires.Wire) *PauliY {
	p := &PauliY{}
	mustInitGate(&p.GateBase, "PauliY", nil, wires.Wires{w}, 0, 1)
	p.SetBasis("Y")
	return p
}

// PauliYMatrix returns the Pauli Y matrix.
func PauliYMatrix() *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
}

func (p *PauliY) CanonicalMatrix() (*tensor.RawTensor, error) {
	return PauliYMatrix(), nil
}

func (p *PauliY) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, -1}), nil
}

// DiagonalizingGates rotates the Y eigenbasis onto the computational basis.
func (p *PauliY) DiagonalizingGates(tensor.Backend) ([]operation.Operator, error) {
	w := p.Wires()[0]
	return []operation.Operator{NewPauliZ(w), NewS(w), NewHadamard(w)}, nil
}

func (p *PauliY) Decomposition() ([]operation.Operator, error) {
	w := p.Wires()[0]
	return []operation.Operator{
		NewPhaseShift(math.Pi/2, w),
		NewRY(math.Pi, w),
		NewPhaseShift(math.Pi/2, w),
	}, nil
}

// Adjoint returns a fresh PauliY; the gate is self-adjoint.
func (p *PauliY) Adjoint() (operation.Operator, error) {
	return NewPauliY(p.Wires()[0]), nil
}

func (p *PauliY) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "Y"
	}
	return p.GateBase.Label(decimals, baseLabel)
}

// PauliZ is the phase-flip gate and the sigma_z observable.
type PauliZ struct {
	observableGate
}

var (
	_ operation.Operation             = (*PauliZ)(nil)
	_ operation.Observable            = (*PauliZ)(nil)
	_ operation.HasMatrix             = (*PauliZ)(nil)
	_ operation.HasSparseMatrix       = (*PauliZ)(nil)
	_ operation.HasEigvals            = (*PauliZ)(nil)
	_ operation.HasDiagonalizingGates = (*PauliZ)(nil)
	_ operation.HasDecomposition      = (*PauliZ)(nil)
	_ operation.HasAdjoint            = (*PauliZ)(nil)
)

// NewPauliZ creates a PauliZ on one wire.
func NewPauliZ(w wires.Wire) *PauliZ {
	p := &PauliZ{}
	mustInitGate(&p.GateBase, "PauliZ", nil, wires.Wires{w}, 0, 1)
	p.SetBasis("Z")
	return p
}

// PauliZMatrix returns the Pauli Z matrix.
func PauliZMatrix() *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		1, 0,
		0, -1,
	})
}

func (p *PauliZ) CanonicalMatrix() (*tensor.RawTensor, error) {
	return PauliZMatrix(), nil
}

// SparseMatrix returns the diagonal in COO form.
func (p *PauliZ) SparseMatrix() (*tensor.COO, error) {
	return tensor.FromDense(PauliZMatrix())
}

func (p *PauliZ) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, -1}), nil
}

// DiagonalizingGates returns no gates; PauliZ is already diagonal.
func (p *PauliZ) DiagonalizingGates(tensor.Backend) ([]operation.Operator, error) {
	return []operation.Operator{}, nil
}

func (p *PauliZ) Decomposition() ([]operation.Operator, error) {
	return []operation.Operator{NewPhaseShift(math.Pi, p.Wires()[0])}, nil
}

// Adjoint returns a fresh PauliZ; the gate is self-adjoint.
func (p *PauliZ) Adjoint() (operation.Operator, error) {
	return NewPauliZ(p.Wires()[0]), nil
}

func (p *PauliZ) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "Z"
	}
	return p.GateBase.Label(decimals, baseLabel)
}

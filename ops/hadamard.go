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

// Hadamard is the basis-change gate between the computational and the X
// eigenbasis, and the corresponding observable (X + Z)/sqrt(2).
type Hadamard struct {
	observableGate
}

var (
	_ operation.Operation             = (*Hadamard)(nil)
	_ operation.Observable            = (*Hadamard)(nil)
	_ operation.HasMatrix             = (*Hadamard)(nil)
	_ operation.HasEigvals            = (*Hadamard)(nil)
	_ operation.HasDiagonalizingGates = (*Hadamard)(nil)
	_ operation.HasDecomposition      = (*Hadamard)(nil)
	_ operation.HasAdjoint            = (*Hadamard)(nil)
)

// NewHadamard creates a Hadamard on one wire.
func NewHadamard(w wires.Wire) *Hadamard {
	h := &Hadamard{}
	mustInitGate(&h.GateBase, "Hadamard", nil, wires.Wires{w}, 0, 1)
	return h
}

// HadamardMatrix returns the Hadamard matrix.
func HadamardMatrix() *tensor.RawTensor {
	r := complex(1/math.Sqrt2, 0)
	return tensor.Matrix(2, 2, []complex128{
		r, r,
		r, -r,
	})
}

func (h *Hadamard) CanonicalMatrix() (*tensor.RawTensor, error) {
	return HadamardMatrix(), nil
}

func (h *Hadamard) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, -1}), nil
}

// DiagonalizingGates rotates the Hadamard eigenbasis onto the computational
// basis with a quarter turn about Y.
func (h *Hadamard) DiagonalizingGates(tensor.Backend) ([]operation.Operator, error) {
	return []operation.Operator{NewRY(-math.Pi/4, h.Wires()[0])}, nil
}

func (h *Hadamard) Decomposition() ([]operation.Operator, error) {
	w := h.Wires()[0]
	return []operation.Operator{
		NewPhaseShift(math.Pi/2, w),
		NewRX(math.Pi/2, w),
		NewPhaseShift(math.Pi/2, w),
	}, nil
}

// Adjoint returns a fresh Hadamard; the gate is self-adjoint.
func (h *Hadamard) Adjoint() (operation.Operator, error) {
	return NewHadamard(h.Wires()[0]), nil
}

func (h *Hadamard) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "H"
	}
	return h.GateBase.Label(decimals, baseLabel)
}

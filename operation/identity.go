// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Identity is the single-wire identity. It is both an Operation and an
// Observable: a placeholder gate in circuits and the unit of the observable
// algebra, where it drops out of products and comparisons.
type Identity struct {
	GateBase
	returnType ReturnType
}

var (
	_ Operation             = (*Identity)(nil)
	_ Observable            = (*Identity)(nil)
	_ HasMatrix             = (*Identity)(nil)
	_ HasSparseMatrix       = (*Identity)(nil)
	_ HasEigvals            = (*Identity)(nil)
	_ HasDiagonalizingGates = (*Identity)(nil)
	_ HasAdjoint            = (*Identity)(nil)
)

// NewIdentity creates the identity on one wire.
func NewIdentity(w wires.Wire) *Identity {
	id := &Identity{}
	if err := InitGate(&id.GateBase, "Identity", nil, wires.Wires{w}, 0, 1); err != nil {
		panic(err) // a single label cannot fail validation
	}
	return id
}

// ReturnType reports the measurement this observable is attached to.
func (id *Identity) ReturnType() ReturnType {
	return id.returnType
}

// SetReturnType attaches the observable to a measurement kind.
func (id *Identity) SetReturnType(rt ReturnType) {
	id.returnType = rt
}

// CanonicalMatrix returns the 2x2 identity.
func (id *Identity) CanonicalMatrix() (*tensor.RawTensor, error) {
	return tensor.RawEye(2, tensor.Complex128), nil
}

// SparseMatrix returns the sparse 2x2 identity.
func (id *Identity) SparseMatrix() (*tensor.COO, error) {
	return tensor.SparseEye(2), nil
}

// CanonicalEigvals returns the all-ones spectrum.
func (id *Identity) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{1, 1}), nil
}

// DiagonalizingGates returns no gates; the identity is already diagonal.
func (id *Identity) DiagonalizingGates(tensor.Backend) ([]Operator, error) {
	return []Operator{}, nil
}

// Adjoint returns a fresh identity on the same wire.
func (id *Identity) Adjoint() (Operator, error) {
	return NewIdentity(id.Wires()[0]), nil
}

// Label renders the identity as "I".
func (id *Identity) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "I"
	}
	return id.GateBase.Label(decimals, baseLabel)
}

// isIdentity reports whether op is the algebra unit.
func isIdentity(op Operator) bool {
	_, ok := op.(*Identity)
	return ok
}

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

// The generator of a controlled rotation has eigenvalue gaps of 1/2 and 1,
// so the two-term shift rule does not apply. The four-term rule below
// recovers the derivative exactly for any linear combination of those
// frequencies.
func fourTermRecipe() []operation.ShiftTerm {
	cp := (math.Sqrt2 + 1) / (4 * math.Sqrt2)
	cm := (math.Sqrt2 - 1) / (4 * math.Sqrt2)
	return []operation.ShiftTerm{
		{Coeff: cp, Multiplier: 1, Shift: math.Pi / 2},
		{Coeff: -cp, Multiplier: 1, Shift: -math.Pi / 2},
		{Coeff: -cm, Multiplier: 1, Shift: 3 * math.Pi / 2},
		{Coeff: cm, Multiplier: 1, Shift: -3 * math.Pi / 2},
	}
}

// controlled embeds a single-qubit block into the lower-right corner of the
// two-qubit identity.
func controlled(block *tensor.RawTensor) *tensor.RawTensor {
	b := block.AsComplex128()
	return tensor.Matrix(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, b[0], b[1],
		0, 0, b[2], b[3],
	})
}

// initControlledRotation wires up the construction shared by the controlled
// rotation family: analytic differentiation with the four-term rule for
// every parameter.
func initControlledRotation(g *operation.GateBase, name string, params []*tensor.RawTensor, control, target wires.Wire) error {
	if err := operation.InitGate(g, name, params, wires.Wires{control, target}, len(params), 2); err != nil {
		return err
	}
	g.SetGradMethod(operation.GradAnalytic)
	recipe := make(operation.GradRecipe, len(params))
	for i := range recipe {
		recipe[i] = fourTermRecipe()
	}
	return g.SetGradRecipe(recipe)
}

// CRX rotates the target about X, conditioned on the control.
type CRX struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*CRX)(nil)
	_ operation.HasMatrix  = (*CRX)(nil)
	_ operation.HasAdjoint = (*CRX)(nil)
)

// NewCRX creates a controlled X rotation by theta.
func NewCRX(theta float64, control, target wires.Wire) (*CRX, error) {
	c := &CRX{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	if err := initControlledRotation(&c.GateBase, "CRX", params, control, target); err != nil {
		return nil, err
	}
	c.SetBasis("X")
	return c, nil
}

// CRXMatrix returns the controlled RX matrix.
func CRXMatrix(theta float64) *tensor.RawTensor {
	return controlled(RXMatrix(theta))
}

func (c *CRX) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CRXMatrix(angle(c, 0)), nil
}

// Adjoint returns the controlled rotation by the negated angle.
func (c *CRX) Adjoint() (operation.Operator, error) {
	return NewCRX(-angle(c, 0), c.Wires()[0], c.Wires()[1])
}

// CRY rotates the target about Y, conditioned on the control.
type CRY struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*CRY)(nil)
	_ operation.HasMatrix  = (*CRY)(nil)
	_ operation.HasAdjoint = (*CRY)(nil)
)

// NewCRY creates a controlled Y rotation by theta.
func NewCRY(theta float64, control, target wires.Wire) (*CRY, error) {
	c := &CRY{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	if err := initControlledRotation(&c.GateBase, "CRY", params, control, target); err != nil {
		return nil, err
	}
	c.SetBasis("Y")
	return c, nil
}

// CRYMatrix returns the controlled RY matrix.
func CRYMatrix(theta float64) *tensor.RawTensor {
	return controlled(RYMatrix(theta))
}

func (c *CRY) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CRYMatrix(angle(c, 0)), nil
}

// Adjoint returns the controlled rotation by the negated angle.
func (c *CRY) Adjoint() (operation.Operator, error) {
	return NewCRY(-angle(c, 0), c.Wires()[0], c.Wires()[1])
}

// CRZ rotates the target about Z, conditioned on the control.
type CRZ struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*CRZ)(nil)
	_ operation.HasMatrix    = (*CRZ)(nil)
	_ operation.HasEigvals   = (*CRZ)(nil)
	_ operation.HasGenerator = (*CRZ)(nil)
	_ operation.HasAdjoint   = (*CRZ)(nil)
)

// NewCRZ creates a controlled Z rotation by theta.
func NewCRZ(theta float64, control, target wires.Wire) (*CRZ, error) {
	c := &CRZ{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	if err := initControlledRotation(&c.GateBase, "CRZ", params, control, target); err != nil {
		return nil, err
	}
	c.SetBasis("Z")
	return c, nil
}

// CRZMatrix returns the controlled RZ matrix.
func CRZMatrix(theta float64) *tensor.RawTensor {
	return controlled(RZMatrix(theta))
}

func (c *CRZ) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CRZMatrix(angle(c, 0)), nil
}

// CanonicalEigvals returns the diagonal 1, 1, exp(-i theta/2),
// exp(i theta/2).
func (c *CRZ) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	p := cmplx.Exp(complex(0, angle(c, 0)/2))
	return tensor.VectorC([]complex128{1, 1, cmplx.Conj(p), p}), nil
}

// Generator returns diag(0, 0, -1/2, 1/2), so that the gate equals
// exp(i G theta).
func (c *CRZ) Generator() (operation.Operator, error) {
	return NewHermitian(tensor.Matrix(4, 4, []complex128{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, -0.5, 0,
		0, 0, 0, 0.5,
	}), c.Wires()[0], c.Wires()[1])
}

// Adjoint returns the controlled rotation by the negated angle.
func (c *CRZ) Adjoint() (operation.Operator, error) {
	return NewCRZ(-angle(c, 0), c.Wires()[0], c.Wires()[1])
}

// CRot applies a general rotation to the target, conditioned on the control.
type CRot struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*CRot)(nil)
	_ operation.HasMatrix  = (*CRot)(nil)
	_ operation.HasAdjoint = (*CRot)(nil)
)

// NewCRot creates a controlled general rotation from the Euler angles.
func NewCRot(phi, theta, omega float64, control, target wires.Wire) (*CRot, error) {
	c := &CRot{}
	params := []*tensor.RawTensor{tensor.Scalar(phi), tensor.Scalar(theta), tensor.Scalar(omega)}
	if err := initControlledRotation(&c.GateBase, "CRot", params, control, target); err != nil {
		return nil, err
	}
	return c, nil
}

// CRotMatrix returns the controlled Rot matrix.
func CRotMatrix(phi, theta, omega float64) *tensor.RawTensor {
	return controlled(RotMatrix(phi, theta, omega))
}

func (c *CRot) CanonicalMatrix() (*tensor.RawTensor, error) {
	return CRotMatrix(angle(c, 0), angle(c, 1), angle(c, 2)), nil
}

// Adjoint reverses and negates the Euler angles.
func (c *CRot) Adjoint() (operation.Operator, error) {
	return NewCRot(-angle(c, 2), -angle(c, 1), -angle(c, 0), c.Wires()[0], c.Wires()[1])
}

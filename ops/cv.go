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

// The Gaussian gates below carry Heisenberg representations with the
// hbar = 2 convention: the quadrature vector is (I, x, p) per mode and the
// representation maps it linearly. Representations read the parameter slice
// they are handed rather than the stored data, so the machinery in the
// operation package can evaluate them at shifted or negated values.

// cvShift is the evaluation shift of the dedicated CV recipes below. Any
// value works; the coefficients compensate for it exactly.
const cvShift = 0.1

// linearShiftRecipe differentiates parameters the Heisenberg representation
// depends on linearly, where the trigonometric two-term rule is off by a
// constant factor.
func linearShiftRecipe() []operation.ShiftTerm {
	c := 0.5 / cvShift
	return []operation.ShiftTerm{
		{Coeff: c, Multiplier: 1, Shift: cvShift},
		{Coeff: -c, Multiplier: 1, Shift: -cvShift},
	}
}

// squeezingShiftRecipe differentiates the squeezing magnitude. The sinh
// coefficient makes the rule exact on both the exp(r) and exp(-r)
// components of the representation.
func squeezingShiftRecipe() []operation.ShiftTerm {
	c := 0.5 / math.Sinh(cvShift)
	return []operation.ShiftTerm{
		{Coeff: c, Multiplier: 1, Shift: cvShift},
		{Coeff: -c, Multiplier: 1, Shift: -cvShift},
	}
}

// mustSetRecipe declares a recipe whose shape is fixed by the constructor
// and cannot fail validation.
func mustSetRecipe(g *operation.GateBase, r operation.GradRecipe) {
	if err := g.SetGradRecipe(r); err != nil {
		panic(err)
	}
}

// Rotation rotates a single mode in phase space.
type Rotation struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*Rotation)(nil)
	_ operation.IsCVGaussian = (*Rotation)(nil)
	_ operation.HasAdjoint   = (*Rotation)(nil)
)

// NewRotation creates a phase-space rotation by phi.
func NewRotation(phi float64, w wires.Wire) *Rotation {
	r := &Rotation{}
	params := []*tensor.RawTensor{tensor.Scalar(phi)}
	mustInitGate(&r.GateBase, "Rotation", params, wires.Wires{w}, 1, 1)
	r.SetGradMethod(operation.GradAnalytic)
	return r
}

// HeisenbergRep returns the rotation of the quadrature vector.
func (r *Rotation) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	phi := params[0].AsFloat64()[0]
	c, s := math.Cos(phi), math.Sin(phi)
	return tensor.FromFloat64([]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}, tensor.Shape{3, 3})
}

// Adjoint returns the rotation by the negated angle.
func (r *Rotation) Adjoint() (operation.Operator, error) {
	return NewRotation(-angle(r, 0), r.Wires()[0]), nil
}

// Displacement shifts a single mode in phase space by magnitude a along
// angle phi.
type Displacement struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*Displacement)(nil)
	_ operation.IsCVGaussian = (*Displacement)(nil)
	_ operation.HasAdjoint   = (*Displacement)(nil)
)

// NewDisplacement creates a displacement with magnitude a and phase phi.
func NewDisplacement(a, phi float64, w wires.Wire) *Displacement {
	d := &Displacement{}
	params := []*tensor.RawTensor{tensor.Scalar(a), tensor.Scalar(phi)}
	mustInitGate(&d.GateBase, "Displacement", params, wires.Wires{w}, 2, 1)
	d.SetGradMethod(operation.GradAnalytic)
	// The representation is linear in the magnitude; the phase keeps the
	// default rule.
	mustSetRecipe(&d.GateBase, operation.GradRecipe{linearShiftRecipe(), nil})
	return d
}

// HeisenbergRep returns the affine shift of the quadrature vector.
func (d *Displacement) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	a := params[0].AsFloat64()[0]
	phi := params[1].AsFloat64()[0]
	// scale = sqrt(2 hbar) with hbar = 2
	return tensor.FromFloat64([]float64{
		1, 0, 0,
		2 * a * math.Cos(phi), 1, 0,
		2 * a * math.Sin(phi), 0, 1,
	}, tensor.Shape{3, 3})
}

// Adjoint displaces by the opposite complex amplitude.
func (d *Displacement) Adjoint() (operation.Operator, error) {
	return NewDisplacement(angle(d, 0), mod2pi(angle(d, 1)+math.Pi), d.Wires()[0]), nil
}

// Squeezing squeezes a single mode by magnitude r along angle phi.
type Squeezing struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*Squeezing)(nil)
	_ operation.IsCVGaussian = (*Squeezing)(nil)
	_ operation.HasAdjoint   = (*Squeezing)(nil)
)

// NewSqueezing creates a squeezer with magnitude r and phase phi.
func NewSqueezing(r, phi float64, w wires.Wire) *Squeezing {
	s := &Squeezing{}
	params := []*tensor.RawTensor{tensor.Scalar(r), tensor.Scalar(phi)}
	mustInitGate(&s.GateBase, "Squeezing", params, wires.Wires{w}, 2, 1)
	s.SetGradMethod(operation.GradAnalytic)
	mustSetRecipe(&s.GateBase, operation.GradRecipe{squeezingShiftRecipe(), nil})
	return s
}

// HeisenbergRep returns diag(1, exp(-r), exp(r)) conjugated by the
// half-angle rotation.
func (s *Squeezing) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	r := params[0].AsFloat64()[0]
	phi := params[1].AsFloat64()[0]
	c, sn := math.Cos(phi/2), math.Sin(phi/2)
	em, ep := math.Exp(-r), math.Exp(r)
	return tensor.FromFloat64([]float64{
		1, 0, 0,
		0, c*c*em + sn*sn*ep, c * sn * (em - ep),
		0, c * sn * (em - ep), sn*sn*em + c*c*ep,
	}, tensor.Shape{3, 3})
}

// Adjoint squeezes by the opposite complex amplitude.
func (s *Squeezing) Adjoint() (operation.Operator, error) {
	return NewSqueezing(angle(s, 0), mod2pi(angle(s, 1)+math.Pi), s.Wires()[0]), nil
}

// Beamsplitter couples two modes with transmittivity angle theta and phase
// phi.
type Beamsplitter struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*Beamsplitter)(nil)
	_ operation.IsCVGaussian = (*Beamsplitter)(nil)
	_ operation.HasAdjoint   = (*Beamsplitter)(nil)
)

// NewBeamsplitter creates a beamsplitter across two modes.
func NewBeamsplitter(theta, phi float64, w0, w1 wires.Wire) (*Beamsplitter, error) {
	b := &Beamsplitter{}
	params := []*tensor.RawTensor{tensor.Scalar(theta), tensor.Scalar(phi)}
	if err := operation.InitGate(&b.GateBase, "Beamsplitter", params, wires.Wires{w0, w1}, 2, 2); err != nil {
		return nil, err
	}
	b.SetGradMethod(operation.GradAnalytic)
	return b, nil
}

// HeisenbergRep returns the two-mode coupling of the quadrature vector.
func (b *Beamsplitter) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	theta := params[0].AsFloat64()[0]
	phi := params[1].AsFloat64()[0]
	c, s := math.Cos(theta), math.Sin(theta)
	c2, s2 := math.Cos(phi), math.Sin(phi)
	return tensor.FromFloat64([]float64{
		1, 0, 0, 0, 0,
		0, c, 0, -s * c2, -s * s2,
		0, 0, c, s * s2, -s * c2,
		0, s * c2, -s * s2, c, 0,
		0, s * s2, s * c2, 0, c,
	}, tensor.Shape{5, 5})
}

// Adjoint reverses the coupling by negating theta.
func (b *Beamsplitter) Adjoint() (operation.Operator, error) {
	return NewBeamsplitter(-angle(b, 0), angle(b, 1), b.Wires()[0], b.Wires()[1])
}

// QuadraticPhase shears a single mode along the position quadrature.
type QuadraticPhase struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*QuadraticPhase)(nil)
	_ operation.IsCVGaussian = (*QuadraticPhase)(nil)
	_ operation.HasAdjoint   = (*QuadraticPhase)(nil)
)

// NewQuadraticPhase creates a quadratic phase gate with shear strength s.
func NewQuadraticPhase(s float64, w wires.Wire) *QuadraticPhase {
	q := &QuadraticPhase{}
	params := []*tensor.RawTensor{tensor.Scalar(s)}
	mustInitGate(&q.GateBase, "QuadraticPhase", params, wires.Wires{w}, 1, 1)
	q.SetGradMethod(operation.GradAnalytic)
	mustSetRecipe(&q.GateBase, operation.GradRecipe{linearShiftRecipe()})
	return q
}

// HeisenbergRep returns the shear of the quadrature vector.
func (q *QuadraticPhase) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	s := params[0].AsFloat64()[0]
	return tensor.FromFloat64([]float64{
		1, 0, 0,
		0, 1, 0,
		0, s, 1,
	}, tensor.Shape{3, 3})
}

// Adjoint shears in the opposite direction.
func (q *QuadraticPhase) Adjoint() (operation.Operator, error) {
	return NewQuadraticPhase(-angle(q, 0), q.Wires()[0]), nil
}

// Kerr is the Kerr interaction with strength kappa. It is not Gaussian, so
// it has no Heisenberg representation and only finite differences can
// differentiate it.
type Kerr struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*Kerr)(nil)
	_ operation.HasAdjoint = (*Kerr)(nil)
)

// NewKerr creates a Kerr interaction with strength kappa.
func NewKerr(kappa float64, w wires.Wire) *Kerr {
	k := &Kerr{}
	params := []*tensor.RawTensor{tensor.Scalar(kappa)}
	mustInitGate(&k.GateBase, "Kerr", params, wires.Wires{w}, 1, 1)
	return k
}

// Adjoint returns the interaction with the negated strength.
func (k *Kerr) Adjoint() (operation.Operator, error) {
	return NewKerr(-angle(k, 0), k.Wires()[0]), nil
}

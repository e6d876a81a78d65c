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

// mod2pi reduces an angle to [0, 2 pi).
func mod2pi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

// RX is the rotation exp(-i theta X / 2) about the X axis.
type RX struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*RX)(nil)
	_ operation.HasMatrix    = (*RX)(nil)
	_ operation.HasGenerator = (*RX)(nil)
	_ operation.HasAdjoint   = (*RX)(nil)
)

// NewRX creates a rotation about X by theta.
func NewRX(theta float64, w wires.Wire) *RX {
	r := &RX{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	mustInitGate(&r.GateBase, "RX", params, wires.Wires{w}, 1, 1)
	r.SetBasis("X")
	r.SetGradMethod(operation.GradAnalytic)
	return r
}

// RXMatrix returns the matrix of a rotation about X by theta.
func RXMatrix(theta float64) *tensor.RawTensor {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return tensor.Matrix(2, 2, []complex128{
		c, s,
		s, c,
	})
}

func (r *RX) CanonicalMatrix() (*tensor.RawTensor, error) {
	return RXMatrix(angle(r, 0)), nil
}

// Generator returns -X/2, so that the gate equals exp(i G theta).
func (r *RX) Generator() (operation.Operator, error) {
	return operation.NewHamiltonian([]float64{-0.5}, []operation.Observable{NewPauliX(r.Wires()[0])})
}

// Adjoint returns the rotation by the negated angle.
func (r *RX) Adjoint() (operation.Operator, error) {
	return NewRX(-angle(r, 0), r.Wires()[0]), nil
}

// RY is the rotation exp(-i theta Y / 2) about the Y axis.
type RY struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*RY)(nil)
	_ operation.HasMatrix    = (*RY)(nil)
	_ operation.HasGenerator = (*RY)(nil)
	_ operation.HasAdjoint   = (*RY)(nil)
)

// NewRY creates a rotation about Y by theta.
func NewRY(theta float64, w wires.Wire) *RY {
	r := &RY{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	mustInitGate(&r.GateBase, "RY", params, wires.Wires{w}, 1, 1)
	r.SetBasis("Y")
	r.SetGradMethod(operation.GradAnalytic)
	return r
}

// RYMatrix returns the matrix of a rotation about Y by theta. All entries
// are real.
func RYMatrix(theta float64) *tensor.RawTensor {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return tensor.Matrix(2, 2, []complex128{
		c, -s,
		s, c,
	})
}

func (r *RY) CanonicalMatrix() (*tensor.RawTensor, error) {
	return RYMatrix(angle(r, 0)), nil
}

// Generator returns -Y/2.
func (r *RY) Generator() (operation.Operator, error) {
	return operation.NewHamiltonian([]float64{-0.5}, []operation.Observable{NewPauliY(r.Wires()[0])})
}

// Adjoint returns the rotation by the negated angle.
func (r *RY) Adjoint() (operation.Operator, error) {
	return NewRY(-angle(r, 0), r.Wires()[0]), nil
}

// RZ is the rotation exp(-i theta Z / 2) about the Z axis.
type RZ struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*RZ)(nil)
	_ operation.HasMatrix    = (*RZ)(nil)
	_ operation.HasEigvals   = (*RZ)(nil)
	_ operation.HasGenerator = (*RZ)(nil)
	_ operation.HasAdjoint   = (*RZ)(nil)
)

// NewRZ creates a rotation about Z by theta.
func NewRZ(theta float64, w wires.Wire) *RZ {
	r := &RZ{}
	params := []*tensor.RawTensor{tensor.Scalar(theta)}
	mustInitGate(&r.GateBase, "RZ", params, wires.Wires{w}, 1, 1)
	r.SetBasis("Z")
	r.SetGradMethod(operation.GradAnalytic)
	return r
}

// RZMatrix returns the matrix of a rotation about Z by theta.
func RZMatrix(theta float64) *tensor.RawTensor {
	p := cmplx.Exp(complex(0, theta/2))
	return tensor.Matrix(2, 2, []complex128{
		cmplx.Conj(p), 0,
		0, p,
	})
}

func (r *RZ) CanonicalMatrix() (*tensor.RawTensor, error) {
	return RZMatrix(angle(r, 0)), nil
}

// CanonicalEigvals returns the diagonal exp(-i theta/2), exp(i theta/2).
func (r *RZ) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	p := cmplx.Exp(complex(0, angle(r, 0)/2))
	return tensor.VectorC([]complex128{cmplx.Conj(p), p}), nil
}

// Generator returns -Z/2.
func (r *RZ) Generator() (operation.Operator, error) {
	return operation.NewHamiltonian([]float64{-0.5}, []operation.Observable{NewPauliZ(r.Wires()[0])})
}

// Adjoint returns the rotation by the negated angle.
func (r *RZ) Adjoint() (operation.Operator, error) {
	return NewRZ(-angle(r, 0), r.Wires()[0]), nil
}

// PhaseShift applies diag(1, exp(i phi)) to one wire.
type PhaseShift struct {
	operation.GateBase
}

var (
	_ operation.Operation    = (*PhaseShift)(nil)
	_ operation.HasMatrix    = (*PhaseShift)(nil)
	_ operation.HasEigvals   = (*PhaseShift)(nil)
	_ operation.HasGenerator = (*PhaseShift)(nil)
	_ operation.HasAdjoint   = (*PhaseShift)(nil)
)

// NewPhaseShift creates a phase shift by phi.
func NewPhaseShift(phi float64, w wires.Wire) *PhaseShift {
	p := &PhaseShift{}
	params := []*tensor.RawTensor{tensor.Scalar(phi)}
	mustInitGate(&p.GateBase, "PhaseShift", params, wires.Wires{w}, 1, 1)
	p.SetBasis("Z")
	p.SetGradMethod(operation.GradAnalytic)
	return p
}

// PhaseShiftMatrix returns diag(1, exp(i phi)).
func PhaseShiftMatrix(phi float64) *tensor.RawTensor {
	return tensor.Matrix(2, 2, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, phi)),
	})
}

func (p *PhaseShift) CanonicalMatrix() (*tensor.RawTensor, error) {
	return PhaseShiftMatrix(angle(p, 0)), nil
}

func (p *PhaseShift) CanonicalEigvals(tensor.Backend) (*tensor.RawTensor, error) {
	return tensor.VectorC([]complex128{1, cmplx.Exp(complex(0, angle(p, 0)))}), nil
}

// Generator returns the projector onto the excited state, so that the gate
// equals exp(i G phi).
func (p *PhaseShift) Generator() (operation.Operator, error) {
	return NewHermitian(tensor.Matrix(2, 2, []complex128{
		0, 0,
		0, 1,
	}), p.Wires()[0])
}

// Adjoint returns the phase shift by the negated angle.
func (p *PhaseShift) Adjoint() (operation.Operator, error) {
	return NewPhaseShift(-angle(p, 0), p.Wires()[0]), nil
}

// Label renders the gate as a phase rotation.
func (p *PhaseShift) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "Rϕ"
	}
	return p.GateBase.Label(decimals, baseLabel)
}

// Rot is the general single-qubit rotation RZ(omega) RY(theta) RZ(phi),
// parametrized by the three Euler angles in application order.
type Rot struct {
	operation.GateBase
}

var (
	_ operation.Operation        = (*Rot)(nil)
	_ operation.HasMatrix        = (*Rot)(nil)
	_ operation.HasDecomposition = (*Rot)(nil)
	_ operation.HasAdjoint       = (*Rot)(nil)
)

// NewRot creates a general rotation from the Euler angles phi, theta, omega.
func NewRot(phi, theta, omega float64, w wires.Wire) *Rot {
	r := &Rot{}
	params := []*tensor.RawTensor{tensor.Scalar(phi), tensor.Scalar(theta), tensor.Scalar(omega)}
	mustInitGate(&r.GateBase, "Rot", params, wires.Wires{w}, 3, 1)
	r.SetGradMethod(operation.GradAnalytic)
	return r
}

// RotMatrix returns the matrix of RZ(omega) RY(theta) RZ(phi).
func RotMatrix(phi, theta, omega float64) *tensor.RawTensor {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	ep := cmplx.Exp(complex(0, (phi+omega)/2))
	em := cmplx.Exp(complex(0, (phi-omega)/2))
	return tensor.Matrix(2, 2, []complex128{
		cmplx.Conj(ep) * c, -em * s,
		cmplx.Conj(em) * s, ep * c,
	})
}

func (r *Rot) CanonicalMatrix() (*tensor.RawTensor, error) {
	return RotMatrix(angle(r, 0), angle(r, 1), angle(r, 2)), nil
}

// Decomposition returns the ZYZ gate sequence in circuit order.
func (r *Rot) Decomposition() ([]operation.Operator, error) {
	w := r.Wires()[0]
	return []operation.Operator{
		NewRZ(angle(r, 0), w),
		NewRY(angle(r, 1), w),
		NewRZ(angle(r, 2), w),
	}, nil
}

// Adjoint reverses and negates the Euler angles.
func (r *Rot) Adjoint() (operation.Operator, error) {
	return NewRot(-angle(r, 2), -angle(r, 1), -angle(r, 0), r.Wires()[0]), nil
}

// U2 is the single-qubit gate with two phase parameters, a pi/2 rotation
// combined with phase shifts.
type U2 struct {
	operation.GateBase
}

var (
	_ operation.Operation        = (*U2)(nil)
	_ operation.HasMatrix        = (*U2)(nil)
	_ operation.HasDecomposition = (*U2)(nil)
	_ operation.HasAdjoint       = (*U2)(nil)
)

// NewU2 creates a U2 gate with phases phi and lam.
func NewU2(phi, lam float64, w wires.Wire) *U2 {
	u := &U2{}
	params := []*tensor.RawTensor{tensor.Scalar(phi), tensor.Scalar(lam)}
	mustInitGate(&u.GateBase, "U2", params, wires.Wires{w}, 2, 1)
	u.SetGradMethod(operation.GradAnalytic)
	return u
}

// U2Matrix returns the U2 matrix.
func U2Matrix(phi, lam float64) *tensor.RawTensor {
	r := complex(1/math.Sqrt2, 0)
	ep := cmplx.Exp(complex(0, phi))
	el := cmplx.Exp(complex(0, lam))
	return tensor.Matrix(2, 2, []complex128{
		r, -r * el,
		r * ep, r * ep * el,
	})
}

func (u *U2) CanonicalMatrix() (*tensor.RawTensor, error) {
	return U2Matrix(angle(u, 0), angle(u, 1)), nil
}

// Decomposition expresses U2 through Rot and phase shifts, in circuit order.
func (u *U2) Decomposition() ([]operation.Operator, error) {
	w := u.Wires()[0]
	phi, lam := angle(u, 0), angle(u, 1)
	return []operation.Operator{
		NewRot(lam, math.Pi/2, -lam, w),
		NewPhaseShift(lam, w),
		NewPhaseShift(phi, w),
	}, nil
}

// Adjoint swaps and reflects the phases.
func (u *U2) Adjoint() (operation.Operator, error) {
	phi, lam := angle(u, 0), angle(u, 1)
	return NewU2(mod2pi(math.Pi-lam), mod2pi(math.Pi-phi), u.Wires()[0]), nil
}

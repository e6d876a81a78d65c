// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"fmt"
	"math"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// cvObservable is the shared base of continuous-variable observables; it
// records the polynomial order in the quadrature operators.
type cvObservable struct {
	operation.ObservableBase
	evOrder int
}

// EvOrder returns the polynomial order of the observable in the quadrature
// operators.
func (o *cvObservable) EvOrder() int {
	return o.evOrder
}

// QuadX is the position quadrature observable x.
type QuadX struct {
	cvObservable
}

var (
	_ operation.CVObservable = (*QuadX)(nil)
	_ operation.IsCVGaussian = (*QuadX)(nil)
)

// NewQuadX creates the position observable on one mode.
func NewQuadX(w wires.Wire) *QuadX {
	q := &QuadX{cvObservable{evOrder: 1}}
	mustInitObservable(&q.ObservableBase, "QuadX", nil, wires.Wires{w}, 0, 1)
	return q
}

// HeisenbergRep returns the coefficients of x in the quadrature vector.
func (q *QuadX) HeisenbergRep([]*tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{0, 1, 0}), nil
}

// Label renders the observable as "x".
func (q *QuadX) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "x"
	}
	return q.ObservableBase.Label(decimals, baseLabel)
}

// QuadP is the momentum quadrature observable p.
type QuadP struct {
	cvObservable
}

var (
	_ operation.CVObservable = (*QuadP)(nil)
	_ operation.IsCVGaussian = (*QuadP)(nil)
)

// NewQuadP creates the momentum observable on one mode.
func NewQuadP(w wires.Wire) *QuadP {
	q := &QuadP{cvObservable{evOrder: 1}}
	mustInitObservable(&q.ObservableBase, "QuadP", nil, wires.Wires{w}, 0, 1)
	return q
}

// HeisenbergRep returns the coefficients of p in the quadrature vector.
func (q *QuadP) HeisenbergRep([]*tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Vector([]float64{0, 0, 1}), nil
}

// Label renders the observable as "p".
func (q *QuadP) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "p"
	}
	return q.ObservableBase.Label(decimals, baseLabel)
}

// QuadOperator is the generalized quadrature cos(phi) x + sin(phi) p.
type QuadOperator struct {
	cvObservable
}

var (
	_ operation.CVObservable = (*QuadOperator)(nil)
	_ operation.IsCVGaussian = (*QuadOperator)(nil)
)

// NewQuadOperator creates the quadrature observable at phase-space angle
// phi.
func NewQuadOperator(phi float64, w wires.Wire) *QuadOperator {
	q := &QuadOperator{cvObservable{evOrder: 1}}
	params := []*tensor.RawTensor{tensor.Scalar(phi)}
	mustInitObservable(&q.ObservableBase, "QuadOperator", params, wires.Wires{w}, 1, 1)
	return q
}

// HeisenbergRep returns the coefficients of the rotated quadrature.
func (q *QuadOperator) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	phi := params[0].AsFloat64()[0]
	return tensor.Vector([]float64{0, math.Cos(phi), math.Sin(phi)}), nil
}

// NumberOperator is the photon number observable n.
type NumberOperator struct {
	cvObservable
}

var (
	_ operation.CVObservable = (*NumberOperator)(nil)
	_ operation.IsCVGaussian = (*NumberOperator)(nil)
)

// NewNumberOperator creates the photon number observable on one mode.
func NewNumberOperator(w wires.Wire) *NumberOperator {
	n := &NumberOperator{cvObservable{evOrder: 2}}
	mustInitObservable(&n.ObservableBase, "NumberOperator", nil, wires.Wires{w}, 0, 1)
	return n
}

// HeisenbergRep returns the quadratic form (x^2 + p^2)/(2 hbar) - 1/2 with
// hbar = 2.
func (n *NumberOperator) HeisenbergRep([]*tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.FromFloat64([]float64{
		-0.5, 0, 0,
		0, 0.25, 0,
		0, 0, 0.25,
	}, tensor.Shape{3, 3})
}

// Label renders the observable as "n".
func (n *NumberOperator) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "n"
	}
	return n.ObservableBase.Label(decimals, baseLabel)
}

// PolyXP is an arbitrary polynomial of the quadrature operators up to second
// order, described by a coefficient vector or matrix over the quadrature
// vector (I, x0, p0, x1, p1, ...).
type PolyXP struct {
	cvObservable
}

var (
	_ operation.CVObservable = (*PolyXP)(nil)
	_ operation.IsCVGaussian = (*PolyXP)(nil)
)

// NewPolyXP creates a quadrature polynomial observable from a coefficient
// array: a vector of length 1+2n for a first-order polynomial on n modes, or
// a square matrix of that size for a second-order one.
func NewPolyXP(q *tensor.RawTensor, ws ...wires.Wire) (*PolyXP, error) {
	dim := 1 + 2*len(ws)
	sh := q.Shape()
	switch {
	case len(sh) == 1 && sh[0] == dim:
	case len(sh) == 2 && sh[0] == dim && sh[1] == dim:
	default:
		return nil, fmt.Errorf("%w: PolyXP: coefficient array of shape %v does not fit %d modes",
			operation.ErrInvalidConstruction, sh, len(ws))
	}
	p := &PolyXP{cvObservable{evOrder: 2}}
	if err := operation.InitObservable(&p.ObservableBase, "PolyXP", []*tensor.RawTensor{q}, ws, 1, operation.AnyWires); err != nil {
		return nil, err
	}
	return p, nil
}

// HeisenbergRep returns the coefficient array itself.
func (p *PolyXP) HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error) {
	return params[0], nil
}

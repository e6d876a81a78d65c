// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Continuous-variable operators act on quantized modes of light. Gaussian
// ones transform the quadrature vector r = (I, x0, p0, x1, p1, ...)
// linearly, which the machinery below exploits: representations are small
// real arrays of dimension 1+2M for M modes, expanded into a register frame
// on demand.

// IsCVGaussian is implemented by CV operators with a linear action on the
// quadrature vector. HeisenbergRep returns the transformation at the given
// parameter values: a matrix for gates and second-order observables, a
// vector for first-order observables.
type IsCVGaussian interface {
	HeisenbergRep(params []*tensor.RawTensor) (*tensor.RawTensor, error)
}

// CVObservable is a continuous-variable observable that declares its
// polynomial order in the quadrature operators.
type CVObservable interface {
	Observable

	// EvOrder returns 1 for observables linear in the quadratures, 2 for
	// quadratic ones and 0 when undeclared.
	EvOrder() int
}

// SupportsHeisenberg reports whether op carries a Heisenberg representation,
// which is equivalent to being Gaussian.
func SupportsHeisenberg(op Operator) bool {
	_, ok := op.(IsCVGaussian)
	return ok
}

// SupportsParameterShift reports whether a CV operation can be
// differentiated with the parameter-shift rule: it must be Gaussian and
// declared analytically differentiable.
func SupportsParameterShift(op Operator) bool {
	g, ok := op.(Operation)
	return ok && g.GradMethod() == GradAnalytic && SupportsHeisenberg(op)
}

// HeisenbergExpand scatters a local Heisenberg array of op into the frame
// of the full register described by wireOrder. Vectors keep their constant
// component and move per-wire (x, p) pairs; matrices seed an identity for
// gates and zeros for observables, then map the first row and column and
// the per-wire-pair 2x2 blocks. An empty wireOrder, or one of the same
// length as the operator's wires, returns u unchanged.
func HeisenbergExpand(op Operator, b tensor.Backend, u *tensor.RawTensor, wireOrder wires.Wires) (*tensor.RawTensor, error) {
	if len(u.Shape()) > 2 {
		return nil, fmt.Errorf("%w: only order-1 and order-2 arrays supported", ErrStructuralConstraint)
	}
	nw := op.Wires().Len()
	udim := u.Shape()[0]
	if udim != 1+2*nw {
		return nil, fmt.Errorf("%w: %s: Heisenberg matrix is the wrong size %d",
			ErrStructuralConstraint, op.Name(), udim)
	}
	if wireOrder.Len() == 0 || wireOrder.Len() == nw {
		return u, nil
	}
	if !wireOrder.ContainsWires(op.Wires()) {
		return nil, fmt.Errorf("%w: %s: some wires %s are missing from the wire order %s",
			ErrStructuralConstraint, op.Name(), op.Wires(), wireOrder)
	}
	idx, err := wireOrder.Indices(op.Wires())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuralConstraint, err)
	}

	if u.DType() != tensor.Float64 {
		u = b.Cast(u, tensor.Float64)
	}
	src := u.AsFloat64()
	dim := 1 + 2*wireOrder.Len()

	if len(u.Shape()) == 1 {
		w := make([]float64, dim)
		w[0] = src[0]
		for k, wi := range idx {
			w[2*wi+1] = src[2*k+1]
			w[2*wi+2] = src[2*k+2]
		}
		return tensor.Vector(w), nil
	}

	_, isObs := op.(Observable)
	out := make([]float64, dim*dim)
	if !isObs {
		for i := 0; i < dim; i++ {
			out[i*dim+i] = 1
		}
	}
	out[0] = src[0]
	for k1, w1 := range idx {
		s1, d1 := 2*k1+1, 2*w1+1
		for r := 0; r < 2; r++ {
			out[(d1+r)*dim] = src[(s1+r)*udim]
			out[d1+r] = src[s1+r]
		}
		for k2, w2 := range idx {
			s2, d2 := 2*k2+1, 2*w2+1
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					out[(d1+r)*dim+d2+c] = src[(s1+r)*udim+s2+c]
				}
			}
		}
	}
	m, err := tensor.FromFloat64(out, tensor.Shape{dim, dim})
	if err != nil {
		panic(err) // length always matches
	}
	return m, nil
}

// HeisenbergTr returns the Heisenberg-picture transformation matrix of a
// Gaussian gate at its current parameter values, expanded to the wire
// order. With inverse set the transformation of the inverted gate is
// returned, obtained by negating the first parameter.
func HeisenbergTr(op Operator, b tensor.Backend, wireOrder wires.Wires, inverse bool) (*tensor.RawTensor, error) {
	cv, ok := op.(IsCVGaussian)
	if !ok {
		return nil, notGaussian(op)
	}
	p := op.Parameters()
	if inverse && len(p) > 0 {
		p[0] = b.MulScalar(p[0], -1.0)
	}
	u, err := cv.HeisenbergRep(p)
	if err != nil {
		return nil, err
	}
	return HeisenbergExpand(op, b, u, wireOrder)
}

// HeisenbergPD returns the partial derivative of the local Heisenberg
// transformation with respect to parameter idx, computed as the shift-rule
// linear combination of representations at shifted parameter values.
func HeisenbergPD(op Operator, b tensor.Backend, idx int) (*tensor.RawTensor, error) {
	cv, ok := op.(IsCVGaussian)
	if !ok {
		return nil, notGaussian(op)
	}
	g, ok := op.(Operation)
	if !ok {
		return nil, notGaussian(op)
	}
	var pd *tensor.RawTensor
	for _, term := range g.ParameterShift(idx) {
		p := op.Parameters()
		p[idx] = b.Add(b.MulScalar(p[idx], term.Multiplier), tensor.Scalar(term.Shift))
		u, err := cv.HeisenbergRep(p)
		if err != nil {
			return nil, err
		}
		scaled := b.MulScalar(u, term.Coeff)
		if pd == nil {
			pd = scaled
		} else {
			pd = b.Add(pd, scaled)
		}
	}
	return pd, nil
}

// HeisenbergObs returns the quadrature-basis expansion of a CV observable
// at its current parameters, expanded to the wire order.
func HeisenbergObs(obs Operator, b tensor.Backend, wireOrder wires.Wires) (*tensor.RawTensor, error) {
	cv, ok := obs.(IsCVGaussian)
	if !ok {
		return nil, notGaussian(obs)
	}
	u, err := cv.HeisenbergRep(obs.Parameters())
	if err != nil {
		return nil, err
	}
	return HeisenbergExpand(obs, b, u, wireOrder)
}

func notGaussian(op Operator) error {
	return fmt.Errorf("%s is not a Gaussian operation, or is missing the Heisenberg representation", op.Name())
}

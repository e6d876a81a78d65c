// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"

	"github.com/dime10/pennylane/tensor"
)

// OperationDerivative returns the derivative of the matrix of a
// single-parameter operation with respect to that parameter. For an
// operation U = exp(i G theta) the derivative is i G U, with G the
// generator matrix over the operation's wires. An inverted operation
// exponentiates -i G theta, so the prefactor flips sign and the generator
// is conjugate-transposed.
func OperationDerivative(op Operator, b tensor.Backend) (*tensor.RawTensor, error) {
	if op.NumParams() != 1 {
		return nil, fmt.Errorf("%w: the derivative needs an operation with a single parameter; %s has %d",
			ErrInvalidConstruction, op.Name(), op.NumParams())
	}
	gen, err := Generator(op)
	if err != nil {
		return nil, err
	}
	g, err := Matrix(gen, b, op.Wires().Labels()...)
	if err != nil {
		return nil, err
	}
	u, err := Matrix(op, b)
	if err != nil {
		return nil, err
	}
	factor := complex(0, 1)
	if inv, ok := op.(Operation); ok && inv.Inverse() {
		factor = -factor
		g = b.Conj(b.Transpose(g))
	}
	return b.MatMul(b.MulScalar(g, factor), u), nil
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transforms provides circuit-level rewrites over operator lists.
package transforms

import (
	"errors"
	"fmt"

	"github.com/dime10/pennylane/operation"
)

// Adjoint returns the adjoint of a gate sequence: the list reversed with
// every operator adjointed. Operators without an adjoint of their own are
// decomposed and the transform recurses on the decomposition, so the result
// contains only operators that know their adjoint. An operator providing
// neither representation fails with both undefined errors.
func Adjoint(ops []operation.Operator) ([]operation.Operator, error) {
	out := make([]operation.Operator, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		adj, err := operation.Adjoint(op)
		if err == nil {
			out = append(out, adj)
			continue
		}
		if !errors.Is(err, operation.ErrAdjointUndefined) {
			return nil, err
		}
		decomp, derr := operation.Decomposition(op)
		if derr != nil {
			return nil, fmt.Errorf("%w for %s; decomposition fallback: %w",
				operation.ErrAdjointUndefined, op.Name(), derr)
		}
		sub, err := Adjoint(decomp)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

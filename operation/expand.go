// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// ExpandMatrix embeds the matrix m, acting on opWires, into the register
// described by wireOrder: identity on the wires the operator does not touch,
// a permutation similarity when the wire sets match in a different order.
// The matrix must be 2^k x 2^k for k operator wires, and wireOrder must
// contain every operator wire. An empty or identical wireOrder returns m
// unchanged.
func ExpandMatrix(b tensor.Backend, m *tensor.RawTensor, opWires, wireOrder wires.Wires) (*tensor.RawTensor, error) {
	if wireOrder.Len() == 0 || wireOrder.Equal(opWires) {
		return m, nil
	}
	if !wireOrder.ContainsWires(opWires) {
		return nil, fmt.Errorf("%w: wire order %s does not contain all of the operator wires %s",
			ErrStructuralConstraint, wireOrder, opWires)
	}

	k := opWires.Len()
	dim := 1 << k
	if !m.Shape().IsMatrix() || m.Shape()[0] != dim || m.Shape()[1] != dim {
		return nil, fmt.Errorf("%w: expected a %dx%d matrix on %d wires; got shape %v",
			ErrStructuralConstraint, dim, dim, k, m.Shape())
	}

	n := wireOrder.Len()
	pos, err := wireOrder.Indices(opWires)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuralConstraint, err)
	}

	// Contract the matrix columns into the identity rows at the operator's
	// wire positions, working on rank-2k and rank-2n views of the matrices.
	mr := b.Reshape(m, qubitAxes(2*k))
	id := b.Reshape(tensor.RawEye(1<<n, m.DType()), qubitAxes(2*n))
	cols := make([]int, k)
	for i := range cols {
		cols[i] = k + i
	}
	t := b.TensorDot(mr, id, cols, pos)

	// After the contraction the first k axes are the operator's row axes and
	// the rest are the identity's surviving axes (untouched rows in
	// ascending position, then all columns). Permute the row axes back to
	// their register positions.
	perm := make([]int, 2*n)
	opAxis := make(map[int]int, k)
	for i, p := range pos {
		opAxis[p] = i
	}
	next := k
	for d := 0; d < n; d++ {
		if i, ok := opAxis[d]; ok {
			perm[d] = i
		} else {
			perm[d] = next
			next++
		}
	}
	for c := 0; c < n; c++ {
		perm[n+c] = n + c
	}
	t = b.Transpose(t, perm...)

	full := 1 << n
	return b.Reshape(t, tensor.Shape{full, full}), nil
}

// qubitAxes returns a shape of n axes of size 2.
func qubitAxes(n int) tensor.Shape {
	s := make(tensor.Shape, n)
	for i := range s {
		s[i] = 2
	}
	return s
}

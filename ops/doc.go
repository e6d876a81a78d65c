// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the concrete operator library: Pauli and Clifford
// gates, parametrized and controlled rotations, matrix-backed operators and
// the continuous-variable family.
//
// Every type embeds operation.GateBase or operation.ObservableBase and
// advertises its representations through the operation package's capability
// interfaces, so the dispatchers there work uniformly:
//
//	x := ops.NewPauliX(0)
//	m, err := operation.Matrix(x, backend)       // [[0 1] [1 0]]
//	e, err := operation.Eigvals(x, backend)      // [1 -1]
//
// Constructors whose arguments cannot fail validation return the operator
// directly; multi-wire and matrix-parametrized constructors validate and
// return an error:
//
//	rx := ops.NewRX(0.5, 0)
//	cnot, err := ops.NewCNOT(0, 1)
//
// Gates with a matrix form also expose it as a pure function of the
// parameters (ops.RXMatrix, ops.CNOTMatrix, ...), computed fresh on every
// call so callers may mutate the result freely.
package ops

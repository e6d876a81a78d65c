// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operation defines the quantum operator model: gates, observables,
// their composites and the representation protocol connecting them to
// concrete matrices, spectra and decompositions.
//
// # Overview
//
// An Operator is named, acts on wires and may carry parameters. Two refined
// kinds exist:
//   - Operation: circuit gates with an inversion flag and gradient metadata
//   - Observable: measurable operators with a measurement return type
//
// Concrete operators live in the ops package and embed GateBase or
// ObservableBase; this package holds the shared behavior.
//
// # Representations
//
// Operators advertise representations through capability interfaces
// (HasMatrix, HasEigvals, HasDecomposition, ...). The package-level
// dispatchers postprocess those representations and report typed errors
// when one is missing:
//
//	m, err := operation.Matrix(op, backend)
//	if errors.Is(err, operation.ErrMatrixUndefined) {
//	    // op has no matrix form
//	}
//
// Matrix and Eigvals honor the inversion flag; Matrix additionally embeds
// the result into a larger register when a wire order is given:
//
//	m, err := operation.Matrix(op, backend, 0, 1, 2)
//
// # Observable Algebra
//
// Observables combine through named constructors instead of arithmetic
// operators:
//
//	xz, err := operation.NewTensor(x, z) // X(0) @ Z(1)
//	h, err := operation.Add(x, z)        // X(0) + Z(1) as a Hamiltonian
//	h, err = operation.Scale(0.5, h)     // 0.5*X(0) + 0.5*Z(1)
//
// Compare checks observable equality structurally, ignoring factor order
// and identity padding.
//
// # Continuous-Variable Operators
//
// Gaussian CV operators expose their linear action on the quadrature
// vector (I, x0, p0, x1, p1, ...) through HeisenbergRep. HeisenbergTr,
// HeisenbergPD and HeisenbergObs evaluate, differentiate and expand those
// representations.
package operation

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"errors"
	"fmt"
)

// Representation-undefined family. Every member wraps ErrUndefined, so
// errors.Is(err, operation.ErrUndefined) catches "this operator cannot
// produce that representation" uniformly, while the specific sentinels
// distinguish which representation was asked for.
var (
	// ErrUndefined is the base of the family; never returned directly.
	ErrUndefined = errors.New("undefined representation")

	ErrMatrixUndefined        = fmt.Errorf("matrix: %w", ErrUndefined)
	ErrSparseMatrixUndefined  = fmt.Errorf("sparse matrix: %w", ErrUndefined)
	ErrEigvalsUndefined       = fmt.Errorf("eigenvalues: %w", ErrUndefined)
	ErrTermsUndefined         = fmt.Errorf("terms: %w", ErrUndefined)
	ErrDecompositionUndefined = fmt.Errorf("decomposition: %w", ErrUndefined)
	ErrDiagGatesUndefined     = fmt.Errorf("diagonalizing gates: %w", ErrUndefined)
	ErrGeneratorUndefined     = fmt.Errorf("generator: %w", ErrUndefined)
	ErrAdjointUndefined       = fmt.Errorf("adjoint: %w", ErrUndefined)
	ErrKrausUndefined         = fmt.Errorf("kraus matrices: %w", ErrUndefined)
)

// Construction and algebra failures.
var (
	// ErrInvalidConstruction marks malformed operator construction: missing
	// or duplicate wires, wrong parameter or wire counts, bad gradient
	// recipe declarations.
	ErrInvalidConstruction = errors.New("invalid construction")

	// ErrTypeMismatch marks algebra applied to values that are not
	// observables, such as tensoring a gate into an observable product.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrStructuralConstraint marks requests that are well-typed but
	// unsatisfiable for the operator's structure: sparse representations
	// over non-consecutive wires, unsupported wire-order overrides,
	// Heisenberg matrices of the wrong size.
	ErrStructuralConstraint = errors.New("structural constraint")
)

// undefined builds the standard "op cannot produce this representation"
// error for a dispatcher.
func undefined(sentinel error, op Operator) error {
	return fmt.Errorf("%w for %s", sentinel, op.Name())
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// An operator advertises each representation it supports by implementing the
// matching capability interface. The package-level dispatchers below query
// the capability, postprocess (inversion, wire reordering) and turn a missing
// capability into the typed undefined error for that representation.

// HasMatrix is implemented by operators with a dense matrix representation.
// CanonicalMatrix returns the matrix over the operator's own wires, without
// inversion applied.
type HasMatrix interface {
	CanonicalMatrix() (*tensor.RawTensor, error)
}

// HasSparseMatrix is implemented by operators with a sparse COO
// representation over their own wires.
type HasSparseMatrix interface {
	SparseMatrix() (*tensor.COO, error)
}

// HasEigvals is implemented by operators that know their eigenvalues without
// a dense diagonalization. Purely algebraic implementations ignore the
// backend.
type HasEigvals interface {
	CanonicalEigvals(b tensor.Backend) (*tensor.RawTensor, error)
}

// HasTerms is implemented by operators expressible as a linear combination
// of simpler operators.
type HasTerms interface {
	Terms() ([]float64, []Operator, error)
}

// HasDecomposition is implemented by operators expressible as a product of
// simpler operators, given in circuit order.
type HasDecomposition interface {
	Decomposition() ([]Operator, error)
}

// HasDiagonalizingGates is implemented by observables that know the unitaries
// rotating them into the computational basis.
type HasDiagonalizingGates interface {
	DiagonalizingGates(b tensor.Backend) ([]Operator, error)
}

// HasGenerator is implemented by operations of the form exp(i G theta);
// Generator returns G as an operator.
type HasGenerator interface {
	Generator() (Operator, error)
}

// HasAdjoint is implemented by operations that can produce their own
// adjoint as a new operation.
type HasAdjoint interface {
	Adjoint() (Operator, error)
}

// HasKraus is implemented by non-unitary channels described by a set of
// Kraus matrices.
type HasKraus interface {
	KrausMatrices() ([]*tensor.RawTensor, error)
}

// Matrix returns the matrix of op in the computational basis. The canonical
// matrix is conjugate-transposed when the operation's inversion flag is set,
// then embedded into wireOrder when one is given (identity on wires the
// operator does not touch).
func Matrix(op Operator, b tensor.Backend, wireOrder ...wires.Wire) (*tensor.RawTensor, error) {
	m, err := canonicalMatrix(op, b)
	if err != nil {
		return nil, err
	}
	if g, ok := op.(Operation); ok && g.Inverse() {
		m = b.Conj(b.Transpose(m))
	}
	order := wires.Wires(wireOrder)
	if order.Len() > 0 && !order.Equal(op.Wires()) {
		return ExpandMatrix(b, m, op.Wires(), order)
	}
	return m, nil
}

// canonicalMatrix resolves the matrix before postprocessing. The composite
// and wrapper types need a backend to combine or transform constituent
// matrices, so they dispatch by type rather than through HasMatrix.
func canonicalMatrix(op Operator, b tensor.Backend) (*tensor.RawTensor, error) {
	switch o := op.(type) {
	case *Tensor:
		return o.Matrix(b)
	case *Hamiltonian:
		return o.Matrix(b)
	case *Adjointed:
		m, err := Matrix(o.Base(), b)
		if err != nil {
			return nil, err
		}
		return b.Conj(b.Transpose(m)), nil
	}
	if m, ok := op.(HasMatrix); ok {
		return m.CanonicalMatrix()
	}
	return nil, undefined(ErrMatrixUndefined, op)
}

// Eigvals returns the eigenvalues of op. Operators without canonical
// eigenvalues fall back to diagonalizing the dense matrix; when that matrix
// is also undefined the returned error matches both ErrEigvalsUndefined and
// the underlying matrix error.
func Eigvals(op Operator, b tensor.Backend) (*tensor.RawTensor, error) {
	if e, ok := op.(HasEigvals); ok {
		ev, err := e.CanonicalEigvals(b)
		if err != nil {
			return nil, err
		}
		if g, ok := op.(Operation); ok && g.Inverse() {
			ev = b.Conj(ev)
		}
		return ev, nil
	}
	// Matrix already applies the inversion flag, so the fallback must not
	// conjugate again.
	m, merr := Matrix(op, b)
	if merr != nil {
		return nil, fmt.Errorf("%w for %s; matrix fallback: %w", ErrEigvalsUndefined, op.Name(), merr)
	}
	return b.Eigvals(m), nil
}

// SparseMatrix returns the sparse COO representation of op. Reordering wires
// of a sparse matrix is unsupported; a wireOrder differing from the
// operator's own wires fails. The Tensor composite handles orders itself.
func SparseMatrix(op Operator, wireOrder ...wires.Wire) (*tensor.COO, error) {
	if t, ok := op.(*Tensor); ok {
		return t.SparseMatrix(wireOrder...)
	}
	order := wires.Wires(wireOrder)
	if order.Len() > 0 && !order.Equal(op.Wires()) {
		return nil, fmt.Errorf("%w: cannot reorder the wires of the sparse matrix of %s",
			ErrStructuralConstraint, op.Name())
	}
	if s, ok := op.(HasSparseMatrix); ok {
		return s.SparseMatrix()
	}
	return nil, undefined(ErrSparseMatrixUndefined, op)
}

// Terms returns op as a linear combination of simpler operators.
func Terms(op Operator) ([]float64, []Operator, error) {
	if t, ok := op.(HasTerms); ok {
		return t.Terms()
	}
	return nil, nil, undefined(ErrTermsUndefined, op)
}

// Decomposition returns op as a product of simpler operators in circuit
// order. The inversion flag is not applied here; expanding an inverted
// operation reverses and inverts the list.
func Decomposition(op Operator) ([]Operator, error) {
	if d, ok := op.(HasDecomposition); ok {
		return d.Decomposition()
	}
	return nil, undefined(ErrDecompositionUndefined, op)
}

// DiagonalizingGates returns the unitaries that rotate op into the
// computational basis.
func DiagonalizingGates(op Operator, b tensor.Backend) ([]Operator, error) {
	if d, ok := op.(HasDiagonalizingGates); ok {
		return d.DiagonalizingGates(b)
	}
	return nil, undefined(ErrDiagGatesUndefined, op)
}

// Generator returns the generator G of an operation exp(i G theta).
func Generator(op Operator) (Operator, error) {
	if g, ok := op.(HasGenerator); ok {
		return g.Generator()
	}
	return nil, undefined(ErrGeneratorUndefined, op)
}

// Adjoint returns the adjoint of op as a new operator. Operations without
// one report ErrAdjointUndefined; transforms fall back to decomposing.
func Adjoint(op Operator) (Operator, error) {
	if a, ok := op.(HasAdjoint); ok {
		return a.Adjoint()
	}
	return nil, undefined(ErrAdjointUndefined, op)
}

// KrausMatrices returns the Kraus matrices of a channel.
func KrausMatrices(op Operator) ([]*tensor.RawTensor, error) {
	if k, ok := op.(HasKraus); ok {
		return k.KrausMatrices()
	}
	return nil, undefined(ErrKrausUndefined, op)
}

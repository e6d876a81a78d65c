// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"fmt"
	"math/cmplx"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// matrixTol bounds the deviation accepted when validating unitarity and
// hermiticity of matrix parameters.
const matrixTol = 1e-8

// QubitUnitary applies an arbitrary unitary matrix to its wires. The matrix
// is the gate's single parameter; it is not differentiable.
type QubitUnitary struct {
	operation.GateBase
}

var (
	_ operation.Operation  = (*QubitUnitary)(nil)
	_ operation.HasMatrix  = (*QubitUnitary)(nil)
	_ operation.HasAdjoint = (*QubitUnitary)(nil)
)

// NewQubitUnitary creates a gate from a complex128 unitary of size
// 2^n x 2^n acting on n wires.
func NewQubitUnitary(u *tensor.RawTensor, ws ...wires.Wire) (*QubitUnitary, error) {
	if err := validateSquare("QubitUnitary", u, len(ws)); err != nil {
		return nil, err
	}
	if !isUnitary(u.AsComplex128(), u.Shape()[0]) {
		return nil, fmt.Errorf("%w: QubitUnitary: operator must be unitary", operation.ErrInvalidConstruction)
	}
	q := &QubitUnitary{}
	if err := operation.InitGate(&q.GateBase, "QubitUnitary", []*tensor.RawTensor{u}, ws, 1, operation.AnyWires); err != nil {
		return nil, err
	}
	q.SetGradMethod(operation.GradNone)
	return q, nil
}

func (q *QubitUnitary) CanonicalMatrix() (*tensor.RawTensor, error) {
	return q.Data()[0], nil
}

// Adjoint returns a new gate carrying the conjugate transpose.
func (q *QubitUnitary) Adjoint() (operation.Operator, error) {
	return NewQubitUnitary(conjT(q.Data()[0]), q.Wires()...)
}

// Label renders the gate as "U", omitting the matrix parameter.
func (q *QubitUnitary) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "U"
	}
	return q.GateBase.Label(decimals, baseLabel)
}

// Hermitian is an observable defined by an arbitrary Hermitian matrix. Its
// eigenvalues and diagonalizing gates come from a dense eigendecomposition,
// computed once and reused; the matrix parameter must not be mutated
// afterwards.
type Hermitian struct {
	operation.ObservableBase
	eigvals *tensor.RawTensor
	eigvecs *tensor.RawTensor
}

var (
	_ operation.Observable            = (*Hermitian)(nil)
	_ operation.HasMatrix             = (*Hermitian)(nil)
	_ operation.HasEigvals            = (*Hermitian)(nil)
	_ operation.HasDiagonalizingGates = (*Hermitian)(nil)
)

// NewHermitian creates an observable from a complex128 Hermitian matrix of
// size 2^n x 2^n acting on n wires.
func NewHermitian(a *tensor.RawTensor, ws ...wires.Wire) (*Hermitian, error) {
	if err := validateSquare("Hermitian", a, len(ws)); err != nil {
		return nil, err
	}
	if !isHermitian(a.AsComplex128(), a.Shape()[0]) {
		return nil, fmt.Errorf("%w: Hermitian: observable must be Hermitian", operation.ErrInvalidConstruction)
	}
	h := &Hermitian{}
	if err := operation.InitObservable(&h.ObservableBase, "Hermitian", []*tensor.RawTensor{a}, ws, 1, operation.AnyWires); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hermitian) CanonicalMatrix() (*tensor.RawTensor, error) {
	return h.Data()[0], nil
}

// CanonicalEigvals returns the real spectrum in ascending order.
func (h *Hermitian) CanonicalEigvals(b tensor.Backend) (*tensor.RawTensor, error) {
	vals, _ := h.eigendecomposition(b)
	return vals, nil
}

// DiagonalizingGates returns the unitary rotating the eigenbasis onto the
// computational basis.
func (h *Hermitian) DiagonalizingGates(b tensor.Backend) ([]operation.Operator, error) {
	_, vecs := h.eigendecomposition(b)
	u, err := NewQubitUnitary(b.Conj(b.Transpose(vecs)), h.Wires()...)
	if err != nil {
		return nil, err
	}
	return []operation.Operator{u}, nil
}

// Label renders the observable as a calligraphic H, omitting the matrix
// parameter.
func (h *Hermitian) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "𝓗"
	}
	return h.ObservableBase.Label(decimals, baseLabel)
}

func (h *Hermitian) eigendecomposition(b tensor.Backend) (*tensor.RawTensor, *tensor.RawTensor) {
	if h.eigvals == nil {
		h.eigvals, h.eigvecs = b.Eigh(h.Data()[0])
	}
	return h.eigvals, h.eigvecs
}

// SparseHamiltonian is an observable backed by a sparse matrix in COO form.
// Only the sparse representation is defined; the dense matrix and the
// spectrum stay undefined, which keeps large observables out of dense
// arithmetic by construction.
type SparseHamiltonian struct {
	operation.ObservableBase
	matrix *tensor.COO
}

var (
	_ operation.Observable      = (*SparseHamiltonian)(nil)
	_ operation.HasSparseMatrix = (*SparseHamiltonian)(nil)
)

// NewSparseHamiltonian creates an observable from a sparse matrix of size
// 2^n x 2^n acting on n wires.
func NewSparseHamiltonian(m *tensor.COO, ws ...wires.Wire) (*SparseHamiltonian, error) {
	rows, cols := m.Dims()
	if dim := 1 << len(ws); rows != dim || cols != dim {
		return nil, fmt.Errorf("%w: SparseHamiltonian: matrix size %dx%d does not match the %d given wires",
			operation.ErrInvalidConstruction, rows, cols, len(ws))
	}
	s := &SparseHamiltonian{matrix: m}
	if err := operation.InitObservable(&s.ObservableBase, "SparseHamiltonian", nil, ws, 0, operation.AnyWires); err != nil {
		return nil, err
	}
	return s, nil
}

// SparseMatrix returns the backing COO matrix.
func (s *SparseHamiltonian) SparseMatrix() (*tensor.COO, error) {
	return s.matrix, nil
}

// Label renders the observable as a calligraphic H.
func (s *SparseHamiltonian) Label(decimals int, baseLabel string) string {
	if baseLabel == "" {
		baseLabel = "𝓗"
	}
	return s.ObservableBase.Label(decimals, baseLabel)
}

// validateSquare checks that t is a complex128 square matrix whose dimension
// matches 2^numWires.
func validateSquare(name string, t *tensor.RawTensor, numWires int) error {
	if t.DType() != tensor.Complex128 {
		return fmt.Errorf("%w: %s: matrix must have dtype complex128, got %s",
			operation.ErrInvalidConstruction, name, t.DType())
	}
	sh := t.Shape()
	if !sh.IsMatrix() || sh[0] != sh[1] {
		return fmt.Errorf("%w: %s: operator must be a square matrix", operation.ErrInvalidConstruction, name)
	}
	if dim := 1 << numWires; sh[0] != dim {
		return fmt.Errorf("%w: %s: matrix size %d does not match the %d given wires",
			operation.ErrInvalidConstruction, name, sh[0], numWires)
	}
	return nil
}

// isUnitary reports whether the d x d matrix satisfies m m† = I within
// matrixTol.
func isUnitary(m []complex128, d int) bool {
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var sum complex128
			for k := 0; k < d; k++ {
				sum += m[i*d+k] * cmplx.Conj(m[j*d+k])
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(sum-want) > matrixTol {
				return false
			}
		}
	}
	return true
}

// isHermitian reports whether the d x d matrix equals its conjugate
// transpose within matrixTol.
func isHermitian(m []complex128, d int) bool {
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			if cmplx.Abs(m[i*d+j]-cmplx.Conj(m[j*d+i])) > matrixTol {
				return false
			}
		}
	}
	return true
}

// conjT returns the conjugate transpose of a square complex128 matrix.
func conjT(m *tensor.RawTensor) *tensor.RawTensor {
	d := m.Shape()[0]
	src := m.AsComplex128()
	dst := make([]complex128, len(src))
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			dst[j*d+i] = cmplx.Conj(src[i*d+j])
		}
	}
	return tensor.Matrix(d, d, dst)
}

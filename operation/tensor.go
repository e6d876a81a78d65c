// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"hash/fnv"
	"math/bits"
	"sort"
	"strings"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Observables with hard-coded ±1 spectra; runs of these share one
// eigenvalue pattern instead of diagonalizing each factor.
var standardObs = map[string]bool{
	"PauliX":   true,
	"PauliY":   true,
	"PauliZ":   true,
	"Hadamard": true,
}

// Tensor is a product of observable factors. Factors keep their
// construction order; nested products flatten into one level.
type Tensor struct {
	obs        []Observable
	returnType ReturnType
	id         string
	hyper      map[string]any

	eigvals *tensor.RawTensor
}

var (
	_ Observable            = (*Tensor)(nil)
	_ HasEigvals            = (*Tensor)(nil)
	_ HasDiagonalizingGates = (*Tensor)(nil)
)

// NewTensor forms the tensor product of the given factors. Every factor
// must be an observable; tensor product factors contribute their own
// factors in place.
func NewTensor(factors ...Operator) (*Tensor, error) {
	t := &Tensor{}
	if _, err := t.Matmul(factors...); err != nil {
		return nil, err
	}
	if len(t.obs) == 0 {
		return nil, fmt.Errorf("%w: tensor product needs at least one observable", ErrInvalidConstruction)
	}
	return t, nil
}

// Matmul appends further factors to the product in place and returns the
// receiver. Hamiltonians do not multiply into products; scale the finished
// product instead.
func (t *Tensor) Matmul(factors ...Operator) (*Tensor, error) {
	for _, f := range factors {
		switch o := f.(type) {
		case *Tensor:
			t.obs = append(t.obs, o.obs...)
		case *Hamiltonian:
			return nil, fmt.Errorf("%w: can only perform tensor products between observables; got %s",
				ErrTypeMismatch, o.Name())
		case Observable:
			t.obs = append(t.obs, o)
		default:
			return nil, fmt.Errorf("%w: can only perform tensor products between observables; got %T",
				ErrTypeMismatch, f)
		}
	}
	t.eigvals = nil
	return t, nil
}

// Name lists the factor names joined by the product symbol.
func (t *Tensor) Name() string {
	names := make([]string, len(t.obs))
	for i, o := range t.obs {
		names[i] = o.Name()
	}
	return strings.Join(names, " @ ")
}

// ID returns the optional user label.
func (t *Tensor) ID() string {
	return t.id
}

// SetID assigns an optional user label.
func (t *Tensor) SetID(id string) {
	t.id = id
}

// Wires returns the union of the factor wires in construction order.
func (t *Tensor) Wires() wires.Wires {
	var u wires.Wires
	for _, o := range t.obs {
		u = u.Union(o.Wires())
	}
	return u
}

// Observables returns a copy of the factor list.
func (t *Tensor) Observables() []Observable {
	return append([]Observable(nil), t.obs...)
}

// Data returns the concatenated parameter tensors of the factors.
func (t *Tensor) Data() []*tensor.RawTensor {
	var data []*tensor.RawTensor
	for _, o := range t.obs {
		data = append(data, o.Data()...)
	}
	return data
}

// Parameters returns copies of the concatenated factor parameters.
func (t *Tensor) Parameters() []*tensor.RawTensor {
	var params []*tensor.RawTensor
	for _, o := range t.obs {
		params = append(params, o.Parameters()...)
	}
	return params
}

// NumParams returns the total parameter count over all factors.
func (t *Tensor) NumParams() int {
	n := 0
	for _, o := range t.obs {
		n += o.NumParams()
	}
	return n
}

// Hyperparameters returns the mutable hyperparameter map.
func (t *Tensor) Hyperparameters() map[string]any {
	if t.hyper == nil {
		t.hyper = make(map[string]any)
	}
	return t.hyper
}

// Hash folds the factor hashes in product order.
func (t *Tensor) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte("Tensor"))
	for _, o := range t.obs {
		fmt.Fprintf(hash, "|%x", o.Hash())
	}
	return hash.Sum64()
}

// Label joins the factor labels with the tensor product symbol.
func (t *Tensor) Label(decimals int, baseLabel string) string {
	if baseLabel != "" {
		return baseLabel
	}
	labels := make([]string, len(t.obs))
	for i, o := range t.obs {
		labels[i] = o.Label(decimals, "")
	}
	return strings.Join(labels, "⊗")
}

// ReturnType reports the measurement this observable is attached to.
func (t *Tensor) ReturnType() ReturnType {
	return t.returnType
}

// SetReturnType attaches the observable to a measurement kind.
func (t *Tensor) SetReturnType(rt ReturnType) {
	t.returnType = rt
}

// CanonicalEigvals returns the eigenvalues of the product with the factors
// ordered by the string form of their wire labels, the same convention the
// diagonalizing gates use. The result is memoized on the receiver.
func (t *Tensor) CanonicalEigvals(b tensor.Backend) (*tensor.RawTensor, error) {
	if t.eigvals != nil {
		return t.eigvals, nil
	}
	if len(t.obs) == 0 {
		return nil, undefined(ErrEigvalsUndefined, t)
	}

	allStandard := true
	for _, o := range t.obs {
		if !standardObs[o.Name()] {
			allStandard = false
			break
		}
	}
	if allStandard {
		t.eigvals = pauliEigs(t.Wires().Len())
		return t.eigvals, nil
	}

	sorted := append([]Observable(nil), t.obs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return wireSortKey(sorted[i].Wires()) < wireSortKey(sorted[j].Wires())
	})

	// Runs of standard observables share one ±1 pattern; everything else
	// contributes its own spectrum.
	var pieces []*tensor.RawTensor
	for i := 0; i < len(sorted); {
		if standardObs[sorted[i].Name()] {
			j := i
			for j < len(sorted) && standardObs[sorted[j].Name()] {
				j++
			}
			pieces = append(pieces, pauliEigs(j-i))
			i = j
			continue
		}
		ev, err := Eigvals(sorted[i], b)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, ev)
		i++
	}

	out := pieces[0]
	for _, p := range pieces[1:] {
		if out.DType() != p.DType() {
			out = b.Cast(out, tensor.Complex128)
			p = b.Cast(p, tensor.Complex128)
		}
		out = kronVec(b, out, p)
	}
	t.eigvals = out
	return out, nil
}

// DiagonalizingGates concatenates the diagonalizing gates of the factors.
func (t *Tensor) DiagonalizingGates(b tensor.Backend) ([]Operator, error) {
	var gates []Operator
	for _, o := range t.obs {
		g, err := DiagonalizingGates(o, b)
		if err != nil {
			return nil, err
		}
		gates = append(gates, g...)
	}
	return gates, nil
}

// Matrix multiplies consecutive factors on identical wire sets and combines
// the resulting blocks by Kronecker product. Factors reusing wires across
// different blocks are not merged; when that makes the matrix outgrow the
// wire count a diagnostic goes through Warn and the raw product is
// returned.
func (t *Tensor) Matrix(b tensor.Backend) (*tensor.RawTensor, error) {
	if len(t.obs) == 0 {
		return nil, undefined(ErrMatrixUndefined, t)
	}
	type block struct {
		ws  wires.Wires
		mat *tensor.RawTensor
	}
	var blocks []block
	for _, o := range t.obs {
		m, err := Matrix(o, b)
		if err != nil {
			return nil, err
		}
		if n := len(blocks); n > 0 && blocks[n-1].ws.Equal(o.Wires()) {
			blocks[n-1].mat = b.MatMul(blocks[n-1].mat, m)
			continue
		}
		blocks = append(blocks, block{ws: o.Wires(), mat: m})
	}
	out := blocks[0].mat
	for _, blk := range blocks[1:] {
		out = b.Kron(out, blk.mat)
	}

	if dim := out.Shape()[0]; dim != 1<<uint(t.Wires().Len()) {
		if t.hasPartialOverlap() {
			warnf("tensor product %s has factors with partially overlapping wires; the matrix may be larger than intended", t.Name())
		} else {
			warnf("tensor product %s: matrix size %d is not compatible with its wire subspace size %d; wires appear in multiple factors",
				t.Name(), dim, 1<<uint(t.Wires().Len()))
		}
	}
	return out, nil
}

// hasPartialOverlap reports whether any two factors share some but not all
// of their wires. Fully overlapping factors multiply cleanly and are not
// reported.
func (t *Tensor) hasPartialOverlap() bool {
	for i := 0; i < len(t.obs); i++ {
		for j := i + 1; j < len(t.obs); j++ {
			wi, wj := t.obs[i].Wires(), t.obs[j].Wires()
			shared := wi.Shared(wj)
			if shared.Len() > 0 && (!shared.Equal(wi) || !shared.Equal(wj)) {
				return true
			}
		}
	}
	return false
}

// SparseMatrix returns the sparse COO matrix of the product over the
// requested wire order, the product's own wires when empty. Every factor
// must occupy a contiguous run of that order; a multi-wire factor fills its
// run with one block, and slots without a factor hold 2x2 identities.
func (t *Tensor) SparseMatrix(wireOrder ...wires.Wire) (*tensor.COO, error) {
	order := wires.Wires(wireOrder)
	if order.Len() == 0 {
		order = t.Wires()
	}
	slots := make([]*tensor.COO, order.Len())
	covered := make([]bool, order.Len())
	for _, o := range t.obs {
		ows := o.Wires()
		idx := -1
		for j, w := range ows {
			pos, ok := order.Index(w)
			if !ok {
				return nil, fmt.Errorf("%w: wire %v of %s is not in the requested order %s",
					ErrStructuralConstraint, w, o.Name(), order)
			}
			if j == 0 {
				idx = pos
			} else if pos != idx+j {
				return nil, fmt.Errorf("%w: can only compute the sparse representation of tensor products whose factors act on consecutive wires; got %s on wires %s",
					ErrStructuralConstraint, o.Name(), ows)
			}
		}
		hm, ok := o.(HasMatrix)
		if !ok {
			return nil, undefined(ErrMatrixUndefined, o)
		}
		m, err := hm.CanonicalMatrix()
		if err != nil {
			return nil, err
		}
		coo, err := tensor.FromDense(m)
		if err != nil {
			return nil, err
		}
		slots[idx] = coo
		for j := 1; j < ows.Len(); j++ {
			slots[idx+j] = nil
			covered[idx+j] = true
		}
	}
	var out *tensor.COO
	for i, s := range slots {
		if s == nil {
			if covered[i] {
				continue
			}
			s = tensor.SparseEye(2)
		}
		if out == nil {
			out = s
		} else {
			out = out.Kron(s)
		}
	}
	return out, nil
}

// Prune drops identity factors. With none left the result is an identity on
// the product's first wire, with one left that factor itself, otherwise a
// smaller product. The measurement return type carries over.
func (t *Tensor) Prune() Observable {
	non := t.nonIdentity()
	var pruned Observable
	switch len(non) {
	case 0:
		pruned = NewIdentity(t.Wires()[0])
	case 1:
		pruned = non[0]
	default:
		factors := make([]Operator, len(non))
		for i, o := range non {
			factors[i] = o
		}
		nt, err := NewTensor(factors...)
		if err != nil {
			panic(err) // factors are validated observables
		}
		pruned = nt
	}
	pruned.SetReturnType(t.returnType)
	return pruned
}

// nonIdentity returns the factors that are not the algebra unit.
func (t *Tensor) nonIdentity() []Observable {
	var non []Observable
	for _, o := range t.obs {
		if !isIdentity(o) {
			non = append(non, o)
		}
	}
	return non
}

// obsData is the canonical factor set: the non-identity factors keyed by
// name, wires and parameter bytes.
func (t *Tensor) obsData() map[string]struct{} {
	set := make(map[string]struct{}, len(t.obs))
	for _, o := range t.nonIdentity() {
		set[obsKey(o)] = struct{}{}
	}
	return set
}

// pauliEigs returns the spectrum of an n-wire product of single-qubit
// observables with ±1 eigenvalues: the n-fold Kronecker power of (1, -1).
func pauliEigs(n int) *tensor.RawTensor {
	data := make([]float64, 1<<uint(n))
	for i := range data {
		if bits.OnesCount(uint(i))%2 == 0 {
			data[i] = 1
		} else {
			data[i] = -1
		}
	}
	return tensor.Vector(data)
}

// wireSortKey orders factors by the string form of their wire labels.
func wireSortKey(ws wires.Wires) string {
	parts := make([]string, ws.Len())
	for i, w := range ws {
		parts[i] = fmt.Sprintf("%v", w)
	}
	return strings.Join(parts, "\x00")
}

// kronVec is the Kronecker product of two vectors.
func kronVec(b tensor.Backend, x, y *tensor.RawTensor) *tensor.RawTensor {
	xr := b.Reshape(x, tensor.Shape{1, x.NumElements()})
	yr := b.Reshape(y, tensor.Shape{1, y.NumElements()})
	k := b.Kron(xr, yr)
	return b.Reshape(k, tensor.Shape{k.NumElements()})
}

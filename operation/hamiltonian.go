// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Coefficients below this magnitude vanish during simplification.
const coeffTol = 1e-8

// Hamiltonian is a real linear combination of observables. It is the result
// type of the observable algebra (Add, Scale, Sub) and implements Observable
// itself, so combinations nest freely.
type Hamiltonian struct {
	coeffs     []float64
	obs        []Observable
	returnType ReturnType
	id         string
	hyper      map[string]any
}

var (
	_ Observable = (*Hamiltonian)(nil)
	_ HasTerms   = (*Hamiltonian)(nil)
)

// NewHamiltonian builds a linear combination of observables. The
// coefficient and observable slices must have equal, nonzero length.
// Hamiltonian operands are flattened: their terms join the new combination
// with coefficients multiplied through. The result is not simplified; call
// Simplify or use the algebra constructors.
func NewHamiltonian(coeffs []float64, observables []Observable) (*Hamiltonian, error) {
	if len(coeffs) != len(observables) {
		return nil, fmt.Errorf("%w: could not create Hamiltonian; got %d coefficients and %d observables",
			ErrInvalidConstruction, len(coeffs), len(observables))
	}
	if len(observables) == 0 {
		return nil, fmt.Errorf("%w: Hamiltonian needs at least one observable", ErrInvalidConstruction)
	}
	h := &Hamiltonian{
		coeffs: make([]float64, 0, len(coeffs)),
		obs:    make([]Observable, 0, len(observables)),
	}
	for i, o := range observables {
		if o == nil {
			return nil, fmt.Errorf("%w: Hamiltonian observables must not be nil", ErrInvalidConstruction)
		}
		if sub, ok := o.(*Hamiltonian); ok {
			for j := range sub.obs {
				h.coeffs = append(h.coeffs, coeffs[i]*sub.coeffs[j])
				h.obs = append(h.obs, sub.obs[j])
			}
			continue
		}
		h.coeffs = append(h.coeffs, coeffs[i])
		h.obs = append(h.obs, o)
	}
	return h, nil
}

// Name identifies the operator kind; the terms carry the structure.
func (h *Hamiltonian) Name() string {
	return "Hamiltonian"
}

// ID returns the optional user label.
func (h *Hamiltonian) ID() string {
	return h.id
}

// SetID assigns an optional user label.
func (h *Hamiltonian) SetID(id string) {
	h.id = id
}

// Wires returns the union of the term wires in term order.
func (h *Hamiltonian) Wires() wires.Wires {
	var u wires.Wires
	for _, o := range h.obs {
		u = u.Union(o.Wires())
	}
	return u
}

// Coeffs returns a copy of the term coefficients.
func (h *Hamiltonian) Coeffs() []float64 {
	return append([]float64(nil), h.coeffs...)
}

// Observables returns a copy of the term observables.
func (h *Hamiltonian) Observables() []Observable {
	return append([]Observable(nil), h.obs...)
}

// Data returns the concatenated parameter tensors of the terms. The
// coefficients are not parameters; they are part of the combination itself.
func (h *Hamiltonian) Data() []*tensor.RawTensor {
	var data []*tensor.RawTensor
	for _, o := range h.obs {
		data = append(data, o.Data()...)
	}
	return data
}

// Parameters returns copies of the concatenated term parameters.
func (h *Hamiltonian) Parameters() []*tensor.RawTensor {
	var params []*tensor.RawTensor
	for _, o := range h.obs {
		params = append(params, o.Parameters()...)
	}
	return params
}

// NumParams returns the total parameter count over all terms.
func (h *Hamiltonian) NumParams() int {
	n := 0
	for _, o := range h.obs {
		n += o.NumParams()
	}
	return n
}

// Hyperparameters returns the mutable hyperparameter map.
func (h *Hamiltonian) Hyperparameters() map[string]any {
	if h.hyper == nil {
		h.hyper = make(map[string]any)
	}
	return h.hyper
}

// Hash folds the coefficients with the term hashes, so combinations
// differing only in coefficients hash apart.
func (h *Hamiltonian) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte("Hamiltonian"))
	for i, o := range h.obs {
		fmt.Fprintf(hash, "|%s:%x", strconv.FormatFloat(h.coeffs[i], 'g', -1, 64), o.Hash())
	}
	return hash.Sum64()
}

// Label renders the conventional script H used in circuit drawings.
func (h *Hamiltonian) Label(decimals int, baseLabel string) string {
	if baseLabel != "" {
		return baseLabel
	}
	return "𝓗"
}

// ReturnType reports the measurement this observable is attached to.
func (h *Hamiltonian) ReturnType() ReturnType {
	return h.returnType
}

// SetReturnType attaches the observable to a measurement kind.
func (h *Hamiltonian) SetReturnType(rt ReturnType) {
	h.returnType = rt
}

// Terms returns the coefficients and observables of the combination.
func (h *Hamiltonian) Terms() ([]float64, []Operator, error) {
	ops := make([]Operator, len(h.obs))
	for i, o := range h.obs {
		ops[i] = o
	}
	return h.Coeffs(), ops, nil
}

// Matrix returns the dense matrix of the combination over the union of the
// term wires; every term is expanded into that register before summing.
func (h *Hamiltonian) Matrix(b tensor.Backend) (*tensor.RawTensor, error) {
	if len(h.obs) == 0 {
		return nil, undefined(ErrMatrixUndefined, h)
	}
	ws := h.Wires()
	var sum *tensor.RawTensor
	for i, o := range h.obs {
		m, err := Matrix(o, b, ws.Labels()...)
		if err != nil {
			return nil, err
		}
		m = b.MulScalar(m, h.coeffs[i])
		if sum == nil {
			sum = m
		} else {
			sum = b.Add(sum, m)
		}
	}
	return sum, nil
}

// Simplify merges terms that compare equal, sums their coefficients and
// drops terms whose coefficient vanishes. Tensor product terms are pruned
// of identity factors first.
func (h *Hamiltonian) Simplify() {
	coeffs := make([]float64, 0, len(h.obs))
	obs := make([]Observable, 0, len(h.obs))
	keys := make([]map[string]struct{}, 0, len(h.obs))
	for i, o := range h.obs {
		term := o
		if t, ok := term.(*Tensor); ok {
			term = t.Prune()
		}
		data := observableData(term)
		found := -1
		for j := range obs {
			if setEqual(keys[j], data) {
				found = j
				break
			}
		}
		if found >= 0 {
			coeffs[found] += h.coeffs[i]
			if math.Abs(coeffs[found]) <= coeffTol {
				coeffs = append(coeffs[:found], coeffs[found+1:]...)
				obs = append(obs[:found], obs[found+1:]...)
				keys = append(keys[:found], keys[found+1:]...)
			}
			continue
		}
		coeffs = append(coeffs, h.coeffs[i])
		obs = append(obs, term)
		keys = append(keys, data)
	}
	h.coeffs = coeffs
	h.obs = obs
}

// termData canonically encodes the terms as a set of (coefficient, factor
// set) pairs for comparison.
func (h *Hamiltonian) termData() map[string]struct{} {
	set := make(map[string]struct{}, len(h.obs))
	for i, o := range h.obs {
		set[termKey(h.coeffs[i], observableData(o))] = struct{}{}
	}
	return set
}

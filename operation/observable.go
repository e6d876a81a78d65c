// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// ReturnType marks the measurement an observable terminates a circuit with.
// The zero value means the observable is not attached to a measurement.
type ReturnType string

// Measurement return types.
const (
	Expectation ReturnType = "expval"
	Variance    ReturnType = "var"
	Sample      ReturnType = "sample"
	Probability ReturnType = "probs"
	State       ReturnType = "state"
)

// Observable is an Operator that can be measured at the end of a circuit.
type Observable interface {
	Operator

	// ReturnType reports the measurement this observable is attached to.
	ReturnType() ReturnType
	// SetReturnType attaches the observable to a measurement kind.
	SetReturnType(rt ReturnType)
}

// ObservableBase carries the state shared by every Observable. Concrete
// observables embed it and initialize through InitObservable.
type ObservableBase struct {
	Base
	returnType ReturnType
}

var _ Observable = (*ObservableBase)(nil)

// InitObservable validates and stores an observable's construction
// arguments.
func InitObservable(o *ObservableBase, name string, params []*tensor.RawTensor, ws wires.Wires, numParams, numWires int) error {
	return Init(&o.Base, name, params, ws, numParams, numWires)
}

// ReturnType reports the measurement this observable is attached to.
func (o *ObservableBase) ReturnType() ReturnType {
	return o.returnType
}

// SetReturnType attaches the observable to a measurement kind.
func (o *ObservableBase) SetReturnType(rt ReturnType) {
	o.returnType = rt
}

// Add returns the sum a + b as a simplified Hamiltonian. Hamiltonian
// operands contribute their terms directly.
func Add(a, b Observable) (*Hamiltonian, error) {
	h, err := NewHamiltonian([]float64{1, 1}, []Observable{a, b})
	if err != nil {
		return nil, err
	}
	h.Simplify()
	return h, nil
}

// Scale returns c * a as a simplified Hamiltonian.
func Scale(c float64, a Observable) (*Hamiltonian, error) {
	h, err := NewHamiltonian([]float64{c}, []Observable{a})
	if err != nil {
		return nil, err
	}
	h.Simplify()
	return h, nil
}

// Sub returns the difference a - b as a simplified Hamiltonian.
func Sub(a, b Observable) (*Hamiltonian, error) {
	nb, err := Scale(-1, b)
	if err != nil {
		return nil, err
	}
	return Add(a, nb)
}

// Compare reports whether two operators represent the same observable, up
// to reordering of factors and identity padding. Hamiltonians compare by
// their simplified (coefficient, term) sets. The check is structural and
// can report products of repeated factors on one wire as equal to a single
// factor; it never reports different sets as equal.
func Compare(a, b Operator) (bool, error) {
	ha, aIsH := a.(*Hamiltonian)
	hb, bIsH := b.(*Hamiltonian)
	switch {
	case aIsH && bIsH:
		ha.Simplify()
		hb.Simplify()
		return setEqual(ha.termData(), hb.termData()), nil
	case aIsH:
		db, err := obsData(b)
		if err != nil {
			return false, err
		}
		ha.Simplify()
		return setEqual(ha.termData(), singleTerm(1, db)), nil
	case bIsH:
		da, err := obsData(a)
		if err != nil {
			return false, err
		}
		hb.Simplify()
		return setEqual(hb.termData(), singleTerm(1, da)), nil
	default:
		da, err := obsData(a)
		if err != nil {
			return false, err
		}
		db, err := obsData(b)
		if err != nil {
			return false, err
		}
		return setEqual(da, db), nil
	}
}

// obsData canonically encodes an operator for comparison. Non-observables
// cannot be compared.
func obsData(op Operator) (map[string]struct{}, error) {
	o, ok := op.(Observable)
	if !ok {
		return nil, fmt.Errorf("%w: can only compare observables, tensor products and Hamiltonians; got %s",
			ErrTypeMismatch, op.Name())
	}
	return observableData(o), nil
}

// observableData is the canonical factor set of an observable: a lone
// observable counts as a one-factor product, identity factors drop out.
func observableData(o Observable) map[string]struct{} {
	if t, ok := o.(*Tensor); ok {
		return t.obsData()
	}
	set := make(map[string]struct{}, 1)
	if !isIdentity(o) {
		set[obsKey(o)] = struct{}{}
	}
	return set
}

// obsKey encodes one factor as its name, wire labels and raw parameter
// bytes.
func obsKey(o Operator) string {
	var sb strings.Builder
	sb.WriteString(o.Name())
	for _, w := range o.Wires() {
		fmt.Fprintf(&sb, "|%v", w)
	}
	sb.WriteByte('#')
	for _, p := range o.Data() {
		sb.Write(p.Data())
		sb.WriteByte(';')
	}
	return sb.String()
}

// termKey encodes one Hamiltonian term as its coefficient with the sorted
// factor keys.
func termKey(c float64, factors map[string]struct{}) string {
	keys := make([]string, 0, len(factors))
	for k := range factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strconv.FormatFloat(c, 'g', -1, 64) + "\x1f" + strings.Join(keys, "\x1e")
}

func singleTerm(c float64, factors map[string]struct{}) map[string]struct{} {
	return map[string]struct{}{termKey(c, factors): {}}
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

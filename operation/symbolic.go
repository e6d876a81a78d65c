// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"hash/fnv"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Symbolic is the embeddable state of operators that modify one wrapped
// base operator. Wires, data and parameters forward to the base, so the
// wrapper never copies operator state. Delegation is a single level deep:
// wrapping a wrapper forwards to it, not to its base.
type Symbolic struct {
	base  Operator
	id    string
	hyper map[string]any
}

// InitSymbolic stores the wrapped operator.
func InitSymbolic(s *Symbolic, base Operator) error {
	if base == nil {
		return fmt.Errorf("%w: symbolic operator needs a base operator", ErrInvalidConstruction)
	}
	s.base = base
	return nil
}

// Base returns the wrapped operator.
func (s *Symbolic) Base() Operator {
	return s.base
}

// Name identifies the wrapper around the base name.
func (s *Symbolic) Name() string {
	return "Symbolic(" + s.base.Name() + ")"
}

// ID returns the optional user label.
func (s *Symbolic) ID() string {
	return s.id
}

// SetID assigns an optional user label.
func (s *Symbolic) SetID(id string) {
	s.id = id
}

// Wires forwards to the base operator.
func (s *Symbolic) Wires() wires.Wires {
	return s.base.Wires()
}

// Data forwards to the base operator; mutations are shared with it.
func (s *Symbolic) Data() []*tensor.RawTensor {
	return s.base.Data()
}

// Parameters forwards to the base operator.
func (s *Symbolic) Parameters() []*tensor.RawTensor {
	return s.base.Parameters()
}

// NumParams forwards to the base operator.
func (s *Symbolic) NumParams() int {
	return s.base.NumParams()
}

// Hyperparameters returns the wrapper's map; it records the base under
// "base" so inspection tooling can follow the chain.
func (s *Symbolic) Hyperparameters() map[string]any {
	if s.hyper == nil {
		s.hyper = map[string]any{"base": s.base}
	}
	return s.hyper
}

// Hash mixes the wrapper name with the base hash.
func (s *Symbolic) Hash() uint64 {
	return s.hashWrapper("Symbolic")
}

func (s *Symbolic) hashWrapper(kind string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(kind))
	fmt.Fprintf(h, "|%x", s.base.Hash())
	return h.Sum64()
}

// Label forwards to the base operator.
func (s *Symbolic) Label(decimals int, baseLabel string) string {
	return s.base.Label(decimals, baseLabel)
}

// Adjointed wraps an operator as its adjoint without modifying it. The
// matrix is the conjugate transpose of the base matrix and the adjoint of
// the wrapper is the base itself.
type Adjointed struct {
	Symbolic
}

var (
	_ Operator   = (*Adjointed)(nil)
	_ HasAdjoint = (*Adjointed)(nil)
)

// NewAdjointed wraps base as its adjoint.
func NewAdjointed(base Operator) (*Adjointed, error) {
	a := &Adjointed{}
	if err := InitSymbolic(&a.Symbolic, base); err != nil {
		return nil, err
	}
	return a, nil
}

// Name identifies the wrapper around the base name.
func (a *Adjointed) Name() string {
	return "Adjoint(" + a.Base().Name() + ")"
}

// Hash mixes the wrapper name with the base hash, so an operator and its
// adjoint hash apart.
func (a *Adjointed) Hash() uint64 {
	return a.hashWrapper("Adjoint")
}

// Label marks the base label with the adjoint dagger.
func (a *Adjointed) Label(decimals int, baseLabel string) string {
	return a.Base().Label(decimals, baseLabel) + "†"
}

// Adjoint undoes the wrapping and returns the base operator.
func (a *Adjointed) Adjoint() (Operator, error) {
	return a.Base(), nil
}

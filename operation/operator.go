// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"hash"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// Wire-count sentinels for operator declarations.
const (
	// AnyWires marks an operator that acts on a variable number of wires.
	AnyWires = -1
	// AllWires marks an operator that acts on the full register.
	AllWires = 0
)

// Operator is the minimal behavior every quantum operator shares: a name,
// the wires it acts on, and its trainable parameter data. Representations
// (matrices, eigenvalues, decompositions) are optional capabilities queried
// through the package-level dispatchers.
type Operator interface {
	// Name returns the display name; inverted operations report "{base}.inv".
	Name() string
	// ID returns the optional user-assigned instance label.
	ID() string
	// Wires returns the subsystem labels the operator acts on.
	Wires() wires.Wires
	// Data exposes the stored parameter values. Callers share the owner's
	// view; use Parameters for safe copies.
	Data() []*tensor.RawTensor
	// Parameters returns deep copies of the parameter values.
	Parameters() []*tensor.RawTensor
	// NumParams returns the number of stored parameters.
	NumParams() int
	// Hyperparameters returns the non-trainable configuration map.
	Hyperparameters() map[string]any
	// Hash returns a value identifying (name, wires, canonical parameters).
	Hash() uint64
	// Label renders a short display string. decimals < 0 hides parameter
	// values; an empty baseLabel falls back to the operator name.
	Label(decimals int, baseLabel string) string
}

// Base carries the state shared by every operator and provides the default
// Operator behavior. Concrete operators embed Base (or GateBase /
// ObservableBase) and initialize it through Init.
type Base struct {
	name  string
	id    string
	wires wires.Wires
	data  []*tensor.RawTensor
	hyper map[string]any
}

var _ Operator = (*Base)(nil)

// Init validates and stores an operator's construction arguments. numParams
// is the exact number of parameters expected; numWires may be a positive
// count or one of the AnyWires / AllWires sentinels.
func Init(b *Base, name string, params []*tensor.RawTensor, ws wires.Wires, numParams, numWires int) error {
	if len(ws) == 0 {
		return fmt.Errorf("%w: must specify the wires that %s acts on", ErrInvalidConstruction, name)
	}
	if err := ws.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConstruction, err)
	}
	if len(params) != numParams {
		return fmt.Errorf("%w: %s: wrong number of parameters. %d parameters passed, %d expected.",
			ErrInvalidConstruction, name, len(params), numParams)
	}
	if numWires != AnyWires && numWires != AllWires && len(ws) != numWires {
		return fmt.Errorf("%w: %s: wrong number of wires. %d wires given, %d expected.",
			ErrInvalidConstruction, name, len(ws), numWires)
	}
	b.name = name
	b.wires = append(wires.Wires{}, ws...)
	b.data = append([]*tensor.RawTensor{}, params...)
	return nil
}

// Name returns the operator name.
func (b *Base) Name() string {
	return b.name
}

// ID returns the user-assigned instance label, empty when unset.
func (b *Base) ID() string {
	return b.id
}

// SetID assigns an instance label, used to tag operators on recording tapes.
func (b *Base) SetID(id string) {
	b.id = id
}

// Wires returns the subsystem labels the operator acts on.
func (b *Base) Wires() wires.Wires {
	return b.wires
}

// Data exposes the stored parameter values.
func (b *Base) Data() []*tensor.RawTensor {
	return b.data
}

// Parameters returns deep copies of the parameter values; mutating the
// result never affects the operator.
func (b *Base) Parameters() []*tensor.RawTensor {
	params := make([]*tensor.RawTensor, len(b.data))
	for i, p := range b.data {
		params[i] = p.Copy()
	}
	return params
}

// NumParams returns the number of stored parameters.
func (b *Base) NumParams() int {
	return len(b.data)
}

// Hyperparameters returns the non-trainable configuration map, creating it
// on first use.
func (b *Base) Hyperparameters() map[string]any {
	if b.hyper == nil {
		b.hyper = map[string]any{}
	}
	return b.hyper
}

// paramPeriod gives the canonical period of rotation-family parameters for
// hashing: angles equal mod the period hash equal.
var paramPeriod = map[string]float64{
	"RX":         2 * math.Pi,
	"RY":         2 * math.Pi,
	"RZ":         2 * math.Pi,
	"PhaseShift": 2 * math.Pi,
	"Rot":        2 * math.Pi,
	"U2":         2 * math.Pi,
	"CRX":        4 * math.Pi,
	"CRY":        4 * math.Pi,
	"CRZ":        4 * math.Pi,
	"CRot":       4 * math.Pi,
}

// Hash returns an FNV-1a digest of (name, wire labels, canonical parameter
// string). Rotation angles are reduced modulo their period and rounded to
// ten decimal places first, so RX(theta) and RX(theta+2pi) collide.
func (b *Base) Hash() uint64 {
	return b.hashWithName(b.name)
}

// hashWithName lets wrappers (inverted gates) inject their display name
// while canonicalization still keys off the base name.
func (b *Base) hashWithName(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	for _, l := range b.wires {
		fmt.Fprintf(h, "|%v", l)
	}
	h.Write([]byte("#"))
	period := paramPeriod[b.name]
	for _, p := range b.data {
		writeParamHash(h, p, period)
	}
	return h.Sum64()
}

func writeParamHash(h hash.Hash, p *tensor.RawTensor, period float64) {
	if v, ok := realScalar(p); ok && period > 0 {
		v = math.Mod(v, period)
		if v < 0 {
			v += period
		}
		fmt.Fprintf(h, "|%s", strconv.FormatFloat(v, 'f', 10, 64))
		return
	}
	fmt.Fprintf(h, "|%v:%s:", p.Shape(), p.DType())
	h.Write(p.Data())
}

// Label renders a short display string such as "RX\n(1.23)". decimals < 0
// hides parameter values; non-scalar parameters (matrices) always render the
// bare label.
func (b *Base) Label(decimals int, baseLabel string) string {
	label := baseLabel
	if label == "" {
		label = b.name
	}
	if len(b.data) == 0 || decimals < 0 {
		return label
	}
	vals := make([]string, 0, len(b.data))
	for _, p := range b.data {
		v, ok := realScalar(p)
		if !ok {
			return label
		}
		vals = append(vals, strconv.FormatFloat(v, 'f', decimals, 64))
	}
	return label + "\n(" + strings.Join(vals, ",\n") + ")"
}

// realScalar extracts the real value of a 0-dimensional tensor.
func realScalar(t *tensor.RawTensor) (float64, bool) {
	if t == nil || len(t.Shape()) != 0 {
		return 0, false
	}
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0]), true
	case tensor.Float64:
		return t.AsFloat64()[0], true
	case tensor.Complex64:
		return float64(real(t.AsComplex64()[0])), true
	case tensor.Complex128:
		return real(t.AsComplex128()[0]), true
	}
	return 0, false
}

// IsTrainable reports whether any parameter of the operator is marked for
// gradient tracking.
func IsTrainable(op Operator) bool {
	for _, p := range op.Data() {
		if p.RequiresGrad() {
			return true
		}
	}
	return false
}

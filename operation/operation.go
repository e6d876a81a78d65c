// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"math"

	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// GradMethod selects how an operation's parameters are differentiated.
type GradMethod string

const (
	// GradAnalytic marks parameters differentiable with the parameter-shift
	// rule.
	GradAnalytic GradMethod = "A"
	// GradFinite marks parameters that fall back to finite differences.
	GradFinite GradMethod = "F"
	// GradNone marks operations with no differentiable parameters.
	GradNone GradMethod = ""
)

// ShiftTerm is one term of a parameter-shift rule. The derivative of an
// expectation is the sum over terms of Coeff times the expectation evaluated
// at Multiplier*p + Shift.
type ShiftTerm struct {
	Coeff      float64
	Multiplier float64
	Shift      float64
}

// GradRecipe holds one shift rule per parameter; a nil entry selects the
// default two-term rule.
type GradRecipe [][]ShiftTerm

// DefaultShiftRule returns the standard two-term parameter-shift rule
// [c at +pi/2, -c at -pi/2] with c = 1/2.
func DefaultShiftRule() []ShiftTerm {
	s := math.Pi / 2
	c := 0.5 / math.Sin(s)
	return []ShiftTerm{
		{Coeff: c, Multiplier: 1, Shift: s},
		{Coeff: -c, Multiplier: 1, Shift: -s},
	}
}

// Operation is an Operator that appears in a circuit: it can be inverted in
// place and carries gradient metadata for differentiation.
type Operation interface {
	Operator

	// BaseName returns the name without the ".inv" suffix.
	BaseName() string
	// Inverse reports whether the inversion flag is set.
	Inverse() bool
	// SetInverse sets the inversion flag.
	SetInverse(inverse bool)
	// Inv toggles the inversion flag.
	Inv()

	// GradMethod returns the differentiation method for the parameters.
	GradMethod() GradMethod
	// GradRecipe returns the declared shift rules, nil when defaulted.
	GradRecipe() GradRecipe
	// ParameterShift returns the shift rule for one parameter, falling back
	// to the default rule when none was declared.
	ParameterShift(idx int) []ShiftTerm

	// Basis returns the rotation axis tag ("X", "Y" or "Z") this operation
	// is diagonal in, or the empty string.
	Basis() string
}

// GateBase carries the state shared by every Operation: the Base operator
// state plus the inversion flag and gradient metadata. Concrete gates embed
// GateBase and initialize it through InitGate.
type GateBase struct {
	Base
	inverse    bool
	gradMethod GradMethod
	recipe     GradRecipe
	basis      string
}

var _ Operation = (*GateBase)(nil)

// InitGate validates and stores a gate's construction arguments. The
// gradient method defaults to finite differences for parametrized gates and
// to none for parameter-free gates; constructors override with
// SetGradMethod.
func InitGate(g *GateBase, name string, params []*tensor.RawTensor, ws wires.Wires, numParams, numWires int) error {
	if err := Init(&g.Base, name, params, ws, numParams, numWires); err != nil {
		return err
	}
	if len(params) == 0 {
		g.gradMethod = GradNone
	} else {
		g.gradMethod = GradFinite
	}
	return nil
}

// Name returns the display name, "{base}.inv" while the inversion flag is
// set.
func (g *GateBase) Name() string {
	if g.inverse {
		return g.Base.Name() + ".inv"
	}
	return g.Base.Name()
}

// BaseName returns the name without the inversion suffix.
func (g *GateBase) BaseName() string {
	return g.Base.Name()
}

// Inverse reports whether the inversion flag is set.
func (g *GateBase) Inverse() bool {
	return g.inverse
}

// SetInverse sets the inversion flag.
func (g *GateBase) SetInverse(inverse bool) {
	g.inverse = inverse
}

// Inv toggles the inversion flag, so double inversion restores the gate.
func (g *GateBase) Inv() {
	g.inverse = !g.inverse
}

// Hash distinguishes a gate from its inverse.
func (g *GateBase) Hash() uint64 {
	return g.hashWithName(g.Name())
}

// Label renders the gate label, appending the inverse marker while the
// inversion flag is set.
func (g *GateBase) Label(decimals int, baseLabel string) string {
	label := g.Base.Label(decimals, baseLabel)
	if g.inverse {
		label += "⁻¹"
	}
	return label
}

// GradMethod returns the differentiation method.
func (g *GateBase) GradMethod() GradMethod {
	return g.gradMethod
}

// SetGradMethod overrides the differentiation method.
func (g *GateBase) SetGradMethod(m GradMethod) {
	g.gradMethod = m
}

// GradRecipe returns the declared shift rules, nil when defaulted.
func (g *GateBase) GradRecipe() GradRecipe {
	return g.recipe
}

// SetGradRecipe declares per-parameter shift rules. Recipes are only valid
// on analytically differentiable gates and must cover every parameter.
func (g *GateBase) SetGradRecipe(r GradRecipe) error {
	if r == nil {
		g.recipe = nil
		return nil
	}
	if g.gradMethod != GradAnalytic {
		return fmt.Errorf("%w: %s: gradient recipes require the analytic differentiation method",
			ErrInvalidConstruction, g.BaseName())
	}
	if len(r) != g.NumParams() {
		return fmt.Errorf("%w: %s: gradient recipe must have one entry for each parameter",
			ErrInvalidConstruction, g.BaseName())
	}
	g.recipe = r
	return nil
}

// ParameterShift returns the shift rule for the parameter at idx, falling
// back to the default two-term rule when none was declared.
func (g *GateBase) ParameterShift(idx int) []ShiftTerm {
	if idx < 0 || idx >= g.NumParams() {
		panic(fmt.Sprintf("parameter index %d out of range for %s with %d parameters",
			idx, g.BaseName(), g.NumParams()))
	}
	if idx < len(g.recipe) && g.recipe[idx] != nil {
		return g.recipe[idx]
	}
	return DefaultShiftRule()
}

// Basis returns the rotation axis tag, empty when undeclared.
func (g *GateBase) Basis() string {
	return g.basis
}

// SetBasis declares the rotation axis this gate is diagonal in.
func (g *GateBase) SetBasis(basis string) {
	g.basis = basis
}

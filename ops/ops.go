// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// observableGate is the shared base of self-adjoint gates that double as
// observables, the Paulis and Hadamard. It layers the measurement return
// type onto the gate state.
type observableGate struct {
	operation.GateBase
	returnType operation.ReturnType
}

// ReturnType reports the measurement this observable is attached to.
func (g *observableGate) ReturnType() operation.ReturnType {
	return g.returnType
}

// SetReturnType attaches the observable to a measurement kind.
func (g *observableGate) SetReturnType(rt operation.ReturnType) {
	g.returnType = rt
}

// mustInitGate initializes a gate whose fixed arguments cannot fail
// validation: a single wire and the parameter count the constructor itself
// supplies.
func mustInitGate(g *operation.GateBase, name string, params []*tensor.RawTensor, ws wires.Wires, numParams, numWires int) {
	if err := operation.InitGate(g, name, params, ws, numParams, numWires); err != nil {
		panic(err)
	}
}

// mustInitObservable is the observable counterpart of mustInitGate.
func mustInitObservable(o *operation.ObservableBase, name string, params []*tensor.RawTensor, ws wires.Wires, numParams, numWires int) {
	if err := operation.InitObservable(o, name, params, ws, numParams, numWires); err != nil {
		panic(err)
	}
}

// angle reads the idx-th scalar parameter of an operator.
func angle(op operation.Operator, idx int) float64 {
	return op.Data()[idx].AsFloat64()[0]
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package queuing provides an explicit append-ordered recorder for
// operators.
//
// Construction of an operator never records it anywhere; the caller owns a
// Tape and appends operators to it. This keeps recording a visible data
// flow instead of an ambient side effect, and it means two tapes never
// compete for the same construction.
package queuing

import (
	"github.com/dime10/pennylane/operation"
)

// Info holds the annotations attached to a recorded operator, such as
// ownership links between a tensor observable and its factors.
type Info map[string]any

// Tape records operators in append order together with per-operator
// annotations. The zero value is not usable; create tapes with NewTape.
type Tape struct {
	ops       []operation.Operator
	info      map[operation.Operator]Info
	trainable []int
	recording bool
}

// NewTape creates an empty tape that is actively recording.
func NewTape() *Tape {
	return &Tape{
		info:      make(map[operation.Operator]Info),
		recording: true,
	}
}

// IsRecording reports whether Append currently records.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// StopRecording suspends the tape; Append becomes a no-op.
func (t *Tape) StopRecording() {
	t.recording = false
}

// StartRecording resumes a suspended tape.
func (t *Tape) StartRecording() {
	t.recording = true
}

// Append records an operator at the end of the tape. Appending a tensor
// observable annotates the ownership relation: factors already on the tape
// get an "owner" entry pointing at the composite, and the composite records
// the factors under "owns". A suspended tape ignores the call.
func (t *Tape) Append(op operation.Operator) {
	if !t.recording {
		return
	}
	if tn, ok := op.(*operation.Tensor); ok {
		owned := tn.Observables()
		for _, o := range owned {
			t.UpdateInfo(o, "owner", tn)
		}
		t.ops = append(t.ops, tn)
		t.info[tn] = Info{"owns": owned}
		return
	}
	t.ops = append(t.ops, op)
	if _, ok := t.info[op]; !ok {
		t.info[op] = Info{}
	}
}

// Remove deletes the first occurrence of op and its annotations. Operators
// not on the tape are ignored.
func (t *Tape) Remove(op operation.Operator) {
	for i, o := range t.ops {
		if o == op {
			t.ops = append(t.ops[:i], t.ops[i+1:]...)
			break
		}
	}
	delete(t.info, op)
}

// UpdateInfo sets an annotation field on a recorded operator. Operators not
// on the tape are left untouched.
func (t *Tape) UpdateInfo(op operation.Operator, key string, value any) {
	if in, ok := t.info[op]; ok {
		in[key] = value
	}
}

// GetInfo returns the annotations of a recorded operator.
func (t *Tape) GetInfo(op operation.Operator) (Info, bool) {
	in, ok := t.info[op]
	return in, ok
}

// Operations returns the recorded operators in append order.
func (t *Tape) Operations() []operation.Operator {
	return append([]operation.Operator(nil), t.ops...)
}

// Len returns the number of recorded operators.
func (t *Tape) Len() int {
	return len(t.ops)
}

// Clear drops all recorded operators and annotations, keeping the
// recording state.
func (t *Tape) Clear() {
	t.ops = nil
	t.info = make(map[operation.Operator]Info)
	t.trainable = nil
}

// TrainableParams returns the flat indices of the trainable parameters,
// counting the parameters of the recorded operators in append order. Unless
// overridden with SetTrainableParams, every parameter is trainable.
func (t *Tape) TrainableParams() []int {
	if t.trainable != nil {
		return append([]int(nil), t.trainable...)
	}
	idx := []int{}
	n := 0
	for _, op := range t.ops {
		for range op.Data() {
			idx = append(idx, n)
			n++
		}
	}
	return idx
}

// SetTrainableParams overrides the trainable parameter indices. An empty
// slice marks every parameter non-trainable; nil restores the default.
func (t *Tape) SetTrainableParams(idx []int) {
	if idx == nil {
		t.trainable = nil
		return
	}
	t.trainable = append([]int{}, idx...)
}

// Expand returns the sub-circuit implementing op: its decomposition
// recorded onto a fresh tape. With the inversion flag set, the order is
// reversed and every entry inverted, so the net effect is the adjoint of
// the decomposition. When op carries no trainable parameters the tape
// reports zero trainable parameters. Operators without a decomposition
// propagate operation.ErrDecompositionUndefined.
func Expand(op operation.Operator) (*Tape, error) {
	decomp, err := operation.Decomposition(op)
	if err != nil {
		return nil, err
	}
	tape := NewTape()
	if g, ok := op.(operation.Operation); ok && g.Inverse() {
		for i := len(decomp) - 1; i >= 0; i-- {
			inv, err := invert(decomp[i])
			if err != nil {
				return nil, err
			}
			tape.Append(inv)
		}
	} else {
		for _, d := range decomp {
			tape.Append(d)
		}
	}
	if !operation.IsTrainable(op) {
		tape.SetTrainableParams([]int{})
	}
	return tape, nil
}

// invert flips the inversion flag of a freshly decomposed operation in
// place; bare operators are wrapped instead.
func invert(op operation.Operator) (operation.Operator, error) {
	if g, ok := op.(operation.Operation); ok {
		g.SetInverse(!g.Inverse())
		return g, nil
	}
	return operation.NewAdjointed(op)
}

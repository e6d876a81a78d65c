// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"fmt"

	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/tensor"
	"github.com/dime10/pennylane/wires"
)

// AngleEmbedding encodes a feature vector as per-wire rotation angles about
// a fixed axis. It has no matrix of its own; devices consume its
// decomposition.
type AngleEmbedding struct {
	operation.GateBase
	rotation string
}

var (
	_ operation.Operation        = (*AngleEmbedding)(nil)
	_ operation.HasDecomposition = (*AngleEmbedding)(nil)
)

// NewAngleEmbedding creates an embedding of features into rotations about
// the given axis ("X", "Y" or "Z"). The feature vector may be shorter than
// the wire list; trailing wires are left untouched.
func NewAngleEmbedding(features []float64, rotation string, ws ...wires.Wire) (*AngleEmbedding, error) {
	switch rotation {
	case "X", "Y", "Z":
	default:
		return nil, fmt.Errorf("%w: AngleEmbedding: rotation option %q not recognized",
			operation.ErrInvalidConstruction, rotation)
	}
	if len(features) > len(ws) {
		return nil, fmt.Errorf("%w: AngleEmbedding: features must be of length %d or less; got length %d",
			operation.ErrInvalidConstruction, len(ws), len(features))
	}
	param, err := tensor.FromFloat64(features, tensor.Shape{len(features)})
	if err != nil {
		return nil, err
	}
	e := &AngleEmbedding{rotation: rotation}
	if err := operation.InitGate(&e.GateBase, "AngleEmbedding", []*tensor.RawTensor{param}, ws, 1, operation.AnyWires); err != nil {
		return nil, err
	}
	e.SetGradMethod(operation.GradNone)
	e.Hyperparameters()["rotation"] = rotation
	return e, nil
}

// Rotation returns the axis the features are encoded into.
func (e *AngleEmbedding) Rotation() string {
	return e.rotation
}

// Decomposition returns one rotation per feature, in wire order.
func (e *AngleEmbedding) Decomposition() ([]operation.Operator, error) {
	feats := e.Data()[0].AsFloat64()
	ws := e.Wires()
	decomp := make([]operation.Operator, len(feats))
	for i, f := range feats {
		switch e.rotation {
		case "X":
			decomp[i] = NewRX(f, ws[i])
		case "Y":
			decomp[i] = NewRY(f, ws[i])
		default:
			decomp[i] = NewRZ(f, ws[i])
		}
	}
	return decomp, nil
}

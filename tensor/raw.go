// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/dime10/pennylane/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat64(), AsComplex128(), etc.
//   - Copy-on-write semantics via Clone()
//   - A requiresGrad flag marking trainable parameters
//   - Reference counting for efficient memory management
//
// Operator parameters, canonical matrices and eigenvalue vectors are all
// RawTensor values.
//
// Example:
//
//	theta := tensor.Scalar(0.5).SetRequiresGrad(true)
//	copy := theta.Copy() // deep copy, still marked trainable
type RawTensor = tensor.RawTensor

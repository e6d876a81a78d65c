// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/dime10/pennylane/operation"
	"github.com/dime10/pennylane/wires"
)

// Identity lives in the operation package, where the observable algebra
// needs it as its unit; the alias keeps the gate library surface complete.
type Identity = operation.Identity

// NewIdentity creates the identity on one wire.
func NewIdentity(w wires.Wire) *Identity {
	return operation.NewIdentity(w)
}

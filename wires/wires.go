// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wires provides ordered, duplicate-free subsystem labels.
//
// A wire label can be any comparable Go value: ints, strings, or custom
// comparable structs. Operators address the subsystems they act on through
// Wires values, and register-level algorithms (matrix expansion, Heisenberg
// transformations) map operator wires into a global wire order.
package wires

import (
	"fmt"
)

// Wire is a single subsystem label. Labels must be comparable; equality is
// Go equality.
type Wire = any

// Wires is an ordered sequence of unique wire labels.
//
// The zero value is an empty wire set. Construct validated values with New;
// a Wires literal is possible but skips duplicate checking, mirroring how
// tensor.Shape literals skip Validate.
type Wires []Wire

// New creates a Wires value, failing when labels repeat.
func New(labels ...Wire) (Wires, error) {
	w := Wires(labels)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate reports an error when the labels are not unique.
func (w Wires) Validate() error {
	seen := make(map[Wire]struct{}, len(w))
	for _, l := range w {
		if _, ok := seen[l]; ok {
			return fmt.Errorf("wires must be unique; got %v", []Wire(w))
		}
		seen[l] = struct{}{}
	}
	return nil
}

// Labels returns a copy of the labels.
func (w Wires) Labels() []Wire {
	return append([]Wire{}, w...)
}

// Len returns the number of wires.
func (w Wires) Len() int {
	return len(w)
}

// Contains reports whether the label is present.
func (w Wires) Contains(label Wire) bool {
	for _, l := range w {
		if l == label {
			return true
		}
	}
	return false
}

// ContainsWires reports whether every label of other is present.
func (w Wires) ContainsWires(other Wires) bool {
	for _, l := range other {
		if !w.Contains(l) {
			return false
		}
	}
	return true
}

// Index returns the position of a label, or false when absent.
func (w Wires) Index(label Wire) (int, bool) {
	for i, l := range w {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// Indices maps every label of other to its position in w.
func (w Wires) Indices(other Wires) ([]int, error) {
	positions := make([]int, len(other))
	for i, l := range other {
		pos, ok := w.Index(l)
		if !ok {
			return nil, fmt.Errorf("wire with label %v not found", l)
		}
		positions[i] = pos
	}
	return positions, nil
}

// Equal reports whether both sequences hold the same labels in the same
// order.
func (w Wires) Equal(other Wires) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Union combines wire sequences in first-seen order, starting from w.
// Composite operators use this to derive their wires from constituents.
func (w Wires) Union(others ...Wires) Wires {
	result := append(Wires{}, w...)
	for _, o := range others {
		for _, l := range o {
			if !result.Contains(l) {
				result = append(result, l)
			}
		}
	}
	return result
}

// Shared returns the labels present in both sequences, in w's order.
func (w Wires) Shared(other Wires) Wires {
	result := Wires{}
	for _, l := range w {
		if other.Contains(l) {
			result = append(result, l)
		}
	}
	return result
}

// String renders the labels like a Go slice, e.g. "[0 1 aux]".
func (w Wires) String() string {
	return fmt.Sprintf("%v", []Wire(w))
}

// Copyright 2026 PennyLane Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wires

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	w, err := New(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []Wire{0, 1, 2}, w.Labels())
}

func TestNew_MixedLabelTypes(t *testing.T) {
	w, err := New(0, "aux", 1)
	require.NoError(t, err)
	assert.True(t, w.Contains("aux"))
	assert.False(t, w.Contains("missing"))
	// int 0 and string "0" are different labels
	assert.False(t, w.Contains("0"))
}

func TestNew_DuplicatesRejected(t *testing.T) {
	_, err := New(0, 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wires must be unique")
}

func TestIndex(t *testing.T) {
	w, _ := New("a", "b", "c")

	i, ok := w.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = w.Index("z")
	assert.False(t, ok)
}

func TestIndices(t *testing.T) {
	w, _ := New(0, 1, 2, 3)

	sub, _ := New(2, 0)
	positions, err := w.Indices(sub)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, positions)

	missing, _ := New(2, 7)
	_, err = w.Indices(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire with label 7 not found")
}

func TestEqual(t *testing.T) {
	a, _ := New(0, 1)
	b, _ := New(0, 1)
	c, _ := New(1, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "order matters")
	assert.False(t, a.Equal(Wires{0}))
}

func TestUnion(t *testing.T) {
	a, _ := New(0, 1)
	b, _ := New(1, 2)
	c, _ := New(3, 0)

	assert.Equal(t, Wires{0, 1, 2, 3}, a.Union(b, c), "first-seen order")
	assert.Equal(t, Wires{0, 1}, a.Union(), "union with nothing is a copy")
}

func TestShared(t *testing.T) {
	a, _ := New(0, 1, 2)
	b, _ := New(2, 4, 0)

	assert.Equal(t, Wires{0, 2}, a.Shared(b), "shared keeps receiver order")
	assert.Equal(t, Wires{}, a.Shared(Wires{9}))
}

func TestContainsWires(t *testing.T) {
	a, _ := New(0, 1, 2)
	sub, _ := New(2, 0)
	other, _ := New(0, 9)

	assert.True(t, a.ContainsWires(sub))
	assert.False(t, a.ContainsWires(other))
	assert.True(t, a.ContainsWires(Wires{}), "empty set is always contained")
}

func TestString(t *testing.T) {
	w, _ := New(0, "aux")
	assert.Equal(t, "[0 aux]", w.String())
}

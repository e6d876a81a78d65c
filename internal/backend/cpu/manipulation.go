package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/tensor"
)

// Reshape returns a tensor with the same elements and a new shape. The
// element count must be preserved.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if shape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), shape, shape.NumElements()))
	}

	result, err := tensor.NewRaw(shape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("reshape: failed to create result tensor: %v", err))
	}
	copy(result.Data(), t.Data())
	return propagateGrad(result, t)
}

// Transpose permutes the axes of a tensor. With no axes given the order is
// reversed, which is the matrix transpose for rank 2.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	rank := len(t.Shape())
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panic(fmt.Sprintf("transpose: %d axes given for rank-%d tensor", len(axes), rank))
	}
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid axes permutation %v for rank %d", axes, rank))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, rank)
	for d, ax := range axes {
		outShape[d] = t.Shape()[ax]
	}
	result, err := tensor.NewRaw(outShape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: failed to create result tensor: %v", err))
	}

	// Raw byte moves keep this dtype-agnostic: every element is elemSize
	// bytes at flatIndex*elemSize.
	inStrides := t.Shape().ComputeStrides()
	outStrides := outShape.ComputeStrides()
	elemSize := t.DType().Size()
	src := t.Data()
	dst := result.Data()

	for i := 0; i < result.NumElements(); i++ {
		srcIdx := 0
		rem := i
		for d, s := range outStrides {
			coord := rem / s
			rem = rem % s
			srcIdx += coord * inStrides[axes[d]]
		}
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
	}
	return propagateGrad(result, t)
}

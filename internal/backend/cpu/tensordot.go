package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/tensor"
)

// TensorDot contracts axesA of a against axesB of b, generalizing matrix
// multiplication to arbitrary axis pairs. The result carries a's free axes
// followed by b's free axes.
//
// Implemented the classical way: permute the contracted axes to the back of
// a and the front of b, collapse to matrices, multiply, restore the free
// shape.
func (cpu *CPUBackend) TensorDot(a, b *tensor.RawTensor, axesA, axesB []int) *tensor.RawTensor {
	if len(axesA) != len(axesB) {
		panic(fmt.Sprintf("tensordot: axis count mismatch: %d vs %d", len(axesA), len(axesB)))
	}
	for i := range axesA {
		if axesA[i] < 0 || axesA[i] >= len(a.Shape()) {
			panic(fmt.Sprintf("tensordot: axis %d out of range for shape %v", axesA[i], a.Shape()))
		}
		if axesB[i] < 0 || axesB[i] >= len(b.Shape()) {
			panic(fmt.Sprintf("tensordot: axis %d out of range for shape %v", axesB[i], b.Shape()))
		}
		if a.Shape()[axesA[i]] != b.Shape()[axesB[i]] {
			panic(fmt.Sprintf("tensordot: contracted dimensions do not match: %d vs %d",
				a.Shape()[axesA[i]], b.Shape()[axesB[i]]))
		}
	}

	freeA := complementAxes(len(a.Shape()), axesA)
	freeB := complementAxes(len(b.Shape()), axesB)

	contracted := 1
	for _, ax := range axesA {
		contracted *= a.Shape()[ax]
	}
	rowsA, outShape := 1, tensor.Shape{}
	for _, ax := range freeA {
		rowsA *= a.Shape()[ax]
		outShape = append(outShape, a.Shape()[ax])
	}
	colsB := 1
	for _, ax := range freeB {
		colsB *= b.Shape()[ax]
		outShape = append(outShape, b.Shape()[ax])
	}

	at := cpu.Reshape(cpu.Transpose(a, append(freeA, axesA...)...), tensor.Shape{rowsA, contracted})
	bt := cpu.Reshape(cpu.Transpose(b, append(append([]int{}, axesB...), freeB...)...), tensor.Shape{contracted, colsB})
	return cpu.Reshape(cpu.MatMul(at, bt), outShape)
}

// complementAxes lists the axes of a rank-n tensor not present in axes,
// preserving their original order.
func complementAxes(rank int, axes []int) []int {
	used := make([]bool, rank)
	for _, ax := range axes {
		used[ax] = true
	}
	free := make([]int, 0, rank-len(axes))
	for d := 0; d < rank; d++ {
		if !used[d] {
			free = append(free, d)
		}
	}
	return free
}

package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/parallel"
	"github.com/dime10/pennylane/internal/tensor"
)

// Kron computes the Kronecker product of two matrices. The result has shape
// (rA*rB, cA*cB) with b's block scaled by each element of a.
func (cpu *CPUBackend) Kron(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().IsMatrix() || !b.Shape().IsMatrix() {
		panic(fmt.Sprintf("kron: expected matrices, got shapes %v and %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("kron: dtype mismatch %v vs %v", a.DType(), b.DType()))
	}
	rA, cA := a.Shape()[0], a.Shape()[1]
	rB, cB := b.Shape()[0], b.Shape()[1]

	result, err := tensor.NewRaw(tensor.Shape{rA * rB, cA * cB}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("kron: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		kronKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), rA, cA, rB, cB, cpu.par)
	case tensor.Float64:
		kronKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), rA, cA, rB, cB, cpu.par)
	case tensor.Complex64:
		kronKernel(result.AsComplex64(), a.AsComplex64(), b.AsComplex64(), rA, cA, rB, cB, cpu.par)
	case tensor.Complex128:
		kronKernel(result.AsComplex128(), a.AsComplex128(), b.AsComplex128(), rA, cA, rB, cB, cpu.par)
	}
	return propagateGrad(result, a, b)
}

// kronKernel scales b by each element of a into the output blocks. Each iA
// owns the output rows iA*rB through iA*rB+rB-1, so the outer loop is safe
// to split.
func kronKernel[T tensor.DType](out, a, b []T, rA, cA, rB, cB int, par parallel.Config) {
	cols := cA * cB
	parallel.For(rA, func(iA int) {
		for jA := 0; jA < cA; jA++ {
			av := a[iA*cA+jA]
			for iB := 0; iB < rB; iB++ {
				row := iA*rB + iB
				for jB := 0; jB < cB; jB++ {
					out[row*cols+jA*cB+jB] = av * b[iB*cB+jB]
				}
			}
		}
	}, par)
}

package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/parallel"
	"github.com/dime10/pennylane/internal/tensor"
)

// MatMul multiplies two matrices. Both inputs must be rank 2 with matching
// inner dimensions and the same dtype.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().IsMatrix() || !b.Shape().IsMatrix() {
		panic(fmt.Sprintf("matmul: expected matrices, got shapes %v and %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %v vs %v", a.DType(), b.DType()))
	}
	m, k := a.Shape()[0], a.Shape()[1]
	kb, n := b.Shape()[0], b.Shape()[1]
	if k != kb {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v x %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.par)
	case tensor.Float64:
		matmulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.par)
	case tensor.Complex64:
		matmulKernel(result.AsComplex64(), a.AsComplex64(), b.AsComplex64(), m, k, n, cpu.par)
	case tensor.Complex128:
		matmulKernel(result.AsComplex128(), a.AsComplex128(), b.AsComplex128(), m, k, n, cpu.par)
	}
	return propagateGrad(result, a, b)
}

// matmulKernel computes out = a @ b with the ikj loop order for sequential
// access on the inner rows. Rows are independent, so the outer loop splits
// across workers for the large matrices multi-wire operators produce.
func matmulKernel[T tensor.DType](out, a, b []T, m, k, n int, par parallel.Config) {
	parallel.For(m, func(i int) {
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i*n+j] += av * b[l*n+j]
			}
		}
	}, par)
}

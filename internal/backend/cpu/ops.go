package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/tensor"
)

// kernel identifies an elementwise binary operation.
type kernel int

const (
	addKernel kernel = iota
	subKernel
	mulKernel
)

// dispatchVectorized runs the fast same-shape path for the tensor's dtype.
func dispatchVectorized(k kernel, out, a, b *tensor.RawTensor) {
	switch out.DType() {
	case tensor.Float32:
		vecOp(k, out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		vecOp(k, out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Complex64:
		vecOp(k, out.AsComplex64(), a.AsComplex64(), b.AsComplex64())
	case tensor.Complex128:
		vecOp(k, out.AsComplex128(), a.AsComplex128(), b.AsComplex128())
	default:
		panic(fmt.Sprintf("unsupported dtype for elementwise op: %v", out.DType()))
	}
}

// dispatchBroadcast runs the index-translated path for the tensor's dtype.
func dispatchBroadcast(k kernel, out, a, b *tensor.RawTensor, outShape tensor.Shape) {
	switch out.DType() {
	case tensor.Float32:
		broadcastOp(k, out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		broadcastOp(k, out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Complex64:
		broadcastOp(k, out.AsComplex64(), a.AsComplex64(), b.AsComplex64(), a.Shape(), b.Shape(), outShape)
	case tensor.Complex128:
		broadcastOp(k, out.AsComplex128(), a.AsComplex128(), b.AsComplex128(), a.Shape(), b.Shape(), outShape)
	default:
		panic(fmt.Sprintf("unsupported dtype for elementwise op: %v", out.DType()))
	}
}

// vecOp applies the kernel over slices of equal length. The switch is hoisted
// out of the loop so each case compiles to a tight loop per dtype.
func vecOp[T tensor.DType](k kernel, out, a, b []T) {
	switch k {
	case addKernel:
		for i := range out {
			out[i] = a[i] + b[i]
		}
	case subKernel:
		for i := range out {
			out[i] = a[i] - b[i]
		}
	case mulKernel:
		for i := range out {
			out[i] = a[i] * b[i]
		}
	}
}

// opFunc returns the scalar function for a kernel, used on the broadcast path.
func opFunc[T tensor.DType](k kernel) func(T, T) T {
	switch k {
	case addKernel:
		return func(x, y T) T { return x + y }
	case subKernel:
		return func(x, y T) T { return x - y }
	default:
		return func(x, y T) T { return x * y }
	}
}

// broadcastOp applies the kernel with full index translation. Inputs with
// size-1 dimensions get a zero stride so the same element is reused across
// the stretched axis.
func broadcastOp[T tensor.DType](k kernel, out, a, b []T, aShape, bShape, outShape tensor.Shape) {
	f := opFunc[T](k)
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range out {
		ai, bi := 0, 0
		rem := i
		for d, s := range outStrides {
			idx := rem / s
			rem = rem % s
			ai += idx * aStrides[d]
			bi += idx * bStrides[d]
		}
		out[i] = f(a[ai], b[bi])
	}
}

// broadcastStrides maps an input shape onto the output rank: missing leading
// dimensions and size-1 dimensions contribute stride 0.
func broadcastStrides(in, out tensor.Shape) []int {
	natural := in.ComputeStrides()
	strides := make([]int, len(out))
	offset := len(out) - len(in)
	for d := range out {
		if d < offset {
			continue
		}
		if in[d-offset] == 1 {
			continue
		}
		strides[d] = natural[d-offset]
	}
	return strides
}

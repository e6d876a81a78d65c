// Package cpu implements the pure-Go CPU backend for the operator algebra.
package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/parallel"
	"github.com/dime10/pennylane/internal/tensor"
)

// CPUBackend implements tensor.Backend with straightforward Go loops.
// It is the reference backend: every representation an operator can produce
// is computable here without external dependencies.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// propagateGrad marks the result for gradient tracking when any input is.
func propagateGrad(result *tensor.RawTensor, inputs ...*tensor.RawTensor) *tensor.RawTensor {
	for _, in := range inputs {
		if in.RequiresGrad() {
			return result.SetRequiresGrad(true)
		}
	}
	return result
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addKernel)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subKernel)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulKernel)
}

// binaryOp dispatches an elementwise binary operation: fast vectorized path
// for matching shapes (inplace into a when it is the unique buffer owner),
// index-translated slow path when broadcasting is required.
func (cpu *CPUBackend) binaryOp(op string, a, b *tensor.RawTensor, k kernel) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %v vs %v", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() && !a.RequiresGrad() && !b.RequiresGrad() {
			// Inplace into a; skipped for tracked values so autodiff
			// wrappers never lose an input.
			dispatchVectorized(k, a, a, b)
			return a
		}
		result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
		}
		dispatchVectorized(k, result, a, b)
		return propagateGrad(result, a, b)
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	dispatchBroadcast(k, result, a, b, outShape)
	return propagateGrad(result, a, b)
}

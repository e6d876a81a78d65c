package cpu

import (
	"fmt"
	"math"

	"github.com/dime10/pennylane/internal/tensor"
)

// reader returns a uniform complex128 accessor over any supported dtype.
func reader(t *tensor.RawTensor) func(int) complex128 {
	switch t.DType() {
	case tensor.Float32:
		s := t.AsFloat32()
		return func(i int) complex128 { return complex(float64(s[i]), 0) }
	case tensor.Float64:
		s := t.AsFloat64()
		return func(i int) complex128 { return complex(s[i], 0) }
	case tensor.Complex64:
		s := t.AsComplex64()
		return func(i int) complex128 { return complex128(s[i]) }
	case tensor.Complex128:
		s := t.AsComplex128()
		return func(i int) complex128 { return s[i] }
	default:
		panic(fmt.Sprintf("unsupported dtype: %v", t.DType()))
	}
}

// writer returns a uniform complex128 setter over any supported dtype.
// Writing a complex value into a real tensor keeps the real part only.
func writer(t *tensor.RawTensor) func(int, complex128) {
	switch t.DType() {
	case tensor.Float32:
		s := t.AsFloat32()
		return func(i int, v complex128) { s[i] = float32(real(v)) }
	case tensor.Float64:
		s := t.AsFloat64()
		return func(i int, v complex128) { s[i] = real(v) }
	case tensor.Complex64:
		s := t.AsComplex64()
		return func(i int, v complex128) { s[i] = complex64(v) }
	case tensor.Complex128:
		s := t.AsComplex128()
		return func(i int, v complex128) { s[i] = v }
	default:
		panic(fmt.Sprintf("unsupported dtype: %v", t.DType()))
	}
}

// Conj returns the complex conjugate. Real tensors are returned as a
// buffer-sharing clone since conjugation is the identity on them.
func (cpu *CPUBackend) Conj(t *tensor.RawTensor) *tensor.RawTensor {
	if !t.DType().IsComplex() {
		return t.Clone()
	}
	result, err := tensor.NewRaw(t.Shape(), t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("conj: failed to create result tensor: %v", err))
	}
	if t.DType() == tensor.Complex64 {
		in, out := t.AsComplex64(), result.AsComplex64()
		for i := range out {
			out[i] = complex(real(in[i]), -imag(in[i]))
		}
	} else {
		in, out := t.AsComplex128(), result.AsComplex128()
		for i := range out {
			out[i] = complex(real(in[i]), -imag(in[i]))
		}
	}
	return propagateGrad(result, t)
}

// Real extracts the real part, narrowing complex dtypes to their real
// counterpart. Real tensors are returned as a buffer-sharing clone.
func (cpu *CPUBackend) Real(t *tensor.RawTensor) *tensor.RawTensor {
	if !t.DType().IsComplex() {
		return t.Clone()
	}
	result, err := tensor.NewRaw(t.Shape(), t.DType().RealType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("real: failed to create result tensor: %v", err))
	}
	read := reader(t)
	write := writer(result)
	for i := 0; i < t.NumElements(); i++ {
		write(i, complex(real(read(i)), 0))
	}
	return propagateGrad(result, t)
}

// Round rounds every element to the given number of decimal places. Complex
// values are rounded component-wise.
func (cpu *CPUBackend) Round(t *tensor.RawTensor, decimals int) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape(), t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("round: failed to create result tensor: %v", err))
	}
	factor := math.Pow(10, float64(decimals))
	read := reader(t)
	write := writer(result)
	for i := 0; i < t.NumElements(); i++ {
		v := read(i)
		write(i, complex(
			math.Round(real(v)*factor)/factor,
			math.Round(imag(v)*factor)/factor,
		))
	}
	return propagateGrad(result, t)
}

// Cast converts a tensor to the target dtype. Narrowing a complex tensor to
// a real dtype discards the imaginary part.
func (cpu *CPUBackend) Cast(t *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if t.DType() == dtype {
		return t.Clone()
	}
	result, err := tensor.NewRaw(t.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: failed to create result tensor: %v", err))
	}
	read := reader(t)
	write := writer(result)
	for i := 0; i < t.NumElements(); i++ {
		write(i, read(i))
	}
	return propagateGrad(result, t)
}

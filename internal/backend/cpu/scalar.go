package cpu

import (
	"fmt"

	"github.com/dime10/pennylane/internal/tensor"
)

// scalarValue normalizes a Go scalar to complex128. isComplex reports whether
// the static type was complex; a complex scalar promotes a real tensor even
// when its imaginary part happens to be zero.
func scalarValue(scalar any) (c complex128, isComplex bool, ok bool) {
	switch s := scalar.(type) {
	case int:
		return complex(float64(s), 0), false, true
	case int64:
		return complex(float64(s), 0), false, true
	case float32:
		return complex(float64(s), 0), false, true
	case float64:
		return complex(s, 0), false, true
	case complex64:
		return complex128(s), true, true
	case complex128:
		return s, true, true
	default:
		return 0, false, false
	}
}

// MulScalar multiplies every element by a scalar. Multiplying a real tensor
// by a complex scalar widens the result to the matching complex dtype.
func (cpu *CPUBackend) MulScalar(t *tensor.RawTensor, scalar any) *tensor.RawTensor {
	c, isComplex, ok := scalarValue(scalar)
	if !ok {
		panic(fmt.Sprintf("mulscalar: unsupported scalar type %T", scalar))
	}

	outType := t.DType()
	if isComplex && !outType.IsComplex() {
		outType = outType.ComplexType()
	}

	result, err := tensor.NewRaw(t.Shape(), outType, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mulscalar: failed to create result tensor: %v", err))
	}

	switch outType {
	case tensor.Float32:
		in, out, s := t.AsFloat32(), result.AsFloat32(), float32(real(c))
		for i := range out {
			out[i] = in[i] * s
		}
	case tensor.Float64:
		in, out, s := t.AsFloat64(), result.AsFloat64(), real(c)
		for i := range out {
			out[i] = in[i] * s
		}
	case tensor.Complex64:
		out, s := result.AsComplex64(), complex64(c)
		if t.DType() == tensor.Float32 {
			in := t.AsFloat32()
			for i := range out {
				out[i] = complex(in[i], 0) * s
			}
		} else {
			in := t.AsComplex64()
			for i := range out {
				out[i] = in[i] * s
			}
		}
	case tensor.Complex128:
		out := result.AsComplex128()
		if t.DType() == tensor.Float64 {
			in := t.AsFloat64()
			for i := range out {
				out[i] = complex(in[i], 0) * c
			}
		} else {
			in := t.AsComplex128()
			for i := range out {
				out[i] = in[i] * c
			}
		}
	}
	return propagateGrad(result, t)
}

package tensor

import "fmt"

// Scalar creates a 0-d Float64 tensor holding a single value.
// Operator parameters are stored this way when callers pass plain numbers.
func Scalar(v float64) *RawTensor {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		panic(err) // empty shape always validates
	}
	raw.AsFloat64()[0] = v
	return raw
}

// ScalarC creates a 0-d Complex128 tensor holding a single value.
func ScalarC(v complex128) *RawTensor {
	raw, err := NewRaw(Shape{}, Complex128, CPU)
	if err != nil {
		panic(err)
	}
	raw.AsComplex128()[0] = v
	return raw
}

// FromFloat64 creates a Float64 tensor from row-major data.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	raw, err := NewRaw(shape, Float64, CPU)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat64(), data)
	return raw, nil
}

// FromComplex128 creates a Complex128 tensor from row-major data.
func FromComplex128(data []complex128, shape Shape) (*RawTensor, error) {
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	raw, err := NewRaw(shape, Complex128, CPU)
	if err != nil {
		return nil, err
	}
	copy(raw.AsComplex128(), data)
	return raw, nil
}

// Matrix creates an n x m Complex128 tensor from row-major data.
// This is the common path for writing down gate matrices.
func Matrix(n, m int, data []complex128) *RawTensor {
	raw, err := FromComplex128(data, Shape{n, m})
	if err != nil {
		panic(fmt.Sprintf("matrix: %v", err))
	}
	return raw
}

// RawZeros creates a zero-filled tensor of the given shape and dtype.
func RawZeros(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return raw
}

// RawEye creates an n x n identity matrix of the given dtype.
func RawEye(n int, dtype DataType) *RawTensor {
	raw := RawZeros(Shape{n, n}, dtype)
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	case Float64:
		data := raw.AsFloat64()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	case Complex64:
		data := raw.AsComplex64()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	case Complex128:
		data := raw.AsComplex128()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	}
	return raw
}

// Vector creates a 1-d Float64 tensor from the given data.
func Vector(data []float64) *RawTensor {
	raw, err := FromFloat64(data, Shape{len(data)})
	if err != nil {
		panic(err) // shape derives from the data length
	}
	return raw
}

// VectorC creates a 1-d Complex128 tensor from the given data.
// Eigenvalue spectra of non-Hermitian unitaries live here.
func VectorC(data []complex128) *RawTensor {
	raw, err := FromComplex128(data, Shape{len(data)})
	if err != nil {
		panic(err) // shape derives from the data length
	}
	return raw
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[complex128](Shape{2, 2}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 0.5, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[complex128](4, backend) // 4x4 identity
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t
}

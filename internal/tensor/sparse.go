package tensor

import "fmt"

// COO is a sparse matrix in coordinate format: parallel slices of row indices,
// column indices and complex values. Duplicate coordinates are allowed and sum
// implicitly on densification, matching the usual COO convention.
//
// The operator algebra uses COO for observables whose dense matrices would be
// exponentially large (sparse Hamiltonians, long Kronecker chains).
type COO struct {
	rows []int
	cols []int
	vals []complex128

	numRows int
	numCols int
}

// NewCOO creates an empty sparse matrix with the given dimensions.
func NewCOO(numRows, numCols int) (*COO, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, fmt.Errorf("invalid sparse dimensions %dx%d", numRows, numCols)
	}
	return &COO{numRows: numRows, numCols: numCols}, nil
}

// Append records a nonzero entry. Zero values are skipped.
func (m *COO) Append(row, col int, val complex128) error {
	if row < 0 || row >= m.numRows || col < 0 || col >= m.numCols {
		return fmt.Errorf("entry (%d, %d) out of range for %dx%d matrix", row, col, m.numRows, m.numCols)
	}
	if val == 0 {
		return nil
	}
	m.rows = append(m.rows, row)
	m.cols = append(m.cols, col)
	m.vals = append(m.vals, val)
	return nil
}

// Dims returns the matrix dimensions.
func (m *COO) Dims() (int, int) {
	return m.numRows, m.numCols
}

// NNZ returns the number of stored entries.
func (m *COO) NNZ() int {
	return len(m.vals)
}

// Entries calls fn for every stored entry.
func (m *COO) Entries(fn func(row, col int, val complex128)) {
	for i := range m.vals {
		fn(m.rows[i], m.cols[i], m.vals[i])
	}
}

// SparseEye creates an n x n sparse identity.
func SparseEye(n int) *COO {
	m := &COO{numRows: n, numCols: n}
	m.rows = make([]int, n)
	m.cols = make([]int, n)
	m.vals = make([]complex128, n)
	for i := 0; i < n; i++ {
		m.rows[i] = i
		m.cols[i] = i
		m.vals[i] = 1
	}
	return m
}

// FromDense converts a 2-d RawTensor to COO form, dropping zeros.
func FromDense(t *RawTensor) (*COO, error) {
	if !t.Shape().IsMatrix() {
		return nil, fmt.Errorf("sparse conversion requires a matrix, got shape %v", t.Shape())
	}
	n, c := t.Shape()[0], t.Shape()[1]
	m := &COO{numRows: n, numCols: c}

	read := denseReader(t)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			if v := read(i*c + j); v != 0 {
				m.rows = append(m.rows, i)
				m.cols = append(m.cols, j)
				m.vals = append(m.vals, v)
			}
		}
	}
	return m, nil
}

// denseReader returns an accessor promoting any dtype element to complex128.
func denseReader(t *RawTensor) func(i int) complex128 {
	switch t.DType() {
	case Float32:
		data := t.AsFloat32()
		return func(i int) complex128 { return complex(float64(data[i]), 0) }
	case Float64:
		data := t.AsFloat64()
		return func(i int) complex128 { return complex(data[i], 0) }
	case Complex64:
		data := t.AsComplex64()
		return func(i int) complex128 { return complex128(data[i]) }
	case Complex128:
		data := t.AsComplex128()
		return func(i int) complex128 { return data[i] }
	default:
		panic("unsupported dtype")
	}
}

// ToDense materializes the sparse matrix as a Complex128 RawTensor.
// Duplicate entries accumulate.
func (m *COO) ToDense() *RawTensor {
	out := RawZeros(Shape{m.numRows, m.numCols}, Complex128)
	data := out.AsComplex128()
	for i := range m.vals {
		data[m.rows[i]*m.numCols+m.cols[i]] += m.vals[i]
	}
	return out
}

// Kron computes the Kronecker product with another sparse matrix.
// The result has nnz(a)*nnz(b) entries, never the dense product size.
func (m *COO) Kron(other *COO) *COO {
	out := &COO{
		numRows: m.numRows * other.numRows,
		numCols: m.numCols * other.numCols,
	}
	out.rows = make([]int, 0, len(m.vals)*len(other.vals))
	out.cols = make([]int, 0, len(m.vals)*len(other.vals))
	out.vals = make([]complex128, 0, len(m.vals)*len(other.vals))

	for i := range m.vals {
		for j := range other.vals {
			out.rows = append(out.rows, m.rows[i]*other.numRows+other.rows[j])
			out.cols = append(out.cols, m.cols[i]*other.numCols+other.cols[j])
			out.vals = append(out.vals, m.vals[i]*other.vals[j])
		}
	}
	return out
}

// Conj returns the elementwise complex conjugate.
func (m *COO) Conj() *COO {
	out := &COO{
		numRows: m.numRows,
		numCols: m.numCols,
		rows:    append([]int(nil), m.rows...),
		cols:    append([]int(nil), m.cols...),
		vals:    make([]complex128, len(m.vals)),
	}
	for i, v := range m.vals {
		out.vals[i] = complex(real(v), -imag(v))
	}
	return out
}

// T returns the transpose.
func (m *COO) T() *COO {
	return &COO{
		numRows: m.numCols,
		numCols: m.numRows,
		rows:    append([]int(nil), m.cols...),
		cols:    append([]int(nil), m.rows...),
		vals:    append([]complex128(nil), m.vals...),
	}
}

// Scale multiplies all entries by a scalar.
func (m *COO) Scale(s complex128) *COO {
	out := &COO{
		numRows: m.numRows,
		numCols: m.numCols,
		rows:    append([]int(nil), m.rows...),
		cols:    append([]int(nil), m.cols...),
		vals:    make([]complex128, len(m.vals)),
	}
	for i, v := range m.vals {
		out.vals[i] = s * v
	}
	return out
}

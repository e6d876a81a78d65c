package tensor

// Backend defines the computational operations the operator algebra needs from
// a numeric engine. Representations (matrices, eigenvalues, Heisenberg
// transformations) are computed against this interface so the same operator
// objects work on any array implementation.
//
// All methods operate on RawTensor and must propagate dtype and the
// requiresGrad flag from inputs to outputs. Invalid inputs (shape or dtype
// mismatches) are programmer errors and panic.
type Backend interface {
	// Elementwise arithmetic. Shapes follow NumPy broadcasting rules.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MulScalar multiplies every element by a scalar. The scalar may be any
	// Go numeric type; it is converted to the tensor's dtype (complex scalars
	// promote real tensors).
	MulScalar(t *RawTensor, scalar any) *RawTensor

	// MatMul computes the 2-d matrix product a @ b.
	MatMul(a, b *RawTensor) *RawTensor

	// Kron computes the Kronecker product of two matrices.
	Kron(a, b *RawTensor) *RawTensor

	// TensorDot contracts axesA of a against axesB of b, generalizing
	// matrix multiplication to arbitrary-rank tensors.
	TensorDot(a, b *RawTensor, axesA, axesB []int) *RawTensor

	// Reshape returns a view-like tensor with a new shape (same elements).
	Reshape(t *RawTensor, shape Shape) *RawTensor

	// Transpose permutes axes. With no axes given the order is reversed;
	// for a matrix this is the ordinary transpose.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Conj returns the elementwise complex conjugate.
	Conj(t *RawTensor) *RawTensor

	// Real extracts the real part, dropping to the matching real dtype.
	Real(t *RawTensor) *RawTensor

	// Round rounds elementwise to the given number of decimal places
	// (complex values round both components).
	Round(t *RawTensor, decimals int) *RawTensor

	// Cast converts the tensor to a different dtype.
	Cast(t *RawTensor, dtype DataType) *RawTensor

	// Eigvals computes the eigenvalues of a square matrix (any complex
	// matrix; Schur form via the shifted QR algorithm).
	Eigvals(t *RawTensor) *RawTensor

	// Eigh computes the eigendecomposition of a Hermitian matrix, returning
	// real eigenvalues in ascending order and the matrix of column
	// eigenvectors.
	Eigh(t *RawTensor) (*RawTensor, *RawTensor)

	// Name returns the backend identifier (for debugging and errors).
	Name() string

	// Device returns the device this backend computes on.
	Device() Device
}

package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Complex128, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if !raw.Shape().Equal(Shape{2, 2}) {
		t.Errorf("shape = %v, want [2 2]", raw.Shape())
	}
	if raw.DType() != Complex128 {
		t.Errorf("dtype = %v, want complex128", raw.DType())
	}
	if raw.ByteSize() != 4*16 {
		t.Errorf("byte size = %d, want 64", raw.ByteSize())
	}
	for _, v := range raw.AsComplex128() {
		if v != 0 {
			t.Error("new tensor not zero-initialized")
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float64, CPU); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestTypedViews(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Complex128, CPU)
	data := raw.AsComplex128()
	data[0] = 1 + 2i
	data[1] = -1i

	again := raw.AsComplex128()
	if again[0] != 1+2i || again[1] != -1i {
		t.Error("typed view does not alias the buffer")
	}
}

func TestTypedViewDTypeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for dtype mismatch")
		}
	}()
	raw, _ := NewRaw(Shape{2}, Float64, CPU)
	raw.AsComplex128()
}

func TestCloneSharesBuffer(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64, CPU)
	raw.AsFloat64()[0] = 3.5

	clone := raw.Clone()
	if raw.IsUnique() {
		t.Error("original should not be unique after Clone")
	}
	clone.AsFloat64()[1] = 7.0
	if raw.AsFloat64()[1] != 7.0 {
		t.Error("clone should share the buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("original should be unique after clone release")
	}
}

func TestCopyIsDeep(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64, CPU)
	raw.AsFloat64()[0] = 1.0

	cp := raw.Copy()
	cp.AsFloat64()[0] = 9.0
	if raw.AsFloat64()[0] != 1.0 {
		t.Error("Copy should not share the buffer")
	}
	if !raw.IsUnique() {
		t.Error("Copy should not bump the original refcount")
	}
}

func TestRequiresGradPropagatesThroughCloneAndCopy(t *testing.T) {
	raw := Scalar(0.5).SetRequiresGrad(true)
	if !raw.Clone().RequiresGrad() {
		t.Error("Clone dropped requiresGrad")
	}
	if !raw.Copy().RequiresGrad() {
		t.Error("Copy dropped requiresGrad")
	}
}

func TestScalarCreation(t *testing.T) {
	s := Scalar(1.5)
	if !s.Shape().IsScalar() {
		t.Errorf("Scalar shape = %v, want scalar", s.Shape())
	}
	if s.AsFloat64()[0] != 1.5 {
		t.Errorf("Scalar value = %v, want 1.5", s.AsFloat64()[0])
	}

	c := ScalarC(2 - 1i)
	if c.DType() != Complex128 || c.AsComplex128()[0] != 2-1i {
		t.Error("ScalarC did not store the value")
	}
}

func TestMatrixCreation(t *testing.T) {
	m := Matrix(2, 2, []complex128{0, 1, 1, 0})
	if !m.Shape().Equal(Shape{2, 2}) {
		t.Errorf("shape = %v, want [2 2]", m.Shape())
	}
	data := m.AsComplex128()
	if data[0] != 0 || data[1] != 1 || data[2] != 1 || data[3] != 0 {
		t.Errorf("unexpected data %v", data)
	}
}

func TestRawEye(t *testing.T) {
	eye := RawEye(3, Complex128)
	data := eye.AsComplex128()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if data[i*3+j] != want {
				t.Errorf("eye[%d][%d] = %v, want %v", i, j, data[i*3+j], want)
			}
		}
	}
}

func TestFromFloat64LengthMismatch(t *testing.T) {
	if _, err := FromFloat64([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

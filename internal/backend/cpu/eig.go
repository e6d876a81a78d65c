package cpu

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/dime10/pennylane/internal/tensor"
)

const eigTol = 1e-14

// Eigvals computes the eigenvalues of a general square matrix: Householder
// reduction to Hessenberg form followed by the shifted QR algorithm with
// deflation. The result is always a complex128 vector; ordering follows
// deflation order, not magnitude.
func (cpu *CPUBackend) Eigvals(t *tensor.RawTensor) *tensor.RawTensor {
	if !t.Shape().IsSquareMatrix() {
		panic(fmt.Sprintf("eigvals: expected a square matrix, got shape %v", t.Shape()))
	}
	n := t.Shape()[0]
	a := toComplexFlat(t)

	vals := make([]complex128, n)
	if n == 1 {
		vals[0] = a[0]
	} else {
		hessenberg(a, n)
		qrEigvals(a, n, vals)
	}

	result, err := tensor.NewRaw(tensor.Shape{n}, tensor.Complex128, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("eigvals: failed to create result tensor: %v", err))
	}
	copy(result.AsComplex128(), vals)
	return propagateGrad(result, t)
}

// Eigh computes the eigendecomposition of a Hermitian matrix with the cyclic
// complex Jacobi method. Eigenvalues come back real and ascending; the second
// result holds the matching eigenvectors as columns. The input must be
// Hermitian; this is not checked.
func (cpu *CPUBackend) Eigh(t *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor) {
	if !t.Shape().IsSquareMatrix() {
		panic(fmt.Sprintf("eigh: expected a square matrix, got shape %v", t.Shape()))
	}
	n := t.Shape()[0]
	a := toComplexFlat(t)

	// Eigenvector accumulator, starts as the identity.
	v := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	for sweep := 0; sweep < 100 && offDiagNorm(a, n) > eigTol*frobeniusNorm(a, n); sweep++ {
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				jacobiRotate(a, v, n, p, q)
			}
		}
	}

	// Sort ascending, carrying the eigenvector columns along.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return real(a[order[i]*n+order[i]]) < real(a[order[j]*n+order[j]])
	})

	valsRaw, err := tensor.NewRaw(tensor.Shape{n}, tensor.Float64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("eigh: failed to create result tensor: %v", err))
	}
	vecsRaw, err := tensor.NewRaw(tensor.Shape{n, n}, tensor.Complex128, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("eigh: failed to create result tensor: %v", err))
	}
	vals := valsRaw.AsFloat64()
	vecs := vecsRaw.AsComplex128()
	for j, src := range order {
		vals[j] = real(a[src*n+src])
		for i := 0; i < n; i++ {
			vecs[i*n+j] = v[i*n+src]
		}
	}
	return propagateGrad(valsRaw, t), propagateGrad(vecsRaw, t)
}

// toComplexFlat copies a matrix into a flat complex128 working buffer.
func toComplexFlat(t *tensor.RawTensor) []complex128 {
	read := reader(t)
	a := make([]complex128, t.NumElements())
	for i := range a {
		a[i] = read(i)
	}
	return a
}

// hessenberg reduces a to upper Hessenberg form in place using Householder
// reflections (H = I - 2vv*/v*v applied from both sides).
func hessenberg(a []complex128, n int) {
	for k := 0; k < n-2; k++ {
		var norm float64
		for i := k + 1; i < n; i++ {
			norm += real(a[i*n+k])*real(a[i*n+k]) + imag(a[i*n+k])*imag(a[i*n+k])
		}
		norm = math.Sqrt(norm)
		if norm < eigTol {
			continue
		}

		// alpha carries the phase of the pivot so v never cancels.
		x0 := a[(k+1)*n+k]
		alpha := complex(-norm, 0)
		if cmplx.Abs(x0) > 0 {
			alpha = -x0 / complex(cmplx.Abs(x0), 0) * complex(norm, 0)
		}

		v := make([]complex128, n-k-1)
		var vnorm2 float64
		for i := range v {
			v[i] = a[(k+1+i)*n+k]
			if i == 0 {
				v[i] -= alpha
			}
			vnorm2 += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		if vnorm2 < eigTol*eigTol {
			continue
		}
		scale := complex(2/vnorm2, 0)

		// Left: rows k+1.. of columns k..n-1.
		for j := k; j < n; j++ {
			var w complex128
			for i := range v {
				w += cmplx.Conj(v[i]) * a[(k+1+i)*n+j]
			}
			w *= scale
			for i := range v {
				a[(k+1+i)*n+j] -= w * v[i]
			}
		}
		// Right: columns k+1.. of every row.
		for i := 0; i < n; i++ {
			var w complex128
			for j := range v {
				w += a[i*n+k+1+j] * v[j]
			}
			w *= scale
			for j := range v {
				a[i*n+k+1+j] -= w * cmplx.Conj(v[j])
			}
		}

		a[(k+1)*n+k] = alpha
		for i := k + 2; i < n; i++ {
			a[i*n+k] = 0
		}
	}
}

// qrEigvals runs the explicit single-shift QR iteration with deflation on an
// upper Hessenberg matrix, filling vals with its eigenvalues.
func qrEigvals(a []complex128, n int, vals []complex128) {
	maxIter := 60 * n
	iter := 0
	for m := n; m > 0; {
		// Deflate: find the start of the trailing unreduced block.
		l := m - 1
		for l > 0 {
			sub := cmplx.Abs(a[l*n+l-1])
			s := cmplx.Abs(a[(l-1)*n+l-1]) + cmplx.Abs(a[l*n+l])
			if s == 0 {
				s = 1
			}
			if sub <= eigTol*s {
				a[l*n+l-1] = 0
				break
			}
			l--
		}

		switch {
		case l == m-1:
			vals[m-1] = a[(m-1)*n+m-1]
			m--
		case l == m-2:
			l1, l2 := eig2x2(a[(m-2)*n+m-2], a[(m-2)*n+m-1], a[(m-1)*n+m-2], a[(m-1)*n+m-1])
			vals[m-2], vals[m-1] = l1, l2
			m -= 2
		default:
			if iter >= maxIter {
				panic("eigvals: QR iteration did not converge")
			}
			iter++
			mu := wilkinsonShift(a, n, m)
			if iter%20 == 0 {
				// Exceptional shift to break rare symmetric stalls.
				mu = a[(m-1)*n+m-1] + complex(cmplx.Abs(a[(m-1)*n+m-2]), 0)
			}
			qrStep(a, n, l, m, mu)
		}
	}
}

// eig2x2 solves the characteristic polynomial of a 2x2 block.
func eig2x2(p, q, r, s complex128) (complex128, complex128) {
	tr := p + s
	det := p*s - q*r
	disc := cmplx.Sqrt(tr*tr/4 - det)
	return tr/2 + disc, tr/2 - disc
}

// wilkinsonShift picks the eigenvalue of the trailing 2x2 block closest to
// the bottom-right entry.
func wilkinsonShift(a []complex128, n, m int) complex128 {
	d := a[(m-1)*n+m-1]
	l1, l2 := eig2x2(a[(m-2)*n+m-2], a[(m-2)*n+m-1], a[(m-1)*n+m-2], d)
	if cmplx.Abs(l1-d) < cmplx.Abs(l2-d) {
		return l1
	}
	return l2
}

// givens builds the unitary rotation [[c, s], [-conj(s), c]] with real c
// that zeroes b against a.
func givens(a, b complex128) (float64, complex128) {
	absA, absB := cmplx.Abs(a), cmplx.Abs(b)
	if absB == 0 {
		return 1, 0
	}
	if absA == 0 {
		return 0, cmplx.Conj(b) / complex(absB, 0)
	}
	r := math.Hypot(absA, absB)
	c := absA / r
	s := a / complex(absA, 0) * cmplx.Conj(b) / complex(r, 0)
	return c, s
}

// qrStep performs one explicit shifted QR iteration on the Hessenberg block
// a[lo:hi, lo:hi]: factor (H - mu I) = QR with Givens rotations, then form
// RQ + mu I.
func qrStep(a []complex128, n, lo, hi int, mu complex128) {
	for i := lo; i < hi; i++ {
		a[i*n+i] -= mu
	}

	k := hi - lo - 1
	cs := make([]float64, k)
	sn := make([]complex128, k)

	// Left rotations triangularize the block.
	for i := lo; i < hi-1; i++ {
		c, s := givens(a[i*n+i], a[(i+1)*n+i])
		cs[i-lo], sn[i-lo] = c, s
		for j := i; j < hi; j++ {
			ri, rj := a[i*n+j], a[(i+1)*n+j]
			a[i*n+j] = complex(c, 0)*ri + s*rj
			a[(i+1)*n+j] = -cmplx.Conj(s)*ri + complex(c, 0)*rj
		}
	}
	// Right multiplication by the accumulated Q restores Hessenberg form.
	for i := lo; i < hi-1; i++ {
		c, s := cs[i-lo], sn[i-lo]
		for r := lo; r <= i+1; r++ {
			ci, cj := a[r*n+i], a[r*n+i+1]
			a[r*n+i] = complex(c, 0)*ci + cmplx.Conj(s)*cj
			a[r*n+i+1] = -s*ci + complex(c, 0)*cj
		}
	}

	for i := lo; i < hi; i++ {
		a[i*n+i] += mu
	}
}

// offDiagNorm is the Frobenius norm of the strictly off-diagonal part.
func offDiagNorm(a []complex128, n int) float64 {
	var sum float64
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p != q {
				v := a[p*n+q]
				sum += real(v)*real(v) + imag(v)*imag(v)
			}
		}
	}
	return math.Sqrt(sum)
}

func frobeniusNorm(a []complex128, n int) float64 {
	var sum float64
	for _, v := range a {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	if sum == 0 {
		return 1
	}
	return math.Sqrt(sum)
}

// jacobiRotate zeroes the (p, q) element of a Hermitian matrix with a unitary
// plane rotation and accumulates it into v.
func jacobiRotate(a, v []complex128, n, p, q int) {
	apq := a[p*n+q]
	r := cmplx.Abs(apq)
	if r < 1e-300 {
		return
	}
	app := real(a[p*n+p])
	aqq := real(a[q*n+q])

	// t is the smaller-magnitude root of t^2 - 2*tau*t - 1 = 0, which zeroes
	// the pivot while keeping the rotation angle under pi/4.
	tau := (app - aqq) / (2 * r)
	var t float64
	if tau >= 0 {
		t = -1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = 1 / (math.Sqrt(1+tau*tau) - tau)
	}
	c := 1 / math.Sqrt(1+t*t)
	sigma := t * c
	phase := apq / complex(r, 0)
	s := complex(sigma, 0) * phase

	// Diagonal and pivot entries.
	a[p*n+p] = complex(c*c*app+sigma*sigma*aqq-2*c*sigma*r, 0)
	a[q*n+q] = complex(c*c*aqq+sigma*sigma*app+2*c*sigma*r, 0)
	a[p*n+q] = 0
	a[q*n+p] = 0

	// Remaining rows and columns, keeping Hermitian symmetry exact.
	for k := 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		akp, akq := a[k*n+p], a[k*n+q]
		a[k*n+p] = complex(c, 0)*akp - cmplx.Conj(s)*akq
		a[k*n+q] = s*akp + complex(c, 0)*akq
		a[p*n+k] = cmplx.Conj(a[k*n+p])
		a[q*n+k] = cmplx.Conj(a[k*n+q])
	}
	for k := 0; k < n; k++ {
		vkp, vkq := v[k*n+p], v[k*n+q]
		v[k*n+p] = complex(c, 0)*vkp - cmplx.Conj(s)*vkq
		v[k*n+q] = s*vkp + complex(c, 0)*vkq
	}
}

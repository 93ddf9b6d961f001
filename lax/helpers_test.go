package lax

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared helpers for the package tests: deterministic random fills, a
// reference matrix-vector product per transpose mode, and tolerance checks.
// The reference arithmetic is deliberately naive; it only has to agree with
// the native backend within floating-point tolerance.

func randFill[T Scalar](r *rand.Rand, s []T) {
	switch s := any(s).(type) {
	case []float32:
		for i := range s {
			s[i] = r.Float32() - 0.5
		}
	case []float64:
		for i := range s {
			s[i] = r.Float64() - 0.5
		}
	case []complex64:
		for i := range s {
			s[i] = complex(r.Float32()-0.5, r.Float32()-0.5)
		}
	case []complex128:
		for i := range s {
			s[i] = complex(r.Float64()-0.5, r.Float64()-0.5)
		}
	}
}

func fromFloat[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

func conjElem[T Scalar](v T) T {
	switch c := any(v).(type) {
	case complex64:
		return any(complex(real(c), -imag(c))).(T)
	case complex128:
		return any(cmplx.Conj(c)).(T)
	}
	return v
}

// tolFor returns a comparison tolerance appropriate for the kind's
// precision.
func tolFor[T Scalar]() float64 {
	var zero T
	switch any(zero).(type) {
	case float32, complex64:
		return 5e-4
	}
	return 1e-9
}

// at reads element (i, j) of a buffer described by l.
func at[T Scalar](l MatrixLayout, a []T, i, j int) T {
	if l.Order() == RowMajor {
		return a[i*int(l.cols)+j]
	}
	return a[i+j*int(l.rows)]
}

// matVec computes op(A) x for a square matrix, with op selected by t.
func matVec[T Scalar](l MatrixLayout, t Transpose, a []T, x []T) []T {
	n := len(x)
	y := make([]T, n)
	for i := 0; i < n; i++ {
		var sum T
		for j := 0; j < n; j++ {
			switch t {
			case NoTrans:
				sum += at(l, a, i, j) * x[j]
			case Trans:
				sum += at(l, a, j, i) * x[j]
			case ConjTrans:
				sum += conjElem(at(l, a, j, i)) * x[j]
			}
		}
		y[i] = sum
	}
	return y
}

// matMul computes A B for two square matrices sharing the layout l,
// returning the product in the same storage order.
func matMul[T Scalar](l MatrixLayout, a, b []T) []T {
	n := int(l.rows)
	c := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += at(l, a, i, k) * at(l, b, k, j)
			}
			if l.Order() == RowMajor {
				c[i*n+j] = sum
			} else {
				c[i+j*n] = sum
			}
		}
	}
	return c
}

func checkClose[T Scalar](t *testing.T, name string, got, want []T, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		if absElem(got[i]-want[i]) > tol {
			t.Errorf("%s: element %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

package lax

import (
	"math"
	"math/cmplx"
)

// Scalar is the closed set of element kinds the native backend supports.
// Every generic entry point in this package is instantiated once per kind
// and resolves to that kind's own native symbols at compile time.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the real counterpart of a Scalar kind: float32 for float32 and
// complex64, float64 for float64 and complex128. Singular values and other
// real-valued native outputs use this type.
type Real interface {
	float32 | float64
}

// Pivot records the 1-based row interchanges performed by an LU
// factorization. It is only meaningful together with the factored buffer it
// was produced with; applying it to a different or re-factored buffer is
// undefined behavior.
type Pivot []int32

// isComplex reports whether T is one of the complex kinds.
func isComplex[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// absElem returns |v| widened to float64. Widening from the 32-bit kinds is
// exact.
func absElem[T Scalar](v T) float64 {
	switch v := any(v).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	return 0
}

// conjugateInPlace replaces every element of b with its complex conjugate.
// For the real kinds it is a no-op.
func conjugateInPlace[T Scalar](b []T) {
	switch b := any(b).(type) {
	case []complex64:
		for i, v := range b {
			b[i] = complex(real(v), -imag(v))
		}
	case []complex128:
		for i, v := range b {
			b[i] = cmplx.Conj(v)
		}
	}
}

// checkRealKind panics unless R is the real kind paired with T. The pairing
// cannot be expressed as a type constraint, so it is enforced here once per
// instantiation.
func checkRealKind[T Scalar, R Real]() {
	var t T
	var r R
	switch any(t).(type) {
	case float32, complex64:
		if _, ok := any(r).(float32); !ok {
			panic("lax: real type for this scalar kind must be float32")
		}
	default:
		if _, ok := any(r).(float64); !ok {
			panic("lax: real type for this scalar kind must be float64")
		}
	}
}

// identity returns a freshly allocated n by n identity matrix. Storage order
// does not matter for an identity matrix.
func identity[T Scalar](n int32) []T {
	id := make([]T, int(n)*int(n))
	for i := int32(0); i < n; i++ {
		id[i*n+i] = T(1)
	}
	return id
}

package lax

// This file implements the two-call workspace sizing protocol shared by
// every operation that needs scratch memory: issue the native call once
// with lwork = -1 and a one-element work slot, read the optimal element
// count back from that slot, allocate exactly that much scratch, then issue
// the real call. Complex SVD additionally needs a fixed-size real scratch
// buffer (5*min(m,n)) that is not part of the query, and the real-kind
// tridiagonal condition estimate needs an integer scratch buffer.

// lworkQuery is the sentinel requested-size value that turns a native call
// into a workspace size query.
const lworkQuery int32 = -1

// toLWork converts the optimal size a query wrote into the work slot to an
// element count. Complex kinds report the count in the real part.
func toLWork[T Scalar](v T) int32 {
	switch v := any(v).(type) {
	case float32:
		return int32(v)
	case float64:
		return int32(v)
	case complex64:
		return int32(real(v))
	case complex128:
		return int32(real(v))
	}
	return 0
}

// newWork allocates scratch for a sized native call. The routine fully
// populates whatever portion of the scratch it reads, so the zeroing done
// by make is only the stand-in for a raw uninitialized allocation.
func newWork[T Scalar](n int32) []T {
	return make([]T, n)
}

package lax

import "fmt"

// Every native routine reports its outcome through an integer status code:
// zero on success, -k when argument k was rejected, +k for a computational
// failure at index k (the meaning of k is routine-specific; for the LU
// families it is the first zero diagonal entry of U). The code is mapped to
// an error immediately after each call and never swallowed or retried.

// InvalidValueError reports that a native routine rejected one of its
// arguments. It indicates a programming error in the layer above, not a
// runtime data condition.
type InvalidValueError struct {
	// Arg is the 1-based position of the rejected argument in the native
	// call.
	Arg int32
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("lax: invalid value for argument %d of LAPACK call", e.Arg)
}

// ComputationalFailureError reports that a native routine ran to completion
// but its result is not usable, most commonly because the matrix is
// numerically singular. Callers may recover from it, for example by
// reporting the system as singular; it is never retried internally.
type ComputationalFailureError struct {
	// Index is the 1-based diagnostic index reported by the routine. For
	// an LU factorization it identifies the first exactly-zero diagonal
	// entry of U.
	Index int32
}

func (e *ComputationalFailureError) Error() string {
	return fmt.Sprintf("lax: computational failure at index %d", e.Index)
}

// lapackError maps a native status code to an error. A zero code is success.
func lapackError(info int32) error {
	switch {
	case info == 0:
		return nil
	case info < 0:
		return &InvalidValueError{Arg: -info}
	default:
		return &ComputationalFailureError{Index: info}
	}
}

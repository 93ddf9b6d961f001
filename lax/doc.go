// Package lax provides dense and tridiagonal matrix factorizations and
// linear solvers backed by the system LAPACK library.
//
// The native routines understand only column-major storage with an explicit
// leading dimension, and take every scalar argument by reference. This
// package reconciles row-major callers with that convention without copying
// matrix data where a reinterpretation is safe, sizes scratch workspace
// through the routines' own query protocol, and maps native status codes
// into typed errors.
//
// All entry points are generic over the four supported element kinds
// (float32, float64, complex64, complex128); each instantiation drives the
// matching native symbol family (sgetrf/dgetrf/cgetrf/zgetrf and so on).
//
// Basic usage:
//
//	a := []float64{4, 1, 2, 5} // 2x2, row-major
//	l := lax.NewRowMajor(2, 2)
//
//	piv, err := lax.LU(l, a) // a now holds the packed L/U factors
//	if err != nil {
//		// a *lax.ComputationalFailureError reports a singular matrix
//	}
//
//	b := []float64{1, 2}
//	err = lax.Solve(l, lax.NoTrans, a, piv, b) // b now holds the solution
//
// Factorizations overwrite their input buffer in place. Auxiliary artifacts
// (pivots, the extra tridiagonal band, cached norms) belong to the
// factorization result and must outlive any solve or inverse call that uses
// them, against the same factored buffer they were produced with.
//
// All calls are synchronous and allocate scratch per call; concurrent use is
// safe as long as the buffers involved in each call are disjoint.
package lax

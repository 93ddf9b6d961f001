// Copyright 2026 go-lax Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lax

import "github.com/ajroetker/go-lax/lax/internal/lapack"

// Dense LU factorization and the solve and inverse operations built on it
// (getrf, getrs and getri families). The factorization is a two step
// computation: LU factors the matrix in place, and the packed factors plus
// the pivot then feed Solve and Inv.

// LU computes the LU factorization with partial pivoting, A = P*L*U, of a
// general rows by cols matrix, in place: after a successful return the
// buffer holds L and U packed together, and the returned pivot records the
// row interchanges.
//
// An empty matrix succeeds with a nil pivot and no native call. A
// numerically singular matrix fails with a *ComputationalFailureError whose
// Index is the first zero diagonal entry of U.
//
// Note that for a row-major layout the factorization applies to the raw
// buffer reinterpreted as column-major, which is the transposed matrix;
// Solve compensates for the reinterpretation, so LU, Solve and Inv agree
// with each other for either order.
func LU[T Scalar](l MatrixLayout, a []T) (Pivot, error) {
	l.checkBuffer(len(a))
	rows, cols := l.Size()
	if rows == 0 || cols == 0 {
		return nil, nil
	}
	ipiv := make(Pivot, min(rows, cols))
	m, n := l.fdims()
	if info := getrf(m, n, a, l.LDA(), ipiv); info != 0 {
		return nil, lapackError(info)
	}
	return ipiv, nil
}

// Inv computes the inverse of a square matrix in place from its LU
// factorization. a must hold the packed factors produced by LU and piv the
// pivot from the same call. An empty matrix is a no-op success.
func Inv[T Scalar](l MatrixLayout, a []T, piv Pivot) error {
	l.checkBuffer(len(a))
	rows, cols := l.Size()
	if rows != cols {
		panic("lax: inverse requires a square matrix")
	}
	n := rows
	if n == 0 {
		return nil
	}

	var query [1]T
	if info := getri(n, a, l.LDA(), piv, query[:], lworkQuery); info != 0 {
		return lapackError(info)
	}
	lwork := toLWork(query[0])
	work := newWork[T](lwork)
	if info := getri(n, a, l.LDA(), piv, work, lwork); info != 0 {
		return lapackError(info)
	}
	return nil
}

// Solve solves A x = b (or the transposed or conjugate-transposed system,
// per t) for a single right-hand side, using the packed factors and pivot
// produced by LU. The factored buffer is read-only here; b is overwritten
// with the solution.
//
// The native backend sees a row-major buffer as its transpose, so for a
// row-major layout the transpose flag is swapped rather than the data
// copied. ConjTrans cannot be reduced to a flag swap alone:
//
//	A^H x = b
//	<=> conj(A^T) x = b
//	<=> A^T conj(x) = conj(b)
//
// so it becomes NoTrans on the reinterpreted buffer with the right-hand
// side conjugated element-wise before the call and the solution conjugated
// on the way out. For the real kinds conjugation is a no-op.
func Solve[T Scalar](l MatrixLayout, t Transpose, a []T, piv Pivot, b []T) error {
	l.checkBuffer(len(a))
	rows, cols := l.Size()
	if rows != cols {
		panic("lax: solve requires a square factored matrix")
	}
	if len(b) != int(rows) {
		panic("lax: right-hand side length does not match the matrix order")
	}
	if rows == 0 {
		return nil
	}

	conj := false
	if l.Order() == RowMajor {
		switch t {
		case NoTrans:
			t = Trans
		case Trans:
			t = NoTrans
		case ConjTrans:
			t = NoTrans
			conj = true
		}
	}
	if conj {
		conjugateInPlace(b)
	}
	info := getrs(byte(t), rows, 1, a, l.LDA(), piv, b, l.LDA())
	if conj {
		conjugateInPlace(b)
	}
	return lapackError(info)
}

func getrf[T Scalar](m, n int32, a []T, lda int32, ipiv []int32) int32 {
	switch a := any(a).(type) {
	case []float32:
		return lapack.Sgetrf(m, n, a, lda, ipiv)
	case []float64:
		return lapack.Dgetrf(m, n, a, lda, ipiv)
	case []complex64:
		return lapack.Cgetrf(m, n, a, lda, ipiv)
	case []complex128:
		return lapack.Zgetrf(m, n, a, lda, ipiv)
	}
	panic("lax: unsupported scalar kind")
}

func getri[T Scalar](n int32, a []T, lda int32, ipiv []int32, work []T, lwork int32) int32 {
	switch a := any(a).(type) {
	case []float32:
		return lapack.Sgetri(n, a, lda, ipiv, any(work).([]float32), lwork)
	case []float64:
		return lapack.Dgetri(n, a, lda, ipiv, any(work).([]float64), lwork)
	case []complex64:
		return lapack.Cgetri(n, a, lda, ipiv, any(work).([]complex64), lwork)
	case []complex128:
		return lapack.Zgetri(n, a, lda, ipiv, any(work).([]complex128), lwork)
	}
	panic("lax: unsupported scalar kind")
}

func getrs[T Scalar](trans byte, n, nrhs int32, a []T, lda int32, ipiv []int32, b []T, ldb int32) int32 {
	switch a := any(a).(type) {
	case []float32:
		return lapack.Sgetrs(trans, n, nrhs, a, lda, ipiv, any(b).([]float32), ldb)
	case []float64:
		return lapack.Dgetrs(trans, n, nrhs, a, lda, ipiv, any(b).([]float64), ldb)
	case []complex64:
		return lapack.Cgetrs(trans, n, nrhs, a, lda, ipiv, any(b).([]complex64), ldb)
	case []complex128:
		return lapack.Zgetrs(trans, n, nrhs, a, lda, ipiv, any(b).([]complex128), ldb)
	}
	panic("lax: unsupported scalar kind")
}

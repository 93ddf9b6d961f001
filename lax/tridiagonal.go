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

import (
	"fmt"

	"github.com/ajroetker/go-lax/lax/internal/lapack"
)

// Tridiagonal LU factorization and its solve and condition number
// operations (gttrf, gttrs and gtcon families).

const normOne byte = '1'

// Tridiagonal represents an n by n tridiagonal matrix as its three bands:
//
//	[d0, u0,  0,   ...,       0,
//	 l0, d1, u1,            ...,
//	  0, l1, d2,
//	 ...           ...,  u{n-2},
//	  0,  ...,  l{n-2},  d{n-1}]
//
// DL holds the n-1 sub-diagonal elements, D the n diagonal elements and DU
// the n-1 super-diagonal elements.
type Tridiagonal[T Scalar] struct {
	// L is the layout of the conceptual full matrix.
	L  MatrixLayout
	DL []T
	D  []T
	DU []T
}

// NewTridiagonal builds a Tridiagonal from its bands. The bands are
// referenced, not copied. It panics when the band lengths are not n-1, n
// and n-1.
func NewTridiagonal[T Scalar](dl, d, du []T) *Tridiagonal[T] {
	n := len(d)
	if len(dl) != max(n-1, 0) || len(du) != max(n-1, 0) {
		panic(fmt.Sprintf("lax: tridiagonal band lengths %d/%d/%d, want %d/%d/%d",
			len(dl), len(d), len(du), max(n-1, 0), n, max(n-1, 0)))
	}
	return &Tridiagonal[T]{L: NewColMajor(n, n), DL: dl, D: d, DU: du}
}

func (t *Tridiagonal[T]) check(row, col int) {
	n, _ := t.L.Size()
	if row < 0 || col < 0 || row >= int(n) || col >= int(n) {
		panic(fmt.Sprintf("lax: index (%d,%d) is out of range for order %d", row, col, n))
	}
	if row-col > 1 || col-row > 1 {
		panic(fmt.Sprintf("lax: index (%d,%d) is outside the tridiagonal band", row, col))
	}
}

// At returns the element at (row, col). Access outside the band is a
// structural error and panics; a tridiagonal matrix never stores those
// elements, so reading one silently would hide a caller bug.
func (t *Tridiagonal[T]) At(row, col int) T {
	t.check(row, col)
	switch row - col {
	case 0:
		return t.D[row]
	case 1:
		return t.DL[col]
	default: // -1
		return t.DU[row]
	}
}

// Set assigns the element at (row, col), with the same structure check as
// At.
func (t *Tridiagonal[T]) Set(row, col int, v T) {
	t.check(row, col)
	switch row - col {
	case 0:
		t.D[row] = v
	case 1:
		t.DL[col] = v
	default: // -1
		t.DU[row] = v
	}
}

// OpNormOne returns the one-norm of the matrix, the maximum column absolute
// sum over the band. The first and last columns have a single off-diagonal
// neighbor each. The norm is only meaningful before factorization
// overwrites the bands.
func (t *Tridiagonal[T]) OpNormOne() float64 {
	var norm float64
	for j := range t.D {
		sum := absElem(t.D[j])
		if j < len(t.DL) {
			sum += absElem(t.DL[j])
		}
		if j > 0 {
			sum += absElem(t.DU[j-1])
		}
		if sum > norm {
			norm = sum
		}
	}
	return norm
}

// LUFactorizedTridiagonal is the LU factorization A = P*L*U of a
// tridiagonal matrix. After factorization the bands of A are overwritten:
// DL holds the n-1 multipliers that define L, D the diagonal of U, and DU
// the first super-diagonal of U.
type LUFactorizedTridiagonal[T Scalar] struct {
	A Tridiagonal[T]
	// DU2 holds the n-2 elements of the second super-diagonal of U.
	DU2 []T
	// IPiv is the pivot defining the permutation matrix P.
	IPiv Pivot

	// One-norm of A taken before factorization. The bands it was computed
	// from no longer exist afterwards, so it is cached here for the
	// condition number estimate.
	opNormOne float64
}

// OpNormOne returns the one-norm of the original matrix, cached before the
// factorization overwrote its bands.
func (lu *LUFactorizedTridiagonal[T]) OpNormOne() float64 { return lu.opNormOne }

// LUTridiagonal computes the LU factorization of a tridiagonal matrix with
// partial pivoting, in place: the bands of a are overwritten with the
// factors and ownership of them moves to the returned result. An order-zero
// matrix succeeds without a native call.
func LUTridiagonal[T Scalar](a Tridiagonal[T]) (*LUFactorizedTridiagonal[T], error) {
	n, _ := a.L.Size()
	if n == 0 {
		return &LUFactorizedTridiagonal[T]{A: a}, nil
	}
	du2 := make([]T, max(int(n)-2, 0))
	ipiv := make(Pivot, n)
	// The one-norm must be taken now, before gttrf overwrites the bands.
	anorm := a.OpNormOne()
	if info := gttrf(n, a.DL, a.D, a.DU, du2, ipiv); info != 0 {
		return nil, lapackError(info)
	}
	return &LUFactorizedTridiagonal[T]{A: a, DU2: du2, IPiv: ipiv, opNormOne: anorm}, nil
}

// RcondTridiagonal estimates the reciprocal of the one-norm condition
// number of the original matrix from its factorization and the cached
// pre-factorization norm. A value near zero indicates an ill-conditioned
// system.
func RcondTridiagonal[T Scalar](lu *LUFactorizedTridiagonal[T]) (float64, error) {
	n, _ := lu.A.L.Size()
	if n == 0 {
		return 1, nil
	}
	work := make([]T, 2*n)
	var iwork []int32
	if !isComplex[T]() {
		// Integer scratch is a real-kind requirement only.
		iwork = make([]int32, n)
	}
	rcond, info := gtcon(normOne, n, lu.A.DL, lu.A.D, lu.A.DU, lu.DU2, lu.IPiv, lu.opNormOne, work, iwork)
	if info != 0 {
		return 0, lapackError(info)
	}
	return rcond, nil
}

// SolveTridiagonal solves A X = B (or the transposed or
// conjugate-transposed system, per t) using the factorization. B may hold
// one or more right-hand-side columns, described by bl, and is overwritten
// with the solution.
//
// Unlike the dense solve, a row-major right-hand side is handled by
// physically transposing it into a column-major scratch buffer before the
// call and back into the caller's buffer afterwards, not by a transpose
// flag swap.
func SolveTridiagonal[T Scalar](lu *LUFactorizedTridiagonal[T], bl MatrixLayout, t Transpose, b []T) error {
	bl.checkBuffer(len(b))
	n, _ := lu.A.L.Size()
	if brows, _ := bl.Size(); brows != n {
		panic("lax: right-hand side rows do not match the matrix order")
	}
	if n == 0 {
		return nil
	}

	var bt []T
	fl := bl
	if bl.Order() == RowMajor {
		fl, bt = transposeToColMajor(bl, b)
	}
	target := b
	if bt != nil {
		target = bt
	}
	ldb, nrhs := fl.Size()
	info := gttrs(byte(t), n, nrhs, lu.A.DL, lu.A.D, lu.A.DU, lu.DU2, lu.IPiv, target, ldb)
	if info != 0 {
		return lapackError(info)
	}
	if bt != nil {
		transposeBack(fl, bt, b)
	}
	return nil
}

func gttrf[T Scalar](n int32, dl, d, du, du2 []T, ipiv []int32) int32 {
	switch dl := any(dl).(type) {
	case []float32:
		return lapack.Sgttrf(n, dl, any(d).([]float32), any(du).([]float32), any(du2).([]float32), ipiv)
	case []float64:
		return lapack.Dgttrf(n, dl, any(d).([]float64), any(du).([]float64), any(du2).([]float64), ipiv)
	case []complex64:
		return lapack.Cgttrf(n, dl, any(d).([]complex64), any(du).([]complex64), any(du2).([]complex64), ipiv)
	case []complex128:
		return lapack.Zgttrf(n, dl, any(d).([]complex128), any(du).([]complex128), any(du2).([]complex128), ipiv)
	}
	panic("lax: unsupported scalar kind")
}

func gtcon[T Scalar](norm byte, n int32, dl, d, du, du2 []T, ipiv []int32, anorm float64, work []T, iwork []int32) (float64, int32) {
	switch dl := any(dl).(type) {
	case []float32:
		rcond, info := lapack.Sgtcon(norm, n, dl, any(d).([]float32), any(du).([]float32), any(du2).([]float32), ipiv, float32(anorm), any(work).([]float32), iwork)
		return float64(rcond), info
	case []float64:
		return lapack.Dgtcon(norm, n, dl, any(d).([]float64), any(du).([]float64), any(du2).([]float64), ipiv, anorm, any(work).([]float64), iwork)
	case []complex64:
		rcond, info := lapack.Cgtcon(norm, n, dl, any(d).([]complex64), any(du).([]complex64), any(du2).([]complex64), ipiv, float32(anorm), any(work).([]complex64))
		return float64(rcond), info
	case []complex128:
		return lapack.Zgtcon(norm, n, dl, any(d).([]complex128), any(du).([]complex128), any(du2).([]complex128), ipiv, anorm, any(work).([]complex128))
	}
	panic("lax: unsupported scalar kind")
}

func gttrs[T Scalar](trans byte, n, nrhs int32, dl, d, du, du2 []T, ipiv []int32, b []T, ldb int32) int32 {
	switch dl := any(dl).(type) {
	case []float32:
		return lapack.Sgttrs(trans, n, nrhs, dl, any(d).([]float32), any(du).([]float32), any(du2).([]float32), ipiv, any(b).([]float32), ldb)
	case []float64:
		return lapack.Dgttrs(trans, n, nrhs, dl, any(d).([]float64), any(du).([]float64), any(du2).([]float64), ipiv, any(b).([]float64), ldb)
	case []complex64:
		return lapack.Cgttrs(trans, n, nrhs, dl, any(d).([]complex64), any(du).([]complex64), any(du2).([]complex64), ipiv, any(b).([]complex64), ldb)
	case []complex128:
		return lapack.Zgttrs(trans, n, nrhs, dl, any(d).([]complex128), any(du).([]complex128), any(du2).([]complex128), ipiv, any(b).([]complex128), ldb)
	}
	panic("lax: unsupported scalar kind")
}

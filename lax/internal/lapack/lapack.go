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

// Package lapack binds the Fortran LAPACK symbols used by lax.
//
// The wrappers are deliberately thin: scalar arguments are passed by
// reference, arrays are taken as the column-major storage the caller already
// prepared, and the info status code is returned as-is. No validation
// happens at this level; the native routines perform no bounds checking and
// the lax layer is responsible for every shape and layout check before a
// call reaches this package.
//
// Complex arrays cross the boundary as untyped pointers: Go's complex64 and
// complex128 are layout-compatible with Fortran COMPLEX and COMPLEX*16.
package lapack

/*
#cgo LDFLAGS: -llapack -lblas

extern void sgetrf_(const int* m, const int* n, float* a, const int* lda, int* ipiv, int* info);
extern void dgetrf_(const int* m, const int* n, double* a, const int* lda, int* ipiv, int* info);
extern void cgetrf_(const int* m, const int* n, void* a, const int* lda, int* ipiv, int* info);
extern void zgetrf_(const int* m, const int* n, void* a, const int* lda, int* ipiv, int* info);

extern void sgetri_(const int* n, float* a, const int* lda, const int* ipiv, float* work, const int* lwork, int* info);
extern void dgetri_(const int* n, double* a, const int* lda, const int* ipiv, double* work, const int* lwork, int* info);
extern void cgetri_(const int* n, void* a, const int* lda, const int* ipiv, void* work, const int* lwork, int* info);
extern void zgetri_(const int* n, void* a, const int* lda, const int* ipiv, void* work, const int* lwork, int* info);

extern void sgetrs_(const char* trans, const int* n, const int* nrhs, const float* a, const int* lda, const int* ipiv, float* b, const int* ldb, int* info);
extern void dgetrs_(const char* trans, const int* n, const int* nrhs, const double* a, const int* lda, const int* ipiv, double* b, const int* ldb, int* info);
extern void cgetrs_(const char* trans, const int* n, const int* nrhs, const void* a, const int* lda, const int* ipiv, void* b, const int* ldb, int* info);
extern void zgetrs_(const char* trans, const int* n, const int* nrhs, const void* a, const int* lda, const int* ipiv, void* b, const int* ldb, int* info);

extern void sgesvd_(const char* jobu, const char* jobvt, const int* m, const int* n, float* a, const int* lda, float* s, float* u, const int* ldu, float* vt, const int* ldvt, float* work, const int* lwork, int* info);
extern void dgesvd_(const char* jobu, const char* jobvt, const int* m, const int* n, double* a, const int* lda, double* s, double* u, const int* ldu, double* vt, const int* ldvt, double* work, const int* lwork, int* info);
extern void cgesvd_(const char* jobu, const char* jobvt, const int* m, const int* n, void* a, const int* lda, float* s, void* u, const int* ldu, void* vt, const int* ldvt, void* work, const int* lwork, float* rwork, int* info);
extern void zgesvd_(const char* jobu, const char* jobvt, const int* m, const int* n, void* a, const int* lda, double* s, void* u, const int* ldu, void* vt, const int* ldvt, void* work, const int* lwork, double* rwork, int* info);

extern void sgttrf_(const int* n, float* dl, float* d, float* du, float* du2, int* ipiv, int* info);
extern void dgttrf_(const int* n, double* dl, double* d, double* du, double* du2, int* ipiv, int* info);
extern void cgttrf_(const int* n, void* dl, void* d, void* du, void* du2, int* ipiv, int* info);
extern void zgttrf_(const int* n, void* dl, void* d, void* du, void* du2, int* ipiv, int* info);

extern void sgtcon_(const char* norm, const int* n, const float* dl, const float* d, const float* du, const float* du2, const int* ipiv, const float* anorm, float* rcond, float* work, int* iwork, int* info);
extern void dgtcon_(const char* norm, const int* n, const double* dl, const double* d, const double* du, const double* du2, const int* ipiv, const double* anorm, double* rcond, double* work, int* iwork, int* info);
extern void cgtcon_(const char* norm, const int* n, const void* dl, const void* d, const void* du, const void* du2, const int* ipiv, const float* anorm, float* rcond, void* work, int* info);
extern void zgtcon_(const char* norm, const int* n, const void* dl, const void* d, const void* du, const void* du2, const int* ipiv, const double* anorm, double* rcond, void* work, int* info);

extern void sgttrs_(const char* trans, const int* n, const int* nrhs, const float* dl, const float* d, const float* du, const float* du2, const int* ipiv, float* b, const int* ldb, int* info);
extern void dgttrs_(const char* trans, const int* n, const int* nrhs, const double* dl, const double* d, const double* du, const double* du2, const int* ipiv, double* b, const int* ldb, int* info);
extern void cgttrs_(const char* trans, const int* n, const int* nrhs, const void* dl, const void* d, const void* du, const void* du2, const int* ipiv, void* b, const int* ldb, int* info);
extern void zgttrs_(const char* trans, const int* n, const int* nrhs, const void* dl, const void* d, const void* du, const void* du2, const int* ipiv, void* b, const int* ldb, int* info);
*/
import "C"

import "unsafe"

// Pointer helpers. Empty slices become null pointers; the lax layer never
// lets the native code dereference a pointer it is handed for a
// zero-length argument.

func pi(v *int32) *C.int      { return (*C.int)(unsafe.Pointer(v)) }
func pch(v *byte) *C.char     { return (*C.char)(unsafe.Pointer(v)) }
func pf(v *float32) *C.float  { return (*C.float)(unsafe.Pointer(v)) }
func pg(v *float64) *C.double { return (*C.double)(unsafe.Pointer(v)) }

func ps(s []float32) *C.float {
	if len(s) == 0 {
		return nil
	}
	return (*C.float)(unsafe.Pointer(&s[0]))
}

func pd(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}

func pc(s []complex64) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func pz(s []complex128) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func pip(s []int32) *C.int {
	if len(s) == 0 {
		return nil
	}
	return (*C.int)(unsafe.Pointer(&s[0]))
}

// LU factorization of a general m by n matrix (getrf family).

func Sgetrf(m, n int32, a []float32, lda int32, ipiv []int32) int32 {
	var info int32
	C.sgetrf_(pi(&m), pi(&n), ps(a), pi(&lda), pip(ipiv), pi(&info))
	return info
}

func Dgetrf(m, n int32, a []float64, lda int32, ipiv []int32) int32 {
	var info int32
	C.dgetrf_(pi(&m), pi(&n), pd(a), pi(&lda), pip(ipiv), pi(&info))
	return info
}

func Cgetrf(m, n int32, a []complex64, lda int32, ipiv []int32) int32 {
	var info int32
	C.cgetrf_(pi(&m), pi(&n), pc(a), pi(&lda), pip(ipiv), pi(&info))
	return info
}

func Zgetrf(m, n int32, a []complex128, lda int32, ipiv []int32) int32 {
	var info int32
	C.zgetrf_(pi(&m), pi(&n), pz(a), pi(&lda), pip(ipiv), pi(&info))
	return info
}

// Inverse from an LU factorization (getri family). lwork = -1 queries the
// optimal workspace size into work[0].

func Sgetri(n int32, a []float32, lda int32, ipiv []int32, work []float32, lwork int32) int32 {
	var info int32
	C.sgetri_(pi(&n), ps(a), pi(&lda), pip(ipiv), ps(work), pi(&lwork), pi(&info))
	return info
}

func Dgetri(n int32, a []float64, lda int32, ipiv []int32, work []float64, lwork int32) int32 {
	var info int32
	C.dgetri_(pi(&n), pd(a), pi(&lda), pip(ipiv), pd(work), pi(&lwork), pi(&info))
	return info
}

func Cgetri(n int32, a []complex64, lda int32, ipiv []int32, work []complex64, lwork int32) int32 {
	var info int32
	C.cgetri_(pi(&n), pc(a), pi(&lda), pip(ipiv), pc(work), pi(&lwork), pi(&info))
	return info
}

func Zgetri(n int32, a []complex128, lda int32, ipiv []int32, work []complex128, lwork int32) int32 {
	var info int32
	C.zgetri_(pi(&n), pz(a), pi(&lda), pip(ipiv), pz(work), pi(&lwork), pi(&info))
	return info
}

// Solve from an LU factorization (getrs family). trans is 'N', 'T' or 'C'.

func Sgetrs(trans byte, n, nrhs int32, a []float32, lda int32, ipiv []int32, b []float32, ldb int32) int32 {
	var info int32
	C.sgetrs_(pch(&trans), pi(&n), pi(&nrhs), ps(a), pi(&lda), pip(ipiv), ps(b), pi(&ldb), pi(&info))
	return info
}

func Dgetrs(trans byte, n, nrhs int32, a []float64, lda int32, ipiv []int32, b []float64, ldb int32) int32 {
	var info int32
	C.dgetrs_(pch(&trans), pi(&n), pi(&nrhs), pd(a), pi(&lda), pip(ipiv), pd(b), pi(&ldb), pi(&info))
	return info
}

func Cgetrs(trans byte, n, nrhs int32, a []complex64, lda int32, ipiv []int32, b []complex64, ldb int32) int32 {
	var info int32
	C.cgetrs_(pch(&trans), pi(&n), pi(&nrhs), pc(a), pi(&lda), pip(ipiv), pc(b), pi(&ldb), pi(&info))
	return info
}

func Zgetrs(trans byte, n, nrhs int32, a []complex128, lda int32, ipiv []int32, b []complex128, ldb int32) int32 {
	var info int32
	C.zgetrs_(pch(&trans), pi(&n), pi(&nrhs), pz(a), pi(&lda), pip(ipiv), pz(b), pi(&ldb), pi(&info))
	return info
}

// Singular value decomposition (gesvd family). The complex kinds take an
// extra real scratch buffer that is not part of the workspace query.

func Sgesvd(jobu, jobvt byte, m, n int32, a []float32, lda int32, s, u []float32, ldu int32, vt []float32, ldvt int32, work []float32, lwork int32) int32 {
	var info int32
	C.sgesvd_(pch(&jobu), pch(&jobvt), pi(&m), pi(&n), ps(a), pi(&lda), ps(s), ps(u), pi(&ldu), ps(vt), pi(&ldvt), ps(work), pi(&lwork), pi(&info))
	return info
}

func Dgesvd(jobu, jobvt byte, m, n int32, a []float64, lda int32, s, u []float64, ldu int32, vt []float64, ldvt int32, work []float64, lwork int32) int32 {
	var info int32
	C.dgesvd_(pch(&jobu), pch(&jobvt), pi(&m), pi(&n), pd(a), pi(&lda), pd(s), pd(u), pi(&ldu), pd(vt), pi(&ldvt), pd(work), pi(&lwork), pi(&info))
	return info
}

func Cgesvd(jobu, jobvt byte, m, n int32, a []complex64, lda int32, s []float32, u []complex64, ldu int32, vt []complex64, ldvt int32, work []complex64, lwork int32, rwork []float32) int32 {
	var info int32
	C.cgesvd_(pch(&jobu), pch(&jobvt), pi(&m), pi(&n), pc(a), pi(&lda), ps(s), pc(u), pi(&ldu), pc(vt), pi(&ldvt), pc(work), pi(&lwork), ps(rwork), pi(&info))
	return info
}

func Zgesvd(jobu, jobvt byte, m, n int32, a []complex128, lda int32, s []float64, u []complex128, ldu int32, vt []complex128, ldvt int32, work []complex128, lwork int32, rwork []float64) int32 {
	var info int32
	C.zgesvd_(pch(&jobu), pch(&jobvt), pi(&m), pi(&n), pz(a), pi(&lda), pd(s), pz(u), pi(&ldu), pz(vt), pi(&ldvt), pz(work), pi(&lwork), pd(rwork), pi(&info))
	return info
}

// LU factorization of a tridiagonal matrix (gttrf family). The bands are
// overwritten with the factors and du2 receives the second super-diagonal
// of U.

func Sgttrf(n int32, dl, d, du, du2 []float32, ipiv []int32) int32 {
	var info int32
	C.sgttrf_(pi(&n), ps(dl), ps(d), ps(du), ps(du2), pip(ipiv), pi(&info))
	return info
}

func Dgttrf(n int32, dl, d, du, du2 []float64, ipiv []int32) int32 {
	var info int32
	C.dgttrf_(pi(&n), pd(dl), pd(d), pd(du), pd(du2), pip(ipiv), pi(&info))
	return info
}

func Cgttrf(n int32, dl, d, du, du2 []complex64, ipiv []int32) int32 {
	var info int32
	C.cgttrf_(pi(&n), pc(dl), pc(d), pc(du), pc(du2), pip(ipiv), pi(&info))
	return info
}

func Zgttrf(n int32, dl, d, du, du2 []complex128, ipiv []int32) int32 {
	var info int32
	C.zgttrf_(pi(&n), pz(dl), pz(d), pz(du), pz(du2), pip(ipiv), pi(&info))
	return info
}

// Reciprocal condition number estimate from a tridiagonal LU factorization
// (gtcon family). The real kinds take an integer scratch buffer; the
// complex kinds do not.

func Sgtcon(norm byte, n int32, dl, d, du, du2 []float32, ipiv []int32, anorm float32, work []float32, iwork []int32) (float32, int32) {
	var rcond float32
	var info int32
	C.sgtcon_(pch(&norm), pi(&n), ps(dl), ps(d), ps(du), ps(du2), pip(ipiv), pf(&anorm), pf(&rcond), ps(work), pip(iwork), pi(&info))
	return rcond, info
}

func Dgtcon(norm byte, n int32, dl, d, du, du2 []float64, ipiv []int32, anorm float64, work []float64, iwork []int32) (float64, int32) {
	var rcond float64
	var info int32
	C.dgtcon_(pch(&norm), pi(&n), pd(dl), pd(d), pd(du), pd(du2), pip(ipiv), pg(&anorm), pg(&rcond), pd(work), pip(iwork), pi(&info))
	return rcond, info
}

func Cgtcon(norm byte, n int32, dl, d, du, du2 []complex64, ipiv []int32, anorm float32, work []complex64) (float32, int32) {
	var rcond float32
	var info int32
	C.cgtcon_(pch(&norm), pi(&n), pc(dl), pc(d), pc(du), pc(du2), pip(ipiv), pf(&anorm), pf(&rcond), pc(work), pi(&info))
	return rcond, info
}

func Zgtcon(norm byte, n int32, dl, d, du, du2 []complex128, ipiv []int32, anorm float64, work []complex128) (float64, int32) {
	var rcond float64
	var info int32
	C.zgtcon_(pch(&norm), pi(&n), pz(dl), pz(d), pz(du), pz(du2), pip(ipiv), pg(&anorm), pg(&rcond), pz(work), pi(&info))
	return rcond, info
}

// Solve from a tridiagonal LU factorization (gttrs family).

func Sgttrs(trans byte, n, nrhs int32, dl, d, du, du2 []float32, ipiv []int32, b []float32, ldb int32) int32 {
	var info int32
	C.sgttrs_(pch(&trans), pi(&n), pi(&nrhs), ps(dl), ps(d), ps(du), ps(du2), pip(ipiv), ps(b), pi(&ldb), pi(&info))
	return info
}

func Dgttrs(trans byte, n, nrhs int32, dl, d, du, du2 []float64, ipiv []int32, b []float64, ldb int32) int32 {
	var info int32
	C.dgttrs_(pch(&trans), pi(&n), pi(&nrhs), pd(dl), pd(d), pd(du), pd(du2), pip(ipiv), pd(b), pi(&ldb), pi(&info))
	return info
}

func Cgttrs(trans byte, n, nrhs int32, dl, d, du, du2 []complex64, ipiv []int32, b []complex64, ldb int32) int32 {
	var info int32
	C.cgttrs_(pch(&trans), pi(&n), pi(&nrhs), pc(dl), pc(d), pc(du), pc(du2), pip(ipiv), pc(b), pi(&ldb), pi(&info))
	return info
}

func Zgttrs(trans byte, n, nrhs int32, dl, d, du, du2 []complex128, ipiv []int32, b []complex128, ldb int32) int32 {
	var info int32
	C.zgttrs_(pch(&trans), pi(&n), pi(&nrhs), pz(dl), pz(d), pz(du), pz(du2), pip(ipiv), pz(b), pi(&ldb), pi(&info))
	return info
}

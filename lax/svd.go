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

// Singular value decomposition (gesvd family).

// SVDJob selects how much of one side's singular vectors a decomposition
// computes. Only SVDJobAll and SVDJobNone are implemented; the remaining
// values exist because the native routines define them, and requesting one
// panics deterministically before any native call.
type SVDJob byte

const (
	// SVDJobAll computes the full square singular vector matrix.
	SVDJobAll SVDJob = 'A'
	// SVDJobSome would compute only the leading singular vectors.
	SVDJobSome SVDJob = 'S'
	// SVDJobOverwrite would write the leading singular vectors over the
	// input buffer.
	SVDJobOverwrite SVDJob = 'O'
	// SVDJobNone computes no singular vectors for that side.
	SVDJobNone SVDJob = 'N'
)

func svdJob(all bool) SVDJob {
	if all {
		return SVDJobAll
	}
	return SVDJobNone
}

// SVDResult holds the outputs of a singular value decomposition
// A = U * diag(S) * VT.
type SVDResult[T Scalar, R Real] struct {
	// S holds the singular values, non-negative and in descending order,
	// min(rows, cols) of them.
	S []R
	// U is the full rows by rows left singular vector matrix, or nil if
	// not requested. It is stored in the same order as the input layout.
	U []T
	// VT is the full cols by cols right singular vector matrix
	// (transposed, conjugate-transposed for the complex kinds), or nil if
	// not requested. Same storage order as the input layout.
	VT []T
}

// SVD computes the singular value decomposition A = U * diag(S) * VT,
// computing the full left and/or right singular vector matrices as
// requested. R must be the real kind paired with T (float32 for float32 and
// complex64, float64 otherwise).
//
// The input buffer is used as native workspace: its contents after the call
// are backend-defined and must not be relied upon.
func SVD[T Scalar, R Real](l MatrixLayout, calcU, calcVT bool, a []T) (*SVDResult[T, R], error) {
	return SVDJobs[T, R](l, svdJob(calcU), svdJob(calcVT), a)
}

// SVDJobs is the job-level form of SVD. Jobs other than SVDJobAll and
// SVDJobNone are not implemented and panic before any native call; they are
// never silently approximated.
func SVDJobs[T Scalar, R Real](l MatrixLayout, jobU, jobVT SVDJob, a []T) (*SVDResult[T, R], error) {
	checkRealKind[T, R]()
	for _, j := range [2]SVDJob{jobU, jobVT} {
		if j != SVDJobAll && j != SVDJobNone {
			panic("lax: SVD with partial vector output is not implemented")
		}
	}
	l.checkBuffer(len(a))

	rows, cols := l.Size()
	if rows == 0 || cols == 0 {
		// No native call: zero leading dimensions are not defined for
		// every backend build. An empty matrix has no singular values
		// and identity singular vector matrices.
		out := &SVDResult[T, R]{}
		if jobU == SVDJobAll {
			out.U = identity[T](rows)
		}
		if jobVT == SVDJobAll {
			out.VT = identity[T](cols)
		}
		return out, nil
	}

	// The native call sees the raw buffer as column-major. For a
	// row-major layout that is the transposed matrix, which swaps the
	// semantic roles of the two singular vector sides: the job flags are
	// swapped going in and the two outputs swapped back on the way out.
	ju, jvt := jobU, jobVT
	if l.Order() == RowMajor {
		ju, jvt = jobVT, jobU
	}

	m, n := l.fdims()
	var u, vt []T
	if ju == SVDJobAll {
		u = make([]T, int(m)*int(m))
	}
	if jvt == SVDJobAll {
		vt = make([]T, int(n)*int(n))
	}

	k := min(m, n)
	s := make([]R, k)
	var rwork []R
	if isComplex[T]() {
		// Fixed-size real scratch for the complex kinds, outside the
		// workspace query.
		rwork = make([]R, 5*k)
	}

	var query [1]T
	if info := gesvd(byte(ju), byte(jvt), m, n, a, m, s, u, m, vt, n, query[:], lworkQuery, rwork); info != 0 {
		return nil, lapackError(info)
	}
	lwork := toLWork(query[0])
	work := newWork[T](lwork)
	if info := gesvd(byte(ju), byte(jvt), m, n, a, m, s, u, m, vt, n, work, lwork, rwork); info != 0 {
		return nil, lapackError(info)
	}

	out := &SVDResult[T, R]{S: s, U: u, VT: vt}
	if l.Order() == RowMajor {
		out.U, out.VT = out.VT, out.U
	}
	return out, nil
}

func gesvd[T Scalar, R Real](jobu, jobvt byte, m, n int32, a []T, lda int32, s []R, u []T, ldu int32, vt []T, ldvt int32, work []T, lwork int32, rwork []R) int32 {
	switch a := any(a).(type) {
	case []float32:
		return lapack.Sgesvd(jobu, jobvt, m, n, a, lda, any(s).([]float32), any(u).([]float32), ldu, any(vt).([]float32), ldvt, any(work).([]float32), lwork)
	case []float64:
		return lapack.Dgesvd(jobu, jobvt, m, n, a, lda, any(s).([]float64), any(u).([]float64), ldu, any(vt).([]float64), ldvt, any(work).([]float64), lwork)
	case []complex64:
		return lapack.Cgesvd(jobu, jobvt, m, n, a, lda, any(s).([]float32), any(u).([]complex64), ldu, any(vt).([]complex64), ldvt, any(work).([]complex64), lwork, any(rwork).([]float32))
	case []complex128:
		return lapack.Zgesvd(jobu, jobvt, m, n, a, lda, any(s).([]float64), any(u).([]complex128), ldu, any(vt).([]complex128), ldvt, any(work).([]complex128), lwork, any(rwork).([]float64))
	}
	panic("lax: unsupported scalar kind")
}

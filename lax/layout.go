package lax

import "fmt"

// This file describes matrix storage (order, shape, leading dimension) and
// the transpose modes, plus the physical transposition helpers used where a
// raw-memory reinterpretation is not enough.

// Order is the storage order of a matrix buffer.
type Order byte

const (
	// RowMajor stores each row contiguously (C convention).
	RowMajor Order = 'R'
	// ColMajor stores each column contiguously (Fortran convention, the
	// only order the native backend understands).
	ColMajor Order = 'C'
)

// MatrixLayout describes the shape and storage order of a matrix buffer.
// The leading dimension is derived from the order, never caller-supplied:
// it is the column count for a row-major matrix and the row count for a
// column-major one. A buffer described by a layout must hold exactly
// rows*cols elements.
type MatrixLayout struct {
	order Order
	rows  int32
	cols  int32
}

// NewRowMajor returns the layout of a row-major rows by cols matrix.
func NewRowMajor(rows, cols int) MatrixLayout {
	return newLayout(RowMajor, rows, cols)
}

// NewColMajor returns the layout of a column-major rows by cols matrix.
func NewColMajor(rows, cols int) MatrixLayout {
	return newLayout(ColMajor, rows, cols)
}

func newLayout(order Order, rows, cols int) MatrixLayout {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("lax: negative matrix dimension %dx%d", rows, cols))
	}
	return MatrixLayout{order: order, rows: int32(rows), cols: int32(cols)}
}

// Order returns the storage order.
func (l MatrixLayout) Order() Order { return l.order }

// Size returns the row and column counts.
func (l MatrixLayout) Size() (rows, cols int32) { return l.rows, l.cols }

// LDA returns the leading dimension: the stride between successive rows of
// a row-major matrix, or successive columns of a column-major one.
func (l MatrixLayout) LDA() int32 {
	if l.order == RowMajor {
		return l.cols
	}
	return l.rows
}

// fdims returns the dimensions of the buffer when its raw memory is
// reinterpreted as a column-major matrix, which is how every native call
// sees it. For a column-major layout this is (rows, cols); for a row-major
// layout the reinterpretation transposes the matrix, giving (cols, rows).
func (l MatrixLayout) fdims() (m, n int32) {
	if l.order == RowMajor {
		return l.cols, l.rows
	}
	return l.rows, l.cols
}

// checkBuffer panics when the buffer length does not match the layout.
// The native routines perform no bounds checking of their own, so every
// shape violation has to be caught here.
func (l MatrixLayout) checkBuffer(n int) {
	if n != int(l.rows)*int(l.cols) {
		panic(fmt.Sprintf("lax: buffer length %d does not match %dx%d layout", n, l.rows, l.cols))
	}
}

// Transpose selects how a factored matrix is applied in a solve.
type Transpose byte

const (
	// NoTrans solves A x = b.
	NoTrans Transpose = 'N'
	// Trans solves A^T x = b.
	Trans Transpose = 'T'
	// ConjTrans solves A^H x = b. For the real kinds it is identical to
	// Trans.
	ConjTrans Transpose = 'C'
)

// transposeToColMajor copies a row-major matrix into a fresh column-major
// buffer holding the same logical matrix, returning the new layout and
// buffer. Used where the native call needs column-major data and a raw
// reinterpretation would change the semantics.
func transposeToColMajor[T Scalar](l MatrixLayout, a []T) (MatrixLayout, []T) {
	if l.order != RowMajor {
		panic("lax: transposeToColMajor requires a row-major layout")
	}
	r, c := int(l.rows), int(l.cols)
	out := make([]T, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j*r+i] = a[i*c+j]
		}
	}
	return MatrixLayout{order: ColMajor, rows: l.rows, cols: l.cols}, out
}

// transposeBack copies a column-major buffer produced by transposeToColMajor
// into the caller's row-major buffer. l is the column-major layout of ct.
func transposeBack[T Scalar](l MatrixLayout, ct []T, a []T) {
	r, c := int(l.rows), int(l.cols)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a[i*c+j] = ct[j*r+i]
		}
	}
}

package lax

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// testLUSolve factorizes a diagonally dominant random matrix once and
// checks that solving with every transpose mode reproduces the defining
// system op(A) x = b against the saved unfactored matrix.
func testLUSolve[T Scalar](t *testing.T, order Order) {
	t.Helper()
	const n = 5
	r := rand.New(rand.NewSource(42))
	l := newLayout(order, n, n)
	a := make([]T, n*n)
	randFill(r, a)
	for i := 0; i < n; i++ {
		a[i*n+i] += fromFloat[T](n)
	}
	orig := slices.Clone(a)
	b := make([]T, n)
	randFill(r, b)

	piv, err := LU(l, a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}
	if len(piv) != n {
		t.Fatalf("LU pivot length: got %d, want %d", len(piv), n)
	}

	for _, tr := range []Transpose{NoTrans, Trans, ConjTrans} {
		x := slices.Clone(b)
		if err := Solve(l, tr, a, piv, x); err != nil {
			t.Fatalf("Solve(%c): %v", tr, err)
		}
		got := matVec(l, tr, orig, x)
		checkClose(t, "Solve "+string(rune(tr)), got, b, tolFor[T]())
	}
}

func TestLUSolveFloat32(t *testing.T) {
	testLUSolve[float32](t, RowMajor)
	testLUSolve[float32](t, ColMajor)
}

func TestLUSolveFloat64(t *testing.T) {
	testLUSolve[float64](t, RowMajor)
	testLUSolve[float64](t, ColMajor)
}

func TestLUSolveComplex64(t *testing.T) {
	testLUSolve[complex64](t, RowMajor)
	testLUSolve[complex64](t, ColMajor)
}

func TestLUSolveComplex128(t *testing.T) {
	testLUSolve[complex128](t, RowMajor)
	testLUSolve[complex128](t, ColMajor)
}

func TestSolveMatchesReference(t *testing.T) {
	const n = 4
	r := rand.New(rand.NewSource(11))
	a := make([]float64, n*n)
	randFill(r, a)
	for i := 0; i < n; i++ {
		a[i*n+i] += n
	}
	b := make([]float64, n)
	randFill(r, b)

	orig := slices.Clone(a)
	x := slices.Clone(b)
	l := NewRowMajor(n, n)
	piv, err := LU(l, a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}
	if err := Solve(l, NoTrans, a, piv, x); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	var want mat.VecDense
	if err := want.SolveVec(mat.NewDense(n, n, orig), mat.NewVecDense(n, b)); err != nil {
		t.Fatalf("reference solve: %v", err)
	}
	if !floats.EqualApprox(x, want.RawVector().Data, 1e-10) {
		t.Errorf("Solve: got %v, want %v", x, want.RawVector().Data)
	}
}

// testInv inverts a factorized matrix in place and checks A * inv(A)
// against the identity.
func testInv[T Scalar](t *testing.T, order Order) {
	t.Helper()
	const n = 4
	r := rand.New(rand.NewSource(3))
	l := newLayout(order, n, n)
	a := make([]T, n*n)
	randFill(r, a)
	for i := 0; i < n; i++ {
		a[i*n+i] += fromFloat[T](n)
	}
	orig := slices.Clone(a)

	piv, err := LU(l, a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}
	if err := Inv(l, a, piv); err != nil {
		t.Fatalf("Inv: %v", err)
	}

	got := matMul(l, orig, a)
	want := identity[T](n)
	checkClose(t, "A*inv(A)", got, want, tolFor[T]())
}

func TestInvFloat64(t *testing.T) {
	testInv[float64](t, RowMajor)
	testInv[float64](t, ColMajor)
}

func TestInvComplex128(t *testing.T) {
	testInv[complex128](t, RowMajor)
	testInv[complex128](t, ColMajor)
}

func TestInvFloat32(t *testing.T) {
	testInv[float32](t, ColMajor)
}

func TestInvComplex64(t *testing.T) {
	testInv[complex64](t, RowMajor)
}

func TestLUSingularIndex(t *testing.T) {
	// diag(1, 1, 0) factorizes without interchanges and leaves the exact
	// zero on the third diagonal entry of U.
	a := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	for _, l := range []MatrixLayout{NewRowMajor(3, 3), NewColMajor(3, 3)} {
		_, err := LU(l, slices.Clone(a))
		var cf *ComputationalFailureError
		if !errors.As(err, &cf) {
			t.Fatalf("LU of singular matrix: got %v, want computational failure", err)
		}
		if cf.Index != 3 {
			t.Errorf("singular diagonal index: got %d, want 3", cf.Index)
		}
	}
}

func TestLUEmpty(t *testing.T) {
	piv, err := LU(NewColMajor(0, 3), []float64{})
	if err != nil {
		t.Fatalf("LU of empty matrix: %v", err)
	}
	if len(piv) != 0 {
		t.Errorf("empty LU pivot length: got %d, want 0", len(piv))
	}

	if err := Inv(NewRowMajor(0, 0), []float64{}, nil); err != nil {
		t.Errorf("Inv of empty matrix: %v", err)
	}
	if err := Solve(NewRowMajor(0, 0), NoTrans, []float64{}, nil, []float64{}); err != nil {
		t.Errorf("Solve of empty system: %v", err)
	}
}

func TestSolveShapePanics(t *testing.T) {
	mustPanic(t, "buffer mismatch", func() {
		LU(NewRowMajor(2, 2), make([]float64, 3))
	})
	mustPanic(t, "non-square inverse", func() {
		Inv(NewRowMajor(2, 3), make([]float64, 6), Pivot{1, 2})
	})
	mustPanic(t, "non-square solve", func() {
		Solve(NewRowMajor(2, 3), NoTrans, make([]float64, 6), Pivot{1, 2}, make([]float64, 2))
	})
	mustPanic(t, "right-hand side length", func() {
		Solve(NewRowMajor(2, 2), NoTrans, make([]float64, 4), Pivot{1, 2}, make([]float64, 3))
	})
}

// Package linalg implements a few linear algebra routines on 2-D arrays:
// identity construction, Cholesky factorization, triangular solves and
// linear least squares.
//
// Inputs to Cholesky and LeastSquares are not checked for positive
// definiteness or full column rank. Invalid inputs produce NaN-bearing
// results instead of errors.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Common errors.
var (
	ErrNotMatrix = errors.New("linalg: operand is not 2-D")
	ErrNotVector = errors.New("linalg: operand is not 1-D")
	ErrNotSquare = errors.New("linalg: matrix is not square")
)

// Eye returns the n×n identity matrix.
func Eye[T ndarray.Scalar](n int) (*ndarray.Array[T], error) {
	eye, err := ndarray.Zeros[T](ndarray.D2(n, n))
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	for i := 0; i < n; i++ {
		eye.Set(1, i, i)
	}
	return eye, nil
}

func squareDim[T ndarray.Scalar](op string, a *ndarray.Array[T]) (int, error) {
	if a.NDim() != 2 {
		return 0, fmt.Errorf("%s: %w: rank %d", op, ErrNotMatrix, a.NDim())
	}
	m, n := a.Dim().Axis(0), a.Dim().Axis(1)
	if m != n {
		return 0, fmt.Errorf("%s: %w: %d×%d", op, ErrNotSquare, m, n)
	}
	return n, nil
}

func checkRHS[T ndarray.Scalar](op string, n int, b *ndarray.Array[T]) error {
	if b.NDim() != 1 {
		return fmt.Errorf("%s: %w: rank %d", op, ErrNotVector, b.NDim())
	}
	if b.Len() != n {
		return fmt.Errorf("%s: %w: matrix has %d rows, vector has %d elements",
			op, ndarray.ErrDimensionMismatch, n, b.Len())
	}
	return nil
}

// rowDot returns Σ_{k<count} x[k]*y[k] over two rows read in logical order.
func rowDot[T ndarray.Float](x, y *ndarray.Array[T], count int) T {
	var sum T
	xi, yi := x.Iter(), y.Iter()
	for k := 0; k < count; k++ {
		xv, _ := xi.Next()
		yv, _ := yi.Next()
		sum += xv * yv
	}
	return sum
}

func mustRow[T ndarray.Scalar](a *ndarray.Array[T], i int) *ndarray.Array[T] {
	r, err := a.Row(i)
	if err != nil {
		panic(err) // callers index within the validated square shape
	}
	return r
}

// Cholesky factors a = L·Lᵀ and returns the lower-triangular L.
//
// a should be symmetric and positive definite; neither property is
// verified. Only the lower triangle of a is read.
//
// Row i of L is computed from rows 0..i of L:
//
//	L[i,j] = (a[i,j] - Σ_{k<j} L[i,k]·L[j,k]) / L[j,j]   for j < i
//	L[i,i] = sqrt(a[i,i] - Σ_{k<i} L[i,k]²)
func Cholesky[T ndarray.Float](a *ndarray.Array[T]) (*ndarray.Array[T], error) {
	n, err := squareDim("cholesky", a)
	if err != nil {
		return nil, err
	}
	l, err := ndarray.Zeros[T](ndarray.D2(n, n))
	if err != nil {
		return nil, fmt.Errorf("cholesky: %w", err)
	}

	// Row views are released before every write so l stays uniquely owned
	// and Set never has to copy it.
	dot := func(i, j, count int) T {
		li, lj := mustRow(l, i), mustRow(l, j)
		defer li.Release()
		defer lj.Release()
		return rowDot(li, lj, count)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l.Set((a.At(i, j)-dot(i, j, j))/l.At(j, j), i, j)
		}
		l.Set(T(math.Sqrt(float64(a.At(i, i)-dot(i, i, i)))), i, i)
	}
	return l, nil
}

// SubstFw solves L·x = b by forward substitution for lower-triangular L.
//
//	x[i] = (b[i] - Σ_{j<i} L[i,j]·x[j]) / L[i,i]
func SubstFw[T ndarray.Float](l, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	n, err := squareDim("subst_fw", l)
	if err != nil {
		return nil, err
	}
	if err := checkRHS("subst_fw", n, b); err != nil {
		return nil, err
	}

	x := make([]T, n)
	i := 0
	for bi := range b.Values() {
		sum := bi
		row := mustRow(l, i)
		it := row.Iter()
		for j := 0; j < i; j++ {
			lij, _ := it.Next()
			sum -= lij * x[j]
		}
		row.Release()
		x[i] = sum / l.At(i, i)
		i++
	}
	return ndarray.FromSlice(x), nil
}

// SubstBw solves U·x = b by backward substitution for upper-triangular U.
//
//	x[i] = (b[i] - Σ_{j>i} U[i,j]·x[j]) / U[i,i]
//
// U may be a transposed view (for example Lᵀ from SwapAxes).
func SubstBw[T ndarray.Float](u, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	n, err := squareDim("subst_bw", u)
	if err != nil {
		return nil, err
	}
	if err := checkRHS("subst_bw", n, b); err != nil {
		return nil, err
	}

	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		sum := b.At(i)
		row := mustRow(u, i)
		tail, err := row.Slice(ndarray.From(i+1, 1))
		row.Release()
		if err != nil {
			return nil, fmt.Errorf("subst_bw: %w", err)
		}
		j := i + 1
		for uij := range tail.Values() {
			sum -= uij * x[j]
			j++
		}
		tail.Release()
		x[i] = sum / u.At(i, i)
	}
	return ndarray.FromSlice(x), nil
}

// LeastSquares returns x minimizing ‖a·x − b‖₂ for an m×n matrix a with
// m ≥ n, via the normal equations aᵀa·x = aᵀb:
//
//	aᵀa = L·Lᵀ   (Cholesky)
//	L·z  = aᵀb   (forward substitution)
//	Lᵀ·x = z     (backward substitution)
//
// aᵀa must be positive definite, which holds when a has full column rank.
func LeastSquares[T ndarray.Float](a, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	if a.NDim() != 2 {
		return nil, fmt.Errorf("least_squares: %w: rank %d", ErrNotMatrix, a.NDim())
	}
	m, n := a.Dim().Axis(0), a.Dim().Axis(1)
	if err := checkRHS("least_squares", m, b); err != nil {
		return nil, err
	}

	at := a.Clone()
	defer at.Release()
	if err := at.SwapAxes(0, 1); err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}

	ata, err := ndarray.MatMul(at, a)
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}
	l, err := Cholesky(ata)
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}

	col, err := b.Reshape(ndarray.D2(m, 1))
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}
	atb, err := ndarray.MatMul(at, col)
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}
	rhs, err := atb.Reshape(ndarray.D1(n))
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}

	z, err := SubstFw(l, rhs)
	if err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}
	if err := l.SwapAxes(0, 1); err != nil {
		return nil, fmt.Errorf("least_squares: %w", err)
	}
	return SubstBw(l, z)
}

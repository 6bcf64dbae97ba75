package linalg

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
)

func matrix[T ndarray.Scalar](t *testing.T, rows [][]T) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.Arr2(rows)
	require.NoError(t, err)
	return a
}

func transpose[T ndarray.Scalar](t *testing.T, a *ndarray.Array[T]) *ndarray.Array[T] {
	t.Helper()
	at := a.Clone()
	require.NoError(t, at.SwapAxes(0, 1))
	return at
}

func TestEye(t *testing.T) {
	e, err := Eye[int](3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, e.Shape())
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, e.ToSlice())

	e0, err := Eye[float64](0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, e0.Shape())

	_, err = Eye[float64](-1)
	assert.ErrorIs(t, err, ndarray.ErrNegativeDimension)
}

func TestCholesky(t *testing.T) {
	a := matrix(t, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})

	l, err := Cholesky(a)
	require.NoError(t, err)

	want := matrix(t, [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}})
	assert.True(t, l.Equal(want), "got %v", l.ToSlice())
	assert.True(t, l.IsUnique())
}

func TestCholeskyFloat32(t *testing.T) {
	a := matrix(t, [][]float32{{4, 2}, {2, 2}})
	l, err := Cholesky(a)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 0, 1, 1}, l.ToSlice())
}

func TestCholeskyReconstructs(t *testing.T) {
	const n = 5
	rng := rand.New(rand.NewPCG(7, 11))
	m, err := ndarray.Zeros[float64](ndarray.D2(n, n))
	require.NoError(t, err)
	m.Apply(func(float64) float64 { return rng.Float64()*2 - 1 })

	a, err := ndarray.MatMul(m, transpose(t, m))
	require.NoError(t, err)
	eye, err := Eye[float64](n)
	require.NoError(t, err)
	require.NoError(t, a.IAdd(eye.MulScalar(n)))

	l, err := Cholesky(a)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Zero(t, l.At(i, j))
		}
	}

	llt, err := ndarray.MatMul(l, transpose(t, l))
	require.NoError(t, err)
	assert.True(t, ndarray.AllClose(a, llt, 1e-10))
}

func TestCholeskyNotPositiveDefinite(t *testing.T) {
	l, err := Cholesky(matrix(t, [][]float64{{1, 2}, {2, 1}}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(l.At(1, 1)))
}

func TestCholeskyOnView(t *testing.T) {
	a := matrix(t, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
	// a is symmetric, so its transpose factors the same way.
	l, err := Cholesky(transpose(t, a))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0, 6, 1, 0, -8, 5, 3}, l.ToSlice())
}

func TestCholeskyErrors(t *testing.T) {
	_, err := Cholesky(ndarray.Arr1(1.0, 2.0))
	assert.ErrorIs(t, err, ErrNotMatrix)

	_, err = Cholesky(matrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestSubstFw(t *testing.T) {
	l := matrix(t, [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}})
	x, err := SubstFw(l, ndarray.Arr1(2.0, 8.0, 11.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x.ToSlice())
}

func TestSubstBw(t *testing.T) {
	l := matrix(t, [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}})
	x, err := SubstBw(transpose(t, l), ndarray.Arr1(-10.0, 17.0, 9.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x.ToSlice())

	u := matrix(t, [][]float64{{2, 6, -8}, {0, 1, 5}, {0, 0, 3}})
	y, err := SubstBw(u, ndarray.Arr1(-10.0, 17.0, 9.0))
	require.NoError(t, err)
	assert.True(t, x.Equal(y))
}

func TestSubstRoundTrip(t *testing.T) {
	a := matrix(t, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
	l, err := Cholesky(a)
	require.NoError(t, err)

	want := ndarray.Arr1(0.5, -1.0, 2.0)
	b, err := ndarray.MatMul(a, mustReshapeCol(t, want))
	require.NoError(t, err)
	rhs, err := b.Reshape(ndarray.D1(3))
	require.NoError(t, err)

	z, err := SubstFw(l, rhs)
	require.NoError(t, err)
	x, err := SubstBw(transpose(t, l), z)
	require.NoError(t, err)
	assert.True(t, ndarray.AllClose(want, x, 1e-9), "got %v", x.ToSlice())
}

func mustReshapeCol(t *testing.T, v *ndarray.Array[float64]) *ndarray.Array[float64] {
	t.Helper()
	c, err := v.Reshape(ndarray.D2(v.Len(), 1))
	require.NoError(t, err)
	return c
}

func TestSubstErrors(t *testing.T) {
	l := matrix(t, [][]float64{{1, 0}, {1, 1}})

	_, err := SubstFw(l, ndarray.Arr1(1.0, 2.0, 3.0))
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = SubstBw(l, l)
	assert.ErrorIs(t, err, ErrNotVector)

	_, err = SubstFw(ndarray.Arr1(1.0), ndarray.Arr1(1.0))
	assert.ErrorIs(t, err, ErrNotMatrix)

	_, err = SubstBw(matrix(t, [][]float64{{1, 2}}), ndarray.Arr1(1.0))
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestLeastSquares(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		want []float64
	}{
		{"square", [][]float64{{2, 1}, {1, 3}}, []float64{4, 7}, []float64{1, 2}},
		{"exact line", [][]float64{{1, 0}, {1, 1}, {1, 2}}, []float64{1, 3, 5}, []float64{1, 2}},
		{"regression", [][]float64{{1, 0}, {1, 1}, {1, 2}}, []float64{6, 0, 0}, []float64{5, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := matrix(t, tt.a)
			b := ndarray.FromSlice(tt.b)

			x, err := LeastSquares(a, b)
			require.NoError(t, err)
			assert.True(t, ndarray.AllClose(ndarray.FromSlice(tt.want), x, 1e-9), "got %v", x.ToSlice())

			assert.Equal(t, tt.b, b.ToSlice())
			assert.True(t, a.IsStandardLayout(), "input orientation is preserved")
		})
	}
}

func TestLeastSquaresFloat32(t *testing.T) {
	a := matrix(t, [][]float32{{1, 0}, {1, 1}, {1, 2}})
	x, err := LeastSquares(a, ndarray.Arr1[float32](1, 3, 5))
	require.NoError(t, err)
	assert.True(t, ndarray.AllClose(ndarray.Arr1[float32](1, 2), x, 1e-4), "got %v", x.ToSlice())
}

func TestLeastSquaresRankDeficient(t *testing.T) {
	a := matrix(t, [][]float64{{1, 0}, {1, 0}, {1, 0}})
	x, err := LeastSquares(a, ndarray.Arr1(1.0, 2.0, 3.0))
	require.NoError(t, err)
	assert.False(t, ndarray.AllClose(x, x, 1), "singular normal matrix yields NaN")
}

func TestLeastSquaresErrors(t *testing.T) {
	_, err := LeastSquares(ndarray.Arr1(1.0, 2.0), ndarray.Arr1(1.0, 2.0))
	assert.ErrorIs(t, err, ErrNotMatrix)

	a := matrix(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
	_, err = LeastSquares(a, ndarray.Arr1(1.0, 2.0))
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

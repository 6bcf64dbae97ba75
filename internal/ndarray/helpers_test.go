package ndarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// arange returns an array of shape d holding 0, 1, 2, ... in row-major order.
// It fills through IterMut the way callers populate arrays.
func arange[T Scalar](t *testing.T, d Dimension) *Array[T] {
	t.Helper()
	a, err := Zeros[T](d)
	require.NoError(t, err)
	it := a.IterMut()
	for i := 0; ; i++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p = T(i)
	}
	return a
}

func mustArr2[T Scalar](t *testing.T, rows [][]T) *Array[T] {
	t.Helper()
	a, err := Arr2(rows)
	require.NoError(t, err)
	return a
}

func mustZeros[T Scalar](t *testing.T, d Dimension) *Array[T] {
	t.Helper()
	a, err := Zeros[T](d)
	require.NoError(t, err)
	return a
}

func mustSlice[T Scalar](t *testing.T, a *Array[T], sel ...Si) *Array[T] {
	t.Helper()
	v, err := a.Slice(sel...)
	require.NoError(t, err)
	return v
}

func mustReshape[T Scalar](t *testing.T, a *Array[T], d Dimension) *Array[T] {
	t.Helper()
	v, err := a.Reshape(d)
	require.NoError(t, err)
	return v
}

package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	a := mustZeros[int](t, D2(2, 3))
	require.NoError(t, a.Assign(mustArr2(t, [][]int{{1, 2, 3}, {4, 5, 6}})))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.ToSlice())

	require.NoError(t, a.Assign(Arr1(7, 8, 9)))
	assert.Equal(t, []int{7, 8, 9, 7, 8, 9}, a.ToSlice())

	require.NoError(t, a.Assign(Arr1(0)))
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, a.ToSlice())

	require.NoError(t, a.Assign(Arr0(5)))
	assert.Equal(t, []int{5, 5, 5, 5, 5, 5}, a.ToSlice())
}

func TestAssignIncompatible(t *testing.T) {
	a := mustZeros[int](t, D2(2, 3))

	err := a.Assign(Arr1(1, 2))
	assert.ErrorIs(t, err, ErrBroadcast)

	err = a.Assign(mustZeros[int](t, D3(1, 2, 3)))
	assert.ErrorIs(t, err, ErrBroadcast)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, a.ToSlice(), "failed assign leaves a untouched")
}

func TestAssignIntoView(t *testing.T) {
	a := arange[int](t, D2(3, 3))
	col := mustSlice(t, a, S(), Range(1, 2, 1))

	require.NoError(t, col.Assign(Arr1(-1)))
	assert.Equal(t, []int{-1, -1, -1}, col.ToSlice())
	assert.Equal(t, 1, a.At(0, 1), "view writes copy away from the source")
}

func TestAssignFromAliasedView(t *testing.T) {
	a := arange[int](t, D1(4))
	rev := mustSlice(t, a, From(0, -1))

	require.NoError(t, a.Assign(rev))
	assert.Equal(t, []int{3, 2, 1, 0}, a.ToSlice())
	assert.Equal(t, []int{3, 2, 1, 0}, rev.ToSlice())
}

func TestAssignSelf(t *testing.T) {
	a := arange[int](t, D1(4))
	require.NoError(t, a.Assign(a))
	assert.Equal(t, []int{0, 1, 2, 3}, a.ToSlice())
}

func TestInPlaceArithmetic(t *testing.T) {
	a := arange[int](t, D1(4))
	require.NoError(t, a.IAdd(a.Clone()))
	assert.Equal(t, []int{0, 2, 4, 6}, a.ToSlice())

	require.NoError(t, a.ISub(Arr1(1)))
	assert.Equal(t, []int{-1, 1, 3, 5}, a.ToSlice())

	require.NoError(t, a.IMul(Arr1(2, 2, 2, 2)))
	assert.Equal(t, []int{-2, 2, 6, 10}, a.ToSlice())

	require.NoError(t, a.IDiv(Arr0(2)))
	assert.Equal(t, []int{-1, 1, 3, 5}, a.ToSlice())

	assert.ErrorIs(t, a.IAdd(Arr1(1, 2)), ErrBroadcast)
}

func TestInPlaceOnSharedBuffer(t *testing.T) {
	a := arange[float64](t, D1(3))
	b := a.Clone()

	require.NoError(t, a.IAdd(Arr1(1.0, 1.0, 1.0)))
	assert.Equal(t, []float64{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []float64{0, 1, 2}, b.ToSlice())
}

func TestBinaryBroadcast(t *testing.T) {
	a := mustArr2(t, [][]int{{10, 20, 30}})
	b := mustArr2(t, [][]int{{1}, {2}})

	c, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, c.Shape())
	assert.Equal(t, []int{11, 21, 31, 12, 22, 32}, c.ToSlice())

	c, err = Sub(a, Arr1(10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20}, c.ToSlice())

	c, err = Mul(b, Arr1(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 2, 20}, c.ToSlice())

	c, err = Div(a, Arr0(10))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
}

func TestBinaryLeavesOperandsUntouched(t *testing.T) {
	a := arange[int](t, D2(2, 2))
	b := a.Clone()

	c, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, c.ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3}, a.ToSlice())
	assert.True(t, c.IsUnique())
}

func TestBinaryIncompatible(t *testing.T) {
	_, err := Add(Arr1(1, 2, 3), Arr1(1, 2))
	assert.ErrorIs(t, err, ErrBroadcast)
}

func TestBinaryOnNegativeStrides(t *testing.T) {
	a := arange[int](t, D1(4))
	rev := mustSlice(t, a, From(0, -1))
	c, err := Add(a, rev)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 3}, c.ToSlice())
}

func TestMap(t *testing.T) {
	a := mustArr2(t, [][]float32{{1, 2}, {3, 4}})
	b := Map(a, func(x float32) int { return int(x / 3) })
	assert.Equal(t, []int{2, 2}, b.Shape())
	assert.Equal(t, []int{0, 0, 1, 1}, b.ToSlice())

	require.NoError(t, a.SwapAxes(0, 1))
	c := Map(a, func(x float32) float32 { return x })
	assert.True(t, c.IsStandardLayout())
	assert.Equal(t, []float32{1, 3, 2, 4}, c.RawData())
}

func TestScalarOps(t *testing.T) {
	a := Arr1(1.0, 2.0, 3.0)

	assert.Equal(t, []float64{2, 4, 6}, a.MulScalar(2).ToSlice())
	assert.Equal(t, []float64{3, 4, 5}, a.AddScalar(2).ToSlice())
	assert.Equal(t, []float64{0, 1, 2}, a.SubScalar(1).ToSlice())
	assert.Equal(t, []float64{0.5, 1, 1.5}, a.DivScalar(2).ToSlice())
	assert.Equal(t, []float64{1, 2, 3}, a.ToSlice())
}

func TestInPlaceScalarOps(t *testing.T) {
	a := arange[int](t, D1(3))
	b := a.Clone()

	a.IAddScalar(1)
	a.IMulScalar(4)
	a.ISubScalar(2)
	a.IDivScalar(2)
	assert.Equal(t, []int{1, 3, 5}, a.ToSlice())
	assert.Equal(t, []int{0, 1, 2}, b.ToSlice())
}

func TestApplyAndFill(t *testing.T) {
	a := arange[int](t, D2(2, 2))
	b := a.Clone()

	a.Apply(func(x int) int { return x * x })
	assert.Equal(t, []int{0, 1, 4, 9}, a.ToSlice())

	b.Fill(7)
	assert.Equal(t, []int{7, 7, 7, 7}, b.ToSlice())
	assert.Equal(t, []int{0, 1, 4, 9}, a.ToSlice())
}

func TestAllClose(t *testing.T) {
	a := Arr1(1.0, 2.0, 3.0)
	b := Arr1(1.0, 2.0+1e-9, 3.0)

	assert.True(t, AllClose(a, b, 1e-6))
	assert.False(t, AllClose(a, b, 1e-12))
	assert.False(t, AllClose(a, Arr1(1.0, 2.0), 1))

	nan := Arr1(1.0, math.NaN(), 3.0)
	assert.False(t, AllClose(nan, nan, 1))
}

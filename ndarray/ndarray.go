// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Type aliases for public API

// Scalar is a constraint for array element types (integers and floats).
type Scalar = ndarray.Scalar

// Float is a constraint for floating-point element types.
type Float = ndarray.Float

// Array is an N-dimensional view over copy-on-write storage.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](ndarray.D2(2, 2))
//	b := a.Clone()
//	a.Set(1, 0, 0) // b still reads 0
type Array[T Scalar] = ndarray.Array[T]

// Iter yields array elements in logical order.
type Iter[T Scalar] = ndarray.Iter[T]

// IterMut yields pointers to array elements in logical order.
type IterMut[T Scalar] = ndarray.IterMut[T]

// Dimension describes the shape of an array.
type Dimension = ndarray.Dimension

// Fixed-rank shapes.
type (
	Ix0 = ndarray.Ix0
	Ix1 = ndarray.Ix1
	Ix2 = ndarray.Ix2
	Ix3 = ndarray.Ix3
	Ix4 = ndarray.Ix4
	Ix5 = ndarray.Ix5
	Ix6 = ndarray.Ix6
)

// IxDyn is a shape whose rank is only known at runtime.
type IxDyn = ndarray.IxDyn

// Si selects indices along one axis for Array.Slice.
type Si = ndarray.Si

// ShapeError reports the operands of a failed shape check.
type ShapeError = ndarray.ShapeError

// ParallelConfig controls how MatMulWith splits rows across goroutines.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrBroadcast         = ndarray.ErrBroadcast
	ErrIndexOutOfRange   = ndarray.ErrIndexOutOfRange
	ErrAxisOutOfRange    = ndarray.ErrAxisOutOfRange
	ErrSliceOutOfRange   = ndarray.ErrSliceOutOfRange
	ErrZeroStep          = ndarray.ErrZeroStep
	ErrShapeOverflow     = ndarray.ErrShapeOverflow
	ErrNegativeDimension = ndarray.ErrNegativeDimension
	ErrEmptyAxis         = ndarray.ErrEmptyAxis
)

// Shapes

// D0 returns the shape of a 0-D (scalar) array.
func D0() Ix0 { return ndarray.D0() }

// D1 returns a 1-D shape.
func D1(n int) Ix1 { return ndarray.D1(n) }

// D2 returns a 2-D shape.
func D2(rows, cols int) Ix2 { return ndarray.D2(rows, cols) }

// D3 returns a 3-D shape.
func D3(a, b, c int) Ix3 { return ndarray.D3(a, b, c) }

// D4 returns a 4-D shape.
func D4(a, b, c, d int) Ix4 { return ndarray.D4(a, b, c, d) }

// D5 returns a 5-D shape.
func D5(a, b, c, d, e int) Ix5 { return ndarray.D5(a, b, c, d, e) }

// D6 returns a 6-D shape.
func D6(a, b, c, d, e, f int) Ix6 { return ndarray.D6(a, b, c, d, e, f) }

// Dyn returns a dynamic-rank shape.
func Dyn(axes ...int) IxDyn { return ndarray.Dyn(axes...) }

// FixedDim returns the fixed-rank shape for axes (IxDyn above rank 6).
func FixedDim(axes []int) Dimension { return ndarray.FixedDim(axes) }

// Size returns the element count of d (1 for a 0-D shape).
func Size(d Dimension) int { return ndarray.Size(d) }

// CheckedSize is Size with validation of lengths and overflow.
func CheckedSize(d Dimension) (int, error) { return ndarray.CheckedSize(d) }

// DefaultStrides returns the row-major strides for d.
func DefaultStrides(d Dimension) []int { return ndarray.DefaultStrides(d) }

// SameShape reports whether a and b have equal rank and lengths.
func SameShape(a, b Dimension) bool { return ndarray.SameShape(a, b) }

// BroadcastShapes returns the broadcast shape of a and b.
func BroadcastShapes(a, b Dimension) (Dimension, bool, error) { return ndarray.BroadcastShapes(a, b) }

// Slicing

// S selects a whole axis.
func S() Si { return ndarray.S() }

// Range selects [start, end) with the given step.
func Range(start, end, step int) Si { return ndarray.Range(start, end, step) }

// From selects from start to the end of the axis with the given step.
func From(start, step int) Si { return ndarray.From(start, step) }

// Construction

// Zeros creates an array filled with zeros.
func Zeros[T Scalar](d Dimension) (*Array[T], error) { return ndarray.Zeros[T](d) }

// Ones creates an array filled with ones.
func Ones[T Scalar](d Dimension) (*Array[T], error) { return ndarray.Ones[T](d) }

// Full creates an array filled with v.
func Full[T Scalar](d Dimension, v T) (*Array[T], error) { return ndarray.Full(d, v) }

// FromSlice creates a 1-D array from a copy of values.
func FromSlice[T Scalar](values []T) *Array[T] { return ndarray.FromSlice(values) }

// FromSeq creates a 1-D array from a finite sequence.
func FromSeq[T Scalar](seq iter.Seq[T]) *Array[T] { return ndarray.FromSeq(seq) }

// FromSliceDim creates an array of shape d from values in row-major order.
func FromSliceDim[T Scalar](d Dimension, values []T) (*Array[T], error) {
	return ndarray.FromSliceDim(d, values)
}

// Arr0 creates a 0-D array.
func Arr0[T Scalar](v T) *Array[T] { return ndarray.Arr0(v) }

// Arr1 creates a 1-D array.
func Arr1[T Scalar](values ...T) *Array[T] { return ndarray.Arr1(values...) }

// Arr2 creates a 2-D array from equal-length rows.
func Arr2[T Scalar](rows [][]T) (*Array[T], error) { return ndarray.Arr2(rows) }

// Arithmetic

// Add returns a + b with broadcasting.
func Add[T Scalar](a, b *Array[T]) (*Array[T], error) { return ndarray.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Scalar](a, b *Array[T]) (*Array[T], error) { return ndarray.Sub(a, b) }

// Mul returns a * b elementwise with broadcasting.
func Mul[T Scalar](a, b *Array[T]) (*Array[T], error) { return ndarray.Mul(a, b) }

// Div returns a / b elementwise with broadcasting.
func Div[T Scalar](a, b *Array[T]) (*Array[T], error) { return ndarray.Div(a, b) }

// Map returns f applied to every element of a.
func Map[T, U Scalar](a *Array[T], f func(T) U) *Array[U] { return ndarray.Map(a, f) }

// AllClose reports whether a and b have equal shapes and elements within tol.
func AllClose[T Float](a, b *Array[T], tol T) bool { return ndarray.AllClose(a, b, tol) }

// MatMul returns the matrix product of two 2-D arrays.
func MatMul[T Scalar](a, b *Array[T]) (*Array[T], error) { return ndarray.MatMul(a, b) }

// MatMulWith is MatMul with an explicit parallelism config.
func MatMulWith[T Scalar](a, b *Array[T], cfg ParallelConfig) (*Array[T], error) {
	return ndarray.MatMulWith(a, b, cfg)
}

// DefaultParallelConfig returns the config used by MatMul.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// SequentialConfig returns a config that keeps MatMulWith on one goroutine.
func SequentialConfig() ParallelConfig { return parallel.Sequential() }

package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// Array is an N-dimensional view over copy-on-write storage.
//
// An element at index (i0, i1, ...) lives at buffer position
// offset + Σ i_k*strides[k]. Strides are signed: a negative stride walks an
// axis backwards and a zero stride repeats one element along it.
//
// Clone and every view operation (Slice, Reshape, Subview, Diag,
// BroadcastTo) share the buffer and are O(1). The first write through any
// handle whose buffer is shared copies the buffer for that handle only.
//
// Example:
//
//	a, _ := ndarray.Zeros[float64](ndarray.D2(2, 2))
//	b := a.Clone()   // shares the buffer
//	a.Set(1, 0, 0)   // a gets a private copy, b still reads 0
type Array[T Scalar] struct {
	store   *storage[T]
	dim     Dimension
	strides []int
	offset  int
}

// newArray wraps a storage handle. The handle's reference is owned by the
// returned array and dropped with it.
func newArray[T Scalar](s *storage[T], d Dimension, strides []int, offset int) *Array[T] {
	a := &Array[T]{store: s, dim: ownDim(d), strides: strides, offset: offset}
	track(a, s)
	return a
}

// fromData builds a standard-layout array that owns data.
func fromData[T Scalar](d Dimension, data []T) *Array[T] {
	return newArray(&storage[T]{buf: newBufferFrom(data)}, d, DefaultStrides(d), 0)
}

// Zeros creates an array of the given shape filled with zeros.
//
// Example:
//
//	a, err := ndarray.Zeros[float32](ndarray.D3(2, 4, 2))
func Zeros[T Scalar](d Dimension) (*Array[T], error) {
	n, err := CheckedSize(d)
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return newArray(allocate[T](n), d, DefaultStrides(d), 0), nil
}

// Full creates an array of the given shape filled with v.
func Full[T Scalar](d Dimension, v T) (*Array[T], error) {
	a, err := Zeros[T](d)
	if err != nil {
		return nil, err
	}
	for i := range a.store.buf.data {
		a.store.buf.data[i] = v
	}
	return a, nil
}

// Ones creates an array of the given shape filled with ones.
func Ones[T Scalar](d Dimension) (*Array[T], error) {
	return Full(d, T(1))
}

// FromSlice creates a 1-D array holding a copy of values.
func FromSlice[T Scalar](values []T) *Array[T] {
	return fromData[T](D1(len(values)), slices.Clone(values))
}

// FromSeq creates a 1-D array from a finite sequence.
func FromSeq[T Scalar](seq iter.Seq[T]) *Array[T] {
	return FromSlice(slices.Collect(seq))
}

// FromSliceDim creates an array of shape d from values in row-major order.
// The slice is copied into the array's storage.
func FromSliceDim[T Scalar](d Dimension, values []T) (*Array[T], error) {
	n, err := CheckedSize(d)
	if err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if n != len(values) {
		return nil, fmt.Errorf("from slice: shape %v requires %d elements, but got %d: %w",
			d.Axes(), n, len(values), ErrDimensionMismatch)
	}
	return fromData(d, slices.Clone(values)), nil
}

// Arr0 creates a 0-D array holding v.
func Arr0[T Scalar](v T) *Array[T] {
	return fromData[T](D0(), []T{v})
}

// Arr1 creates a 1-D array from values.
func Arr1[T Scalar](values ...T) *Array[T] {
	return FromSlice(values)
}

// Arr2 creates a 2-D array from rows. All rows must have the same length;
// no rows at all gives a 0×0 array.
func Arr2[T Scalar](rows [][]T) (*Array[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("arr2: row %d has %d elements, want %d: %w", i, len(r), cols, ErrDimensionMismatch)
		}
		data = append(data, r...)
	}
	return fromData[T](D2(len(rows), cols), data), nil
}

// Dim returns the array's shape in the representation it was created with.
// An IxDyn result is a copy.
func (a *Array[T]) Dim() Dimension {
	return ownDim(a.dim)
}

// Shape returns a copy of the axis lengths.
func (a *Array[T]) Shape() []int {
	return a.dim.Axes()
}

// Strides returns a copy of the per-axis strides, in elements.
func (a *Array[T]) Strides() []int {
	return slices.Clone(a.strides)
}

// Offset returns the buffer position of the first logical element.
func (a *Array[T]) Offset() int {
	return a.offset
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return a.dim.NDim()
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return Size(a.dim)
}

// RawData returns the whole backing buffer, including elements outside the
// view. It must be treated as read-only.
func (a *Array[T]) RawData() []T {
	return a.store.buf.data
}

// IsUnique reports whether a is the only handle on its buffer.
// When true, writes happen in place without copying.
//
// A dropped sibling keeps its reference until the garbage collector runs
// its cleanup, so uniqueness is only guaranteed once every other handle
// has been Released.
func (a *Array[T]) IsUnique() bool {
	return a.store.buf.isUnique()
}

// Release drops a's reference on its buffer ahead of garbage collection.
// The array must not be used afterwards. Calling Release twice is safe.
// Releasing temporary views and clones lets the next write through a
// sibling happen in place instead of copying the whole buffer.
func (a *Array[T]) Release() {
	a.store.release()
}

// IsStandardLayout reports whether the strides are the default row-major
// strides for the shape. Axes of length 1 are ignored, and an empty array
// is always standard.
func (a *Array[T]) IsStandardLayout() bool {
	if a.Len() == 0 {
		return true
	}
	def := DefaultStrides(a.dim)
	for i, s := range a.strides {
		if a.dim.Axis(i) > 1 && s != def[i] {
			return false
		}
	}
	return true
}

func (a *Array[T]) index(idx []int) int {
	off := a.offset
	for i, ix := range idx {
		off += ix * a.strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if the number of indices differs from NDim or any index is out of range.
//
// Example:
//
//	v := a.At(1, 2) // row 1, column 2
func (a *Array[T]) At(idx ...int) T {
	if err := checkIndex(a.dim, idx); err != nil {
		panic(err)
	}
	return a.store.buf.data[a.index(idx)]
}

// Set stores v at the given indices, copying the buffer first if it is shared.
// Panics under the same conditions as At.
func (a *Array[T]) Set(v T, idx ...int) {
	if err := checkIndex(a.dim, idx); err != nil {
		panic(err)
	}
	a.store.ensureUnique()
	a.store.buf.data[a.index(idx)] = v
}

// Get is At returning an error instead of panicking.
func (a *Array[T]) Get(idx ...int) (T, error) {
	if err := checkIndex(a.dim, idx); err != nil {
		var zero T
		return zero, err
	}
	return a.store.buf.data[a.index(idx)], nil
}

// Put is Set returning an error instead of panicking.
func (a *Array[T]) Put(v T, idx ...int) error {
	if err := checkIndex(a.dim, idx); err != nil {
		return err
	}
	a.store.ensureUnique()
	a.store.buf.data[a.index(idx)] = v
	return nil
}

// Clone returns a new handle on the same buffer in O(1).
// The two diverge at the first write through either of them.
func (a *Array[T]) Clone() *Array[T] {
	return newArray(a.store.share(), a.dim, slices.Clone(a.strides), a.offset)
}

// view returns a new handle on a's buffer with a different geometry.
func (a *Array[T]) view(d Dimension, strides []int, offset int) *Array[T] {
	return newArray(a.store.share(), d, strides, offset)
}

// collect copies the elements of a into a new slice in logical order.
func (a *Array[T]) collect() []T {
	out := make([]T, 0, a.Len())
	data := a.store.buf.data
	cur := a.cursor()
	for off, ok := cur.next(); ok; off, ok = cur.next() {
		out = append(out, data[off])
	}
	return out
}

// ToStandardLayout returns a standard-layout array with the same elements.
// An array that is already standard is shared rather than copied.
func (a *Array[T]) ToStandardLayout() *Array[T] {
	if a.IsStandardLayout() {
		return a.Clone()
	}
	return fromData(a.dim, a.collect())
}

// ToSlice returns the elements in logical order.
func (a *Array[T]) ToSlice() []T {
	return a.collect()
}

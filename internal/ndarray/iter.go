package ndarray

import (
	"iter"
	"slices"
)

// cursor walks the buffer offsets of a view in logical row-major order.
// The last axis varies fastest; strides may be negative or zero.
type cursor struct {
	dims      []int
	strides   []int
	index     []int
	offset    int
	remaining int
}

func newCursor(dims, strides []int, offset int) cursor {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return cursor{
		dims:      slices.Clone(dims),
		strides:   slices.Clone(strides),
		index:     make([]int, len(dims)),
		offset:    offset,
		remaining: n,
	}
}

// next returns the offset of the current element and advances.
func (c *cursor) next() (int, bool) {
	if c.remaining == 0 {
		return 0, false
	}
	off := c.offset
	c.remaining--
	for i := len(c.dims) - 1; i >= 0; i-- {
		c.index[i]++
		c.offset += c.strides[i]
		if c.index[i] < c.dims[i] {
			break
		}
		c.offset -= c.strides[i] * c.dims[i]
		c.index[i] = 0
	}
	return off, true
}

func (a *Array[T]) cursor() cursor {
	return newCursor(a.dim.Axes(), a.strides, a.offset)
}

// Iter yields the elements of an array in logical order.
//
// The shape, strides, offset and buffer are captured when the iterator is
// created; later changes to the array are not observed.
type Iter[T Scalar] struct {
	data []T
	cur  cursor
}

// Iter returns an iterator over the elements of a in row-major logical order,
// independent of the memory layout.
//
// Example:
//
//	it := a.Iter()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    fmt.Println(v)
//	}
func (a *Array[T]) Iter() *Iter[T] {
	return &Iter[T]{data: a.store.buf.data, cur: a.cursor()}
}

// Next returns the next element, or false once the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	off, ok := it.cur.next()
	if !ok {
		var zero T
		return zero, false
	}
	return it.data[off], true
}

// Len returns the exact number of elements not yet produced.
func (it *Iter[T]) Len() int {
	return it.cur.remaining
}

// SizeHint returns lower and upper bounds on the remaining length.
// Both are always exact.
func (it *Iter[T]) SizeHint() (int, int) {
	return it.cur.remaining, it.cur.remaining
}

// IterMut yields pointers to the elements of an array in logical order.
type IterMut[T Scalar] struct {
	data []T
	cur  cursor
}

// IterMut makes the storage of a unique and returns an iterator of pointers
// into it. The pointers must not be used after a is cloned again.
func (a *Array[T]) IterMut() *IterMut[T] {
	a.store.ensureUnique()
	return &IterMut[T]{data: a.store.buf.data, cur: a.cursor()}
}

// Next returns a pointer to the next element.
func (it *IterMut[T]) Next() (*T, bool) {
	off, ok := it.cur.next()
	if !ok {
		return nil, false
	}
	return &it.data[off], true
}

// Len returns the exact number of elements not yet produced.
func (it *IterMut[T]) Len() int {
	return it.cur.remaining
}

// SizeHint returns lower and upper bounds on the remaining length.
func (it *IterMut[T]) SizeHint() (int, int) {
	return it.cur.remaining, it.cur.remaining
}

// Values returns a range-over-func sequence of the elements of a.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed returns a sequence of (index, element) pairs in logical order.
// The index slice is freshly allocated for every element.
func (a *Array[T]) Indexed() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		data := a.store.buf.data
		cur := a.cursor()
		for {
			idx := slices.Clone(cur.index)
			off, ok := cur.next()
			if !ok || !yield(idx, data[off]) {
				return
			}
		}
	}
}

// zip walks two same-shaped views in lockstep.
func zip[T, U Scalar](a *Array[T], b *Array[U], f func(ia, ib int)) {
	ca, cb := a.cursor(), b.cursor()
	for {
		ia, ok := ca.next()
		if !ok {
			return
		}
		ib, _ := cb.next()
		f(ia, ib)
	}
}

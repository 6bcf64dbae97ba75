package ndarray

import (
	"runtime"
	"sync/atomic"
)

// buffer is a reference-counted element buffer shared by every array derived
// from a common ancestor. It is written in place only while refs == 1.
type buffer[T any] struct {
	data []T
	refs atomic.Int32
}

// newBuffer allocates a zero-filled buffer with refs = 1.
func newBuffer[T any](n int) *buffer[T] {
	b := &buffer[T]{data: make([]T, n)}
	b.refs.Store(1)
	return b
}

// newBufferFrom takes ownership of data.
func newBufferFrom[T any](data []T) *buffer[T] {
	b := &buffer[T]{data: data}
	b.refs.Store(1)
	return b
}

func (b *buffer[T]) addRef() {
	b.refs.Add(1)
}

// release drops one reference and frees the elements at zero.
func (b *buffer[T]) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

func (b *buffer[T]) isUnique() bool {
	return b.refs.Load() == 1
}

// storage is the per-array handle onto a buffer. Each live array owns
// exactly one storage, and each storage holds exactly one buffer reference.
type storage[T any] struct {
	buf      *buffer[T]
	released atomic.Bool
}

// allocate returns a handle to a fresh zero-filled buffer of n elements.
func allocate[T any](n int) *storage[T] {
	return &storage[T]{buf: newBuffer[T](n)}
}

// share returns a new handle onto the same buffer.
func (s *storage[T]) share() *storage[T] {
	s.buf.addRef()
	return &storage[T]{buf: s.buf}
}

// ensureUnique rebinds s to a private copy of its buffer when the buffer is
// shared. After it returns, writes through s are invisible to every sibling.
func (s *storage[T]) ensureUnique() {
	if s.buf.isUnique() {
		return
	}
	old := s.buf
	data := make([]T, len(old.data))
	copy(data, old.data)
	s.buf = newBufferFrom(data)
	old.release()
}

func (s *storage[T]) release() {
	if s.released.CompareAndSwap(false, true) {
		s.buf.release()
	}
}

// track ties the lifetime of s to owner: once owner is unreachable the
// buffer reference is dropped.
func track[T any, O any](owner *O, s *storage[T]) {
	runtime.AddCleanup(owner, func(st *storage[T]) { st.release() }, s)
}

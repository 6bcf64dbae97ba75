package ndarray

import (
	"fmt"
	"math/bits"
	"slices"
)

// Dimension describes the shape of an array.
//
// Two representations implement it: fixed-rank index tuples (Ix0 through Ix6)
// and the dynamic-rank IxDyn. Every array algorithm is written against this
// interface only, so an Ix2{2, 3} and an IxDyn{2, 3} behave identically.
type Dimension interface {
	// NDim returns the number of axes.
	NDim() int

	// Axes returns a fresh copy of the axis lengths.
	Axes() []int

	// Axis returns the length of axis i.
	Axis(i int) int

	// WithAxes returns a dimension of the same representation with new
	// lengths. Fixed-rank kinds require len(axes) == NDim().
	WithAxes(axes []int) (Dimension, error)

	// RemoveAxis returns the dimension with one axis dropped.
	// Panics if axis is out of range.
	RemoveAxis(axis int) Dimension
}

// Fixed-rank dimensions.
type (
	Ix0 [0]int
	Ix1 [1]int
	Ix2 [2]int
	Ix3 [3]int
	Ix4 [4]int
	Ix5 [5]int
	Ix6 [6]int
)

// IxDyn is a dimension whose rank is only known at runtime.
type IxDyn []int

// D0 returns the shape of a scalar (0-D) array.
func D0() Ix0 { return Ix0{} }

// D1 returns a 1-D shape.
func D1(n int) Ix1 { return Ix1{n} }

// D2 returns a 2-D shape.
func D2(rows, cols int) Ix2 { return Ix2{rows, cols} }

// D3 returns a 3-D shape.
func D3(a, b, c int) Ix3 { return Ix3{a, b, c} }

// D4 returns a 4-D shape.
func D4(a, b, c, d int) Ix4 { return Ix4{a, b, c, d} }

// D5 returns a 5-D shape.
func D5(a, b, c, d, e int) Ix5 { return Ix5{a, b, c, d, e} }

// D6 returns a 6-D shape.
func D6(a, b, c, d, e, f int) Ix6 { return Ix6{a, b, c, d, e, f} }

// Dyn returns a dynamic-rank shape.
func Dyn(axes ...int) IxDyn { return IxDyn(slices.Clone(axes)) }

// FixedDim returns the fixed-rank representation for the given lengths,
// falling back to IxDyn above rank 6.
func FixedDim(axes []int) Dimension {
	switch len(axes) {
	case 0:
		return Ix0{}
	case 1:
		return Ix1(axes)
	case 2:
		return Ix2(axes)
	case 3:
		return Ix3(axes)
	case 4:
		return Ix4(axes)
	case 5:
		return Ix5(axes)
	case 6:
		return Ix6(axes)
	default:
		return Dyn(axes...)
	}
}

func (d Ix0) NDim() int { return 0 }
func (d Ix1) NDim() int { return 1 }
func (d Ix2) NDim() int { return 2 }
func (d Ix3) NDim() int { return 3 }
func (d Ix4) NDim() int { return 4 }
func (d Ix5) NDim() int { return 5 }
func (d Ix6) NDim() int { return 6 }

// NDim returns the number of axes.
func (d IxDyn) NDim() int { return len(d) }

func (d Ix0) Axes() []int { return []int{} }
func (d Ix1) Axes() []int { return d[:] }
func (d Ix2) Axes() []int { return d[:] }
func (d Ix3) Axes() []int { return d[:] }
func (d Ix4) Axes() []int { return d[:] }
func (d Ix5) Axes() []int { return d[:] }
func (d Ix6) Axes() []int { return d[:] }

// Axes returns a copy of the axis lengths.
func (d IxDyn) Axes() []int { return slices.Clone([]int(d)) }

func (d Ix0) Axis(i int) int { panic(fmt.Sprintf("axis %d out of range for 0-D shape", i)) }
func (d Ix1) Axis(i int) int { return d[i] }
func (d Ix2) Axis(i int) int { return d[i] }
func (d Ix3) Axis(i int) int { return d[i] }
func (d Ix4) Axis(i int) int { return d[i] }
func (d Ix5) Axis(i int) int { return d[i] }
func (d Ix6) Axis(i int) int { return d[i] }

// Axis returns the length of axis i.
func (d IxDyn) Axis(i int) int { return d[i] }

func (d Ix0) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix1) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix2) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix3) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix4) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix5) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }
func (d Ix6) WithAxes(axes []int) (Dimension, error) { return withFixed(d, axes) }

// WithAxes returns a new IxDyn holding a copy of axes.
func (d IxDyn) WithAxes(axes []int) (Dimension, error) { return Dyn(axes...), nil }

func (d Ix0) RemoveAxis(axis int) Dimension { panic("cannot remove an axis from a 0-D shape") }
func (d Ix1) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }
func (d Ix2) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }
func (d Ix3) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }
func (d Ix4) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }
func (d Ix5) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }
func (d Ix6) RemoveAxis(axis int) Dimension { return FixedDim(dropAxis(d[:], axis)) }

// RemoveAxis returns a dynamic shape without the given axis.
func (d IxDyn) RemoveAxis(axis int) Dimension { return IxDyn(dropAxis(d, axis)) }

// ownDim returns d with any backing slice copied, so later changes to the
// caller's IxDyn cannot alter an array's shape.
func ownDim(d Dimension) Dimension {
	if dyn, ok := d.(IxDyn); ok {
		return Dyn(dyn...)
	}
	return d
}

func withFixed(d Dimension, axes []int) (Dimension, error) {
	if len(axes) != d.NDim() {
		return nil, fmt.Errorf("%w: rank %d shape cannot hold %d axes", ErrDimensionMismatch, d.NDim(), len(axes))
	}
	return FixedDim(slices.Clone(axes)), nil
}

func dropAxis(axes []int, axis int) []int {
	if axis < 0 || axis >= len(axes) {
		panic(fmt.Sprintf("axis %d out of range for rank %d", axis, len(axes)))
	}
	out := make([]int, 0, len(axes)-1)
	out = append(out, axes[:axis]...)
	return append(out, axes[axis+1:]...)
}

// Size returns the number of elements described by d.
// A 0-D shape holds exactly one element.
func Size(d Dimension) int {
	n := 1
	for i := 0; i < d.NDim(); i++ {
		n *= d.Axis(i)
	}
	return n
}

// CheckedSize is Size with validation of every axis length and of the product.
func CheckedSize(d Dimension) (int, error) {
	n := 1
	for i := 0; i < d.NDim(); i++ {
		ax := d.Axis(i)
		if ax < 0 {
			return 0, fmt.Errorf("%w: axis %d has length %d", ErrNegativeDimension, i, ax)
		}
		hi, lo := bits.Mul64(uint64(n), uint64(ax))
		if hi != 0 || lo > uint64(maxInt) {
			return 0, fmt.Errorf("%w: shape %v", ErrShapeOverflow, d.Axes())
		}
		n = int(lo)
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)

// DefaultStrides returns the row-major strides for d.
// The last axis has stride 1; an empty shape gets all-zero strides.
func DefaultStrides(d Dimension) []int {
	nd := d.NDim()
	strides := make([]int, nd)
	if nd == 0 || Size(d) == 0 {
		return strides
	}
	strides[nd-1] = 1
	for i := nd - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * d.Axis(i+1)
	}
	return strides
}

// SameShape reports whether a and b have the same rank and lengths,
// independent of their representation.
func SameShape(a, b Dimension) bool {
	if a.NDim() != b.NDim() {
		return false
	}
	for i := 0; i < a.NDim(); i++ {
		if a.Axis(i) != b.Axis(i) {
			return false
		}
	}
	return true
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are aligned from the trailing axis; a pair of lengths is compatible
// when they are equal or one of them is 1, and missing axes count as 1.
// The result keeps the representation of the higher-rank operand.
// The flag reports whether any replication is needed.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(5)    + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, ErrBroadcast
func BroadcastShapes(a, b Dimension) (Dimension, bool, error) {
	base := a
	if b.NDim() > a.NDim() {
		base = b
	}
	n := base.NDim()
	out := make([]int, n)
	needsBroadcast := a.NDim() != b.NDim()

	for i := 0; i < n; i++ {
		ai, bi := a.NDim()-1-i, b.NDim()-1-i
		aDim, bDim := 1, 1
		if ai >= 0 {
			aDim = a.Axis(ai)
		}
		if bi >= 0 {
			bDim = b.Axis(bi)
		}

		switch {
		case aDim == bDim:
			out[n-1-i] = aDim
		case aDim == 1:
			out[n-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			out[n-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, shapeErr("broadcast", a, b, ErrBroadcast)
		}
	}

	d, err := base.WithAxes(out)
	if err != nil {
		return nil, false, err
	}
	return d, needsBroadcast, nil
}

func checkIndex(d Dimension, idx []int) error {
	if len(idx) != d.NDim() {
		return fmt.Errorf("%w: expected %d indices, got %d", ErrDimensionMismatch, d.NDim(), len(idx))
	}
	for i, ix := range idx {
		if ix < 0 || ix >= d.Axis(i) {
			return fmt.Errorf("%w: index %d for axis %d (length %d)", ErrIndexOutOfRange, ix, i, d.Axis(i))
		}
	}
	return nil
}

package ndarray

import (
	"fmt"
	"slices"
)

// Si selects indices along one axis for Slice.
//
// Start and End delimit the half-open range [Start, End); negative values
// count from the end of the axis. Open means End is the axis length.
// Step must be non-zero. A negative step walks the range backwards starting
// from its last index, so Si{Step: -1, Open: true} reverses the axis.
type Si struct {
	Start int
	End   int
	Step  int
	Open  bool
}

// S selects a whole axis.
func S() Si {
	return Si{Step: 1, Open: true}
}

// Range selects [start, end) with the given step.
func Range(start, end, step int) Si {
	return Si{Start: start, End: end, Step: step}
}

// From selects from start to the end of the axis with the given step.
func From(start, step int) Si {
	return Si{Start: start, Step: step, Open: true}
}

// resolve returns the selected range for an axis of the given length,
// the number of selected indices and the first selected index.
func (s Si) resolve(length int) (n, first int, err error) {
	if s.Step == 0 {
		return 0, 0, ErrZeroStep
	}
	start, end := s.Start, length
	if !s.Open {
		end = s.End
	}
	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}
	if start < 0 || end > length || start > end {
		return 0, 0, fmt.Errorf("%w: [%d, %d) on axis of length %d", ErrSliceOutOfRange, s.Start, s.End, length)
	}

	step := s.Step
	if step < 0 {
		step = -step
	}
	if end > start {
		n = 1 + (end-start-1)/step
	}
	first = start
	if s.Step < 0 && n > 0 {
		first = end - 1
	}
	return n, first, nil
}

// Slice returns a view selecting indices along every axis.
// One Si is required per axis. The view's stride along an axis is the
// source stride times the step, which may make it negative.
//
// Example:
//
//	rev, _ := a.Slice(ndarray.From(0, -1))         // reversed 1-D array
//	sub, _ := m.Slice(ndarray.From(1, 1), ndarray.From(0, 2))
func (a *Array[T]) Slice(sel ...Si) (*Array[T], error) {
	if len(sel) != a.NDim() {
		return nil, fmt.Errorf("slice: %d selectors for %d axes: %w", len(sel), a.NDim(), ErrDimensionMismatch)
	}
	axes := a.dim.Axes()
	strides := slices.Clone(a.strides)
	offset := a.offset
	for i, s := range sel {
		n, first, err := s.resolve(axes[i])
		if err != nil {
			return nil, fmt.Errorf("slice: axis %d: %w", i, err)
		}
		if n > 0 {
			offset += first * strides[i]
		}
		axes[i] = n
		strides[i] *= s.Step
	}
	d, err := a.dim.WithAxes(axes)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	return a.view(d, strides, offset), nil
}

// Reshape returns an array with the same elements in row-major order and a
// new shape. The element counts must match. A standard-layout source is
// shared; any other layout is first copied into standard layout.
func (a *Array[T]) Reshape(d Dimension) (*Array[T], error) {
	n, err := CheckedSize(d)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if n != a.Len() {
		return nil, shapeErr("reshape", a.dim, d, ErrDimensionMismatch)
	}
	if a.IsStandardLayout() {
		return a.view(d, DefaultStrides(d), a.offset), nil
	}
	return fromData(d, a.collect()), nil
}

// Subview fixes axis to index and drops that axis from the result.
//
// Example:
//
//	m, _ := ndarray.FromSliceDim(ndarray.D3(2, 4, 2), data)
//	s, _ := m.Subview(0, 1) // shape [4 2]
func (a *Array[T]) Subview(axis, index int) (*Array[T], error) {
	if axis < 0 || axis >= a.NDim() {
		return nil, fmt.Errorf("subview: %w: axis %d for rank %d", ErrAxisOutOfRange, axis, a.NDim())
	}
	if index < 0 || index >= a.dim.Axis(axis) {
		return nil, fmt.Errorf("subview: %w: index %d on axis of length %d", ErrIndexOutOfRange, index, a.dim.Axis(axis))
	}
	return a.view(a.dim.RemoveAxis(axis), dropAxis(a.strides, axis), a.offset+index*a.strides[axis]), nil
}

// Row returns row i of a matrix (or the i-th subarray along axis 0).
func (a *Array[T]) Row(i int) (*Array[T], error) {
	return a.Subview(0, i)
}

// SwapAxes exchanges axes i and j in place. No data moves.
func (a *Array[T]) SwapAxes(i, j int) error {
	nd := a.NDim()
	if i < 0 || i >= nd || j < 0 || j >= nd {
		return fmt.Errorf("swap axes: %w: (%d, %d) for rank %d", ErrAxisOutOfRange, i, j, nd)
	}
	axes := a.dim.Axes()
	axes[i], axes[j] = axes[j], axes[i]
	d, err := a.dim.WithAxes(axes)
	if err != nil {
		return fmt.Errorf("swap axes: %w", err)
	}
	a.dim = d
	a.strides[i], a.strides[j] = a.strides[j], a.strides[i]
	return nil
}

// Diag returns the 1-D view of elements at (k, k, ...).
// Its length is the shortest axis length; a 0-D array has a diagonal of
// length 1 holding its single element.
func (a *Array[T]) Diag() *Array[T] {
	n := 1
	if a.NDim() > 0 {
		n = slices.Min(a.dim.Axes())
	}
	stride := 0
	for _, s := range a.strides {
		stride += s
	}
	return a.view(D1(n), []int{stride}, a.offset)
}

// BroadcastTo returns a view of a with shape d. Axes are aligned from the
// end; missing leading axes and axes of length 1 are repeated with stride 0.
func (a *Array[T]) BroadcastTo(d Dimension) (*Array[T], error) {
	nd, na := d.NDim(), a.NDim()
	if na > nd {
		return nil, shapeErr("broadcast", a.dim, d, ErrBroadcast)
	}
	strides := make([]int, nd)
	lead := nd - na
	for i := lead; i < nd; i++ {
		src := a.dim.Axis(i - lead)
		switch {
		case src == d.Axis(i):
			strides[i] = a.strides[i-lead]
		case src == 1:
			strides[i] = 0
		default:
			return nil, shapeErr("broadcast", a.dim, d, ErrBroadcast)
		}
	}
	bd, err := d.WithAxes(d.Axes())
	if err != nil {
		return nil, err
	}
	return a.view(bd, strides, a.offset), nil
}

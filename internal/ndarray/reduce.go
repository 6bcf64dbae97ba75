package ndarray

import "fmt"

// Sum returns the sum of all elements.
func (a *Array[T]) Sum() T {
	var s T
	for v := range a.Values() {
		s += v
	}
	return s
}

// SumAxis sums along axis and returns an array with that axis removed.
// A 0-D array has nothing left to collapse and yields a 0-D copy of itself.
//
// Example:
//
//	a, _ := ndarray.Arr2([][]float32{{1, 2}, {3, 4}})
//	s, _ := a.SumAxis(0) // [4 6]
func (a *Array[T]) SumAxis(axis int) (*Array[T], error) {
	if a.NDim() == 0 {
		return Arr0(a.At()), nil
	}
	if axis < 0 || axis >= a.NDim() {
		return nil, fmt.Errorf("sum: %w: axis %d for rank %d", ErrAxisOutOfRange, axis, a.NDim())
	}

	rd := a.dim.RemoveAxis(axis)
	out := newArray(allocate[T](Size(rd)), rd, DefaultStrides(rd), 0)
	for i := 0; i < a.dim.Axis(axis); i++ {
		sub, err := a.Subview(axis, i)
		if err != nil {
			return nil, fmt.Errorf("sum: %w", err)
		}
		err = out.IAdd(sub)
		sub.Release()
		if err != nil {
			return nil, fmt.Errorf("sum: %w", err)
		}
	}
	return out, nil
}

// MeanAxis averages along axis and returns an array with that axis removed.
// Averaging over an axis of length 0 fails with ErrEmptyAxis.
func (a *Array[T]) MeanAxis(axis int) (*Array[T], error) {
	if a.NDim() == 0 {
		return Arr0(a.At()), nil
	}
	if axis >= 0 && axis < a.NDim() && a.dim.Axis(axis) == 0 {
		return nil, fmt.Errorf("mean: %w: axis %d", ErrEmptyAxis, axis)
	}
	out, err := a.SumAxis(axis)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	n := T(a.dim.Axis(axis))
	out.Apply(func(x T) T { return x / n })
	return out, nil
}

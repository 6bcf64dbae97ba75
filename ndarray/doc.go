// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides N-dimensional numeric arrays with copy-on-write
// storage and strided views.
//
// # Overview
//
// An Array is a view: a shared element buffer plus a shape, signed strides
// and an offset. This package provides:
//   - Fixed-rank (Ix0..Ix6) and dynamic-rank (IxDyn) shapes behind one
//     Dimension interface
//   - O(1) Clone, Slice, Reshape, Subview, Diag and SwapAxes
//   - Negative strides as ordinary views (reversed axes)
//   - NumPy-style broadcasting for Assign and arithmetic
//   - Iteration in logical order regardless of memory layout
//
// # Basic Usage
//
//	a, _ := ndarray.Zeros[float64](ndarray.D2(2, 3))
//	a.Set(1.5, 0, 2)
//
//	b := a.Clone()                     // O(1), shares the buffer
//	a.Set(2.5, 1, 0)                   // a copies its buffer, b unchanged
//
//	rev, _ := a.Slice(ndarray.S(), ndarray.From(0, -1)) // columns reversed
//	for v := range rev.Values() {
//	    fmt.Println(v)
//	}
//
// # Copy-on-Write
//
// Every handle holds one reference on its buffer. Writes (Set, Assign,
// IAdd, Apply, IterMut, ...) first make the buffer private when it is
// shared, so siblings never observe each other's writes. References are
// dropped when a handle is garbage collected or when Release is called.
//
// # Broadcasting
//
// Shapes are aligned from the trailing axis. Two lengths are compatible when
// they are equal or one of them is 1; missing axes count as 1:
//
//	a, _ := ndarray.Zeros[float32](ndarray.D2(3, 1)) // (3, 1)
//	b, _ := ndarray.Ones[float32](ndarray.D2(3, 4))  // (3, 4)
//	c, _ := ndarray.Add(a, b)                        // (3, 4)
//
// # Errors
//
// Shape problems are reported as errors matching the Err* sentinels with
// errors.Is. At and Set panic on bad indices; Get and Put return errors.
package ndarray

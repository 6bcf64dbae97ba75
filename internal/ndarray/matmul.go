package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
)

// MatMul returns the matrix product of two 2-D arrays (m×k)·(k×n).
// Operands may have any strides, including swapped axes.
//
// Example:
//
//	a, _ := ndarray.FromSliceDim(ndarray.D2(2, 3), []float64{0, 1, 2, 3, 4, 5})
//	b, _ := ndarray.FromSliceDim(ndarray.D2(3, 4), seq12)
//	c, _ := ndarray.MatMul(a, b) // shape [2 4]
func MatMul[T Scalar](a, b *Array[T]) (*Array[T], error) {
	return MatMulWith(a, b, parallel.DefaultConfig())
}

// MatMulWith is MatMul with an explicit parallelism config.
// Output rows are independent, so they are split across workers.
func MatMulWith[T Scalar](a, b *Array[T], cfg parallel.Config) (*Array[T], error) {
	if a.NDim() != 2 || b.NDim() != 2 {
		return nil, fmt.Errorf("matmul: %w: operands must be 2-D, got rank %d and %d",
			ErrDimensionMismatch, a.NDim(), b.NDim())
	}
	m, k := a.dim.Axis(0), a.dim.Axis(1)
	k2, n := b.dim.Axis(0), b.dim.Axis(1)
	if k != k2 {
		return nil, shapeErr("matmul", a.dim, b.dim, ErrDimensionMismatch)
	}

	d := D2(m, n)
	out := make([]T, m*n)
	x, y := a.store.buf.data, b.store.buf.data
	as0, as1 := a.strides[0], a.strides[1]
	bs0, bs1 := b.strides[0], b.strides[1]

	parallel.Rows(m, k*n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := out[i*n : (i+1)*n]
			for p := 0; p < k; p++ {
				aip := x[a.offset+i*as0+p*as1]
				base := b.offset + p*bs0
				for j := range row {
					row[j] += aip * y[base+j*bs1]
				}
			}
		}
	}, cfg)

	return fromData[T](d, out), nil
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides linear algebra on 2-D ndarray arrays: identity
// matrices, Cholesky factorization, triangular solves and least squares.
//
// Example:
//
//	// Fit y = c0 + c1*x through (0, 1), (1, 3), (2, 5).
//	a, _ := ndarray.Arr2([][]float64{{1, 0}, {1, 1}, {1, 2}})
//	b := ndarray.Arr1(1.0, 3.0, 5.0)
//	x, _ := linalg.LeastSquares(a, b) // [1 2]
//
// Positive definiteness (Cholesky) and full column rank (LeastSquares) are
// the caller's responsibility; violating them yields NaN results, not errors.
package linalg

import (
	"github.com/born-ml/ndarray/internal/linalg"
	"github.com/born-ml/ndarray/ndarray"
)

// Errors.
var (
	ErrNotMatrix = linalg.ErrNotMatrix
	ErrNotVector = linalg.ErrNotVector
	ErrNotSquare = linalg.ErrNotSquare
)

// Eye returns the n×n identity matrix.
func Eye[T ndarray.Scalar](n int) (*ndarray.Array[T], error) {
	return linalg.Eye[T](n)
}

// Cholesky returns lower-triangular L with L·Lᵀ = a.
func Cholesky[T ndarray.Float](a *ndarray.Array[T]) (*ndarray.Array[T], error) {
	return linalg.Cholesky(a)
}

// SubstFw solves L·x = b for lower-triangular L.
func SubstFw[T ndarray.Float](l, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	return linalg.SubstFw(l, b)
}

// SubstBw solves U·x = b for upper-triangular U.
func SubstBw[T ndarray.Float](u, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	return linalg.SubstBw(u, b)
}

// LeastSquares returns x minimizing ‖a·x − b‖₂.
func LeastSquares[T ndarray.Float](a, b *ndarray.Array[T]) (*ndarray.Array[T], error) {
	return linalg.LeastSquares(a, b)
}

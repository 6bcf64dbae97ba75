package ndarray

import "fmt"

// Operation names used when wrapping errors.
const (
	opAdd    = "add"
	opSub    = "sub"
	opMul    = "mul"
	opDiv    = "div"
	opAssign = "assign"
)

func add[T Scalar](x, y T) T { return x + y }
func sub[T Scalar](x, y T) T { return x - y }
func mul[T Scalar](x, y T) T { return x * y }
func div[T Scalar](x, y T) T { return x / y }

// Assign copies b into a element by element. b is broadcast to a's shape, so
// it may have fewer axes or axes of length 1.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](ndarray.D2(2, 2))
//	a.Assign(ndarray.Arr1[float32](7)) // every element becomes 7
func (a *Array[T]) Assign(b *Array[T]) error {
	return a.update(opAssign, b, func(_, y T) T { return y })
}

// update applies a[i] = f(a[i], b[i]) with b broadcast to a's shape.
func (a *Array[T]) update(op string, b *Array[T], f func(x, y T) T) error {
	bv, err := b.BroadcastTo(a.dim)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer bv.Release()

	a.store.ensureUnique()
	dst, src := a.store.buf.data, bv.store.buf.data
	zip(a, bv, func(ia, ib int) {
		dst[ia] = f(dst[ia], src[ib])
	})
	return nil
}

// IAdd adds b to a in place, broadcasting b to a's shape.
func (a *Array[T]) IAdd(b *Array[T]) error { return a.update(opAdd, b, add[T]) }

// ISub subtracts b from a in place, broadcasting b to a's shape.
func (a *Array[T]) ISub(b *Array[T]) error { return a.update(opSub, b, sub[T]) }

// IMul multiplies a by b in place, broadcasting b to a's shape.
func (a *Array[T]) IMul(b *Array[T]) error { return a.update(opMul, b, mul[T]) }

// IDiv divides a by b in place, broadcasting b to a's shape.
func (a *Array[T]) IDiv(b *Array[T]) error { return a.update(opDiv, b, div[T]) }

// IAddScalar adds s to every element of a in place.
func (a *Array[T]) IAddScalar(s T) { a.Apply(func(x T) T { return x + s }) }

// ISubScalar subtracts s from every element of a in place.
func (a *Array[T]) ISubScalar(s T) { a.Apply(func(x T) T { return x - s }) }

// IMulScalar multiplies every element of a by s in place.
func (a *Array[T]) IMulScalar(s T) { a.Apply(func(x T) T { return x * s }) }

// IDivScalar divides every element of a by s in place.
func (a *Array[T]) IDivScalar(s T) { a.Apply(func(x T) T { return x / s }) }

// Apply replaces every element x of a with f(x).
func (a *Array[T]) Apply(f func(T) T) {
	it := a.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = f(*p)
	}
}

// Fill sets every element of a to v.
func (a *Array[T]) Fill(v T) {
	a.Apply(func(T) T { return v })
}

// Map returns a new standard-layout array of the same shape holding f(x)
// for every element x of a. The result element type may differ.
//
// Example:
//
//	b := ndarray.Map(a, func(x float32) int { return int(x / 3) })
func Map[T, U Scalar](a *Array[T], f func(T) U) *Array[U] {
	out := make([]U, 0, a.Len())
	for v := range a.Values() {
		out = append(out, f(v))
	}
	return fromData(a.dim, out)
}

// binary computes f(a, b) elementwise into a new array of the broadcast shape.
func binary[T Scalar](op string, a, b *Array[T], f func(x, y T) T) (*Array[T], error) {
	d, _, err := BroadcastShapes(a.dim, b.dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	av, err := a.BroadcastTo(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer av.Release()
	bv, err := b.BroadcastTo(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer bv.Release()

	out := make([]T, 0, Size(d))
	x, y := av.store.buf.data, bv.store.buf.data
	zip(av, bv, func(ia, ib int) {
		out = append(out, f(x[ia], y[ib]))
	})
	return fromData(d, out), nil
}

// Add returns a + b with broadcasting.
//
// Example:
//
//	a, _ := ndarray.Ones[float32](ndarray.D2(3, 1))
//	b, _ := ndarray.Ones[float32](ndarray.D2(3, 5))
//	c, _ := ndarray.Add(a, b) // shape [3 5]
func Add[T Scalar](a, b *Array[T]) (*Array[T], error) { return binary(opAdd, a, b, add[T]) }

// Sub returns a - b with broadcasting.
func Sub[T Scalar](a, b *Array[T]) (*Array[T], error) { return binary(opSub, a, b, sub[T]) }

// Mul returns the elementwise product a * b with broadcasting.
func Mul[T Scalar](a, b *Array[T]) (*Array[T], error) { return binary(opMul, a, b, mul[T]) }

// Div returns the elementwise quotient a / b with broadcasting.
// Integer division by zero panics as in Go.
func Div[T Scalar](a, b *Array[T]) (*Array[T], error) { return binary(opDiv, a, b, div[T]) }

// AddScalar returns a new array with s added to every element.
func (a *Array[T]) AddScalar(s T) *Array[T] { return Map(a, func(x T) T { return x + s }) }

// SubScalar returns a new array with s subtracted from every element.
func (a *Array[T]) SubScalar(s T) *Array[T] { return Map(a, func(x T) T { return x - s }) }

// MulScalar returns a new array with every element multiplied by s.
func (a *Array[T]) MulScalar(s T) *Array[T] { return Map(a, func(x T) T { return x * s }) }

// DivScalar returns a new array with every element divided by s.
func (a *Array[T]) DivScalar(s T) *Array[T] { return Map(a, func(x T) T { return x / s }) }

// Equal reports whether a and b have the same shape and equal elements.
// Arrays of different shape are simply unequal.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !SameShape(a.dim, b.dim) {
		return false
	}
	x, y := a.store.buf.data, b.store.buf.data
	eq := true
	zip(a, b, func(ia, ib int) {
		if eq && x[ia] != y[ib] {
			eq = false
		}
	})
	return eq
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose[T Float](a, b *Array[T], tol T) bool {
	if !SameShape(a.dim, b.dim) {
		return false
	}
	x, y := a.store.buf.data, b.store.buf.data
	ok := true
	zip(a, b, func(ia, ib int) {
		d := x[ia] - y[ib]
		if d < 0 {
			d = -d
		}
		if !(d <= tol) {
			ok = false
		}
	})
	return ok
}

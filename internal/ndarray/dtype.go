// Package ndarray implements N-dimensional arrays with copy-on-write storage
// and strided views.
package ndarray

// Scalar is a constraint for supported array element types.
// Every type in the set supports + - * /, == and conversion from int.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")
	ErrBroadcast         = errors.New("ndarray: shapes not compatible for broadcasting")
	ErrIndexOutOfRange   = errors.New("ndarray: index out of range")
	ErrAxisOutOfRange    = errors.New("ndarray: axis out of range")
	ErrSliceOutOfRange   = errors.New("ndarray: slice bounds out of range")
	ErrZeroStep          = errors.New("ndarray: slice step must be non-zero")
	ErrShapeOverflow     = errors.New("ndarray: element count overflows int")
	ErrNegativeDimension = errors.New("ndarray: negative axis length")
	ErrEmptyAxis         = errors.New("ndarray: reduction over empty axis")
)

// ShapeError reports the operands involved in a failed shape check.
type ShapeError struct {
	Op    string // Operation name (e.g., "reshape", "assign")
	Left  []int  // Shape of the receiver or first operand
	Right []int  // Shape of the argument or requested shape
	Err   error  // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v vs %v: %v", e.Op, e.Left, e.Right, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is keeps working.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeErr(op string, left, right Dimension, err error) error {
	return &ShapeError{Op: op, Left: left.Axes(), Right: right.Axes(), Err: err}
}

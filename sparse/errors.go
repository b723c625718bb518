package sparse

import "errors"

var (
	// ErrOutOfBounds indicates an index beyond the known extent of an axis
	// (or a negative index). The wrapped message names the offending axis
	// and its known size.
	ErrOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrShapeMismatch indicates parallel input arrays of unequal length or
	// a dense block whose dimensions do not match the resolved window.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrRagged indicates a [][]float64 block whose rows differ in length.
	ErrRagged = errors.New("sparse: ragged block")

	// ErrNilMatrix indicates an operation on a nil *Matrix receiver.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

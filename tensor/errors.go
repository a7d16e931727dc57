package tensor

import "errors"

var (
	// ErrShape is returned when input dimensions match none of the valid
	// (kind, representation) shapes, or when the data is ragged or holds
	// non-numeric elements.
	ErrShape = errors.New("tensor: shape not recognized")

	// ErrKindMismatch is returned when an explicit kind contradicts the
	// shape of the data.
	ErrKindMismatch = errors.New("tensor: kind does not match data shape")
)

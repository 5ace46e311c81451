package pix

import "errors"

var (
	// ErrInvalidDimensions reports an attempt to construct an image with a
	// zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrOutOfBounds reports a pixel coordinate access beyond the image
	// extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrShapeMismatch reports a channel-count or color-model mismatch
	// between an operation and its operand.
	ErrShapeMismatch = errors.New("shape mismatch")
)

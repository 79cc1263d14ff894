package model

import "errors"

// Errors returned while validating or loading a Model.
var (
	// ErrInvalidDimensions is returned when NumIndex, EmbeddingSize or
	// HUnits is not positive.
	ErrInvalidDimensions = errors.New("model: num_index, embedding_size and hunits must be positive")

	// ErrMatricesSizeMismatch is returned when the flattened Matrices slice
	// does not have exactly the element count the shape table in spec §3
	// requires for the declared dimensions.
	ErrMatricesSizeMismatch = errors.New("model: matrices length does not match declared dimensions")

	// ErrNilMapping is returned when a Model has no mapping function.
	ErrNilMapping = errors.New("model: mapping function is nil")

	// ErrUnknownScript is returned when LoadFile encounters a script name
	// it does not recognise.
	ErrUnknownScript = errors.New("model: unknown script")

	// ErrBadMagic is returned when a model file does not start with the
	// expected magic bytes.
	ErrBadMagic = errors.New("model: bad magic bytes, not a sabin model file")

	// ErrTruncated is returned when a model file ends before all of the
	// header-declared matrix data has been read.
	ErrTruncated = errors.New("model: file truncated before matrix data ends")
)

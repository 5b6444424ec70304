package mat

import "github.com/pkg/errors"

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidDimension  = errors.New("dimension must be positive")
)

package mlp

import (
	"github.com/pkg/errors"

	"github.com/born-ml/feedforward/internal/mat"
)

// Common errors.
var (
	// ErrDimensionMismatch reports an input or encoded label whose
	// length disagrees with the configured layer sizes.
	ErrDimensionMismatch = mat.ErrDimensionMismatch

	// ErrInvalidSize reports a non-positive layer size at construction.
	ErrInvalidSize = errors.New("layer size must be positive")

	// ErrEmptyBatch reports a training call with no examples.
	ErrEmptyBatch = errors.New("training batch is empty")
)

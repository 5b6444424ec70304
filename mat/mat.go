// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/born-ml/feedforward/internal/mat"
)

// Vector is an ordered, fixed-length sequence of float64 values.
type Vector = mat.Vector

// Matrix is a rectangular array of float64 values stored row-major.
type Matrix = mat.Matrix

// Common errors.
var (
	ErrDimensionMismatch = mat.ErrDimensionMismatch
	ErrInvalidDimension  = mat.ErrInvalidDimension
)

// New creates a Vector from the given values.
//
// Example:
//
//	v := mat.New(1, 0, 1)
func New(values ...float64) Vector {
	return mat.New(values...)
}

// Generate creates a Vector of length n, invoking f once per index.
func Generate(n int, f func(i int) float64) Vector {
	return mat.Generate(n, f)
}

// Zeros creates a zero-filled Vector of length n.
func Zeros(n int) Vector {
	return mat.Zeros(n)
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return mat.NewMatrix(rows, cols)
}

// GenerateMatrix creates a rows×cols matrix, invoking f once per
// element.
func GenerateMatrix(rows, cols int, f func(r, c int) float64) (*Matrix, error) {
	return mat.GenerateMatrix(rows, cols, f)
}

// Outer builds a len(scale)-row matrix where row i is row scaled by
// scale[i].
func Outer(scale, row Vector) *Matrix {
	return mat.Outer(scale, row)
}

// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"github.com/born-ml/feedforward/internal/mat"
	"github.com/born-ml/feedforward/internal/mlp"
)

// Network is a single-hidden-layer feedforward network producing labels
// of type T.
type Network[T any] = mlp.Network[T]

// Config holds the construction parameters for a Network.
type Config = mlp.Config

// Example is one labeled training input.
type Example[T any] = mlp.Example[T]

// Activation pairs an activation function with its derivative.
type Activation = mlp.Activation

// Parameters is a read-only snapshot of the trainable state.
type Parameters = mlp.Parameters

// Common errors.
var (
	ErrDimensionMismatch = mlp.ErrDimensionMismatch
	ErrInvalidSize       = mlp.ErrInvalidSize
	ErrEmptyBatch        = mlp.ErrEmptyBatch
)

// New constructs a Network with the given layer sizes and decode
// function. Parameters are initialized with independent uniform draws
// from [0, 1); both activations default to the logistic sigmoid.
//
// Example:
//
//	net, err := mlp.New(mlp.Config{InputSize: 4, HiddenSize: 3, OutputSize: 2}, decode)
func New[T any](cfg Config, decode func(mat.Vector) T) (*Network[T], error) {
	return mlp.New(cfg, decode)
}

// Sigmoid returns the logistic activation pair, the default for both
// layers.
func Sigmoid() Activation {
	return mlp.Sigmoid()
}

// ReLU returns the rectified-linear activation pair.
func ReLU() Activation {
	return mlp.ReLU()
}

// Identity returns the linear pass-through activation pair.
func Identity() Activation {
	return mlp.Identity()
}

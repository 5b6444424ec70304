// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides a single-hidden-layer feedforward neural network
// trained by full-batch gradient descent with backpropagation.
//
// # Overview
//
// This package contains:
//   - Network[T]: the network core, generic over the caller's label type
//   - Activation: swappable activation/derivative pairs (Sigmoid, ReLU, Identity)
//   - Example[T]: one labeled training input
//   - Parameters: a read-only snapshot of the trainable state
//
// # Basic Usage
//
//	decode := func(output mat.Vector) bool { return output[0] > output[1] }
//	encode := func(label bool) mat.Vector {
//	    if label {
//	        return mat.New(1, 0)
//	    }
//	    return mat.New(0, 1)
//	}
//
//	net, err := mlp.New(mlp.Config{
//	    InputSize:  4,
//	    HiddenSize: 3,
//	    OutputSize: 2,
//	    Seed:       1,
//	}, decode)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for epoch := 0; epoch < maxEpochs; epoch++ {
//	    if err := net.Train(batch, encode); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	label, err := net.Infer(mat.New(1, 0, 1, 0))
//
// # Training Semantics
//
// Train processes the entire batch and applies exactly one averaged
// gradient-descent update. The caller owns epoch boundaries and the
// stopping criterion. There is no learning-rate hyperparameter: the
// mean delta is added with an implicit unit step.
//
// # Concurrency
//
// A Network is not safe for concurrent use. Callers must serialize
// Train against any other call on the same instance.
package mlp

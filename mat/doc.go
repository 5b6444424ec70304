// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the float64 vector and matrix primitives used by
// the feedforward network.
//
// # Overview
//
// This package contains:
//   - Vector: fixed-length float64 sequence with Add, Mul, Scale, Dot, Apply
//   - Matrix: rectangular row-major float64 array with MulVec, Add, Apply, Col
//   - Construction from explicit values or per-index generator functions
//   - Outer-product construction for gradient accumulators
//
// # Basic Usage
//
//	v := mat.New(1, 2, 3)
//	m, _ := mat.GenerateMatrix(2, 3, func(r, c int) float64 { return rng.Float64() })
//
//	out, err := m.MulVec(v) // length-2 vector
//	if err != nil {
//	    // shapes were incompatible
//	}
//
// # Semantics
//
// Every operation returns a fresh value; operands are never mutated, so
// vectors can be reused safely across layers. Shape incompatibilities
// are reported with ErrDimensionMismatch; there is no broadcasting.
package mat

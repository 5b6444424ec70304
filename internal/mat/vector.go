// Package mat provides the float64 vector and matrix primitives the
// network core is built on. All operations return fresh values and never
// mutate their operands; shape incompatibilities are reported with
// ErrDimensionMismatch, never silently broadcast.
package mat

import "github.com/pkg/errors"

// Vector is an ordered, fixed-length sequence of float64 values.
type Vector []float64

// New creates a Vector from the given values. The values are copied.
func New(values ...float64) Vector {
	v := make(Vector, len(values))
	copy(v, values)
	return v
}

// Generate creates a Vector of length n, invoking f exactly once per
// index to produce the element at that index.
//
// This is the initialization path for random parameter fills: each call
// to f is independent, so a seeded generator captured by f produces
// independent draws per element.
func Generate(n int, f func(i int) float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = f(i)
	}
	return v
}

// Zeros creates a zero-filled Vector of length n.
func Zeros(n int) Vector {
	return make(Vector, n)
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return New(v...)
}

// Add returns the element-wise sum v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "add: lengths %d and %d", len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

// Mul returns the element-wise (Hadamard) product v * w.
func (v Vector) Mul(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "mul: lengths %d and %d", len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * w[i]
	}
	return out, nil
}

// Scale returns v with every element multiplied by s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "dot: lengths %d and %d", len(v), len(w))
	}
	sum := 0.0
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum, nil
}

// Apply returns a new vector with f applied to every element.
func (v Vector) Apply(f func(float64) float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = f(v[i])
	}
	return out
}

// Equal reports whether v and w have the same length and identical
// elements.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

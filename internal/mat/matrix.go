package mat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is a rectangular array of float64 values stored flat in
// row-major order.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "matrix %dx%d", rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// GenerateMatrix creates a rows×cols matrix, invoking f exactly once per
// element in row-major order to produce the value at (r, c).
func GenerateMatrix(rows, cols int, f func(r, c int) float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.data[r*cols+c] = f(r, c)
		}
	}
	return m, nil
}

// Outer builds a len(scale)-row matrix where row i is row scaled by
// scale[i]. This is the accumulator construction used by the
// backpropagation weight updates.
func Outer(scale, row Vector) *Matrix {
	m := &Matrix{
		rows: len(scale),
		cols: len(row),
		data: make([]float64, len(scale)*len(row)),
	}
	for r := range scale {
		for c := range row {
			m.data[r*m.cols+c] = scale[r] * row[c]
		}
	}
	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	m.boundsCheck(r, c)
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.boundsCheck(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) boundsCheck(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("mat: index (%d, %d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
}

// Row returns a copy of row r as a Vector of length Cols.
func (m *Matrix) Row(r int) Vector {
	m.boundsCheck(r, 0)
	return New(m.data[r*m.cols : (r+1)*m.cols]...)
}

// Col returns a copy of column c as a Vector of length Rows.
func (m *Matrix) Col(c int) Vector {
	m.boundsCheck(0, c)
	v := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		v[r] = m.data[r*m.cols+c]
	}
	return v
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows: m.rows,
		cols: m.cols,
		data: make([]float64, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// Add returns the element-wise sum m + n.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, errors.Wrapf(ErrDimensionMismatch, "add: shapes %dx%d and %dx%d", m.rows, m.cols, n.rows, n.cols)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += n.data[i]
	}
	return out, nil
}

// Scale returns m with every element multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = f(out.data[i])
	}
	return out
}

// MulVec returns the matrix-vector product m · v, a Vector of length
// Rows. The vector length must equal Cols.
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if len(v) != m.cols {
		return nil, errors.Wrapf(ErrDimensionMismatch, "mulvec: matrix %dx%d, vector length %d", m.rows, m.cols, len(v))
	}
	out := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		sum := 0.0
		for c := 0; c < m.cols; c++ {
			sum += m.data[r*m.cols+c] * v[c]
		}
		out[r] = sum
	}
	return out, nil
}

// Equal reports whether m and n have the same shape and identical
// elements.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != n.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line, for diagnostic dumps.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		fmt.Fprintf(&sb, "%v\n", m.Row(r))
	}
	return sb.String()
}

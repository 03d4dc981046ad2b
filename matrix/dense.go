// File: dense.go
// Role: Dense row-major int64 matrix.
// Determinism: String and Equal walk rows then columns.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix of int64 stored in a single flat slice.
// A Dense is not safe for concurrent writes to the same row.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense returns a zero-filled rows×cols matrix.
// Zero dimensions are allowed; negative ones, or a rows*cols product that
// overflows int, return ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 || (rows > 0 && cols > math.MaxInt/rows) {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDistances returns the n×n all-pairs identity: 0 on the diagonal and
// core.Infinity everywhere else. Panics if n < 0.
func NewDistances(n int) *Dense {
	m, err := NewDense(n, n)
	if err != nil {
		panic(err.Error())
	}
	for i := range m.data {
		m.data[i] = core.Infinity
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with vals, which must hold exactly Cols() entries.
// Distinct rows may be written concurrently.
func (m *Dense) SetRow(i int, vals []int64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.SetRow(%d): len=%d, cols=%d: %w", i, len(vals), m.c, ErrBadShape)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line; core.Infinity prints as "∞".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v := m.data[i*m.c+j]; v == core.Infinity {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

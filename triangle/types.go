package triangle

import (
	"fmt"
	"strings"
)

// Row is one level of a triangle. Order defines adjacency.
type Row []int64

// Triangle is an ordered, zero-indexed sequence of rows where Rows[i]
// holds exactly i+1 cells. Cell (r, c) is adjacent to (r+1, c) and (r+1, c+1).
//
// A Triangle is owned by a single caller; it carries no locks. Use Clone
// to hand an independent copy to another computation.
type Triangle struct {
	Rows []Row
}

// New deep-copies rows into a Triangle and validates its shape.
// Returns ErrNoRows for an empty input and a *MalformedTriangleError
// for the first row whose length is wrong.
// Complexity: O(R²) time and memory.
func New(rows [][]int64) (*Triangle, error) {
	t := &Triangle{Rows: make([]Row, len(rows))}
	for i, r := range rows {
		t.Rows[i] = append(Row(nil), r...)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the shape invariant: at least one row, and row i
// (zero-based) holds exactly i+1 cells.
func (t *Triangle) Validate() error {
	if len(t.Rows) == 0 {
		return &MalformedTriangleError{}
	}
	for i, r := range t.Rows {
		if len(r) != i+1 {
			return &MalformedTriangleError{Row: i + 1, Want: i + 1, Got: len(r)}
		}
	}

	return nil
}

// Height returns the number of rows.
func (t *Triangle) Height() int {
	return len(t.Rows)
}

// Cells returns the total number of cells, R·(R+1)/2 for a valid triangle.
func (t *Triangle) Cells() int {
	n := 0
	for _, r := range t.Rows {
		n += len(r)
	}

	return n
}

// At returns the value at zero-based (row, col) or ErrOutOfRange.
func (t *Triangle) At(row, col int) (int64, error) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}

	return t.Rows[row][col], nil
}

// Clone returns a deep copy. Mutating the copy never affects t.
// Complexity: O(R²).
func (t *Triangle) Clone() *Triangle {
	c := &Triangle{Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		c.Rows[i] = append(Row(nil), r...)
	}

	return c
}

// String renders the triangle in its input format, one row per line.
func (t *Triangle) String() string {
	var sb strings.Builder
	for _, r := range t.Rows {
		for j, v := range r {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

package pathsum

import (
	"fmt"

	"github.com/katalvlaran/trisum/triangle"
)

// MaxPathSum returns the maximum top-to-bottom path sum of t.
//
// Algorithm Outline (bottom-up accumulation):
//  1. For each row r = 1..R-1 and each column c = 0..r:
//     c == 0 → best[r][0] = t[r][0] + best[r-1][0]
//     c == r → best[r][r] = t[r][r] + best[r-1][r-1]
//     else   → best[r][c] = t[r][c] + max(best[r-1][c-1], best[r-1][c])
//  2. Sum = max over best[R-1]. A one-row triangle skips step 1.
//  3. If ReturnPath, walk back from the leftmost maximal cell of the last row,
//     each time to the parent with the larger best sum (left parent on ties).
//
// Memory Modes:
//   - InPlace — best == t.Rows. On error the triangle may be partly rewritten.
//   - Table   — best is a fresh copy of t.Rows.
//   - Rolling — best is a single row updated right-to-left.
//
// Errors:
//   - ErrNilTriangle, ErrEmptyTriangle         — no input.
//   - triangle.ErrMalformedTriangle            — rows break the shape invariant.
//   - ErrPathNeedsTable                        — ReturnPath with Rolling.
//   - *OverflowError (errors.Is ErrOverflow)   — a sum left the int64 range.
//
// Complexity: O(R²) time; extra memory O(1), O(R²) or O(R) by mode.
func MaxPathSum(t *triangle.Triangle, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil {
		return Result{}, ErrNilTriangle
	}
	if t.Height() == 0 {
		return Result{}, ErrEmptyTriangle
	}
	if err := t.Validate(); err != nil {
		return Result{}, fmt.Errorf("pathsum: %w", err)
	}
	if o.ReturnPath && o.MemoryMode == Rolling {
		return Result{}, ErrPathNeedsTable
	}

	if o.MemoryMode == Rolling {
		sum, err := rollingMax(t)

		return Result{Sum: sum}, err
	}

	best := t.Rows
	if o.MemoryMode == Table {
		best = t.Clone().Rows
	}
	if err := accumulate(best); err != nil {
		return Result{}, err
	}

	last := best[len(best)-1]
	col := argmax(last)
	res := Result{Sum: last[col]}
	if o.ReturnPath {
		res.Path, res.Values = backtrack(best, col)
	}

	return res, nil
}

// accumulate rewrites every cell with the best sum of a path ending there.
func accumulate(best []triangle.Row) error {
	for r := 1; r < len(best); r++ {
		prev, cur := best[r-1], best[r]
		for c := 0; c <= r; c++ {
			var parent int64
			switch c {
			case 0:
				parent = prev[0]
			case r:
				parent = prev[r-1]
			default:
				parent = max(prev[c-1], prev[c])
			}
			s, ok := addInt64(cur[c], parent)
			if !ok {
				return &OverflowError{Row: r, Column: c}
			}
			cur[c] = s
		}
	}

	return nil
}

// rollingMax runs the same recurrence over one row of scratch.
// Columns are updated right-to-left so buf[c-1] still holds row r-1.
func rollingMax(t *triangle.Triangle) (int64, error) {
	n := t.Height()
	buf := make([]int64, n)
	buf[0] = t.Rows[0][0]
	for r := 1; r < n; r++ {
		row := t.Rows[r]
		for c := r; c >= 0; c-- {
			var parent int64
			switch c {
			case r:
				parent = buf[r-1]
			case 0:
				parent = buf[0]
			default:
				parent = max(buf[c-1], buf[c])
			}
			s, ok := addInt64(row[c], parent)
			if !ok {
				return 0, &OverflowError{Row: r, Column: c}
			}
			buf[c] = s
		}
	}

	return buf[argmax(buf)], nil
}

// backtrack recovers columns and original values of one optimal path
// ending at column col of the last row. Original values are the
// difference between a cell's best sum and its chosen parent's.
func backtrack(best []triangle.Row, col int) ([]int, []int64) {
	n := len(best)
	path := make([]int, n)
	values := make([]int64, n)
	path[n-1] = col
	for r := n - 1; r > 0; r-- {
		c, prev := path[r], best[r-1]
		pc := c
		switch {
		case c == r:
			pc = r - 1
		case c > 0 && prev[c-1] >= prev[c]:
			pc = c - 1
		}
		path[r-1] = pc
		values[r] = best[r][c] - prev[pc]
	}
	values[0] = best[0][0]

	return path, values
}

// argmax returns the index of the leftmost maximum of a non-empty row.
func argmax(row []int64) int {
	idx := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[idx] {
			idx = i
		}
	}

	return idx
}

// addInt64 returns a+b and false if the sum overflowed.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return s, false
	}

	return s, true
}

package pathsum

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by MaxPathSum.
var (
	// ErrNilTriangle indicates a nil *triangle.Triangle.
	ErrNilTriangle = errors.New("pathsum: triangle is nil")

	// ErrEmptyTriangle indicates a triangle with zero rows.
	ErrEmptyTriangle = errors.New("pathsum: triangle has no rows")

	// ErrPathNeedsTable indicates ReturnPath was requested with Rolling memory,
	// which keeps only one row and cannot backtrack.
	ErrPathNeedsTable = errors.New("pathsum: ReturnPath requires MemoryMode InPlace or Table")

	// ErrOverflow indicates a cumulative sum left the int64 range.
	ErrOverflow = errors.New("pathsum: int64 overflow")
)

// OverflowError names the zero-based cell whose cumulative sum overflowed.
type OverflowError struct {
	Row, Column int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("pathsum: int64 overflow at row %d column %d", e.Row+1, e.Column+1)
}

// Is matches ErrOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// MemoryMode controls where the best cumulative sums are stored.
//
//   - InPlace — overwrite the triangle's own cells. O(1) extra memory.
//     The triangle is consumed; Clone it first if you need it again.
//   - Table   — allocate a parallel best-sum table. O(R²) extra memory,
//     the triangle is left untouched.
//   - Rolling — keep a single row of best sums. O(R) extra memory,
//     the triangle is left untouched, no path recovery.
type MemoryMode int

const (
	// InPlace mutates the triangle; supports path recovery.
	InPlace MemoryMode = iota

	// Table uses a parallel R-row table; supports path recovery.
	Table

	// Rolling uses one row of scratch; distance only.
	Rolling
)

// String returns the config name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case InPlace:
		return "in_place"
	case Table:
		return "table"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps a config name back to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "in_place", "inplace", "":
		return InPlace, nil
	case "table":
		return Table, nil
	case "rolling":
		return Rolling, nil
	default:
		return 0, fmt.Errorf("pathsum: unknown memory mode %q", s)
	}
}

// Options configures MaxPathSum.
//
//   - MemoryMode — storage for best sums (default InPlace).
//   - ReturnPath — if true, Result.Path and Result.Values are filled.
//     Requires InPlace or Table.
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
}

// Option is a functional option for MaxPathSum.
type Option func(*Options)

// DefaultOptions returns InPlace storage without path recovery.
func DefaultOptions() Options {
	return Options{
		MemoryMode: InPlace,
		ReturnPath: false,
	}
}

// WithMemoryMode selects the best-sum storage.
// Panics on an unknown mode to surface programmer error early.
func WithMemoryMode(mode MemoryMode) Option {
	if mode < InPlace || mode > Rolling {
		panic(fmt.Sprintf("pathsum: WithMemoryMode(%d)", int(mode)))
	}
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithReturnPath enables recovery of one optimal path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result is the outcome of MaxPathSum.
//
//   - Sum    — the maximum path sum.
//   - Path   — Path[r] is the zero-based column visited in row r (nil unless ReturnPath).
//   - Values — Values[r] is the original cell value at (r, Path[r]) (nil unless ReturnPath).
type Result struct {
	Sum    int64
	Path   []int
	Values []int64
}

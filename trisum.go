package trisum

import (
	"github.com/katalvlaran/trisum/pathsum"
	"github.com/katalvlaran/trisum/triangle"
)

// MaxPathSum reads the triangle stored at path and returns its maximum
// top-to-bottom path sum.
//
// Errors:
//   - triangle.ErrIO (with the fs error)     — file missing or unreadable.
//   - *triangle.MalformedTriangleError        — row k does not hold k values, or no rows.
//   - *triangle.MalformedTokenError           — a token is not an int64.
//   - *pathsum.OverflowError                  — a path sum left the int64 range.
func MaxPathSum(path string) (int64, error) {
	res, err := Solve(path)
	if err != nil {
		return 0, err
	}

	return res.Sum, nil
}

// Solve is MaxPathSum with calculator options, returning the full Result.
// The parsed triangle is private to this call, so InPlace is always safe.
func Solve(path string, opts ...pathsum.Option) (pathsum.Result, error) {
	t, err := triangle.ParseFile(path)
	if err != nil {
		return pathsum.Result{}, err
	}

	return pathsum.MaxPathSum(t, opts...)
}

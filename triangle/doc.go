// Package triangle parses and validates number triangles.
//
// 🚀 What is a number triangle?
//
//	An ordered sequence of rows where row i (zero-based) holds exactly i+1
//	integers. Cell (r, c) is adjacent to cells (r+1, c) and (r+1, c+1):
//
//	        5
//	      9   6
//	    4   6   8
//	  0   7   1   5
//
// ✨ Key features:
//   - line-oriented text format: one row per line, whitespace-separated integers
//   - fail-fast shape validation (row k must hold k values)
//   - typed errors naming the offending row, column and token
//   - deep Clone so independent computations never share cells
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trisum/triangle"
//
//	t, err := triangle.ParseFile("triangle.txt")
//	if err != nil {
//	  var mt *triangle.MalformedTriangleError
//	  if errors.As(err, &mt) {
//	    // mt.Row, mt.Want, mt.Got
//	  }
//	}
//
// Input format:
//
//   - Line k (1-based) is row k and must contain exactly k integers.
//   - Integers are base-10 and must fit in int64.
//   - Trailing blank lines are ignored; a blank line before a non-blank one
//     is an empty row and is rejected.
//   - A source with no rows at all is rejected with ErrNoRows.
//
// Performance:
//
//   - Time:   O(N) in the number of input bytes
//   - Memory: O(R²) for R rows (one int64 per cell)
package triangle

// Package pathsum computes the maximum top-to-bottom path sum through a
// number triangle with bottom-up dynamic programming.
//
// 🚀 What is the maximum path sum?
//
//	Start at the apex and step down one row at a time, each step moving to
//	one of the two adjacent cells below. Among all such paths, find the one
//	with the largest total:
//
//	        5
//	      9   6
//	    4   6   8
//	  0   7   1   5      → 5 + 9 + 6 + 7 = 27
//
// ✨ Key features:
//   - exact O(N) time in the number of cells, no search
//   - three memory modes: InPlace (O(1) extra), Table (triangle untouched),
//     Rolling (one row of scratch, triangle untouched)
//   - optional recovery of one optimal path (WithReturnPath)
//   - checked int64 arithmetic: overflow is an error, never a wrong answer
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/trisum/pathsum"
//	  "github.com/katalvlaran/trisum/triangle"
//	)
//
//	t, _ := triangle.ParseFile("triangle.txt")
//	res, err := pathsum.MaxPathSum(t,
//	  pathsum.WithMemoryMode(pathsum.Table),
//	  pathsum.WithReturnPath(),
//	)
//	fmt.Println(res.Sum, res.Path)
//
// Performance:
//
//   - Time:   O(R²) for R rows (each cell visited once)
//   - Memory: O(1) (InPlace), O(R²) (Table) or O(R) (Rolling) extra
package pathsum

package pathsum_test

import (
	"fmt"

	"github.com/katalvlaran/trisum/pathsum"
	"github.com/katalvlaran/trisum/triangle"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaxPathSum
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	        5
//	      9   6
//	    4   6   8
//	  0   7   1   5
//
// Options: defaults (InPlace, no path).
//
// Complexity: O(R²) time, O(1) extra memory
func ExampleMaxPathSum() {
	t, _ := triangle.New([][]int64{{5}, {9, 6}, {4, 6, 8}, {0, 7, 1, 5}})

	res, err := pathsum.MaxPathSum(t)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("sum:", res.Sum)
	// Output:
	// sum: 27
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWithReturnPath
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	    2
//	   3 8
//	 12 9 7
//
// Options:
//   - MemoryMode = Table (triangle left untouched)
//   - ReturnPath = true
//
// The greedy choice 12 is unreachable from 8, so the best path is 2 → 8 → 9.
func ExampleWithReturnPath() {
	t, _ := triangle.New([][]int64{{2}, {3, 8}, {12, 9, 7}})

	res, err := pathsum.MaxPathSum(t,
		pathsum.WithMemoryMode(pathsum.Table),
		pathsum.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d path=%v values=%v\n", res.Sum, res.Path, res.Values)
	fmt.Println("base row untouched:", t.Rows[2])
	// Output:
	// sum=19 path=[0 1 1] values=[2 8 9]
	// base row untouched: [12 9 7]
}

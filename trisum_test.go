package trisum_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/katalvlaran/trisum"
	"github.com/katalvlaran/trisum/pathsum"
	"github.com/katalvlaran/trisum/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxPathSum_Fixtures runs the public entry point over testdata/.
func TestMaxPathSum_Fixtures(t *testing.T) {
	cases := []struct {
		file string
		want int64
		err  error
	}{
		{"single.txt", 5, nil},
		{"small.txt", 19, nil},
		{"example.txt", 27, nil},
		{"negative.txt", -4, nil},
		{"trailing_blank.txt", 20, nil},
		{"short_row.txt", 0, triangle.ErrMalformedTriangle},
		{"bad_token.txt", 0, triangle.ErrMalformedToken},
		{"empty.txt", 0, triangle.ErrNoRows},
		{"missing.txt", 0, fs.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			got, err := trisum.MaxPathSum(filepath.Join("testdata", tc.file))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Zero(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMaxPathSum_RowCountMismatch builds row 3 with 2 and with 4 values.
func TestMaxPathSum_RowCountMismatch(t *testing.T) {
	for _, content := range []string{"5\n9 6\n4 6\n", "5\n9 6\n4 6 8 1\n"} {
		path := filepath.Join(t.TempDir(), "bad.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := trisum.MaxPathSum(path)
		var mt *triangle.MalformedTriangleError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, 3, mt.Row)
	}
}

// TestSolve_WithPath returns the recovered path through the root API.
func TestSolve_WithPath(t *testing.T) {
	res, err := trisum.Solve(filepath.Join("testdata", "example.txt"), pathsum.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(27), res.Sum)
	assert.Equal(t, []int64{5, 9, 6, 7}, res.Values)
}

// TestMaxPathSum_Concurrent runs independent calls in parallel; each parses
// its own triangle, so results never interfere.
func TestMaxPathSum_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]int64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = trisum.MaxPathSum(filepath.Join("testdata", "example.txt"))
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, int64(27), got)
	}
}

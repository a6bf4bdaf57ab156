package triangle_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/trisum/triangle"
)

// triangleText renders an n-row triangle with predictable values.
func triangleText(n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c <= r; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa((r*31 + c*17) % 100))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func benchmarkParse(b *testing.B, n int) {
	src := triangleText(n)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := triangle.Parse(strings.NewReader(src)); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkParse_100 parses a 100-row triangle (5050 cells).
func BenchmarkParse_100(b *testing.B) { benchmarkParse(b, 100) }

// BenchmarkParse_1000 parses a 1000-row triangle (500500 cells).
func BenchmarkParse_1000(b *testing.B) { benchmarkParse(b, 1000) }

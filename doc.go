// Package trisum finds the maximum top-to-bottom path sum through a
// triangle of integers read from a text file.
//
// 🚀 What is trisum?
//
//	A small, dependency-light library plus CLI around one classic dynamic
//	programming recurrence:
//		• triangle/ — parse and validate the line-oriented triangle format
//		• pathsum/  — bottom-up accumulation, memory modes, path recovery
//		• cmd/trisum — command-line front end (solve, batch, version)
//
// Quick ASCII example:
//
//	    2
//	   3 8
//	 12 9 7      → 2 + 8 + 9 = 19
//
// Usage:
//
//	sum, err := trisum.MaxPathSum("triangle.txt")
//
// Every call parses its own Triangle, so concurrent calls share nothing.
//
//	go get github.com/katalvlaran/trisum
package trisum

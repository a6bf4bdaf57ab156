package triangle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes caps a single input line; longer lines fail with ErrIO.
const maxLineBytes = 16 << 20

// Parse reads a triangle from r, one row per line.
//
// Algorithm Outline:
//  1. Scan r line by line; split each line on runs of whitespace.
//  2. Convert every token with strconv.ParseInt(tok, 10, 64).
//  3. Line k must yield exactly k values.
//  4. Blank lines are held back: if a non-blank line follows, the first
//     held blank line is an empty row and fails; at EOF they are dropped.
//
// Errors (fail-fast, no partial triangle is returned):
//   - *MalformedTokenError    — token is not an int64 (errors.Is ErrMalformedToken).
//   - *MalformedTriangleError — row length mismatch (errors.Is ErrMalformedTriangle),
//     or zero rows (errors.Is ErrNoRows).
//   - ErrIO                   — the reader failed.
func Parse(r io.Reader) (*Triangle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []Row
	blanks := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			blanks++
			continue
		}
		want := len(rows) + 1
		if blanks > 0 {
			return nil, &MalformedTriangleError{Row: want, Want: want, Got: 0}
		}

		row := make(Row, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, &MalformedTokenError{Row: want, Column: i + 1, Token: tok, Err: err}
			}
			row[i] = v
		}
		if len(row) != want {
			return nil, &MalformedTriangleError{Row: want, Want: want, Got: len(row)}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(rows) == 0 {
		return nil, &MalformedTriangleError{}
	}

	return &Triangle{Rows: rows}, nil
}

// ParseFile opens path, parses it with Parse and closes it on every path.
// Open and read failures match both ErrIO and the underlying fs error,
// e.g. errors.Is(err, fs.ErrNotExist).
func ParseFile(path string) (*Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

package triangle

import (
	"errors"
	"fmt"
)

// Sentinel errors for triangle parsing and access.
// Every message is prefixed with "triangle:"; callers match with errors.Is.
var (
	// ErrIO indicates the source could not be opened or read.
	// The underlying fs error is wrapped alongside it.
	ErrIO = errors.New("triangle: read failed")

	// ErrMalformedTriangle indicates a row whose length differs from its row number.
	ErrMalformedTriangle = errors.New("triangle: row length does not match row number")

	// ErrMalformedToken indicates a token that is not a base-10 int64.
	ErrMalformedToken = errors.New("triangle: token is not an integer")

	// ErrNoRows indicates an empty source (zero rows).
	ErrNoRows = errors.New("triangle: no rows found")

	// ErrOutOfRange indicates a (row, column) outside the triangle.
	ErrOutOfRange = errors.New("triangle: index out of range")
)

// MalformedTriangleError reports a row that breaks the shape invariant.
// Row is 1-based; Row == 0 means the source had no rows at all.
type MalformedTriangleError struct {
	Row  int
	Want int
	Got  int
}

func (e *MalformedTriangleError) Error() string {
	if e.Row == 0 {
		return ErrNoRows.Error()
	}

	return fmt.Sprintf("triangle: row %d has %d values, want %d", e.Row, e.Got, e.Want)
}

// Is matches ErrMalformedTriangle, and ErrNoRows for the empty-source case.
func (e *MalformedTriangleError) Is(target error) bool {
	if target == ErrMalformedTriangle {
		return true
	}

	return e.Row == 0 && target == ErrNoRows
}

// MalformedTokenError reports a token that could not be parsed as an integer.
// Row and Column are 1-based; Err is the strconv error.
type MalformedTokenError struct {
	Row    int
	Column int
	Token  string
	Err    error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("triangle: row %d column %d: invalid integer %q", e.Row, e.Column, e.Token)
}

// Is matches ErrMalformedToken.
func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// Unwrap exposes the strconv error (ErrSyntax or ErrRange).
func (e *MalformedTokenError) Unwrap() error {
	return e.Err
}

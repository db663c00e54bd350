package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatError reports a structurally invalid world configuration.
// Line is 1-based; Row is the 0-based grid row when the problem is a data
// row, -1 otherwise.
type FormatError struct {
	Line     int
	Row      int
	Expected string
	Found    string
}

func (e *FormatError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("line %d: row %d: expected %s, found %s", e.Line, e.Row, e.Expected, e.Found)
	}
	return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Expected, e.Found)
}

// IOError reports a configuration resource that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading world: %v", e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e *IOError) Unwrap() error { return e.Err }

// Cause exposes the underlying error to errors.Cause
func (e *IOError) Cause() error { return e.Err }

// IsFormatError reports whether err is, or wraps, a *FormatError
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsIOError reports whether err is, or wraps, an *IOError
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}

package fwconfig

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedLine is matched by errors.Is for any *UnrecognizedLineError.
var ErrUnrecognizedLine = errors.New("unrecognized config line")

// UnrecognizedLineError reports a line that is not empty, a comment, a
// property or a filter header. Parsing stops at the first such line.
type UnrecognizedLineError struct {
	// Line is the raw text of the offending line
	Line string
	// Index is the 0-based line number
	Index int
}

func (e *UnrecognizedLineError) Error() string {
	return fmt.Sprintf("could not parse config line %d: %q", e.Index, e.Line)
}

// Is reports whether target is ErrUnrecognizedLine.
func (e *UnrecognizedLineError) Is(target error) bool {
	return target == ErrUnrecognizedLine
}

// ValueError reports an edit that would produce a line the parser could not
// read back, such as a property name containing '=' or a value with spaces.
type ValueError struct {
	Field   string // "section", "property" or "value"
	Value   string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// IsUnrecognizedLine checks if an error is (or wraps) an unrecognized line error
func IsUnrecognizedLine(err error) bool {
	var lineErr *UnrecognizedLineError
	return errors.As(err, &lineErr)
}

// IsValueError checks if an error is (or wraps) a value error
func IsValueError(err error) bool {
	var valErr *ValueError
	return errors.As(err, &valErr)
}

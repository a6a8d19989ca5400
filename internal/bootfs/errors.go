package bootfs

import (
	"errors"
	"fmt"
	"os"
)

// Op names the file operation that failed.
type Op string

const (
	OpRead  Op = "read"
	OpParse Op = "parse"
	OpWrite Op = "write"
)

// FileError represents a failure reading, parsing or writing a boot file.
type FileError struct {
	// Op is the failed operation
	Op Op
	// Path is the file involved
	Path string
	// Err is the underlying error
	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether err is a read of a missing file
func IsNotExist(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Op == OpRead && errors.Is(fe.Err, os.ErrNotExist)
}

// IsParseError reports whether err came from parsing file contents
func IsParseError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Op == OpParse
}

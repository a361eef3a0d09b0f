package lineio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for line processing.
var (
	// ErrInvalidArgument indicates a caller-supplied argument is invalid.
	// It is always returned before any file is opened.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO indicates a file could not be opened, read, written or closed.
	ErrIO = errors.New("i/o error")

	// ErrInvalidUTF8 indicates the input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// PathError records a failed file operation.
type PathError struct {
	Op   string // "open", "create", "read", "decode", "write", "close"
	Path string // Empty for anonymous streams
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO. Every PathError is an I/O error.
func (e *PathError) Is(target error) bool {
	return target == ErrIO
}

// newPathError wraps err, dropping a redundant *fs.PathError layer so the
// path is not repeated in the message.
func newPathError(op, path string, err error) *PathError {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &PathError{Op: op, Path: path, Err: err}
}

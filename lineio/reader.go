package lineio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const bufferSize = 64 * 1024

// Reader reads '\n'-terminated lines, keeping each line's terminator.
// The final line of the input may be unterminated.
type Reader struct {
	path  string
	br    *bufio.Reader
	line  string
	index int
	err   error
}

// NewReader creates a Reader over r. The path is used only in error
// messages and may be empty.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{
		path:  path,
		br:    bufio.NewReaderSize(r, bufferSize),
		index: -1,
	}
}

// Scan advances to the next line. It returns false at end of input or on
// the first error; Err distinguishes the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	line, err := r.br.ReadString('\n')
	if err != nil && err != io.EOF {
		r.err = newPathError("read", r.path, err)
		return false
	}
	if line == "" {
		return false
	}
	if !utf8.ValidString(line) {
		r.err = &PathError{
			Op:   "decode",
			Path: r.path,
			Err:  fmt.Errorf("line %d: %w", r.index+2, ErrInvalidUTF8),
		}
		return false
	}

	r.index++
	r.line = line
	return true
}

// Text returns the current line including its terminator, if any.
func (r *Reader) Text() string {
	return r.line
}

// Index returns the zero-based index of the current line.
func (r *Reader) Index() int {
	return r.index
}

// Err returns the first error encountered, or nil at a clean end of input.
func (r *Reader) Err() error {
	return r.err
}

// Open opens a file for reading. Failures are returned as *PathError.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newPathError("open", path, err)
	}
	return f, nil
}

package lineio

import (
	"bufio"
	"io"
	"os"
)

// Writer is a buffered line writer. Errors are returned as *PathError.
type Writer struct {
	path   string
	bw     *bufio.Writer
	closer io.Closer
}

// NewWriter creates a Writer over w. Close flushes but does not close w.
func NewWriter(w io.Writer, path string) *Writer {
	return &Writer{path: path, bw: bufio.NewWriterSize(w, bufferSize)}
}

// Create creates or truncates the file at path and returns a Writer that
// owns it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, newPathError("create", path, err)
	}
	w := NewWriter(f, path)
	w.closer = f
	return w, nil
}

// WriteString writes s verbatim.
func (w *Writer) WriteString(s string) error {
	if _, err := w.bw.WriteString(s); err != nil {
		return newPathError("write", w.path, err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return newPathError("write", w.path, err)
	}
	return nil
}

// Close flushes buffered data and closes the file, if the Writer owns one.
// The file is closed even when the flush fails.
func (w *Writer) Close() error {
	flushErr := w.Flush()
	if w.closer == nil {
		return flushErr
	}

	closeErr := w.closer.Close()
	w.closer = nil
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return newPathError("close", w.path, closeErr)
	}
	return nil
}

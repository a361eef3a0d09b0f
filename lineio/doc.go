// Package lineio provides the line-oriented file plumbing shared by the
// linekit transforms.
//
// A transform is expressed as a LineFunc: it receives each input line
// (terminator included) with its zero-based index and returns the text to
// write and whether to write it. Process runs a LineFunc over streams,
// ProcessFile over paths.
//
// # Basic Usage
//
//	stats, err := lineio.ProcessFile("in.txt", "out.txt", func(i int, line string) (string, bool) {
//	    return strings.ToUpper(line), true
//	})
//
// # Errors
//
// Failures carry one of two kinds, checked with errors.Is:
//
//   - ErrInvalidArgument: a caller-supplied argument is invalid; no file
//     was touched.
//   - ErrIO: opening, reading, decoding, writing or closing a file failed.
//
// I/O failures are *PathError values, which also unwrap to the underlying
// OS error, so errors.Is(err, fs.ErrNotExist) works as usual.
//
// # Encoding
//
// Input must be UTF-8. A line containing invalid UTF-8 stops processing
// with an error matching both ErrIO and ErrInvalidUTF8.
package lineio

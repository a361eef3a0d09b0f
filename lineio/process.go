package lineio

import "io"

// LineFunc maps one input line to output. index is zero-based and line
// includes its terminator. When keep is false nothing is written.
type LineFunc func(index int, line string) (out string, keep bool)

// Stats summarises one processing pass.
type Stats struct {
	LinesRead    int
	LinesWritten int
	BytesWritten int64
}

// Process applies fn to every line of r and writes the results to w.
// Output is flushed before returning, including on error.
func Process(r io.Reader, w io.Writer, fn LineFunc) (Stats, error) {
	lw := NewWriter(w, "")
	stats, err := process(NewReader(r, ""), lw, fn)
	if flushErr := lw.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return stats, err
}

// ProcessFile applies fn to every line of the file at inPath and writes the
// results to outPath, which is created or truncated.
//
// The input is opened before the output is created, so a missing input
// leaves outPath untouched. Both files are closed on every return path.
// Output written before a failure stays in place.
func ProcessFile(inPath, outPath string, fn LineFunc) (stats Stats, err error) {
	in, err := Open(inPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := Create(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return process(NewReader(in, inPath), out, fn)
}

func process(r *Reader, w *Writer, fn LineFunc) (Stats, error) {
	var stats Stats
	for r.Scan() {
		stats.LinesRead++

		out, keep := fn(r.Index(), r.Text())
		if !keep {
			continue
		}
		if err := w.WriteString(out); err != nil {
			return stats, err
		}
		stats.LinesWritten++
		stats.BytesWritten += int64(len(out))
	}
	return stats, r.Err()
}

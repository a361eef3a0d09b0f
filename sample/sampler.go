package sample

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/randalmurphal/linekit/lineio"
)

// Op is the step name this transform registers under.
const Op = "sample"

// Sampler keeps every Nth line of its input.
type Sampler struct {
	stride int
}

// New creates a sampler with stride n.
// Returns an error wrapping lineio.ErrInvalidArgument if n < 1.
func New(n int) (*Sampler, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: stride must be >= 1, got %d", lineio.ErrInvalidArgument, n)
	}
	return &Sampler{stride: n}, nil
}

// Stride returns the sampling stride.
func (s *Sampler) Stride() int {
	return s.stride
}

// Name implements step.Transform.
func (s *Sampler) Name() string {
	return Op
}

// Keep reports whether the line at the zero-based index is kept.
func (s *Sampler) Keep(index int) bool {
	return index%s.stride == 0
}

// Stream copies every Nth line of r to w.
func (s *Sampler) Stream(r io.Reader, w io.Writer) (lineio.Stats, error) {
	return lineio.Process(r, w, s.apply)
}

// File copies every Nth line of the file at inPath to outPath, creating or
// overwriting it.
func (s *Sampler) File(inPath, outPath string) (lineio.Stats, error) {
	stats, err := lineio.ProcessFile(inPath, outPath, s.apply)
	if err != nil {
		return stats, err
	}

	slog.Debug("sampled file",
		slog.String("input", inPath),
		slog.String("output", outPath),
		slog.Int("stride", s.stride),
		slog.Int("lines_read", stats.LinesRead),
		slog.Int("lines_kept", stats.LinesWritten))
	return stats, nil
}

func (s *Sampler) apply(index int, line string) (string, bool) {
	return line, s.Keep(index)
}

// EveryNth copies every nth line of the file at inPath to outPath.
// n is validated before any file is touched.
func EveryNth(inPath, outPath string, n int) error {
	s, err := New(n)
	if err != nil {
		return err
	}
	_, err = s.File(inPath, outPath)
	return err
}

package truncate

import (
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/randalmurphal/linekit/lineio"
)

// Op is the step name this transform registers under.
const Op = "truncate"

// DefaultMarker is the marker used when none is given.
const DefaultMarker = "Mozilla"

// Truncator cuts lines at the first occurrence of a marker.
type Truncator struct {
	marker string
}

// New creates a truncator for the given marker.
func New(marker string) *Truncator {
	return &Truncator{marker: marker}
}

// NewDefault creates a truncator for DefaultMarker.
func NewDefault() *Truncator {
	return New(DefaultMarker)
}

// Marker returns the truncator's marker.
func (t *Truncator) Marker() string {
	return t.marker
}

// Name implements step.Transform.
func (t *Truncator) Name() string {
	return Op
}

// Line returns line cut before the first marker occurrence, with trailing
// whitespace (including any terminator) removed.
func (t *Truncator) Line(line string) string {
	if idx := strings.Index(line, t.marker); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimRightFunc(line, isSpace)
}

// Stream truncates every line of r and writes the results to w.
func (t *Truncator) Stream(r io.Reader, w io.Writer) (lineio.Stats, error) {
	return lineio.Process(r, w, t.apply)
}

// File truncates every line of the file at inPath and writes the result to
// outPath, creating or overwriting it.
func (t *Truncator) File(inPath, outPath string) (lineio.Stats, error) {
	stats, err := lineio.ProcessFile(inPath, outPath, t.apply)
	if err != nil {
		return stats, err
	}

	slog.Debug("truncated file",
		slog.String("input", inPath),
		slog.String("output", outPath),
		slog.String("marker", t.marker),
		slog.Int("lines", stats.LinesWritten))
	return stats, nil
}

func (t *Truncator) apply(_ int, line string) (string, bool) {
	return t.Line(line) + "\n", true
}

// isSpace matches Unicode white space and the ASCII separators FS, GS, RS
// and US.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

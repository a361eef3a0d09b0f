// Package truncate cuts every line of a text file at the first occurrence
// of a marker substring.
//
// For each input line, the text before the first occurrence of the marker
// is kept and the marker and everything after it are dropped. Lines without
// the marker are kept whole. Trailing whitespace is then stripped and the
// line is written with a single '\n' terminator, whatever terminator the
// input used. The output always has as many lines as the input.
//
// # Basic Usage
//
// Truncate a file at the default marker ("Mozilla"):
//
//	err := truncate.File("access.log", "access.trimmed.log")
//
// Or use a specific marker:
//
//	tr := truncate.New(" HTTP/")
//	stats, err := tr.File("access.log", "requests.log")
//
// Per-line use without files:
//
//	truncate.Line("abcMozillaXYZ\n", truncate.DefaultMarker) // "abc"
//
// # Matching
//
// The marker is matched literally and case-sensitively. An empty marker
// matches at the start of every line, so every output line is empty.
//
// # Whitespace
//
// Trailing whitespace is Unicode white space plus the ASCII information
// separators U+001C through U+001F.
package truncate

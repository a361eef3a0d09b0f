package truncate

// Line truncates a single line at marker.
func Line(line, marker string) string {
	return New(marker).Line(line)
}

// File truncates the file at inPath at DefaultMarker and writes the result
// to outPath.
func File(inPath, outPath string) error {
	_, err := NewDefault().File(inPath, outPath)
	return err
}

// FileWithMarker truncates the file at inPath at marker and writes the
// result to outPath.
func FileWithMarker(inPath, outPath, marker string) error {
	_, err := New(marker).File(inPath, outPath)
	return err
}

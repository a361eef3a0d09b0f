package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/linekit/lineio"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTruncate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	writeFile(t, in, "GET / Mozilla/5.0\nno marker  \n")

	code, _, stderr := run(t, "truncate", in, out)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "GET /\nno marker\n", readFile(t, out))
}

func TestTruncate_CustomMarker(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	writeFile(t, in, "a|b\nc\n")

	code, _, stderr := run(t, "truncate", "--marker", "|", in, out)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "a\nc\n", readFile(t, out))
}

func TestTruncate_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	code, _, stderr := run(t, "truncate", filepath.Join(dir, "missing.txt"), out)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Error:")
	assert.NoFileExists(t, out)
}

func TestSample(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	writeFile(t, in, "0\n1\n2\n3\n4\r\n5\n6")

	code, _, stderr := run(t, "sample", "-n", "2", in, out)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "0\n2\n4\r\n6", readFile(t, out))
}

func TestSample_InvalidStride(t *testing.T) {
	for _, n := range []string{"0", "-3"} {
		t.Run(n, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "in.txt")
			out := filepath.Join(dir, "out.txt")
			writeFile(t, in, "a\n")

			code, _, stderr := run(t, "sample", "--every="+n, in, out)
			assert.Equal(t, exitInvalidArg, code)
			assert.Contains(t, stderr, "stride")
			assert.NoFileExists(t, out)
		})
	}
}

func TestSchema(t *testing.T) {
	code, stdout, _ := run(t, "schema")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"steps"`)
	assert.Contains(t, stdout, `"truncate"`)
}

const fixupConfig = `input: in.txt
output: final.txt
steps:
  - op: truncate
    output: cut.txt
  - op: sample
    stride: 2
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "a Mozilla\nb Mozilla\nc Mozilla\n")
	cfgPath := filepath.Join(dir, "fixup.yaml")
	writeFile(t, cfgPath, fixupConfig)

	code, stdout, stderr := run(t, "run", cfgPath)
	require.Equal(t, exitOK, code, stderr)

	assert.Equal(t, "a\nb\nc\n", readFile(t, filepath.Join(dir, "cut.txt")))
	assert.Equal(t, "a\nc\n", readFile(t, filepath.Join(dir, "final.txt")))
	assert.Contains(t, stdout, "truncate")
	assert.Contains(t, stdout, "sample")
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "a\n")
	cfgPath := filepath.Join(dir, "fixup.yaml")
	writeFile(t, cfgPath, fixupConfig)

	code, stdout, stderr := run(t, "run", "--dry-run", cfgPath)
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, filepath.Join(dir, "cut.txt"))
	assert.Contains(t, stdout, filepath.Join(dir, "final.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "cut.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "final.txt"))
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	writeFile(t, cfgPath, "input: in.txt\nsteps:\n  - op: sample\n    stride: 0\n")

	code, _, _ := run(t, "run", cfgPath)
	assert.Equal(t, exitInvalidArg, code)
}

func TestWatch_InvalidPollInterval(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "a\n")
	cfgPath := filepath.Join(dir, "fixup.yaml")
	writeFile(t, cfgPath, fixupConfig)

	code, _, stderr := run(t, "watch", "--poll", "--poll-interval", "0", cfgPath)
	assert.Equal(t, exitInvalidArg, code)
	assert.Contains(t, stderr, "poll interval")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitInvalidArg, exitCode(fmt.Errorf("wrapped: %w", lineio.ErrInvalidArgument)))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
	assert.Equal(t, exitError, exitCode(&lineio.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

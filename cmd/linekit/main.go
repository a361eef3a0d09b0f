// linekit applies line-oriented transforms to text files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/randalmurphal/linekit/lineio"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitInvalidArg = 2
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error to an exit code: 2 for invalid arguments
// (nothing was written), 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, lineio.ErrInvalidArgument) {
		return exitInvalidArg
	}
	return exitError
}

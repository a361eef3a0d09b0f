package pipeline

import (
	"fmt"

	"github.com/randalmurphal/linekit/lineio"
)

// ErrInvalidConfig indicates the pipeline configuration is invalid.
// It matches lineio.ErrInvalidArgument, so callers can treat it as a
// caller error.
var ErrInvalidConfig = fmt.Errorf("%w: invalid pipeline config", lineio.ErrInvalidArgument)

// StepError records the failure of one pipeline step.
type StepError struct {
	Index int    // 1-based step number
	Op    string // Step op name
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StepError) Unwrap() error {
	return e.Err
}

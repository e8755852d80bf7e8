package reducer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInterrupted matches every *InterruptedError.
var ErrInterrupted = errors.New("interrupted while waiting for result")

// InterruptedError is returned when the caller's context ended before the result was ready.
// Err is the context error, so both ErrInterrupted and context.Canceled or
// context.DeadlineExceeded match it.
type InterruptedError struct {
	Err error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInterrupted, e.Err)
}

func (e *InterruptedError) Unwrap() error {
	return e.Err
}

func (e *InterruptedError) Is(target error) bool {
	return target == ErrInterrupted
}

// ExecutionError reports a chunk that could not be submitted or whose task failed.
type ExecutionError struct {
	Chunk int
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Chunk, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Cause supports errors.Cause.
func (e *ExecutionError) Cause() error {
	return e.Err
}

package passvault

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNoHandle is returned when a handle-bound operation runs without a
	// session handle present.
	ErrNoHandle = errors.New("no session handle available")

	// ErrNonZeroReturn is returned when a primitive reports a non-zero
	// status code.
	ErrNonZeroReturn = errors.New("provider returned non-zero status")

	// ErrReturnMismatch is returned when a decrypt-class primitive writes
	// a byte count different from the computed output length.
	ErrReturnMismatch = errors.New("provider wrote unexpected byte count")

	// ErrInvalidInputLength is returned when a decrypt-class input is
	// shorter than the encryption overhead.
	ErrInvalidInputLength = errors.New("input shorter than encryption overhead")
)

// PassvaultError is implemented by all codec errors.
type PassvaultError interface {
	error
	PassvaultError() // marker method
}

// NoHandleError reports that a handle-bound operation was invoked while
// the session collaborator had no handle to offer. The provider is never
// reached in this case.
type NoHandleError struct {
	Op string
}

func (e *NoHandleError) Error() string {
	return fmt.Sprintf("%s: no session handle available", e.Op)
}

// Is implements errors.Is for sentinel error matching.
func (e *NoHandleError) Is(target error) bool {
	return target == ErrNoHandle
}

// PassvaultError implements the PassvaultError interface.
func (e *NoHandleError) PassvaultError() {}

// NonZeroReturnError reports a primitive that failed with a status code.
// Code is the raw provider value, preserved for diagnostics.
type NonZeroReturnError struct {
	Op   string
	Code int32
}

func (e *NonZeroReturnError) Error() string {
	return fmt.Sprintf("%s: provider returned status %d", e.Op, e.Code)
}

// Is implements errors.Is for sentinel error matching.
func (e *NonZeroReturnError) Is(target error) bool {
	return target == ErrNonZeroReturn
}

// PassvaultError implements the PassvaultError interface.
func (e *NonZeroReturnError) PassvaultError() {}

// ReturnMismatchError reports a decrypt-class primitive that claimed
// success but wrote a different number of bytes than the sizing policy
// computed. This signals corrupted or mismatched-length input.
type ReturnMismatchError struct {
	Op       string
	Written  int
	Expected int
}

func (e *ReturnMismatchError) Error() string {
	return fmt.Sprintf("%s: provider wrote %d bytes, expected %d", e.Op, e.Written, e.Expected)
}

// Is implements errors.Is for sentinel error matching.
func (e *ReturnMismatchError) Is(target error) bool {
	return target == ErrReturnMismatch
}

// PassvaultError implements the PassvaultError interface.
func (e *ReturnMismatchError) PassvaultError() {}

// InvalidInputLengthError reports a decrypt-class input too short to
// contain the encryption overhead. The call is rejected before any buffer
// is allocated and before the provider is invoked.
type InvalidInputLengthError struct {
	Op          string
	InputLength int
	MinLength   int
}

func (e *InvalidInputLengthError) Error() string {
	return fmt.Sprintf("%s: input of %d bytes is shorter than the %d-byte encryption overhead", e.Op, e.InputLength, e.MinLength)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidInputLengthError) Is(target error) bool {
	return target == ErrInvalidInputLength
}

// PassvaultError implements the PassvaultError interface.
func (e *InvalidInputLengthError) PassvaultError() {}

// classifyStatus translates a status-returning primitive's result.
func classifyStatus(op string, code int32) error {
	if code == 0 {
		return nil
	}
	return &NonZeroReturnError{Op: op, Code: code}
}

// classifyWritten translates a decrypt-class primitive's result. Negative
// values are status codes; non-negative values are byte counts that must
// match the precomputed output length exactly.
func classifyWritten(op string, written int64, expected int) error {
	if written < 0 {
		return &NonZeroReturnError{Op: op, Code: int32(written)}
	}
	if written != int64(expected) {
		return &ReturnMismatchError{Op: op, Written: int(written), Expected: expected}
	}
	return nil
}

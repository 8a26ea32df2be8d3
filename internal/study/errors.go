package study

import "fmt"

// UserErrorMessage is the only analysis failure text shown to the user.
// The underlying cause goes to the request log, not the screen.
const UserErrorMessage = "Something went wrong while analyzing your material. Please try again."

// ErrInvalidInput indicates a submission that does not meet the input
// threshold. Callers gate on readiness before submitting; the builder
// still rejects anything below it.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ErrAnalysis indicates the analysis call failed: transport error,
// malformed response, or schema-non-conforming response. All causes
// collapse into this one kind.
type ErrAnalysis struct {
	Err error
}

func (e *ErrAnalysis) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Err)
}

func (e *ErrAnalysis) Unwrap() error { return e.Err }

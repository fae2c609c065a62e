package agent

import "fmt"

// ClassificationError wraps a failed or unparseable intent classification.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("intent classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// LocationResolutionError wraps a failure while annotating location terms.
type LocationResolutionError struct {
	Err error
}

func (e *LocationResolutionError) Error() string {
	return fmt.Sprintf("location processing failed: %v", e.Err)
}

func (e *LocationResolutionError) Unwrap() error { return e.Err }

// SynthesisError wraps a failed or malformed SQL generation.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("SQL generation failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// ExecutionError wraps the database error from running a generated query.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("SQL execution failed: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// FallbackError wraps a failure of the schema agent fallback path.
type FallbackError struct {
	Err error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("fallback agent failed: %v", e.Err)
}

func (e *FallbackError) Unwrap() error { return e.Err }

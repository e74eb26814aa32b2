package types

import "fmt"

// ValidationError reports an input record that is missing required fields.
// It is fatal for the single evaluation it concerns; bulk evaluation recovers
// by isolating the item.
type ValidationError struct {
	Record  string // "job" or "candidate"
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s record: %s: %v", e.Record, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s record: %s", e.Record, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports engine tunables outside their valid ranges.
// It is fatal at engine construction time and is never silently corrected.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Message)
}

// EvaluationError wraps a failure evaluating a single candidate during bulk
// evaluation, carrying the candidate identifier and the cause.
type EvaluationError struct {
	CandidateID string
	Cause       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation failed for candidate %q: %v", e.CandidateID, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

package analyzer

import "fmt"

// UnavailableError represents an external analyzer that could not contribute
// to the evaluation: timeout, transport failure, or a malformed response. The
// aggregator drops the analyzer's contribution instead of failing the run.
type UnavailableError struct {
	Analyzer string
	Message  string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s analyzer unavailable: %s: %v", e.Analyzer, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s analyzer unavailable: %s", e.Analyzer, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

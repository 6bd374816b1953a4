package ingestion

import "fmt"

// ValidationError represents input that is empty or under the minimum content
// threshold. The normalizer still returns a best-effort ResumeText alongside it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

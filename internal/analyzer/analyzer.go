// Package analyzer defines the common analyzer contract and implements the
// rule-based (standard) analyzer.
package analyzer

import (
	"context"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// Analyzer names used in feedback attribution and error reporting.
const (
	NameStandard = "standard"
	NameAI       = "ai"
	NameRubric   = "rubric"
)

// Analyzer produces a score and structured feedback for resume text. All three
// analyzers (standard, AI semantic, rubric) satisfy this interface; the
// external ones return *UnavailableError on timeout, transport failure, or a
// response that fails schema validation.
type Analyzer interface {
	// Name identifies the analyzer for feedback attribution.
	Name() string
	// Analyze evaluates the resume text. Implementations must respect ctx
	// cancellation when they block.
	Analyze(ctx context.Context, resumeText string) (*types.AnalyzerResult, error)
}

// Package schemas provides JSON Schema validation for analyzer LLM responses.
// Schemas are embedded so validation never depends on the working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed ai_analysis.schema.json
var aiAnalysisSchema string

//go:embed rubric_analysis.schema.json
var rubricAnalysisSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAIAnalysis validates an AI semantic analyzer response against the
// embedded schema.
func ValidateAIAnalysis(data []byte) error {
	return validateAgainst(aiAnalysisSchema, data)
}

// ValidateRubricAnalysis validates a rubric analyzer response against the
// embedded schema.
func ValidateRubricAnalysis(data []byte) error {
	return validateAgainst(rubricAnalysisSchema, data)
}

func validateAgainst(schema string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate JSON: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return ve
	}

	return nil
}

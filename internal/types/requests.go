package types

import "github.com/go-playground/validator/v10"

// EvaluateRequest represents the request body for /evaluate.
type EvaluateRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// EvaluateResponse wraps an Evaluation with its request-scoped identifier.
type EvaluateResponse struct {
	EvaluationID string `json:"evaluation_id"`
	Cached       bool   `json:"cached,omitempty"`
	Evaluation
}

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// handleEvaluate runs the full evaluation pipeline over the submitted resume
// text. Identical text within the cache TTL returns the memoized evaluation
// without re-invoking the analyzers.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	if eval, found := s.cache.Get(req.ResumeText); found {
		s.jsonResponse(w, http.StatusOK, types.EvaluateResponse{
			EvaluationID: uuid.NewString(),
			Cached:       true,
			Evaluation:   *eval,
		})
		return
	}

	eval, err := s.evaluator.Evaluate(r.Context(), req.ResumeText)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("evaluation failed: %v", err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.cache.Set(req.ResumeText, eval)

	s.jsonResponse(w, http.StatusOK, types.EvaluateResponse{
		EvaluationID: uuid.NewString(),
		Cached:       false,
		Evaluation:   *eval,
	})
}

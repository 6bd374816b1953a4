package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/evaluate"
	"github.com/jonathan/resume-evaluator/internal/types"
)

const sampleResume = `John Smith
CONTACT
Email: john.smith@example.com
Phone: 555-123-4567
linkedin.com/in/johnsmith
Location: Seattle, WA

SUMMARY
Software engineer focused on building reliable backend platforms.

SKILLS
Python, Java, JavaScript, SQL, React, AWS, Docker, Kubernetes, Git, Linux, PostgreSQL, MongoDB, Microservices, REST API

EXPERIENCE
Senior Software Engineer, Acme Corp, 2021 - 2023
• Developed a payment microservices platform using Python and AWS, improved throughput by 40%
• Led a team of 5 members to deliver a React dashboard, reduced support tickets by 30%

PROJECTS
Inventory Tracker
• Designed a Python inventory service with PostgreSQL, improved stock accuracy by 25%

EDUCATION
B.S. Computer Science, State University, 2014 - 2018

CERTIFICATIONS
AWS Certified Solutions Architect`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	evaluator := evaluate.New(analyzer.NewStandard(nil))
	return New(Config{Port: 0, CacheTTL: time.Minute}, evaluator)
}

func postEvaluate(t *testing.T, s *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestEvaluate_Success(t *testing.T) {
	s := newTestServer(t)

	payload, err := json.Marshal(types.EvaluateRequest{ResumeText: sampleResume})
	require.NoError(t, err)

	rec := postEvaluate(t, s, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.EvaluationID)
	assert.False(t, resp.Cached)
	assert.Greater(t, resp.StandardScore, 0)
	assert.Equal(t, resp.StandardScore, resp.FinalScore)
	assert.Nil(t, resp.AIScore)
	assert.Nil(t, resp.RubricScore)
	assert.NotEmpty(t, resp.ResumeImprovements)
}

func TestEvaluate_CachedOnRepeat(t *testing.T) {
	s := newTestServer(t)

	payload, err := json.Marshal(types.EvaluateRequest{ResumeText: sampleResume})
	require.NoError(t, err)

	first := postEvaluate(t, s, payload)
	require.Equal(t, http.StatusOK, first.Code)
	var firstResp types.EvaluateResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	assert.False(t, firstResp.Cached)

	second := postEvaluate(t, s, payload)
	require.Equal(t, http.StatusOK, second.Code)
	var secondResp types.EvaluateResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))

	assert.True(t, secondResp.Cached)
	assert.Equal(t, firstResp.FinalScore, secondResp.FinalScore)
	// A fresh identifier is issued per request even on cache hits.
	assert.NotEqual(t, firstResp.EvaluationID, secondResp.EvaluationID)
}

func TestEvaluate_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := postEvaluate(t, s, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestEvaluate_MissingResumeText(t *testing.T) {
	s := newTestServer(t)

	rec := postEvaluate(t, s, []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluate_EmptyResumeText(t *testing.T) {
	s := newTestServer(t)

	rec := postEvaluate(t, s, []byte(`{"resume_text": "   "}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEvaluate_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/evaluate", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEvaluate_ResponseShape(t *testing.T) {
	s := newTestServer(t)

	payload, err := json.Marshal(types.EvaluateRequest{ResumeText: sampleResume})
	require.NoError(t, err)

	rec := postEvaluate(t, s, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	for _, key := range []string{
		"evaluation_id", "standard_ats_score", "ai_ats_score", "rubric_ats_score",
		"final_ats_score", "shortlist_decision", "analysis_summary",
		"resume_improvements", "rubric_feedback",
	} {
		_, ok := raw[key]
		assert.True(t, ok, "response missing %q", key)
	}
}

// Package semantic implements the AI-backed semantic analyzer: a balanced,
// pedagogical evaluation of resume text performed by Gemini and returned as
// strict JSON.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/schemas"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// minTextLength is the shortest input worth sending to the model.
const minTextLength = 50

// maxIssueImprovements bounds how many model-reported issues become
// improvement items.
const maxIssueImprovements = 5

// Analyzer is the AI semantic analyzer.
type Analyzer struct {
	client llm.Client
}

// New creates the semantic analyzer on top of an LLM client.
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Name identifies the analyzer.
func (a *Analyzer) Name() string { return analyzer.NameAI }

// response mirrors the strict JSON schema the prompt demands.
type response struct {
	Score     int `json:"ai_ats_score"`
	RawScores struct {
		EvidenceDepth      int `json:"evidence_depth"`
		MetricsImpact      int `json:"metrics_impact"`
		SeniorityFit       int `json:"seniority_fit"`
		Originality        int `json:"originality"`
		ParsingCleanliness int `json:"parsing_cleanliness"`
	} `json:"raw_scores"`
	AnalysisSummary struct {
		Strengths  []string `json:"strengths"`
		Weaknesses []string `json:"weaknesses"`
	} `json:"analysis_summary"`
	TeachingSummary string  `json:"teaching_summary"`
	Issues          []issue `json:"issues"`
}

type issue struct {
	Label          string `json:"label"`
	Snippet        string `json:"snippet"`
	Severity       string `json:"severity"`
	RecommendedFix string `json:"recommended_fix"`
	Rewrites       struct {
		Concise  string `json:"concise"`
		Expanded string `json:"expanded"`
	} `json:"rewrites"`
}

// Analyze sends the resume to the model and transforms the reply into the
// uniform AnalyzerResult. Any failure - transport, timeout, schema mismatch -
// is returned as *analyzer.UnavailableError so the aggregator can degrade.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (*types.AnalyzerResult, error) {
	if len(strings.TrimSpace(resumeText)) < minTextLength {
		return nil, &analyzer.UnavailableError{
			Analyzer: a.Name(),
			Message:  "resume text is too short for meaningful AI analysis",
		}
	}

	raw, err := a.client.GenerateJSON(ctx, buildPrompt(resumeText), llm.TierStandard)
	if err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "generation failed", Cause: err}
	}

	data := []byte(llm.CleanJSONBlock(raw))
	if err := schemas.ValidateAIAnalysis(data); err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "response failed schema validation", Cause: err}
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "response parsing failed", Cause: err}
	}

	return transform(&resp), nil
}

// transform maps the model's schema onto the shared AnalyzerResult shape.
func transform(resp *response) *types.AnalyzerResult {
	result := &types.AnalyzerResult{
		Score:        clamp(resp.Score),
		Strengths:    append([]string{}, resp.AnalysisSummary.Strengths...),
		Weaknesses:   append([]string{}, resp.AnalysisSummary.Weaknesses...),
		Improvements: types.NewImprovementMap(),
	}

	if resp.TeachingSummary != "" {
		result.Strengths = append(result.Strengths, "AI Insight: "+resp.TeachingSummary)
		result.Weaknesses = append([]string{"Learning Focus: " + resp.TeachingSummary}, result.Weaknesses...)
	}

	result.Improvements[types.CategoryProjectsAndExperience] = append(
		result.Improvements[types.CategoryProjectsAndExperience],
		types.Improvement{
			Issue:          "Experience depth could be improved",
			RecommendedFix: fmt.Sprintf("Evidence & Depth Score: %d/100 - add explicit context and results to experience claims", resp.RawScores.EvidenceDepth),
			Reason:         "Demonstrates substantive experience rather than surface-level claims",
		})

	result.Improvements[types.CategoryContentAndBullets] = append(
		result.Improvements[types.CategoryContentAndBullets],
		types.Improvement{
			Issue:          "Impact-driven content needs enhancement",
			RecommendedFix: fmt.Sprintf("Metrics & Impact Score: %d/100 - quantify outcomes wherever possible", resp.RawScores.MetricsImpact),
			Reason:         "Highlights business value and measurable outcomes",
		})

	level := roleLevel(resp.Score, resp.RawScores.SeniorityFit)
	result.Improvements[types.CategoryKeywordAndSkills] = append(
		result.Improvements[types.CategoryKeywordAndSkills],
		types.Improvement{
			Issue:          fmt.Sprintf("Resume appears to target %s positions", level),
			RecommendedFix: fmt.Sprintf("Ensure your skills and experience align with %s role expectations. Add relevant certifications or advanced skills if targeting higher levels.", level),
			Reason:         "Aligns resume presentation with career level and target roles",
		})

	for i, iss := range resp.Issues {
		if i >= maxIssueImprovements {
			break
		}
		cat := categorizeIssue(iss.Label)
		result.Improvements[cat] = append(result.Improvements[cat], types.Improvement{
			Issue:          iss.Label,
			RecommendedFix: iss.RecommendedFix,
			Reason:         fmt.Sprintf("AI analysis flagged this as %s severity", strings.ToLower(nonEmpty(iss.Severity, "medium"))),
			Example:        iss.Rewrites.Concise,
		})
	}

	return result
}

// categorizeIssue buckets a model-reported issue label by its keywords.
func categorizeIssue(label string) types.ImprovementCategory {
	lower := strings.ToLower(label)
	switch {
	case containsAny(lower, "skill", "keyword", "proof", "claim"):
		return types.CategoryKeywordAndSkills
	case containsAny(lower, "bullet", "verb", "ownership", "depth", "metric", "impact"):
		return types.CategoryContentAndBullets
	case containsAny(lower, "project", "experience", "seniority"):
		return types.CategoryProjectsAndExperience
	case containsAny(lower, "format", "structure", "parsing", "ocr"):
		return types.CategoryStructureFormatting
	default:
		return types.CategoryATSCompatibility
	}
}

// roleLevel estimates the career level the resume presents.
func roleLevel(score, seniorityFit int) string {
	switch {
	case score >= 75 && seniorityFit >= 70:
		return "senior"
	case score >= 55 && seniorityFit >= 50:
		return "mid-level"
	default:
		return "junior"
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

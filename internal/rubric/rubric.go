// Package rubric implements the evidence-based rubric analyzer: a Gemini-backed
// simulation of a strict human reviewer judging proof, ownership and depth,
// ending in a shortlist decision.
package rubric

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/schemas"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// minTextLength is the shortest input worth sending to the model.
const minTextLength = 50

// maxIssueImprovements bounds how many rubric issues become improvement items.
const maxIssueImprovements = 5

// Analyzer is the evidence-based rubric analyzer.
type Analyzer struct {
	client llm.Client
}

// New creates the rubric analyzer on top of an LLM client.
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Name identifies the analyzer.
func (a *Analyzer) Name() string { return analyzer.NameRubric }

// response mirrors the strict JSON schema the prompt demands.
type response struct {
	Score             int    `json:"rubric_ats_score"`
	ShortlistDecision string `json:"shortlist_decision"`
	RubricSummary     struct {
		TrustedSignals []string `json:"trusted_signals"`
		RedFlags       []string `json:"red_flags"`
	} `json:"rubric_summary"`
	RubricIssues      []rubricIssue `json:"rubric_issues"`
	LearningTakeaways []string      `json:"learning_takeaways"`
}

type rubricIssue struct {
	Issue          string `json:"issue"`
	WhyItFails     string `json:"why_it_fails_human_review"`
	HowToFix       string `json:"how_to_fix"`
	ExampleRewrite string `json:"example_rewrite"`
}

// Analyze sends the resume to the model and transforms the reviewer verdict
// into the uniform AnalyzerResult. Any failure is returned as
// *analyzer.UnavailableError so the aggregator can degrade.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (*types.AnalyzerResult, error) {
	if len(strings.TrimSpace(resumeText)) < minTextLength {
		return nil, &analyzer.UnavailableError{
			Analyzer: a.Name(),
			Message:  "resume text is too short for meaningful rubric analysis",
		}
	}

	raw, err := a.client.GenerateJSON(ctx, buildPrompt(resumeText), llm.TierStandard)
	if err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "generation failed", Cause: err}
	}

	data := []byte(llm.CleanJSONBlock(raw))
	if err := schemas.ValidateRubricAnalysis(data); err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "response failed schema validation", Cause: err}
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "response parsing failed", Cause: err}
	}

	return transform(&resp), nil
}

// transform maps the reviewer verdict onto the shared AnalyzerResult shape.
func transform(resp *response) *types.AnalyzerResult {
	result := &types.AnalyzerResult{
		Score:             clamp(resp.Score),
		Strengths:         append([]string{}, resp.RubricSummary.TrustedSignals...),
		Weaknesses:        append([]string{}, resp.RubricSummary.RedFlags...),
		Improvements:      types.NewImprovementMap(),
		ShortlistDecision: resp.ShortlistDecision,
		RubricFeedback: &types.RubricFeedback{
			TrustedSignals:    append([]string{}, resp.RubricSummary.TrustedSignals...),
			RedFlags:          append([]string{}, resp.RubricSummary.RedFlags...),
			LearningTakeaways: append([]string{}, resp.LearningTakeaways...),
		},
	}

	switch resp.ShortlistDecision {
	case "Yes":
		result.Strengths = append([]string{"Shortlist decision: would recommend for interview"}, result.Strengths...)
	case "No":
		result.Weaknesses = append([]string{"Shortlist decision: would NOT recommend for interview"}, result.Weaknesses...)
	}

	for i, iss := range resp.RubricIssues {
		if i >= maxIssueImprovements {
			break
		}
		cat := categorizeIssue(iss.Issue)
		result.Improvements[cat] = append(result.Improvements[cat], types.Improvement{
			Issue:          iss.Issue,
			RecommendedFix: iss.HowToFix,
			Reason:         "Human Reviewer: " + iss.WhyItFails,
			Example:        iss.ExampleRewrite,
		})
	}

	return result
}

// categorizeIssue buckets a rubric issue by its keywords.
func categorizeIssue(issue string) types.ImprovementCategory {
	lower := strings.ToLower(issue)
	switch {
	case containsAny(lower, "skill", "keyword", "proof", "claim"):
		return types.CategoryKeywordAndSkills
	case containsAny(lower, "bullet", "verb", "ownership", "depth"):
		return types.CategoryContentAndBullets
	case containsAny(lower, "project", "experience", "difficulty"):
		return types.CategoryProjectsAndExperience
	default:
		return types.CategoryATSCompatibility
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

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

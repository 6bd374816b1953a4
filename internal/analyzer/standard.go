package analyzer

import (
	"context"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/sections"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// Standard is the deterministic rule-based analyzer. It never fails and never
// blocks: every input produces a best-effort score from whatever section and
// content signals exist.
type Standard struct {
	scorer *scoring.Scorer
}

// NewStandard creates the rule-based analyzer. A nil vocabulary uses the
// built-in term tables.
func NewStandard(vocab *scoring.Vocabulary) *Standard {
	return &Standard{scorer: scoring.NewScorer(vocab)}
}

// Name identifies the analyzer.
func (a *Standard) Name() string { return NameStandard }

// Analyze runs the normalization, section detection, rule scoring and cap
// policy, and wraps the outcome in the uniform AnalyzerResult shape.
func (a *Standard) Analyze(_ context.Context, resumeText string) (*types.AnalyzerResult, error) {
	result, _ := a.AnalyzeDetailed(resumeText)
	return result, nil
}

// AnalyzeDetailed is Analyze with the full category breakdown, for callers
// that report per-category detail.
func (a *Standard) AnalyzeDetailed(resumeText string) (*types.AnalyzerResult, *scoring.Result) {
	// A validation failure is recorded on the ResumeText and penalized by the
	// parsability category; scoring proceeds regardless.
	rt, _ := ingestion.Normalize(resumeText)
	sm := sections.Detect(rt)
	res := a.scorer.Score(rt, sm)

	strengths, weaknesses := summarize(res)

	return &types.AnalyzerResult{
		Score:        res.CappedScore,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Improvements: categorizeIssues(res.Issues()),
	}, res
}

// summarize derives headline strengths and weaknesses from category scores.
func summarize(res *scoring.Result) (strengths, weaknesses []string) {
	strongAt := func(name string, threshold int, message string) {
		if cat := res.Category(name); cat != nil && cat.RawScore >= threshold {
			strengths = append(strengths, message)
		}
	}
	weakAt := func(name string, threshold int, message string) {
		if cat := res.Category(name); cat != nil && cat.RawScore < threshold {
			weaknesses = append(weaknesses, message)
		}
	}

	strongAt(scoring.CategoryParsability, 80, "Clean, ATS-parsable format")
	strongAt(scoring.CategorySectionDetection, 80, "All essential sections present")
	strongAt(scoring.CategoryContactInformation, 80, "Complete contact information")
	strongAt(scoring.CategoryKeywordMatching, 70, "Good keyword density and relevance")
	strongAt(scoring.CategoryBulletStructure, 80, "Well-structured bullet points with outcomes")
	strongAt(scoring.CategoryDatesChronology, 80, "Proper chronological organization")

	weakAt(scoring.CategoryParsability, 60, "OCR quality issues affecting parsability")
	weakAt(scoring.CategorySectionDetection, 60, "Missing critical resume sections")
	weakAt(scoring.CategoryContactInformation, 60, "Incomplete contact information")
	weakAt(scoring.CategoryKeywordMatching, 50, "Insufficient relevant keywords and skills")
	weakAt(scoring.CategoryExperienceProjects, 60, "Weak experience/project presentation")
	weakAt(scoring.CategoryBulletStructure, 60, "Bullet points lack structure and impact")
	weakAt(scoring.CategoryDatesChronology, 60, "Missing or inconsistent dates")

	if res.CapReason != "" {
		weaknesses = append(weaknesses, "Score capped due to: "+res.CapReason)
	}

	return strengths, weaknesses
}

// categorizeIssues files each triggered penalty label into one of the five
// improvement categories and attaches a concrete fix and rationale.
func categorizeIssues(issues []string) map[types.ImprovementCategory][]types.Improvement {
	improvements := types.NewImprovementMap()

	for _, issue := range issues {
		category, fix, reason := classifyIssue(issue)
		improvements[category] = append(improvements[category], types.Improvement{
			Issue:          issue,
			RecommendedFix: fix,
			Reason:         reason,
		})
	}

	return improvements
}

func classifyIssue(issue string) (types.ImprovementCategory, string, string) {
	lower := strings.ToLower(issue)

	switch {
	case containsAny(lower, "keyword", "skill", "action verb", "quantifiable"):
		return types.CategoryKeywordAndSkills, keywordFix(lower),
			"Improves ATS keyword matching and demonstrates relevant expertise"
	case containsAny(lower, "bullet", "achievement", "metric", "number"):
		return types.CategoryContentAndBullets, contentFix(lower),
			"Makes accomplishments more impactful and measurable"
	case containsAny(lower, "experience", "project", "date", "role"):
		return types.CategoryProjectsAndExperience, experienceFix(lower),
			"Provides better context for your professional background"
	case containsAny(lower, "format", "header", "spacing", "line", "structure", "short"):
		return types.CategoryStructureFormatting, formattingFix(lower),
			"Improves readability and professional appearance"
	case containsAny(lower, "ats", "special character", "table", "graphic", "contact", "email", "phone", "linkedin", "location"):
		return types.CategoryATSCompatibility, atsFix(lower),
			"Ensures ATS systems can properly parse your resume"
	default:
		return types.CategoryATSCompatibility,
			"Review and address this issue to improve ATS compatibility",
			"Helps ATS systems better understand your qualifications"
	}
}

func keywordFix(issue string) string {
	switch {
	case strings.Contains(issue, "action verb"):
		return "Start bullet points with strong action verbs like: Developed, Implemented, Led, Designed, Optimized, Achieved, Managed"
	case strings.Contains(issue, "quantifiable"):
		return "Add specific metrics: percentages, dollar amounts, user counts, or time savings (e.g., 'Improved performance by 40%')"
	case containsAny(issue, "keyword", "skill"):
		return "Add relevant technical skills and industry keywords that match your target role"
	}
	return "Enhance keyword density with role-specific terminology"
}

func contentFix(issue string) string {
	switch {
	case strings.Contains(issue, "bullet"):
		return "Use bullet points (•, -, or *) to list responsibilities and achievements for better scannability"
	case containsAny(issue, "metric", "number"):
		return "Quantify achievements with specific numbers, percentages, or measurable outcomes"
	}
	return "Rewrite content to be more concise and impact-focused"
}

func experienceFix(issue string) string {
	switch {
	case strings.Contains(issue, "date"):
		return "Include dates in MM/YYYY format for all positions and education (e.g., '01/2020 - 12/2023')"
	case strings.Contains(issue, "experience"):
		return "Add a dedicated Work Experience section with job titles, companies, dates, and key achievements"
	case strings.Contains(issue, "project"):
		return "Highlight 2-3 substantial projects with your specific contribution, the tools used, and the outcome"
	}
	return "Provide more detailed information about your professional experience"
}

func formattingFix(issue string) string {
	switch {
	case strings.Contains(issue, "header"):
		return "Use clear section headers in UPPERCASE or Title Case (e.g., 'WORK EXPERIENCE', 'EDUCATION')"
	case strings.Contains(issue, "spacing"):
		return "Use consistent spacing: one blank line between sections, no excessive empty lines"
	case strings.Contains(issue, "short"):
		return "Expand resume content to at least one full page with detailed descriptions of your experience"
	}
	return "Review formatting for consistency and professional appearance"
}

func atsFix(issue string) string {
	switch {
	case containsAny(issue, "contact", "email", "phone"):
		return "Add complete contact information at the top: Full Name, Email, Phone, LinkedIn URL"
	case containsAny(issue, "special character", "table"):
		return "Avoid tables, text boxes, and excessive special characters - use simple text formatting"
	case strings.Contains(issue, "linkedin"):
		return "Add your LinkedIn profile URL in the format: linkedin.com/in/yourprofile"
	}
	return "Simplify formatting to ensure ATS systems can parse your resume correctly"
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

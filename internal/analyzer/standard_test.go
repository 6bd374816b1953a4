package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/scoring"
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

func TestStandard_Name(t *testing.T) {
	assert.Equal(t, NameStandard, NewStandard(nil).Name())
}

func TestStandard_AnalyzeNeverErrors(t *testing.T) {
	std := NewStandard(nil)

	for _, input := range []string{sampleResume, "tiny", ""} {
		result, err := std.Analyze(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestStandard_AnalyzeDetailed(t *testing.T) {
	result, detail := NewStandard(nil).AnalyzeDetailed(sampleResume)

	require.NotNil(t, result)
	require.NotNil(t, detail)
	assert.Equal(t, detail.CappedScore, result.Score)
	assert.Len(t, detail.Categories, 7)

	// Every improvement category is initialized, even when empty.
	for _, cat := range types.ImprovementCategories {
		_, ok := result.Improvements[cat]
		assert.True(t, ok, string(cat))
	}
}

func TestStandard_StrongResumeStrengths(t *testing.T) {
	result, _ := NewStandard(nil).AnalyzeDetailed(sampleResume)

	assert.Contains(t, result.Strengths, "Clean, ATS-parsable format")
	assert.Contains(t, result.Strengths, "All essential sections present")
	assert.Contains(t, result.Strengths, "Complete contact information")
}

func TestStandard_CapReasonReportedAsWeakness(t *testing.T) {
	// A resume that is strong everywhere except parsability: OCR-noise lines
	// drive the parsability category under 60, so the score is capped at 55
	// and the reason surfaces as a weakness.
	noisy := sampleResume
	for i := 0; i < 15; i++ {
		noisy += "\na | b | c | d | e | f"
	}

	result, detail := NewStandard(nil).AnalyzeDetailed(noisy)

	require.Equal(t, "Parsability issues", detail.CapReason)
	assert.Equal(t, 55, result.Score)
	assert.Contains(t, result.Weaknesses, "Score capped due to: Parsability issues")
}

func TestClassifyIssue_KeywordBucket(t *testing.T) {
	cat, fix, _ := classifyIssue("Insufficient action verbs in experience descriptions")
	assert.Equal(t, types.CategoryKeywordAndSkills, cat)
	assert.Contains(t, fix, "action verbs")

	cat, fix, _ = classifyIssue("Missing quantifiable achievements (add metrics, percentages, numbers)")
	assert.Equal(t, types.CategoryKeywordAndSkills, cat)
	assert.Contains(t, fix, "metrics")
}

func TestClassifyIssue_ContentBucket(t *testing.T) {
	cat, fix, _ := classifyIssue("CRITICAL: No bullet points found - use bullets for achievements")
	assert.Equal(t, types.CategoryContentAndBullets, cat)
	assert.Contains(t, fix, "bullet points")
}

func TestClassifyIssue_ExperienceBucket(t *testing.T) {
	cat, fix, _ := classifyIssue("Missing dates for experience/education - add MM/YYYY format dates")
	assert.Equal(t, types.CategoryProjectsAndExperience, cat)
	assert.Contains(t, fix, "MM/YYYY")
}

func TestClassifyIssue_FormattingBucket(t *testing.T) {
	cat, _, _ := classifyIssue("Resume is too short (minimum 300 characters recommended)")
	assert.Equal(t, types.CategoryStructureFormatting, cat)
}

func TestClassifyIssue_ATSFallback(t *testing.T) {
	cat, _, _ := classifyIssue("Something nobody anticipated")
	assert.Equal(t, types.CategoryATSCompatibility, cat)
}

func TestStandard_IssuesLandInCategories(t *testing.T) {
	// A resume missing contact info must produce ATS-compatibility
	// improvements for the email/phone penalties.
	result, _ := NewStandard(nil).AnalyzeDetailed(`John Smith
SKILLS
Python, SQL
EXPERIENCE
Engineer, 2020 - 2023
Did some work on internal tools`)

	assert.NotEmpty(t, result.Improvements[types.CategoryATSCompatibility])
}

func TestStandard_CustomVocabulary(t *testing.T) {
	vocab := &scoring.Vocabulary{
		TechnicalSkills: []string{"cobol"},
		ActionVerbs:     []string{"maintained"},
	}
	result, err := NewStandard(vocab).Analyze(context.Background(), sampleResume)

	require.NoError(t, err)
	// The sample resume has none of the custom terms, so the keyword
	// category collapses and drags the score down.
	assert.Less(t, result.Score, 90)
}

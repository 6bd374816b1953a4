package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ai := 82
	decision := "Yes"
	p.PrintScores(&types.Evaluation{
		StandardScore:     75,
		AIScore:           &ai,
		FinalScore:        79,
		ShortlistDecision: &decision,
	})

	out := buf.String()
	assert.Contains(t, out, "ATS SCORES")
	assert.Contains(t, out, "Standard:  75")
	assert.Contains(t, out, "AI:        82")
	assert.Contains(t, out, "Rubric:    unavailable")
	assert.Contains(t, out, "Final:     79")
	assert.Contains(t, out, "Shortlist: Yes")
}

func TestPrintScores_NilEvaluation(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScores(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCategoryBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategoryBreakdown(&scoring.Result{
		Classification: types.ClassificationFresher,
		Categories: []types.CategoryResult{
			{
				Name:      scoring.CategoryParsability,
				RawScore:  85,
				Weight:    0.15,
				Penalties: []types.Penalty{{Label: "Missing contact information", Points: 15}},
			},
		},
		WeightedTotal: 72,
		CappedScore:   60,
		CapReason:     "Fresher resume without projects",
	})

	out := buf.String()
	assert.Contains(t, out, "Classification: fresher")
	assert.Contains(t, out, "-15 Missing contact information")
	assert.Contains(t, out, "Weighted total: 72")
	assert.Contains(t, out, "Capped at 60: Fresher resume without projects")
}

func TestPrintSummary_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := types.AnalysisSummary{
		Strengths: []string{"one", "two", "three", "four", "five", "six", "seven"},
	}
	p.PrintSummary(summary)

	out := buf.String()
	assert.Contains(t, out, "• five")
	assert.NotContains(t, out, "• six")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintImprovements_CategoryOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	improvements := types.NewImprovementMap()
	improvements[types.CategoryATSCompatibility] = []types.Improvement{{Issue: "Tables break parsing"}}
	improvements[types.CategoryKeywordAndSkills] = []types.Improvement{{Issue: "Missing cloud keywords"}}
	p.PrintImprovements(improvements)

	out := buf.String()
	keywordIdx := strings.Index(out, "Missing cloud keywords")
	atsIdx := strings.Index(out, "Tables break parsing")
	assert.Greater(t, keywordIdx, -1)
	assert.Greater(t, atsIdx, -1)
	assert.Less(t, keywordIdx, atsIdx)
}

func TestPrintImprovements_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintImprovements(nil)
	assert.Empty(t, buf.String())
}

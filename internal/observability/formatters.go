// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the per-analyzer and final scores.
func (p *Printer) PrintScores(eval *types.Evaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standard:  %d\n", eval.StandardScore))
	if eval.AIScore != nil {
		sb.WriteString(fmt.Sprintf("AI:        %d\n", *eval.AIScore))
	} else {
		sb.WriteString("AI:        unavailable\n")
	}
	if eval.RubricScore != nil {
		sb.WriteString(fmt.Sprintf("Rubric:    %d\n", *eval.RubricScore))
	} else {
		sb.WriteString("Rubric:    unavailable\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final:     %d\n", eval.FinalScore))
	if eval.ShortlistDecision != nil {
		sb.WriteString(fmt.Sprintf("Shortlist: %s", *eval.ShortlistDecision))
	}

	p.printBox("ATS SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategoryBreakdown outputs the rule-based category scores with the
// penalties applied to each.
func (p *Printer) PrintCategoryBreakdown(result *scoring.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Classification: %s\n\n", result.Classification))

	for i, cat := range result.Categories {
		sb.WriteString(fmt.Sprintf("%-22s %3d  (weight %.2f)\n", cat.Name, cat.RawScore, cat.Weight))
		for _, pen := range cat.Penalties {
			label := pen.Label
			if len(label) > 42 {
				label = label[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("  -%d %s\n", pen.Points, label))
		}
		if i < len(result.Categories)-1 && len(cat.Penalties) > 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nWeighted total: %d\n", result.WeightedTotal))
	if result.CapReason != "" {
		sb.WriteString(fmt.Sprintf("Capped at %d: %s", result.CappedScore, result.CapReason))
	} else {
		sb.WriteString(fmt.Sprintf("Final: %d (no cap applied)", result.CappedScore))
	}

	p.printBox("CATEGORY BREAKDOWN", sb.String())
}

// PrintSummary outputs the merged strengths and weaknesses.
func (p *Printer) PrintSummary(summary types.AnalysisSummary) {
	var sb strings.Builder

	if len(summary.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(summary.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Strengths[i]))
		}
		if len(summary.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Strengths)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(summary.Weaknesses) > 0 {
		sb.WriteString("Weaknesses:\n")
		count := min(len(summary.Weaknesses), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Weaknesses[i]))
		}
		if len(summary.Weaknesses) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Weaknesses)-maxItemsToShow))
		}
	}

	p.printBox("ANALYSIS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovements outputs the categorized improvement plan.
func (p *Printer) PrintImprovements(improvements map[types.ImprovementCategory][]types.Improvement) {
	if len(improvements) == 0 {
		return
	}

	var sb strings.Builder
	for i, cat := range types.ImprovementCategories {
		items := improvements[cat]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", cat))
		count := min(len(items), 3)
		for j := 0; j < count; j++ {
			issue := items[j].Issue
			if len(issue) > 50 {
				issue = issue[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
		if len(items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-3))
		}
		if i < len(types.ImprovementCategories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME IMPROVEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

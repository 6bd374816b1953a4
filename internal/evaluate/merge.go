package evaluate

import (
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// maxSummaryItems caps the strengths and weaknesses lists.
const maxSummaryItems = 10

// mergeSummary combines strengths and weaknesses from the analyzers in the
// order given, deduplicating case-insensitively while keeping the first
// occurrence.
func mergeSummary(results []*types.AnalyzerResult) types.AnalysisSummary {
	var strengths, weaknesses []string
	for _, r := range results {
		strengths = append(strengths, r.Strengths...)
		weaknesses = append(weaknesses, r.Weaknesses...)
	}
	return types.AnalysisSummary{
		Strengths:  dedupeTruncate(strengths, maxSummaryItems),
		Weaknesses: dedupeTruncate(weaknesses, maxSummaryItems),
	}
}

// mergeImprovements concatenates each analyzer's improvements per category,
// preserving analyzer order, then backfills empty categories with defaults.
func mergeImprovements(results []*types.AnalyzerResult) map[types.ImprovementCategory][]types.Improvement {
	merged := types.NewImprovementMap()
	for _, r := range results {
		if r.Improvements == nil {
			continue
		}
		for _, cat := range types.ImprovementCategories {
			merged[cat] = append(merged[cat], r.Improvements[cat]...)
		}
	}
	return ensureMinimumImprovements(merged)
}

// defaultImprovements backfill categories that no analyzer flagged, so every
// evaluation offers at least one actionable item per category.
var defaultImprovements = map[types.ImprovementCategory]types.Improvement{
	types.CategoryKeywordAndSkills: {
		Issue:          "Keyword optimization opportunity",
		RecommendedFix: "Review job descriptions for target roles and incorporate relevant technical keywords and skills",
		Reason:         "Increases match rate with ATS keyword filters",
	},
	types.CategoryContentAndBullets: {
		Issue:          "Content could be more impactful",
		RecommendedFix: "Use the STAR method (Situation, Task, Action, Result) to describe achievements",
		Reason:         "Makes accomplishments more compelling and memorable",
	},
	types.CategoryProjectsAndExperience: {
		Issue:          "Experience presentation could be enhanced",
		RecommendedFix: "Highlight projects that demonstrate relevant skills and real-world problem-solving",
		Reason:         "Shows practical application of skills and technical depth",
	},
	types.CategoryStructureFormatting: {
		Issue:          "Structure could be optimized",
		RecommendedFix: "Use a clear hierarchy: Contact, Summary, Skills, Experience, Education, Projects",
		Reason:         "Follows standard resume format expected by recruiters and ATS",
	},
	types.CategoryATSCompatibility: {
		Issue:          "ATS compatibility check",
		RecommendedFix: "Use standard section headers, avoid images/graphics, and save as .docx or .pdf",
		Reason:         "Ensures maximum compatibility with all ATS systems",
	},
}

func ensureMinimumImprovements(improvements map[types.ImprovementCategory][]types.Improvement) map[types.ImprovementCategory][]types.Improvement {
	for _, cat := range types.ImprovementCategories {
		if len(improvements[cat]) == 0 {
			improvements[cat] = append(improvements[cat], defaultImprovements[cat])
		}
	}
	return improvements
}

// dedupeTruncate removes case-insensitive duplicates, keeping first
// occurrences, and truncates the result to limit items.
func dedupeTruncate(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

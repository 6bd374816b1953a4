// Package sections maps normalized resume text onto the canonical section set
// and extracts the date signals the scorer and classifier consume.
package sections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// priorityOrder is the tie-break order when a header alias could match more
// than one canonical key. The ordering is deliberate and must be preserved
// for reproducible scoring.
var priorityOrder = []types.SectionKey{
	types.SectionContact,
	types.SectionSkills,
	types.SectionExperience,
	types.SectionProjects,
	types.SectionEducation,
	types.SectionSummary,
	types.SectionCertifications,
}

// DefaultAliases returns the per-section header alias sets. Callers may supply
// their own table to Detect for a customized rule set.
func DefaultAliases() map[types.SectionKey][]string {
	return map[types.SectionKey][]string{
		types.SectionContact:        {"contact", "email", "phone", "address", "linkedin", "mobile"},
		types.SectionSummary:        {"summary", "objective", "profile", "about"},
		types.SectionSkills:         {"skills", "technologies", "tools", "proficiencies", "expertise", "competencies"},
		types.SectionExperience:     {"experience", "work history", "work", "employment", "internship", "career"},
		types.SectionProjects:       {"projects", "portfolio", "work samples"},
		types.SectionEducation:      {"education", "university", "college", "degree", "academic", "qualification"},
		types.SectionCertifications: {"certifications", "certificates", "certified", "training"},
	}
}

const (
	// maxHeaderLen is the longest a line can be and still count as a header.
	maxHeaderLen = 48
	// maxHeaderWords is the most words a header line may contain.
	maxHeaderWords = 5
)

var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)
)

// Detect scans the resume for header-like lines and builds the SectionMap.
// The first matching line for a canonical key marks that section's start; the
// next matched header of any kind marks its end.
func Detect(rt *types.ResumeText) *types.SectionMap {
	return DetectWithAliases(rt, DefaultAliases())
}

// DetectWithAliases is Detect with a caller-supplied alias table.
func DetectWithAliases(rt *types.ResumeText, aliases map[types.SectionKey][]string) *types.SectionMap {
	sm := &types.SectionMap{
		Sections: make(map[types.SectionKey]types.Span),
	}

	var lastKey types.SectionKey
	haveOpen := false
	for i, line := range rt.Lines {
		key, ok := matchHeader(line, aliases)
		if !ok {
			continue
		}

		// Any new header closes the previous section.
		if haveOpen {
			span := sm.Sections[lastKey]
			span.End = i
			sm.Sections[lastKey] = span
		}

		// Only the first occurrence of a key opens its section.
		if _, seen := sm.Sections[key]; !seen {
			sm.Sections[key] = types.Span{Start: i, End: len(rt.Lines)}
			lastKey = key
			haveOpen = true
		} else {
			haveOpen = false
		}
	}

	sm.YearTokens = extractYears(rt.Raw)
	sm.DateRanges = len(dateRangePattern.FindAllString(rt.Raw, -1))

	return sm
}

// matchHeader reports whether a line looks like a section header and, if so,
// which canonical key it belongs to. Keys are tried in priority order so an
// alias shared between sections always resolves the same way.
func matchHeader(line string, aliases map[types.SectionKey][]string) (types.SectionKey, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.Trim(trimmed, ":-–—• ")
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return "", false
	}
	if len(strings.Fields(trimmed)) > maxHeaderWords {
		return "", false
	}
	if !isHeaderCase(trimmed) {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, key := range priorityOrder {
		for _, alias := range aliases[key] {
			if strings.Contains(lower, alias) {
				return key, true
			}
		}
	}
	return "", false
}

// isHeaderCase accepts lines that are mostly uppercase or title-case.
func isHeaderCase(line string) bool {
	upper := 0
	letters := 0
	for _, r := range line {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters++
			if r >= 'A' && r <= 'Z' {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	if float64(upper)/float64(letters) > 0.6 {
		return true
	}

	// Title case: every word starts uppercase.
	for _, word := range strings.Fields(line) {
		first := rune(word[0])
		if first >= 'a' && first <= 'z' {
			return false
		}
	}
	return true
}

// extractYears returns every 4-digit year token (1900-2099) in order of
// appearance.
func extractYears(text string) []int {
	matches := yearPattern.FindAllString(text, -1)
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	return years
}

// Package types provides type definitions for structured data used throughout the resume-evaluator system.
package types

// ResumeText is the normalized view of raw extracted resume text.
// It is built once per evaluation and never mutated afterwards.
type ResumeText struct {
	Raw            string   // Original text as received from the extraction layer
	Lines          []string // Lines split on newlines, trailing whitespace trimmed
	Words          []string // Whitespace-separated tokens
	CharCount      int      // Total character count of Raw
	ShortWordRatio float64  // Ratio of words shorter than 3 alpha chars (OCR-noise proxy)
	SymbolRatio    float64  // Ratio of table/column symbol chars among all chars
	TooShort       bool     // Raw is below the minimum content threshold
}

// SectionKey identifies one of the canonical resume sections.
type SectionKey string

// Canonical section keys. The set is closed; detectors never invent new keys.
const (
	SectionContact        SectionKey = "contact"
	SectionSummary        SectionKey = "summary"
	SectionSkills         SectionKey = "skills"
	SectionExperience     SectionKey = "experience"
	SectionProjects       SectionKey = "projects"
	SectionEducation      SectionKey = "education"
	SectionCertifications SectionKey = "certifications"
)

// Span marks the line range of a detected section: [Start, End).
type Span struct {
	Start int
	End   int
}

// SectionMap holds the sections detected in a resume plus the date signals
// extracted during the same scan. Read-only after detection.
type SectionMap struct {
	Sections   map[SectionKey]Span
	YearTokens []int // 4-digit years (1900-2099) in order of appearance
	DateRanges int   // Count of "YYYY - YYYY|present" range patterns
}

// Has reports whether the given canonical section was detected.
func (m *SectionMap) Has(key SectionKey) bool {
	_, ok := m.Sections[key]
	return ok
}

// Classification distinguishes candidates with substantive work history from freshers.
type Classification string

const (
	// ClassificationFresher is a candidate with no substantive work-experience history.
	ClassificationFresher Classification = "fresher"
	// ClassificationExperienced is a candidate with a work-experience track record.
	ClassificationExperienced Classification = "experienced"
)

package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// Category names, matching the component keys of the evaluation report.
const (
	CategoryParsability        = "parsability"
	CategorySectionDetection   = "section_detection"
	CategoryContactInformation = "contact_information"
	CategoryKeywordMatching    = "keyword_matching"
	CategoryExperienceProjects = "experience_projects"
	CategoryBulletStructure    = "bullet_structure"
	CategoryDatesChronology    = "dates_chronology"
)

// Category weights. They must sum to exactly 1.0.
const (
	weightParsability        = 0.15
	weightSectionDetection   = 0.20
	weightContactInformation = 0.10
	weightKeywordMatching    = 0.25
	weightExperienceProjects = 0.15
	weightBulletStructure    = 0.10
	weightDatesChronology    = 0.05
)

// Flags set by rules and consumed by the cap policy.
const (
	FlagNoProjects = "no_projects"
	FlagNoBullets  = "no_bullets"
)

// rule is one declarative penalty condition: when the predicate holds, the
// category loses points and the labeled penalty is recorded.
type rule struct {
	label   string
	points  int
	flag    string
	when    func(*signals) bool
	labelFn func(*signals) string // Overrides label to include matched terms
}

func parsabilityRules() []rule {
	return []rule{
		{
			label:  "High ratio of broken/garbled words detected (OCR quality issue)",
			points: 30,
			when:   func(s *signals) bool { return s.rt.ShortWordRatio > 0.15 },
		},
		{
			label:  "Excessive special characters detected - may indicate tables/columns",
			points: 25,
			when:   func(s *signals) bool { return s.rt.SymbolRatio > 0.05 },
		},
		{
			label:  "Inconsistent line lengths - reading order may be disrupted",
			points: 20,
			when:   func(s *signals) bool { return s.shortLineRatio > 0.3 },
		},
		{
			label:  "Resume is too short (minimum 300 characters recommended)",
			points: 25,
			when:   func(s *signals) bool { return s.rt.TooShort },
		},
	}
}

func sectionRules() []rule {
	missing := func(key types.SectionKey) func(*signals) bool {
		return func(s *signals) bool { return !s.sm.Has(key) }
	}
	return []rule{
		{
			label:  "CRITICAL: Missing Contact section",
			points: 20,
			when:   missing(types.SectionContact),
		},
		{
			label:  "CRITICAL: Missing Skills section",
			points: 20,
			when:   missing(types.SectionSkills),
		},
		{
			label:  "CRITICAL: Missing Experience section (and no Projects section to compensate)",
			points: 20,
			when: func(s *signals) bool {
				return !s.sm.Has(types.SectionExperience) && !s.sm.Has(types.SectionProjects)
			},
		},
		{
			label:  "CRITICAL: Missing Education section",
			points: 20,
			when:   missing(types.SectionEducation),
		},
		{
			label:  "Missing Summary section",
			points: 10,
			when:   missing(types.SectionSummary),
		},
		{
			label:  "Missing Projects section (important for freshers)",
			points: 10,
			when:   missing(types.SectionProjects),
		},
		{
			label:  "Missing Certifications section",
			points: 10,
			when:   missing(types.SectionCertifications),
		},
	}
}

func contactRules() []rule {
	return []rule{
		{
			label:  "CRITICAL: Missing email address",
			points: 35,
			when:   func(s *signals) bool { return !s.hasEmail },
		},
		{
			label:  "CRITICAL: Missing or improperly formatted phone number",
			points: 30,
			when:   func(s *signals) bool { return !s.hasPhone },
		},
		{
			label:  "First line should be your full name only",
			points: 10,
			when:   func(s *signals) bool { return s.firstLineWords > 5 },
		},
		{
			label:  "Missing LinkedIn profile URL",
			points: 15,
			when:   func(s *signals) bool { return !s.hasLinkedIn },
		},
		{
			label:  "Location information not clearly stated",
			points: 10,
			when:   func(s *signals) bool { return !s.hasLocation },
		},
	}
}

// keywordRules express the original award tiers as chained deductions:
// 12+ distinct skills keep full credit, each lower tier loses 10 more points.
func keywordRules() []rule {
	return []rule{
		{
			label:  "Fewer than 12 relevant technical keywords found",
			points: 10,
			when:   func(s *signals) bool { return s.skillCount < 12 },
		},
		{
			label:  "Fewer than 8 relevant technical keywords found",
			points: 10,
			when:   func(s *signals) bool { return s.skillCount < 8 },
		},
		{
			label:  "Fewer than 5 relevant technical keywords found",
			points: 10,
			when:   func(s *signals) bool { return s.skillCount < 5 },
		},
		{
			label:  "Very few relevant technical keywords found",
			points: 10,
			when:   func(s *signals) bool { return s.skillCount < 3 },
		},
		{
			label:  "Fewer than 8 action verbs in experience descriptions",
			points: 10,
			when:   func(s *signals) bool { return s.actionVerbCount < 8 },
		},
		{
			label:  "Fewer than 5 action verbs in experience descriptions",
			points: 10,
			when:   func(s *signals) bool { return s.actionVerbCount < 5 },
		},
		{
			label:  "Insufficient action verbs in experience descriptions",
			points: 10,
			when:   func(s *signals) bool { return s.actionVerbCount < 3 },
		},
		{
			label:  "Only one kind of quantified metric found",
			points: 15,
			when:   func(s *signals) bool { return s.metricsCount < 2 },
		},
		{
			label:  "Missing quantifiable achievements (add metrics, percentages, numbers)",
			points: 15,
			when:   func(s *signals) bool { return s.metricsCount < 1 },
		},
		{
			label:   "Possible keyword stuffing detected",
			points:  15,
			when:    func(s *signals) bool { return len(s.stuffedWords) > 0 },
			labelFn: keywordStuffingLabel,
		},
	}
}

// keywordStuffingLabel appends the top offending words to the stuffing penalty.
func keywordStuffingLabel(s *signals) string {
	words := s.stuffedWords
	if len(words) > 3 {
		words = words[:3]
	}
	return fmt.Sprintf("Possible keyword stuffing detected: %s", strings.Join(words, ", "))
}

func experienceProjectRules() []rule {
	return []rule{
		{
			label:  "CRITICAL: No projects section found (essential for freshers)",
			points: 60,
			flag:   FlagNoProjects,
			when: func(s *signals) bool {
				return s.class == types.ClassificationFresher && !s.sm.Has(types.SectionProjects)
			},
		},
		{
			label:  "Only one project listed - add at least 2-3 substantial projects",
			points: 40,
			when: func(s *signals) bool {
				return s.class == types.ClassificationFresher &&
					s.sm.Has(types.SectionProjects) && s.projectMentions < 2
			},
		},
		{
			label:  "CRITICAL: No experience section found (essential for experienced candidates)",
			points: 70,
			when: func(s *signals) bool {
				return s.class == types.ClassificationExperienced && !s.sm.Has(types.SectionExperience)
			},
		},
		{
			label:  "Consider adding a projects section to showcase additional work",
			points: 20,
			when: func(s *signals) bool {
				return s.class == types.ClassificationExperienced && !s.sm.Has(types.SectionProjects)
			},
		},
	}
}

func bulletRules() []rule {
	return []rule{
		{
			label:  "CRITICAL: No bullet points found - use bullets for achievements",
			points: 40,
			flag:   FlagNoBullets,
			when:   func(s *signals) bool { return s.bulletCount == 0 },
		},
		{
			label:  "Many weak bullet points - use format: Action Verb + Task + Method + Outcome",
			points: 30,
			when:   func(s *signals) bool { return s.weakBullets > 5 },
		},
		{
			label:  "Some bullet points lack structure - add action verbs and outcomes",
			points: 15,
			when:   func(s *signals) bool { return s.weakBullets > 2 && s.weakBullets <= 5 },
		},
	}
}

func dateRules() []rule {
	return []rule{
		{
			label:  "Missing dates for experience/education - add MM/YYYY format dates",
			points: 40,
			when:   func(s *signals) bool { return len(s.sm.YearTokens) < 2 },
		},
		{
			label:  "Use date ranges (e.g., '2020 - 2023') for positions",
			points: 20,
			when: func(s *signals) bool {
				return len(s.sm.YearTokens) >= 2 && s.sm.DateRanges == 0
			},
		},
		{
			label:  "Dates should be in reverse chronological order (most recent first)",
			points: 15,
			when: func(s *signals) bool {
				return len(s.sm.YearTokens) >= 3 && !s.yearsDescending
			},
		},
	}
}

// scoreCategory evaluates every rule in order, deducting from 100 with a floor
// of 0. All triggered rules are recorded even once the floor is reached.
func scoreCategory(name string, weight float64, rules []rule, s *signals) types.CategoryResult {
	result := types.CategoryResult{
		Name:     name,
		Weight:   weight,
		RawScore: 100,
	}

	for _, r := range rules {
		if !r.when(s) {
			continue
		}
		label := r.label
		if r.labelFn != nil {
			label = r.labelFn(s)
		}
		result.RawScore -= r.points
		result.Penalties = append(result.Penalties, types.Penalty{Label: label, Points: r.points})
		if r.flag != "" {
			result.Flags = append(result.Flags, r.flag)
		}
	}

	if result.RawScore < 0 {
		result.RawScore = 0
	}
	return result
}

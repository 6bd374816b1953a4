package types

// ImprovementCategory identifies one of the five fixed improvement buckets.
type ImprovementCategory string

// Improvement categories. Every analyzer files its suggestions into these buckets.
const (
	CategoryKeywordAndSkills      ImprovementCategory = "keyword_and_skills"
	CategoryContentAndBullets     ImprovementCategory = "content_and_bullets"
	CategoryProjectsAndExperience ImprovementCategory = "projects_and_experience"
	CategoryStructureFormatting   ImprovementCategory = "structure_and_formatting"
	CategoryATSCompatibility      ImprovementCategory = "ats_compatibility"
)

// ImprovementCategories lists all categories in their canonical output order.
var ImprovementCategories = []ImprovementCategory{
	CategoryKeywordAndSkills,
	CategoryContentAndBullets,
	CategoryProjectsAndExperience,
	CategoryStructureFormatting,
	CategoryATSCompatibility,
}

// Improvement is a single actionable suggestion.
type Improvement struct {
	Issue          string `json:"issue"`
	RecommendedFix string `json:"recommended_fix"`
	Reason         string `json:"reason"`
	Example        string `json:"example,omitempty"`
}

// RubricFeedback carries the human-reviewer simulation extras produced only by
// the rubric analyzer.
type RubricFeedback struct {
	TrustedSignals    []string `json:"trusted_signals"`
	RedFlags          []string `json:"red_flags"`
	LearningTakeaways []string `json:"learning_takeaways"`
}

// AnalyzerResult is the uniform output shape shared by all three analyzers.
type AnalyzerResult struct {
	Score        int
	Strengths    []string
	Weaknesses   []string
	Improvements map[ImprovementCategory][]Improvement

	// Rubric analyzer only; empty/nil for the others.
	ShortlistDecision string
	RubricFeedback    *RubricFeedback
}

// NewImprovementMap returns an improvement map with every category initialized.
func NewImprovementMap() map[ImprovementCategory][]Improvement {
	m := make(map[ImprovementCategory][]Improvement, len(ImprovementCategories))
	for _, cat := range ImprovementCategories {
		m[cat] = []Improvement{}
	}
	return m
}

// AnalysisSummary is the merged strengths/weaknesses digest (at most 10 each).
type AnalysisSummary struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Evaluation is the final artifact of an evaluation run. Constructed once,
// never mutated. AIScore, RubricScore, ShortlistDecision and RubricFeedback
// are nil when the corresponding analyzer was unavailable.
type Evaluation struct {
	StandardScore      int                                   `json:"standard_ats_score"`
	AIScore            *int                                  `json:"ai_ats_score"`
	RubricScore        *int                                  `json:"rubric_ats_score"`
	FinalScore         int                                   `json:"final_ats_score"`
	ShortlistDecision  *string                               `json:"shortlist_decision"`
	AnalysisSummary    AnalysisSummary                       `json:"analysis_summary"`
	ResumeImprovements map[ImprovementCategory][]Improvement `json:"resume_improvements"`
	RubricFeedback     *RubricFeedback                       `json:"rubric_feedback"`
}

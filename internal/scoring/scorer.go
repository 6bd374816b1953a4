package scoring

import (
	"math"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// Result is the full outcome of the deterministic scoring path.
type Result struct {
	Categories     []types.CategoryResult
	Classification types.Classification
	WeightedTotal  int    // Pre-cap weighted sum of category scores
	CappedScore    int    // Final score after the cap policy; never above WeightedTotal
	CapReason      string // Empty when no cap bound the score
}

// Category returns the named category result, or nil if absent.
func (r *Result) Category(name string) *types.CategoryResult {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}

// Issues returns every triggered penalty label across all categories, in
// category order.
func (r *Result) Issues() []string {
	var issues []string
	for _, cat := range r.Categories {
		for _, p := range cat.Penalties {
			issues = append(issues, p.Label)
		}
	}
	return issues
}

// Scorer evaluates resumes against the weighted rule categories.
type Scorer struct {
	vocab *Vocabulary
}

// NewScorer creates a scorer. A nil vocabulary uses the built-in tables.
func NewScorer(vocab *Vocabulary) *Scorer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Scorer{vocab: vocab}
}

// Classify derives the fresher/experienced classification from the section map.
// A candidate is a fresher iff the experience section is absent or fewer than
// two year tokens appear in the text.
func Classify(sm *types.SectionMap) types.Classification {
	if !sm.Has(types.SectionExperience) || len(sm.YearTokens) < 2 {
		return types.ClassificationFresher
	}
	return types.ClassificationExperienced
}

// Score runs all seven categories and the cap policy. The classification is
// computed once, before the experience/projects category, and feeds only that
// category and the cap policy.
func (s *Scorer) Score(rt *types.ResumeText, sm *types.SectionMap) *Result {
	class := Classify(sm)
	sig := buildSignals(rt, sm, class, s.vocab)

	categories := []types.CategoryResult{
		scoreCategory(CategoryParsability, weightParsability, parsabilityRules(), sig),
		scoreCategory(CategorySectionDetection, weightSectionDetection, sectionRules(), sig),
		scoreCategory(CategoryContactInformation, weightContactInformation, contactRules(), sig),
		scoreCategory(CategoryKeywordMatching, weightKeywordMatching, keywordRules(), sig),
		scoreCategory(CategoryExperienceProjects, weightExperienceProjects, experienceProjectRules(), sig),
		scoreCategory(CategoryBulletStructure, weightBulletStructure, bulletRules(), sig),
		scoreCategory(CategoryDatesChronology, weightDatesChronology, dateRules(), sig),
	}

	weighted := 0.0
	for _, cat := range categories {
		weighted += float64(cat.RawScore) * cat.Weight
	}
	total := clampScore(int(math.Round(weighted)))

	result := &Result{
		Categories:     categories,
		Classification: class,
		WeightedTotal:  total,
	}
	result.CappedScore, result.CapReason = applyCaps(total, result)

	return result
}

// clampScore bounds a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

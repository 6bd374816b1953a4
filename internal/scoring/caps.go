package scoring

import "github.com/jonathan/resume-evaluator/internal/types"

// cap is one post-hoc ceiling: when the trigger holds, the final score cannot
// exceed Ceiling. A cap only ever lowers a score.
type cap struct {
	ceiling int
	reason  string
	trigger func(*Result) bool
}

// capPolicy is the fixed cap table. All caps are evaluated; the final score is
// the minimum of the weighted total and every triggered ceiling.
func capPolicy() []cap {
	return []cap{
		{
			ceiling: 55,
			reason:  "Parsability issues",
			trigger: func(r *Result) bool {
				return categoryBelow(r, CategoryParsability, 60)
			},
		},
		{
			ceiling: 60,
			reason:  "No projects (fresher)",
			trigger: func(r *Result) bool {
				if r.Classification != types.ClassificationFresher {
					return false
				}
				cat := r.Category(CategoryExperienceProjects)
				return cat != nil && cat.HasFlag(FlagNoProjects)
			},
		},
		{
			ceiling: 65,
			reason:  "Weak bullet points",
			trigger: func(r *Result) bool {
				return categoryBelow(r, CategoryBulletStructure, 60)
			},
		},
		{
			ceiling: 70,
			reason:  "Insufficient keywords",
			trigger: func(r *Result) bool {
				return categoryBelow(r, CategoryKeywordMatching, 50)
			},
		},
	}
}

// applyCaps evaluates every cap (no short-circuiting) and returns the capped
// score with the reason for the binding cap, if any bound the score.
func applyCaps(weightedTotal int, r *Result) (int, string) {
	score := weightedTotal
	reason := ""
	for _, c := range capPolicy() {
		if !c.trigger(r) {
			continue
		}
		if c.ceiling < score {
			score = c.ceiling
			reason = c.reason
		}
	}
	return score, reason
}

func categoryBelow(r *Result, name string, threshold int) bool {
	cat := r.Category(name)
	return cat != nil && cat.RawScore < threshold
}

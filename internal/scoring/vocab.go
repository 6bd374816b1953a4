// Package scoring implements the deterministic weighted rule scorer for resume
// text: seven independently weighted categories, a fresher/experienced
// classification, and a post-hoc score-cap policy.
package scoring

import (
	"encoding/json"
	"fmt"
	"os"
)

// Vocabulary holds the term tables the keyword and bullet rules match against.
// The tables are configuration, not code: they can be loaded from a JSON file
// so the rule set is extensible without touching scorer logic.
type Vocabulary struct {
	TechnicalSkills []string `json:"technical_skills"`
	ActionVerbs     []string `json:"action_verbs"`
}

// DefaultVocabulary returns the built-in term tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		TechnicalSkills: []string{
			"python", "java", "javascript", "c++", "sql", "react", "node.js", "angular",
			"aws", "azure", "gcp", "docker", "kubernetes", "git", "agile", "scrum",
			"machine learning", "data analysis", "tensorflow", "pytorch", "pandas",
			"rest api", "microservices", "ci/cd", "devops", "linux", "mongodb", "postgresql",
		},
		ActionVerbs: []string{
			"developed", "created", "built", "designed", "implemented", "led", "managed",
			"improved", "optimized", "achieved", "delivered", "launched", "established",
			"increased", "reduced", "streamlined", "automated", "coordinated", "executed",
			"analyzed", "researched", "collaborated", "initiated", "spearheaded",
		},
	}
}

// LoadVocabulary reads a vocabulary table from a JSON file. Empty tables fall
// back to the built-in defaults so a partial override file stays valid.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	defaults := DefaultVocabulary()
	if len(v.TechnicalSkills) == 0 {
		v.TechnicalSkills = defaults.TechnicalSkills
	}
	if len(v.ActionVerbs) == 0 {
		v.ActionVerbs = defaults.ActionVerbs
	}

	return &v, nil
}

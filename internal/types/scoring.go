package types

// Penalty records a single triggered scoring rule within a category.
type Penalty struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// CategoryResult is the outcome of scoring one rule category.
type CategoryResult struct {
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"` // Fraction of 100; all category weights sum to 1.0
	RawScore  int       `json:"raw_score"`
	Penalties []Penalty `json:"penalties,omitempty"`
	Flags     []string  `json:"flags,omitempty"`
}

// HasFlag reports whether the category recorded the given flag.
func (c *CategoryResult) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

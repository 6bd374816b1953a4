package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	percentPattern  = regexp.MustCompile(`\d+%`)
	countPattern    = regexp.MustCompile(`(?i)\d+\s*(users|customers|projects|team|members)`)
	moneyPattern    = regexp.MustCompile(`\$\d+`)
	locationPattern = regexp.MustCompile(`(?i)\b(city|state|country|location)\b`)
	outcomePattern  = regexp.MustCompile(`\d+%|\d+x|improved|increased|reduced|achieved`)
)

// bulletGlyphs are the characters recognized as bullet markers at line start.
var bulletGlyphs = []string{"•", "-", "*", "→", "·"}

// maxBulletsAnalyzed bounds the per-bullet quality pass.
const maxBulletsAnalyzed = 10

// signals carries everything the rule predicates look at, precomputed once per
// evaluation so the rules themselves stay declarative.
type signals struct {
	rt    *types.ResumeText
	sm    *types.SectionMap
	class types.Classification

	lowerText string

	skillCount      int
	actionVerbCount int
	metricsCount    int
	stuffedWords    []string

	bulletCount int
	weakBullets int

	shortLineRatio  float64
	projectMentions int
	firstLineWords  int

	hasEmail    bool
	hasPhone    bool
	hasLinkedIn bool
	hasLocation bool

	yearsDescending bool
}

func buildSignals(rt *types.ResumeText, sm *types.SectionMap, class types.Classification, vocab *Vocabulary) *signals {
	s := &signals{
		rt:        rt,
		sm:        sm,
		class:     class,
		lowerText: strings.ToLower(rt.Raw),
	}

	for _, skill := range vocab.TechnicalSkills {
		if strings.Contains(s.lowerText, skill) {
			s.skillCount++
		}
	}
	for _, verb := range vocab.ActionVerbs {
		if strings.Contains(s.lowerText, verb) {
			s.actionVerbCount++
		}
	}

	if percentPattern.MatchString(rt.Raw) {
		s.metricsCount++
	}
	if countPattern.MatchString(rt.Raw) {
		s.metricsCount++
	}
	if moneyPattern.MatchString(rt.Raw) {
		s.metricsCount++
	}

	s.stuffedWords = stuffedWords(s.lowerText)

	bullets := bulletLines(rt.Lines)
	s.bulletCount = len(bullets)
	s.weakBullets = countWeakBullets(bullets, vocab)

	s.shortLineRatio = shortLineRatio(rt.Lines)
	s.projectMentions = strings.Count(s.lowerText, "project")
	s.firstLineWords = firstLineWordCount(rt.Lines)

	s.hasEmail = emailPattern.MatchString(rt.Raw)
	s.hasPhone = phonePattern.MatchString(rt.Raw)
	s.hasLinkedIn = strings.Contains(s.lowerText, "linkedin")
	s.hasLocation = locationPattern.MatchString(rt.Raw)

	s.yearsDescending = mostlyDescending(sm.YearTokens)

	return s
}

// stuffedWords reports words longer than 4 characters repeated more than 10
// times, a keyword-stuffing signal.
func stuffedWords(lowerText string) []string {
	freq := make(map[string]int)
	order := make([]string, 0)
	for _, word := range strings.Fields(lowerText) {
		if len(word) <= 4 {
			continue
		}
		if freq[word] == 0 {
			order = append(order, word)
		}
		freq[word]++
	}

	var stuffed []string
	for _, word := range order {
		if freq[word] > 10 {
			stuffed = append(stuffed, word)
		}
	}
	return stuffed
}

func bulletLines(lines []string) []string {
	var bullets []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, glyph := range bulletGlyphs {
			if strings.HasPrefix(trimmed, glyph) {
				bullets = append(bullets, trimmed)
				break
			}
		}
	}
	return bullets
}

// countWeakBullets scores each bullet on a 4-point scale: action-verb start
// (+1), tool/method mention (+1), outcome/metric (+2). A bullet scoring under
// 2 is weak. Only the first maxBulletsAnalyzed bullets are inspected.
func countWeakBullets(bullets []string, vocab *Vocabulary) int {
	weak := 0
	for i, bullet := range bullets {
		if i >= maxBulletsAnalyzed {
			break
		}
		text := strings.ToLower(strings.TrimSpace(strings.TrimLeft(bullet, "•-*→· ")))

		score := 0
		for _, verb := range vocab.ActionVerbs {
			if strings.HasPrefix(text, verb) {
				score++
				break
			}
		}
		for _, skill := range vocab.TechnicalSkills {
			if strings.Contains(text, skill) {
				score++
				break
			}
		}
		if outcomePattern.MatchString(text) {
			score += 2
		}

		if score < 2 {
			weak++
		}
	}
	return weak
}

func shortLineRatio(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	short := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 && len(trimmed) < 10 {
			short++
		}
	}
	return float64(short) / float64(len(lines))
}

func firstLineWordCount(lines []string) int {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return len(strings.Fields(line))
		}
	}
	return 0
}

// mostlyDescending reports whether at least half the adjacent year pairs are
// non-increasing, the reverse-chronological convention. Fewer than 3 years is
// treated as ordered.
func mostlyDescending(years []int) bool {
	if len(years) < 3 {
		return true
	}
	descending := 0
	for i := 0; i < len(years)-1; i++ {
		if years[i] >= years[i+1] {
			descending++
		}
	}
	return float64(descending)/float64(len(years)-1) >= 0.5
}

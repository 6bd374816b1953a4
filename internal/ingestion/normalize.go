// Package ingestion provides text normalization for extracted resume content.
package ingestion

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// MinContentLength is the minimum character count for a meaningfully
// analyzable resume. Shorter input still produces a best-effort ResumeText;
// the scorer penalizes it instead of aborting.
const MinContentLength = 300

// shortWordMaxLen is the maximum length of an alphabetic token counted as a
// broken/garbled word (OCR-noise proxy).
const shortWordMaxLen = 2

// symbolChars are the characters whose density indicates tables or multi-column
// layouts that ATS parsers cannot read reliably.
const symbolChars = "|_=+[]{}"

// Normalize cleans raw extracted text and computes the derived views the rule
// scorer consumes. The returned ResumeText is always usable; the error is a
// *ValidationError when the input is empty or under MinContentLength.
func Normalize(raw string) (*types.ResumeText, error) {
	cleaned := CleanText(raw)

	rt := &types.ResumeText{
		Raw:       cleaned,
		CharCount: len(cleaned),
	}

	for _, line := range strings.Split(cleaned, "\n") {
		rt.Lines = append(rt.Lines, strings.TrimRight(line, " \t"))
	}
	rt.Words = strings.Fields(cleaned)

	rt.ShortWordRatio = shortWordRatio(rt.Words)
	rt.SymbolRatio = symbolRatio(cleaned)

	if rt.CharCount < MinContentLength {
		rt.TooShort = true
		if strings.TrimSpace(cleaned) == "" {
			return rt, &ValidationError{Message: "resume text is empty"}
		}
		return rt, &ValidationError{Message: "resume text is below the minimum content threshold"}
	}

	return rt, nil
}

// CleanText normalizes line endings and strips trailing whitespace while
// preserving the line structure the section detector relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// shortWordRatio returns the ratio of very short alphabetic tokens among all
// words. A high ratio usually means the OCR pass broke words apart.
func shortWordRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	short := 0
	for _, w := range words {
		if len(w) <= shortWordMaxLen && isAlpha(w) {
			short++
		}
	}
	return float64(short) / float64(len(words))
}

// symbolRatio returns the ratio of table/column symbol characters among all
// characters in the text.
func symbolRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}

	count := 0
	for _, r := range text {
		if strings.ContainsRune(symbolChars, r) {
			count++
		}
	}
	return float64(count) / float64(len(text))
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Package textnorm canonicalizes free text so that two phrasings of the
// same answer compare equal. Used by both the similarity engine and the
// answer checker.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	leadingArticle = regexp.MustCompile(`^(the|a|an) `)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// punctuation is the set of characters stripped during normalization.
const punctuation = `.,!?;:'"-`

// Normalize canonicalizes s for comparison: lowercases, removes
// punctuation, collapses whitespace runs to single spaces, and strips
// leading articles. Articles are stripped until none remains so that the
// function is idempotent even for stacked articles. Empty input yields
// empty output.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(b.String(), " "))
	for {
		stripped := leadingArticle.ReplaceAllString(s, "")
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// Words splits normalized text into tokens of length > minLen.
// Returns an empty slice for blank input.
func Words(s string, minLen int) []string {
	var out []string
	for _, w := range strings.Fields(Normalize(s)) {
		if len(w) > minLen {
			out = append(out, w)
		}
	}
	return out
}

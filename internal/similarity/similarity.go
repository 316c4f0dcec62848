// Package similarity scores how close two question texts are, combining
// word-level Jaccard overlap with character trigram overlap. The
// orchestrator uses it to reject near-duplicate questions within a batch
// and against previously seen history.
package similarity

import (
	"strings"

	"github.com/abhisek/quizforge/internal/textnorm"
)

const (
	// DuplicateThreshold is the combined score above which two questions
	// are treated as duplicates. Hand-tuned, not derived.
	DuplicateThreshold = 0.7

	// minCompareLen is the minimum normalized length for a meaningful
	// comparison. Shorter strings carry too few tokens to score.
	minCompareLen = 20

	// containmentScore is assigned when one cleaned string contains the
	// other outright.
	containmentScore = 0.9

	// minTokenLen filters out short filler words before Jaccard scoring.
	minTokenLen = 3
)

// Combined returns the similarity of a and b in [0, 1]: the mean of word
// Jaccard and trigram similarity, with a containment short-circuit.
// Strings whose normalized form is shorter than 20 characters score 0.
func Combined(a, b string) float64 {
	ca := textnorm.Normalize(a)
	cb := textnorm.Normalize(b)

	if len(ca) < minCompareLen || len(cb) < minCompareLen {
		return 0
	}

	if contains(ca, cb) {
		return containmentScore
	}

	return 0.5*jaccardWords(ca, cb) + 0.5*trigrams(ca, cb)
}

// TooSimilar reports whether a and b exceed the duplicate threshold.
func TooSimilar(a, b string) bool {
	return Combined(a, b) > DuplicateThreshold
}

// MaxAgainst returns the highest combined score of text against each entry
// in prior. Returns 0 for an empty prior set.
func MaxAgainst(text string, prior []string) float64 {
	var max float64
	for _, p := range prior {
		if s := Combined(text, p); s > max {
			max = s
		}
	}
	return max
}

func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// jaccardWords computes set Jaccard over whitespace tokens longer than
// minTokenLen. Inputs are already normalized.
func jaccardWords(a, b string) float64 {
	return jaccard(tokenSet(a), tokenSet(b))
}

// trigrams computes set Jaccard over character 3-grams. No token
// filtering; the window slides across the whole cleaned string.
func trigrams(a, b string) float64 {
	return jaccard(trigramSet(a), trigramSet(b))
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range textnorm.Words(s, minTokenLen) {
		set[w] = struct{}{}
	}
	return set
}

func trigramSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+3 <= len(s); i++ {
		set[s[i:i+3]] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

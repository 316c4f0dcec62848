// Package answercheck decides whether a student's free-form answer
// matches the expected answer for a question, with human-like tolerance
// for phrasing variation. Pure functions; an unrecognized answer simply
// evaluates to incorrect.
package answercheck

import (
	"strings"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/textnorm"
)

// Thresholds for the keyword-overlap heuristics. Hand-tuned for younger
// learners; configuration constants, not derived.
const (
	wordOverlapThreshold     = 0.3
	conceptCoverageThreshold = 0.5
)

// Check reports whether userAnswer is an acceptable answer to q.
func Check(userAnswer string, q *quizgen.Question) bool {
	return Equivalent(userAnswer, q.CorrectAnswer, q)
}

// Equivalent evaluates the answer cascade in order; the first satisfied
// rule wins. Later rules are deliberately more lenient and must not be
// reached when an earlier rule already decides.
func Equivalent(userAnswer, correctAnswer string, q *quizgen.Question) bool {
	user := textnorm.Normalize(userAnswer)
	correct := textnorm.Normalize(correctAnswer)

	// Rule 1: exact match after normalization.
	if user != "" && user == correct {
		return true
	}

	// Rule 2: true/false token mapping. Decides for TrueFalse outright.
	if q.Type == quizgen.TrueFalse {
		uv, uok := quizgen.CanonicalTrueFalse(userAnswer)
		cv, cok := quizgen.CanonicalTrueFalse(correctAnswer)
		return uok && cok && uv == cv
	}

	// Rule 3: multiple-choice letter and option-text resolution.
	if q.Type == quizgen.MultipleChoice {
		if matched, decided := checkMultipleChoice(user, correct, q); decided {
			return matched
		}
		// Not found among options; fall through to the variation cascade
		// against the option text the stored letter points at, not the
		// bare letter.
		correctAnswer = mcAnswerText(correctAnswer, q)
		correct = textnorm.Normalize(correctAnswer)
	}

	// Rule 4: open-ended expected answers accept any real attempt.
	if q.Type == quizgen.FillInBlank || q.Type == quizgen.ShortAnswer {
		if isOpenEnded(correct) {
			return isGenuineAttempt(userAnswer, user)
		}
	}

	// Rule 5: variation/semantic cascade.
	candidates := splitCompoundAnswer(correctAnswer)
	if matchesCandidate(user, candidates) {
		return true
	}
	if matchesVariationTable(user, candidates) {
		return true
	}
	if keywordOverlapAccepts(user, correct) {
		return true
	}
	return geoOverlapAccepts(user, correct)
}

// checkMultipleChoice resolves letters and option text. The second return
// is false when the user's text is not a letter and not found among the
// options, in which case the caller falls through to lenient matching.
func checkMultipleChoice(user, correct string, q *quizgen.Question) (matched, decided bool) {
	if len(user) == 1 && user[0] >= 'a' && user[0] <= 'd' {
		return user == correct, true
	}

	for i, opt := range q.Options {
		if textnorm.Normalize(opt) == user && user != "" {
			letter := string(rune('a' + i))
			return letter == correct, true
		}
	}
	return false, false
}

// mcAnswerText resolves a stored answer letter to its option text so the
// lenient rules compare against real content. Non-letter answers pass
// through unchanged.
func mcAnswerText(correctAnswer string, q *quizgen.Question) string {
	s := strings.TrimSpace(correctAnswer)
	if len(s) != 1 {
		return correctAnswer
	}
	idx := int(strings.ToLower(s)[0] - 'a')
	if idx < 0 || idx >= len(q.Options) {
		return correctAnswer
	}
	return q.Options[idx]
}

func isOpenEnded(correct string) bool {
	for _, m := range openEndedMarkers {
		if strings.Contains(correct, m) {
			return true
		}
	}
	return false
}

// isGenuineAttempt rejects near-empty and no-effort replies.
func isGenuineAttempt(raw, normalized string) bool {
	if len(strings.TrimSpace(raw)) < 2 {
		return false
	}
	_, noEffort := noEffortAnswers[normalized]
	return !noEffort
}

// splitCompoundAnswer breaks a correct answer into candidate terms: a
// parenthetical gloss becomes its own candidate, as do terms joined by
// "or"/"and". The whole answer is always the first candidate.
func splitCompoundAnswer(correctAnswer string) []string {
	candidates := []string{textnorm.Normalize(correctAnswer)}

	if open := strings.Index(correctAnswer, "("); open >= 0 {
		if end := strings.Index(correctAnswer[open:], ")"); end > 0 {
			term := correctAnswer[:open]
			gloss := correctAnswer[open+1 : open+end]
			candidates = append(candidates, textnorm.Normalize(term), textnorm.Normalize(gloss))
		}
	}

	for _, joiner := range []string{" or ", " and "} {
		lower := strings.ToLower(correctAnswer)
		if strings.Contains(lower, joiner) {
			for _, part := range strings.Split(lower, joiner) {
				if p := textnorm.Normalize(part); p != "" {
					candidates = append(candidates, p)
				}
			}
		}
	}

	return dedupe(candidates)
}

// matchesCandidate accepts when the user's text equals, contains, or is
// contained by any candidate term.
func matchesCandidate(user string, candidates []string) bool {
	if len(user) < 2 {
		return false
	}
	for _, c := range candidates {
		if c == "" || len(c) < 2 {
			continue
		}
		if user == c || strings.Contains(user, c) || strings.Contains(c, user) {
			return true
		}
	}
	return false
}

// matchesVariationTable accepts when the user's text matches a known
// paraphrase of any candidate term, or the candidate is itself a
// paraphrase that the user answered canonically.
func matchesVariationTable(user string, candidates []string) bool {
	for _, c := range candidates {
		variations, ok := variationTable[c]
		if !ok {
			continue
		}
		for _, v := range variations {
			if user == v || strings.Contains(user, v) || strings.Contains(v, user) && len(user) > 3 {
				return true
			}
		}
	}

	// Reverse direction: the correct answer is a paraphrase and the user
	// gave the canonical term.
	for canonical, variations := range variationTable {
		if user != canonical {
			continue
		}
		for _, v := range variations {
			for _, c := range candidates {
				if c == v {
					return true
				}
			}
		}
	}
	return false
}

// keywordOverlapAccepts applies the lenient semantic word-overlap
// heuristics: shared key concepts, word-overlap ratio, or concept
// coverage.
func keywordOverlapAccepts(user, correct string) bool {
	userWords := textnorm.Words(user, 2)
	correctWords := textnorm.Words(correct, 2)
	if len(userWords) == 0 || len(correctWords) == 0 {
		return false
	}

	// Shared membership in the fixed key-concepts vocabulary.
	userConcepts := conceptsIn(user, keyConcepts)
	correctConcepts := conceptsIn(correct, keyConcepts)
	if overlaps(userConcepts, correctConcepts) {
		return true
	}

	// Word-overlap ratio over the correct answer's words.
	matched := 0
	for _, cw := range correctWords {
		if anyWordMatches(userWords, cw) {
			matched++
		}
	}
	if float64(matched)/float64(len(correctWords)) >= wordOverlapThreshold {
		return true
	}

	// Coverage of the correct answer's key concepts.
	if len(correctConcepts) > 0 {
		covered := 0
		for _, c := range correctConcepts {
			if containsString(userConcepts, c) {
				covered++
			}
		}
		if float64(covered)/float64(len(correctConcepts)) >= conceptCoverageThreshold {
			return true
		}
	}

	return false
}

// geoOverlapAccepts is the stricter-topic variant for the population/
// geography question family: a narrower concept set, any overlap accepts.
func geoOverlapAccepts(user, correct string) bool {
	isGeo := false
	for _, cue := range geoCues {
		if strings.Contains(correct, cue) {
			isGeo = true
			break
		}
	}
	if !isGeo {
		return false
	}

	return overlaps(conceptsIn(user, geoConcepts), conceptsIn(correct, geoConcepts))
}

// anyWordMatches reports whether cw matches any user word by equality,
// substring containment (longer words only), or the synonym table.
func anyWordMatches(userWords []string, cw string) bool {
	for _, uw := range userWords {
		if uw == cw {
			return true
		}
		if len(uw) > 3 && len(cw) > 3 && (strings.Contains(uw, cw) || strings.Contains(cw, uw)) {
			return true
		}
		if synonymous(uw, cw) {
			return true
		}
	}
	return false
}

func synonymous(a, b string) bool {
	if syns, ok := synonymTable[a]; ok && containsString(syns, b) {
		return true
	}
	if syns, ok := synonymTable[b]; ok && containsString(syns, a) {
		return true
	}
	return false
}

// conceptsIn returns the vocabulary entries present in normalized text.
func conceptsIn(text string, vocabulary []string) []string {
	padded := " " + text + " "
	var out []string
	for _, c := range vocabulary {
		if strings.Contains(padded, " "+c+" ") || strings.Contains(text, c) && len(c) > 5 {
			out = append(out, c)
		}
	}
	return out
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		if containsString(b, x) {
			return true
		}
	}
	return false
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func dedupe(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	var out []string
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

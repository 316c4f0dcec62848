package quizgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/abhisek/quizforge/internal/textnorm"
)

// trueFalseTokens maps free-form true/false spellings to canonical values.
// Shared with the answer checker so both sides agree on what counts as a
// true/false answer.
var trueFalseTokens = map[string]string{
	"true": "true", "t": "true", "yes": "true", "y": "true", "1": "true",
	"false": "false", "f": "false", "no": "false", "n": "false", "0": "false",
}

// CanonicalTrueFalse maps a free-form answer to "true" or "false".
// The second return is false when the token is not recognized.
func CanonicalTrueFalse(s string) (string, bool) {
	v, ok := trueFalseTokens[textnorm.Normalize(s)]
	return v, ok
}

// mcOptionCount is the option count every MultipleChoice question is
// repaired to.
const mcOptionCount = 4

// Repairer forces a parsed Question into the shape its type demands.
// It never fails; structurally broken questions are degraded gracefully
// into presentable ones.
//
// The RNG drives option shuffling and is injectable for deterministic
// tests. Not safe for concurrent use; the orchestrator guards it.
type Repairer struct {
	rng *rand.Rand
}

// NewRepairer creates a Repairer using the given RNG source.
func NewRepairer(rng *rand.Rand) *Repairer {
	return &Repairer{rng: rng}
}

// Repair normalizes q into a structurally valid question and returns it
// along with data-quality notes (recategorizations, forced defaults).
// Notes are log-worthy observations, never errors.
func (r *Repairer) Repair(q *Question) (*Question, []string) {
	var notes []string

	if detected := detectType(q); detected != q.Type {
		notes = append(notes, fmt.Sprintf("recategorized %s question as %s based on content", q.Type, detected))
		q.Type = detected
	}

	switch q.Type {
	case MultipleChoice:
		r.repairMultipleChoice(q)
	case TrueFalse:
		if n := repairTrueFalse(q); n != "" {
			notes = append(notes, n)
		}
	default:
		// Free-text types carry no options.
		q.Options = nil
	}

	return q, notes
}

// detectType inspects content for signals stronger than the declared type.
func detectType(q *Question) QuestionType {
	lower := strings.ToLower(q.Text)
	if strings.Contains(lower, "which of the following") || strings.Contains(lower, "choose the correct option") {
		return MultipleChoice
	}
	if _, ok := CanonicalTrueFalse(q.CorrectAnswer); ok {
		return TrueFalse
	}
	if strings.Contains(q.Text, "___") {
		return FillInBlank
	}
	if len(strings.Fields(q.CorrectAnswer)) > 3 && len(q.Options) == 0 {
		return ShortAnswer
	}
	return q.Type
}

// repairMultipleChoice makes the question end with exactly 4 options, one
// of which is the correct answer, and stores the answer as a letter.
func (r *Repairer) repairMultipleChoice(q *Question) {
	answerText := resolveAnswerText(q)

	options := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if s := strings.TrimSpace(o); s != "" {
			options = append(options, s)
		}
	}

	modified := true
	switch {
	case len(options) == 0:
		options = r.synthesizeOptions(q.Text, answerText)

	case len(options) < mcOptionCount:
		if !containsNormalized(options, answerText) {
			options = append(options, answerText)
		}
		for i := len(options); i < mcOptionCount; i++ {
			options = append(options, fmt.Sprintf("Option %c", 'A'+i))
		}

	case len(options) > mcOptionCount:
		kept := options[:mcOptionCount]
		if !containsNormalized(kept, answerText) {
			kept[mcOptionCount-1] = answerText
		}
		options = kept

	case !containsNormalized(options, answerText):
		options = append([]string{answerText}, options[:mcOptionCount-1]...)

	default:
		// Already 4 options containing the answer; keep their order.
		modified = false
	}

	if modified {
		r.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
	}

	q.Options = options
	q.CorrectAnswer = letterFor(indexNormalized(options, answerText))
}

// resolveAnswerText returns the correct answer as option text, resolving a
// stored letter against the current options when possible.
func resolveAnswerText(q *Question) string {
	answer := strings.TrimSpace(q.CorrectAnswer)
	if idx, ok := letterIndex(answer); ok && idx < len(q.Options) {
		if text := strings.TrimSpace(q.Options[idx]); text != "" {
			return text
		}
	}
	if answer == "" {
		return "Option A"
	}
	return answer
}

// repairTrueFalse forces the canonical two-option shape. Unrecognized
// answers default to "True"; the returned note flags the substitution.
func repairTrueFalse(q *Question) string {
	q.Options = []string{"True", "False"}

	if v, ok := CanonicalTrueFalse(q.CorrectAnswer); ok {
		if v == "true" {
			q.CorrectAnswer = "True"
		} else {
			q.CorrectAnswer = "False"
		}
		return ""
	}

	note := fmt.Sprintf("unrecognized true/false answer %q, defaulting to True", q.CorrectAnswer)
	q.CorrectAnswer = "True"
	return note
}

// letterIndex converts a single answer letter ("a".."d", any case) to a
// zero-based option index.
func letterIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := strings.ToLower(s)[0]
	if c < 'a' || c > 'a'+mcOptionCount-1 {
		return 0, false
	}
	return int(c - 'a'), true
}

// letterFor converts a zero-based option index to an answer letter.
func letterFor(idx int) string {
	if idx < 0 {
		idx = 0
	}
	return string(rune('a' + idx))
}

func containsNormalized(options []string, text string) bool {
	return indexNormalized(options, text) >= 0
}

func indexNormalized(options []string, text string) int {
	want := textnorm.Normalize(text)
	for i, o := range options {
		if textnorm.Normalize(o) == want {
			return i
		}
	}
	return -1
}

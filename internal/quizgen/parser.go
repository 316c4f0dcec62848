package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrUnparsable is returned when no usable question can be recovered from
// a model response, even with lenient extraction.
var ErrUnparsable = errors.New("no usable question in model response")

// minQuestionLen is the shortest question text accepted as real content.
// Anything shorter is almost always a template echo.
const minQuestionLen = 10

// placeholderMarkers indicate the model echoed a prompt template instead
// of generating content.
var placeholderMarkers = []string{"sample", "question here", "answer here"}

// rawQuestion is the wire shape expected from the model.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Hint          string   `json:"hint"`
	Concepts      []string `json:"concepts"`
}

var (
	questionFieldRe = regexp.MustCompile(`"question"\s*:\s*"((?:[^"\\]|\\.)+)"`)
	answerFieldRe   = regexp.MustCompile(`"correctAnswer"\s*:\s*"((?:[^"\\]|\\.)+)"`)
)

// ParseResponse extracts a structured question from raw model output.
// The text may be clean JSON, fenced JSON, JSON embedded in prose,
// truncated JSON, or unstructured text; progressively more lenient
// strategies are applied before giving up.
func ParseResponse(raw string, typ QuestionType, diff Difficulty) (*Question, error) {
	cleaned := stripCodeFences(raw)

	if span, ok := balancedSpan(cleaned); ok {
		if q, err := decodeQuestion(span, typ, diff); err == nil {
			return q, nil
		}
	}

	// Strict parsing failed; scrape the fields out of the raw text.
	q, err := extractFields(raw, typ, diff)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// stripCodeFences removes markdown fence markers around a JSON payload.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// balancedSpan locates the first balanced {...} or [...] region in s.
// The depth counter tracks string literals and backslash escapes so that
// braces inside strings are ignored.
func balancedSpan(s string) (string, bool) {
	start := -1
	var open, closing byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			closing = '}'
			if open == '[' {
				closing = ']'
			}
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Braces inside string literals do not affect depth.
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeQuestion strictly parses a JSON span into a Question. Arrays are
// accepted by taking their first element.
func decodeQuestion(span string, typ QuestionType, diff Difficulty) (*Question, error) {
	var raw rawQuestion
	if strings.HasPrefix(span, "[") {
		var batch []rawQuestion
		if err := json.Unmarshal([]byte(span), &batch); err != nil {
			return nil, fmt.Errorf("decode question array: %w", err)
		}
		if len(batch) == 0 {
			return nil, fmt.Errorf("empty question array")
		}
		raw = batch[0]
	} else {
		if err := json.Unmarshal([]byte(span), &raw); err != nil {
			return nil, fmt.Errorf("decode question object: %w", err)
		}
	}
	return buildQuestion(raw, typ, diff)
}

// extractFields scrapes "question" and "correctAnswer" pairs out of raw
// text when strict parsing fails (e.g. truncated JSON).
func extractFields(raw string, typ QuestionType, diff Difficulty) (*Question, error) {
	qm := questionFieldRe.FindStringSubmatch(raw)
	am := answerFieldRe.FindStringSubmatch(raw)
	if qm == nil || am == nil {
		return nil, ErrUnparsable
	}

	question := unescapeJSONString(qm[1])
	answer := unescapeJSONString(am[1])

	if hasPlaceholder(question) || hasPlaceholder(answer) {
		return nil, fmt.Errorf("%w: extraction matched a template placeholder", ErrUnparsable)
	}

	return buildQuestion(rawQuestion{
		Question:      question,
		CorrectAnswer: answer,
	}, typ, diff)
}

// buildQuestion applies the shared quality gate and assembles a Question.
func buildQuestion(raw rawQuestion, typ QuestionType, diff Difficulty) (*Question, error) {
	text := strings.TrimSpace(raw.Question)
	answer := strings.TrimSpace(raw.CorrectAnswer)

	if len(text) < minQuestionLen {
		return nil, fmt.Errorf("%w: question text too short (%d chars)", ErrUnparsable, len(text))
	}
	if containsWord(text, "sample") || containsWord(answer, "sample") {
		return nil, fmt.Errorf("%w: response echoes a prompt template", ErrUnparsable)
	}

	return &Question{
		ID:              uuid.NewString(),
		Text:            text,
		Type:            typ,
		Options:         raw.Options,
		CorrectAnswer:   answer,
		Explanation:     strings.TrimSpace(raw.Explanation),
		Hint:            strings.TrimSpace(raw.Hint),
		ConceptsCovered: raw.Concepts,
		Difficulty:      diff,
	}, nil
}

func hasPlaceholder(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range placeholderMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	return strings.Contains(strings.ToLower(s), word)
}

// unescapeJSONString resolves backslash escapes in a regex-extracted JSON
// string value. Falls back to the raw text if it is not valid as a JSON
// string, which can happen with truncated output.
func unescapeJSONString(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return s
	}
	return out
}

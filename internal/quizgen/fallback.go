package quizgen

import "github.com/google/uuid"

// fallbackQuestions are deterministic canned questions substituted when
// generation is exhausted. One per type; difficulty is stamped from the
// request so downstream bookkeeping stays consistent.
var fallbackQuestions = map[QuestionType]Question{
	MultipleChoice: {
		Text:            "Which of the following is the largest planet in our solar system?",
		Type:            MultipleChoice,
		Options:         []string{"Earth", "Jupiter", "Saturn", "Neptune"},
		CorrectAnswer:   "b",
		Explanation:     "Jupiter is the largest planet, with more than twice the mass of all other planets combined.",
		Hint:            "It is named after the king of the Roman gods.",
		ConceptsCovered: []string{"astronomy", "planets"},
	},
	TrueFalse: {
		Text:            "The Earth revolves around the Sun.",
		Type:            TrueFalse,
		Options:         []string{"True", "False"},
		CorrectAnswer:   "True",
		Explanation:     "The Earth completes one orbit around the Sun roughly every 365 days.",
		Hint:            "Think about what causes a year.",
		ConceptsCovered: []string{"astronomy", "earth"},
	},
	FillInBlank: {
		Text:            "Water is made of hydrogen and ___.",
		Type:            FillInBlank,
		CorrectAnswer:   "oxygen",
		Explanation:     "A water molecule contains two hydrogen atoms and one oxygen atom.",
		Hint:            "It is the gas we breathe to live.",
		ConceptsCovered: []string{"chemistry", "water"},
	},
	ShortAnswer: {
		Text:            "Name the process plants use to turn sunlight into food.",
		Type:            ShortAnswer,
		CorrectAnswer:   "photosynthesis",
		Explanation:     "Photosynthesis converts sunlight, water and carbon dioxide into glucose and oxygen.",
		Hint:            "The word starts with 'photo', meaning light.",
		ConceptsCovered: []string{"biology", "plants"},
	},
}

// FallbackQuestion returns a canned question for the requested type and
// difficulty. Unknown types fall back to MultipleChoice.
func FallbackQuestion(typ QuestionType, diff Difficulty) *Question {
	base, ok := fallbackQuestions[typ]
	if !ok {
		base = fallbackQuestions[MultipleChoice]
	}

	q := base // copy
	q.ID = uuid.NewString()
	q.Difficulty = diff
	q.Options = append([]string(nil), base.Options...)
	q.ConceptsCovered = append([]string(nil), base.ConceptsCovered...)
	return &q
}

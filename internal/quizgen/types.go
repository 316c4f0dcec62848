package quizgen

// QuestionType describes how a question is presented and answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillInBlank    QuestionType = "fill_in_blank"
	ShortAnswer    QuestionType = "short_answer"
)

// Difficulty is the requested difficulty band for a question.
type Difficulty string

const (
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	Adaptive Difficulty = "adaptive"
)

// Question is a generated, validated quiz item ready to present.
//
// After repair (see Repairer), the shape is internally consistent:
// MultipleChoice carries exactly 4 options and a letter answer "a".."d",
// TrueFalse carries ["True","False"] and an answer in that set, and the
// free-text types carry no options and a literal text answer.
type Question struct {
	// ID is an opaque unique identifier.
	ID string

	// Text is the prompt shown to the user.
	Text string

	Type QuestionType

	// Options is the ordered list of choices. Empty for free-text types.
	Options []string

	// CorrectAnswer is the canonical correct response. A letter for
	// MultipleChoice, "True"/"False" for TrueFalse, literal text otherwise.
	CorrectAnswer string

	// Explanation is optional supporting text shown after answering.
	Explanation string

	// Hint is an optional nudge the user can request.
	Hint string

	// ConceptsCovered tags the topics this question touches. Used for
	// coverage bookkeeping outside the generation core.
	ConceptsCovered []string

	Difficulty Difficulty
}

// GenerationRequest holds all context for generating one or more questions.
type GenerationRequest struct {
	Subject    string
	Topic      string
	Difficulty Difficulty
	Type       QuestionType

	// GradeLevel tunes prompt phrasing and weighted type selection.
	GradeLevel int

	// PriorQuestions contains texts of questions the caller has already
	// seen. New questions too similar to any of these are rejected.
	PriorQuestions []string

	// Variation seeds prompt phrasing variety. The orchestrator bumps it
	// on retries so a rejected attempt does not replay identical
	// parameters.
	Variation int
}

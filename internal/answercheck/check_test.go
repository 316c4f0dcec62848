package answercheck

import (
	"testing"

	"github.com/abhisek/quizforge/internal/quizgen"
)

func shortAnswer(correct string) *quizgen.Question {
	return &quizgen.Question{
		Text:          "placeholder text long enough",
		Type:          quizgen.ShortAnswer,
		CorrectAnswer: correct,
	}
}

func TestEquivalent_ExactAfterNormalization(t *testing.T) {
	tests := []struct {
		user    string
		correct string
	}{
		{"Paris", "paris"},
		{"The Mitochondria", "mitochondria"},
		{"  photosynthesis!  ", "Photosynthesis"},
		{"don't", "dont"},
	}
	for _, tt := range tests {
		if !Equivalent(tt.user, tt.correct, shortAnswer(tt.correct)) {
			t.Errorf("expected %q to match %q", tt.user, tt.correct)
		}
	}
}

func TestEquivalent_EmptyNeverMatches(t *testing.T) {
	if Equivalent("", "", shortAnswer("")) {
		t.Error("empty answers must not match")
	}
	if Equivalent("   ", "Paris", shortAnswer("Paris")) {
		t.Error("blank answer must not match")
	}
}

func TestEquivalent_TrueFalseTokens(t *testing.T) {
	q := &quizgen.Question{
		Type:          quizgen.TrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "True",
	}
	for _, user := range []string{"true", "TRUE", "t", "yes", "Y", "1"} {
		if !Check(user, q) {
			t.Errorf("expected %q to be accepted for True", user)
		}
	}
	for _, user := range []string{"false", "f", "no", "n", "0", "maybe", ""} {
		if Check(user, q) {
			t.Errorf("expected %q to be rejected for True", user)
		}
	}
}

func TestEquivalent_MultipleChoiceLetters(t *testing.T) {
	q := &quizgen.Question{
		Type:          quizgen.MultipleChoice,
		Options:       []string{"Paris", "London", "Berlin", "Madrid"},
		CorrectAnswer: "a",
	}
	if !Check("a", q) {
		t.Error("matching letter rejected")
	}
	if !Check("A", q) {
		t.Error("letter comparison must be case-insensitive")
	}
	if Check("b", q) {
		t.Error("wrong letter accepted")
	}
	if !Check("Paris", q) {
		t.Error("option text matching the answer letter rejected")
	}
	if Check("London", q) {
		t.Error("option text for a wrong letter accepted")
	}
}

func TestEquivalent_MultipleChoiceLenientFallthrough(t *testing.T) {
	// Answers not found among the options run the variation cascade
	// against the stored letter's option text, not against the letter.
	q := &quizgen.Question{
		Type:          quizgen.MultipleChoice,
		Options:       []string{"Mitochondria", "Ribosome", "Nucleus", "Chloroplast"},
		CorrectAnswer: "a",
	}
	if !Check("mitochondrion", q) {
		t.Error("variation of the correct option text rejected")
	}
	if !Check("powerhouse of the cell", q) {
		t.Error("paraphrase of the correct option text rejected")
	}
	if Check("chlorophyll", q) {
		t.Error("unrelated text accepted on fallthrough")
	}
}

func TestEquivalent_OpenEndedAcceptsGenuineAttempts(t *testing.T) {
	q := &quizgen.Question{
		Type:          quizgen.ShortAnswer,
		CorrectAnswer: "Answers will vary",
	}
	if !Check("Because plants need sunlight to grow", q) {
		t.Error("genuine attempt rejected for open-ended question")
	}
	for _, user := range []string{"idk", "I don't know", "not sure", "???", "", "x"} {
		if Check(user, q) {
			t.Errorf("no-effort reply %q accepted for open-ended question", user)
		}
	}
}

func TestEquivalent_VariationTable(t *testing.T) {
	tests := []struct {
		user    string
		correct string
	}{
		{"Mitochondrion", "mitochondria"},
		{"powerhouse of the cell", "mitochondria"},
		{"plants making food", "photosynthesis"},
		{"water turning into vapor", "evaporation"},
		{"rule by the people", "democracy"},
	}
	for _, tt := range tests {
		if !Equivalent(tt.user, tt.correct, shortAnswer(tt.correct)) {
			t.Errorf("expected paraphrase %q to match %q", tt.user, tt.correct)
		}
	}
}

func TestEquivalent_VariationTableReversed(t *testing.T) {
	// The model sometimes emits the paraphrase as the expected answer.
	if !Equivalent("mitochondria", "powerhouse of the cell", shortAnswer("powerhouse of the cell")) {
		t.Error("canonical answer rejected when the expected answer is a paraphrase")
	}
}

func TestEquivalent_CompoundAnswers(t *testing.T) {
	tests := []struct {
		user    string
		correct string
	}{
		{"water", "H2O (water)"},
		{"H2O", "H2O (water)"},
		{"evaporation", "evaporation and condensation"},
		{"condensation", "evaporation and condensation"},
		{"lungs", "lungs or gills"},
	}
	for _, tt := range tests {
		if !Equivalent(tt.user, tt.correct, shortAnswer(tt.correct)) {
			t.Errorf("expected %q to match compound answer %q", tt.user, tt.correct)
		}
	}
}

func TestEquivalent_KeywordOverlap(t *testing.T) {
	correct := "the fastest land animal"
	if !Equivalent("cheetah is the fastest animal", correct, shortAnswer(correct)) {
		t.Error("expected high word overlap to be accepted")
	}
	if Equivalent("purple elephants", correct, shortAnswer(correct)) {
		t.Error("unrelated answer accepted")
	}
}

func TestEquivalent_SharedKeyConcept(t *testing.T) {
	correct := "the water cycle moves water between oceans and clouds"
	if !Equivalent("water evaporates and comes back as rain", correct, shortAnswer(correct)) {
		t.Error("answer sharing a key concept rejected")
	}
}

func TestEquivalent_SynonymsCountAsMatches(t *testing.T) {
	correct := "plants need water and sunlight to grow"
	if !Equivalent("they need irrigation and sun for growth", correct, shortAnswer(correct)) {
		t.Error("synonym-based word matches rejected")
	}
}

func TestEquivalent_GeographyFamily(t *testing.T) {
	correct := "population grew because farming thrived in that region"
	if !Equivalent("they had good farming", correct, shortAnswer(correct)) {
		t.Error("geography-family concept overlap rejected")
	}
	if Equivalent("purple elephants", correct, shortAnswer(correct)) {
		t.Error("unrelated answer accepted for geography question")
	}
}

func TestEquivalent_NoEffortNotRescuedByLenientRules(t *testing.T) {
	// A no-effort reply must not sneak through the variation cascade on a
	// regular question either.
	correct := "photosynthesis"
	for _, user := range []string{"idk", "i dont know", "?"} {
		if Equivalent(user, correct, shortAnswer(correct)) {
			t.Errorf("no-effort reply %q accepted", user)
		}
	}
}

func TestSplitCompoundAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"H2O (water)", []string{"h2o (water)", "h2o", "water"}},
		{"lungs or gills", []string{"lungs or gills", "lungs", "gills"}},
		{"plain", []string{"plain"}},
	}
	for _, tt := range tests {
		got := splitCompoundAnswer(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("splitCompoundAnswer(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("splitCompoundAnswer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

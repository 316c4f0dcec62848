package similarity

import "testing"

func TestCombined_ShortStringsScoreZero(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"short", "short"},
		{"cat", "What is the capital of France and why does it matter?"},
		{"", ""},
		{"true", "false"},
	}

	for _, tc := range tests {
		if got := Combined(tc.a, tc.b); got != 0 {
			t.Errorf("Combined(%q, %q) = %v, want 0", tc.a, tc.b, got)
		}
	}
}

func TestCombined_SelfSimilarity(t *testing.T) {
	texts := []string{
		"What is the capital of France and why is it significant?",
		"Explain how photosynthesis converts sunlight into energy.",
	}

	for _, s := range texts {
		if got := Combined(s, s); got < 0.9 {
			t.Errorf("Combined(%q, same) = %v, want >= 0.9", s, got)
		}
	}
}

func TestCombined_Containment(t *testing.T) {
	a := "What is the capital of France"
	b := "What is the capital of France and why is it historically significant"

	if got := Combined(a, b); got != 0.9 {
		t.Errorf("Combined(contained) = %v, want 0.9", got)
	}
}

func TestTooSimilar_Rephrasings(t *testing.T) {
	a := "What is the capital of France and why is it historically significant to Europe?"
	b := "What is the capital city of France, and why has it been historically significant in Europe?"

	if got := Combined(a, b); got <= DuplicateThreshold {
		t.Errorf("Combined(rephrasings) = %v, want > %v", got, DuplicateThreshold)
	}
	if !TooSimilar(a, b) {
		t.Error("expected rephrased questions to be flagged as duplicates")
	}
}

func TestTooSimilar_DistinctQuestions(t *testing.T) {
	a := "What is the capital of France and why is it historically significant?"
	b := "Which planet in our solar system has the most moons orbiting it?"

	if TooSimilar(a, b) {
		t.Errorf("distinct questions flagged as duplicates (score %v)", Combined(a, b))
	}
}

func TestMaxAgainst(t *testing.T) {
	prior := []string{
		"Which planet in our solar system has the most moons orbiting it?",
		"What is the capital of France and why is it historically significant?",
	}

	text := "What is the capital city of France, and why has it been historically significant?"
	if got := MaxAgainst(text, prior); got <= DuplicateThreshold {
		t.Errorf("MaxAgainst = %v, want > %v", got, DuplicateThreshold)
	}

	if got := MaxAgainst(text, nil); got != 0 {
		t.Errorf("MaxAgainst with empty prior = %v, want 0", got)
	}
}

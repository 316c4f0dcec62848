package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"Photosynthesis", "photosynthesis"},
		{"The Eiffel Tower", "eiffel tower"},
		{"A cat", "cat"},
		{"An apple", "apple"},
		{"apple", "apple"}, // "a" not followed by a space is kept
		{"Mitochondria.", "mitochondria"},
		{"What is   the capital?", "what is the capital"},
		{"it's a 'quoted' answer!", "its quoted answer"},
		{"The, comma after article", "comma after article"},
		{"The an apple", "apple"}, // stacked articles strip to a fixpoint
		{"a an the cat", "cat"},
		{"semi-colon; and dash-es", "semicolon and dashes"},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"The Great Wall of China!",
		"  An   unusual    spacing  ",
		"photosynthesis",
		"What is the capital of France, and why is it important?",
		"The an apple",
		"true",
		"",
	}

	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	if Normalize("MITOCHONDRIA") != Normalize("mitochondria") {
		t.Error("expected case-insensitive normalization")
	}
	if Normalize("The ANSWER") != Normalize("the answer") {
		t.Error("expected case-insensitive normalization with article")
	}
}

func TestWords(t *testing.T) {
	got := Words("The cat sat on a very warm windowsill", 3)
	want := []string{"very", "warm", "windowsill"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}

	if w := Words("", 3); len(w) != 0 {
		t.Errorf("Words(\"\") = %v, want empty", w)
	}
}

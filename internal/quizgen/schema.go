package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// QuestionSchema defines the JSON shape requested from the model. The
// parser still runs its repair strategies on the response, since not
// every provider enforces structured output.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single quiz question with answer, explanation, and optional hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the student",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple choice, [\"True\",\"False\"] for true/false, empty for free-text types",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct answer: option text for choice types, literal text otherwise",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief explanation of why the answer is correct",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "Optional short hint; empty string if none",
			},
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Topic tags this question covers",
			},
		},
		"required":             []any{"question", "options", "correctAnswer", "explanation"},
		"additionalProperties": false,
	},
}

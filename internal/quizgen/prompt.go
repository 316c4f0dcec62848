package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor writing quiz questions for school students.

Rules:
- Generate a single question of the requested type, subject, topic, and difficulty.
- The question text must be clear, self-contained, and age-appropriate for the given grade.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- For true/false, the answer must be "True" or "False".
- For fill-in-the-blank, mark the blank with ___ in the question text.
- Include a brief explanation of the correct answer and an optional hint.
- Respond with a single JSON object with fields: question, options, correctAnswer, explanation, hint, concepts.
- Do not repeat or closely paraphrase any question from the "already asked" list.`

// variationLeads vary the opening instruction across retries so a
// rejected attempt does not replay the exact same prompt.
var variationLeads = []string{
	"Write a fresh question on this topic.",
	"Write a question approaching the topic from a different angle than usual.",
	"Write a question about a less commonly tested aspect of this topic.",
	"Write a creative question that connects this topic to everyday life.",
	"Write a question testing deeper understanding rather than recall.",
}

// buildUserMessage constructs the generation prompt from the request and
// the variation index for this attempt.
func buildUserMessage(req GenerationRequest, variation int, maxPrior int) string {
	var b strings.Builder

	b.WriteString(variationLeads[variation%len(variationLeads)])
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Question type: %s\n", req.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	if req.GradeLevel > 0 {
		fmt.Fprintf(&b, "Grade level: %d\n", req.GradeLevel)
	}

	b.WriteString("\nAlready asked:\n")
	b.WriteString(formatPrior(req.PriorQuestions, maxPrior))

	return b.String()
}

// formatPrior lists recent prior questions for novelty steering, keeping
// only the most recent max entries. Returns "None" when empty.
func formatPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

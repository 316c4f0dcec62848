package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/textnorm"
)

// distractorPool ties question-text cues to plausible wrong answers for a
// known question family. Pools are scanned in order; the first pool whose
// cue appears in the question text wins.
type distractorPool struct {
	cues    []string
	options []string
}

var distractorPools = []distractorPool{
	{
		cues:    []string{"river", "longest river", "nile", "amazon"},
		options: []string{"Nile River", "Amazon River", "Mississippi River", "Yangtze River", "Ganges River"},
	},
	{
		cues:    []string{"year", "when did", "what year", "century"},
		options: []string{"1492", "1776", "1865", "1945", "1969"},
	},
	{
		cues:    []string{"government", "democracy", "president", "parliament"},
		options: []string{"Democracy", "Monarchy", "Republic", "Dictatorship", "Oligarchy"},
	},
	{
		cues:    []string{"capital", "city", "country"},
		options: []string{"Paris", "London", "Tokyo", "Washington DC", "Berlin"},
	},
	{
		cues:    []string{"planet", "solar system", "moon", "orbit"},
		options: []string{"Mercury", "Venus", "Mars", "Jupiter", "Saturn"},
	},
}

// synthesizeOptions builds a 4-option set for a question that arrived
// with none: the correct answer plus 3 contextual distractors from a pool
// matching the question text, or generic filler when no cue matches.
func (r *Repairer) synthesizeOptions(questionText, answerText string) []string {
	options := []string{answerText}

	for _, d := range pickPool(questionText) {
		if len(options) == mcOptionCount {
			break
		}
		if textnorm.Normalize(d) == textnorm.Normalize(answerText) {
			continue
		}
		options = append(options, d)
	}

	for i := len(options); i < mcOptionCount; i++ {
		options = append(options, fmt.Sprintf("Option %c", 'A'+i))
	}
	return options
}

// pickPool returns distractor candidates for the first pool whose cue
// appears in the question text, or nil if nothing matches.
func pickPool(questionText string) []string {
	lower := strings.ToLower(questionText)
	for _, pool := range distractorPools {
		for _, cue := range pool.cues {
			if strings.Contains(lower, cue) {
				return pool.options
			}
		}
	}
	return nil
}

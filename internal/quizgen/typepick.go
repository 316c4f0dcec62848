package quizgen

import "math/rand"

// typeWeightRow is a grade-band weighting for question types.
type typeWeightRow struct {
	maxGrade int
	weights  map[QuestionType]float64
}

// typeWeightTable favors recognition formats for younger learners and
// recall/production formats for older ones. Hand-tuned.
var typeWeightTable = []typeWeightRow{
	{maxGrade: 3, weights: map[QuestionType]float64{
		MultipleChoice: 0.40, TrueFalse: 0.35, FillInBlank: 0.15, ShortAnswer: 0.10,
	}},
	{maxGrade: 6, weights: map[QuestionType]float64{
		MultipleChoice: 0.40, TrueFalse: 0.20, FillInBlank: 0.25, ShortAnswer: 0.15,
	}},
	{maxGrade: 12, weights: map[QuestionType]float64{
		MultipleChoice: 0.30, TrueFalse: 0.10, FillInBlank: 0.25, ShortAnswer: 0.35,
	}},
}

// recentDamping scales down the weight of a type that already appeared in
// the recent history, to avoid runs of the same format.
const recentDamping = 0.5

// TypeWeights returns the draw probabilities for each question type given
// a grade level and the most recent type history. Pure function.
func TypeWeights(grade int, recent []QuestionType) map[QuestionType]float64 {
	row := typeWeightTable[len(typeWeightTable)-1]
	for _, r := range typeWeightTable {
		if grade <= r.maxGrade {
			row = r
			break
		}
	}

	weights := make(map[QuestionType]float64, len(row.weights))
	for t, w := range row.weights {
		weights[t] = w
	}
	for _, t := range lastN(recent, 3) {
		weights[t] *= recentDamping
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	for t := range weights {
		weights[t] /= total
	}
	return weights
}

// PickType draws a question type from the grade-weighted table. The RNG
// is injected so callers can pin the draw in tests.
func PickType(grade int, recent []QuestionType, rng *rand.Rand) QuestionType {
	weights := TypeWeights(grade, recent)

	// Iterate in a fixed order so the draw is reproducible for a seed.
	order := []QuestionType{MultipleChoice, TrueFalse, FillInBlank, ShortAnswer}

	r := rng.Float64()
	var acc float64
	for _, t := range order {
		acc += weights[t]
		if r < acc {
			return t
		}
	}
	return order[len(order)-1]
}

func lastN(s []QuestionType, n int) []QuestionType {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

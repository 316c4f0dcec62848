package quizgen

import "time"

// Config controls the generation orchestrator.
type Config struct {
	// MaxAttempts bounds retries for a single question slot. Across a
	// batch the total is naturally capped at MaxAttempts per slot.
	MaxAttempts int

	// AttemptTimeout is enforced per generator call, independent of any
	// timeout the provider itself implements.
	AttemptTimeout time.Duration

	// InitialBackoff is the delay before the second attempt; the delay
	// grows linearly with the attempt count up to MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// MaxConcurrent bounds the number of in-flight question generations
	// in batch mode.
	MaxConcurrent int

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// BaseTemperature is the sampling temperature for the first attempt;
	// TemperatureStep is added per retry (capped at 1.0) so retries after
	// a near-duplicate rejection do not replay identical parameters.
	BaseTemperature float64
	TemperatureStep float64

	// MaxPriorQuestions limits how many prior questions appear in the
	// prompt's "already asked" list.
	MaxPriorQuestions int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       3,
		AttemptTimeout:    20 * time.Second,
		InitialBackoff:    500 * time.Millisecond,
		MaxBackoff:        4 * time.Second,
		MaxConcurrent:     3,
		MaxTokens:         768,
		BaseTemperature:   0.7,
		TemperatureStep:   0.1,
		MaxPriorQuestions: 10,
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// GenerationEventData captures the outcome of one question slot.
type GenerationEventData struct {
	Subject    string
	Topic      string
	Type       string
	Difficulty string
	Outcome    string // "accepted" or "fallback"
	Attempts   int
	LatencyMs  int64
	Notes      string
}

// GenerationEvent is a stored generation outcome event.
type GenerationEvent struct {
	ID        int64
	Timestamp time.Time
	GenerationEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results, newest first (0 = 50)
}

// EventRepo provides append and query access to pipeline events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendGeneration records a question-generation outcome event.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// QueryGenerations returns recent generation events, newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_events
			(subject, topic, qtype, difficulty, outcome, attempts, latency_ms, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Subject, data.Topic, data.Type, data.Difficulty,
		data.Outcome, data.Attempts, data.LatencyMs, data.Notes,
	)
	if err != nil {
		return fmt.Errorf("append generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limitOf(opts))
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		var success int
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		e.Success = success != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, subject, topic, qtype, difficulty,
		        outcome, attempts, latency_ms, notes
		 FROM generation_events ORDER BY id DESC LIMIT ?`, limitOf(opts))
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var out []GenerationEvent
	for rows.Next() {
		var e GenerationEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Subject, &e.Topic, &e.Type, &e.Difficulty,
			&e.Outcome, &e.Attempts, &e.LatencyMs, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func limitOf(opts QueryOpts) int {
	if opts.Limit > 0 {
		return opts.Limit
	}
	return 50
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
